package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/widyalab/landing-api/internal/pkg/jwt"
	"github.com/widyalab/landing-api/internal/pkg/response"
)

const contextKeyClaims = "admin_claims"

// Auth returns a middleware that enforces bearer-token authentication and
// attaches the decoded admin identity to the request context.
func Auth(signer *jwt.Signer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthenticated(c, "no token provided")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			response.Unauthenticated(c, "token missing")
			return
		}

		claims, err := signer.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Unauthenticated(c, "invalid or expired token")
			return
		}

		c.Set(contextKeyClaims, claims)
		c.Next()
	}
}

// Claims extracts the authenticated admin identity from context. Returns the
// zero value on unauthenticated requests.
func Claims(c *gin.Context) jwt.Claims {
	v, ok := c.Get(contextKeyClaims)
	if !ok {
		return jwt.Claims{}
	}
	claims, ok := v.(*jwt.Claims)
	if !ok || claims == nil {
		return jwt.Claims{}
	}
	return *claims
}
