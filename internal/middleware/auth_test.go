package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/widyalab/landing-api/internal/pkg/jwt"
)

func authRouter(signer *jwt.Signer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(signer), func(c *gin.Context) {
		claims := Claims(c)
		c.JSON(http.StatusOK, gin.H{"username": claims.Username, "role": claims.Role})
	})
	return r
}

func TestAuthRejections(t *testing.T) {
	signer := jwt.NewSigner("test-secret", time.Hour)
	r := authRouter(signer)

	cases := []struct {
		name    string
		header  string
		wantMsg string
	}{
		{"missing header", "", "no token provided"},
		{"blank token", "Bearer ", "token missing"},
		{"bad token", "Bearer not-a-token", "invalid or expired token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", w.Code)
			}
			var body struct {
				Error struct {
					Kind    string `json:"kind"`
					Message string `json:"message"`
				} `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Error.Kind != "unauthenticated" {
				t.Errorf("kind = %q, want unauthenticated", body.Error.Kind)
			}
			if body.Error.Message != tc.wantMsg {
				t.Errorf("message = %q, want %q", body.Error.Message, tc.wantMsg)
			}
		})
	}
}

func TestAuthAttachesClaims(t *testing.T) {
	signer := jwt.NewSigner("test-secret", time.Hour)
	r := authRouter(signer)

	token, err := signer.Sign(3, "alice", "Master Admin")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["username"] != "alice" || body["role"] != "Master Admin" {
		t.Fatalf("claims = %v", body)
	}
}

func TestClaimsZeroValueWhenAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	claims := Claims(c)
	if claims.AdminID != 0 || claims.Username != "" || claims.Role != "" {
		t.Fatalf("expected zero claims, got %+v", claims)
	}
}
