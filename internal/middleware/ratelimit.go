package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	loginRateMax    = 10
	loginRateWindow = time.Minute
)

// LoginRateLimit returns a fixed-window per-IP limiter for the login
// endpoint. A nil client disables limiting (no Redis configured); Redis
// errors fail open.
func LoginRateLimit(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		window := time.Now().Unix() / int64(loginRateWindow.Seconds())
		key := fmt.Sprintf("landing:login_rate:%s:%d", ip, window)

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rdb.PExpire(ctx, key, loginRateWindow+time.Second)
		}

		if count > loginRateMax {
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{"kind": "rate_limited", "message": "too many login attempts, try again later"},
			})
			return
		}

		c.Next()
	}
}
