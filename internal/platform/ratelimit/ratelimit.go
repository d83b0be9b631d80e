// Package ratelimit provides a Redis-backed fixed-window request limiter for
// the authentication endpoints.
package ratelimit

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// window is the fixed interval over which attempts are counted.
const window = time.Minute

// PerIP returns a Gin middleware that allows at most limit requests per
// client IP per minute, counted with a Redis INCR + EXPIRE fixed window.
// When rdb is nil (Redis not configured) the limiter allows everything, the
// same warn-and-continue degradation the rest of the app applies to Redis.
func PerIP(rdb *redis.Client, prefix string, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := prefix + ":" + c.ClientIP()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			// Redis failure must not take the auth endpoints down.
			slog.Warn("rate limiter unavailable", "error", err)
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many attempts, please try again later"})
			return
		}
		c.Next()
	}
}
