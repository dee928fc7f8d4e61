package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"tether-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// RateLimiter is a fixed-window request limiter backed by Redis. The key is
// the authenticated email when present, the client IP otherwise. Redis
// outages fail open.
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRateLimiter creates a new redis-backed rate limiter
func NewRateLimiter(cfg *config.Config) *RateLimiter {
	return &RateLimiter{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}),
		limit:  cfg.RateLimitPerMinute,
		window: time.Minute,
	}
}

// Handler returns the gin middleware
func (r *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if email := c.GetString("email"); email != "" {
			key = email
		}
		redisKey := fmt.Sprintf("ratelimit:%s:%d", key, time.Now().Unix()/int64(r.window.Seconds()))

		ctx := context.Background()
		count, err := r.client.Incr(ctx, redisKey).Result()
		if err != nil {
			logrus.WithError(err).Warn("rate limiter unavailable, allowing request")
			c.Next()
			return
		}
		if count == 1 {
			r.client.Expire(ctx, redisKey, r.window)
		}

		if count > int64(r.limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "too many requests",
				"retry_after": r.window.String(),
			})
			return
		}
		c.Next()
	}
}

// Close releases the redis connection
func (r *RateLimiter) Close() error {
	return r.client.Close()
}
