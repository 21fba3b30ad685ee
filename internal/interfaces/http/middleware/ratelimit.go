package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"raffle/internal/infrastructure/ratelimit"
	"raffle/internal/shared/errors"
	"raffle/internal/shared/logger"
	"raffle/internal/shared/utils"
)

// RateLimiter caps requests per client IP on a shared sliding window so the
// limit holds across instances.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	window  ratelimit.Window
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, limit int, window time.Duration, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		window:  ratelimit.Window{Duration: window, Limit: limit},
		logger:  logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := rl.limiter.Allow(c.Request.Context(), "ip:"+c.ClientIP(), rl.window)
		if err != nil {
			// Redis unavailable; let traffic through.
			rl.logger.Warnw("ip rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponseWithError(c, errors.NewRateLimitedError("rate limit exceeded, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
