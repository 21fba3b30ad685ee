package ratelimit

import (
	"context"

	"raffle/internal/application/deposit/usecases"
	"raffle/internal/shared/config"
)

// DepositLimiter caps deposit submissions per participant.
type DepositLimiter struct {
	limiter RateLimiter
	window  Window
}

var _ usecases.SubmissionLimiter = (*DepositLimiter)(nil)

func NewDepositLimiter(limiter RateLimiter, cfg config.RateLimitConfig) *DepositLimiter {
	return &DepositLimiter{
		limiter: limiter,
		window:  Window{Duration: cfg.Window, Limit: cfg.Limit},
	}
}

func (l *DepositLimiter) Allow(ctx context.Context, participantID string) (bool, error) {
	return l.limiter.Allow(ctx, "deposit:"+participantID, l.window)
}
