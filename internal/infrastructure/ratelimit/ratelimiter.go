package ratelimit

import (
	"context"
	"time"
)

// Window caps the number of hits per key inside a sliding duration.
type Window struct {
	Duration time.Duration
	Limit    int
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, windows ...Window) (bool, error)
	GetRemaining(ctx context.Context, key string, window Window) (int64, error)
	Reset(ctx context.Context, key string) error
}
