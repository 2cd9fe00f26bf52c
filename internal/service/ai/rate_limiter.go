package ai

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"promptcraft/backend/internal/logger"
)

// DefaultRateLimit is the default QPS limit.
const DefaultRateLimit = 10

// RateLimiter is shared by every caller of a provider, so one owner cannot
// exhaust the upstream quota for everyone else.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter allowing qps calls per second with an
// equal burst.
func NewRateLimiter(qps int) *RateLimiter {
	if qps <= 0 {
		qps = DefaultRateLimit
	}
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(qps), qps)}
}

// Wait blocks until a token is available or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		logger.Warn("ai rate limit wait aborted", "module", "ai", "action", "wait", "resource", "ai", "result", "failed", "error", err)
		return fmt.Errorf("ai rate limit: %w", err)
	}
	return nil
}

// Limit returns the configured calls per second.
func (r *RateLimiter) Limit() int {
	return int(r.limiter.Limit())
}

type limitedProvider struct {
	Provider
	limiter *RateLimiter
}

// WithRateLimit wraps p so every Complete call waits on limiter first.
func WithRateLimit(p Provider, limiter *RateLimiter) Provider {
	return &limitedProvider{Provider: p, limiter: limiter}
}

func (p *limitedProvider) Complete(ctx context.Context, req Request) (string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return p.Provider.Complete(ctx, req)
}
