package forecast

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimitedFetcher wraps a Fetcher with an upstream request budget.
type RateLimitedFetcher struct {
	inner   Fetcher
	limiter *rate.Limiter
}

// NewRateLimitedFetcher creates a rate-limited wrapper.
// rps is the maximum requests per second allowed (can be fractional),
// burst the maximum burst size.
func NewRateLimitedFetcher(inner Fetcher, rps float64, burst int) *RateLimitedFetcher {
	return &RateLimitedFetcher{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Fetch waits for rate limiter permission, then forwards to the inner store.
func (r *RateLimitedFetcher) Fetch(ctx context.Context, offset int) (Payload, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return Payload{}, fmt.Errorf("%w: rate limit wait canceled: %v", ErrFetch, err)
	}
	return r.inner.Fetch(ctx, offset)
}

var _ Fetcher = (*RateLimitedFetcher)(nil)
