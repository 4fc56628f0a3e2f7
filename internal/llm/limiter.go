package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

type rateLimited struct {
	next    Collaborator
	limiter *rate.Limiter
}

// WithRateLimit throttles outbound calls to next. A nil limiter returns next unchanged.
func WithRateLimit(next Collaborator, limiter *rate.Limiter) Collaborator {
	if limiter == nil {
		return next
	}
	return &rateLimited{next: next, limiter: limiter}
}

func (r *rateLimited) Send(ctx context.Context, prompt string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}
	return r.next.Send(ctx, prompt)
}
