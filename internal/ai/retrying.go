package ai

import (
	"context"
	"time"

	"commit-assistant/internal/retry"
)

type RetryingProvider struct {
	provider Provider
	attempts int
	wait     time.Duration
}

func NewRetrying(p Provider, attempts int, wait time.Duration) *RetryingProvider {
	return &RetryingProvider{
		provider: p,
		attempts: attempts,
		wait:     wait,
	}
}

func (r *RetryingProvider) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {

	var resp ChatResponse

	err := retry.Do(ctx, r.attempts, r.wait, func() error {
		var err error
		resp, err = r.provider.Chat(ctx, req)
		return err
	})

	return resp, err
}
