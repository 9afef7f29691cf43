package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

const (
	// consecutive failures before the breaker opens
	tripAfter   = 3
	openTimeout = 15 * time.Second
)

type CircuitBreakerProvider struct {
	provider Provider
	cb       *gobreaker.CircuitBreaker
}

func NewCircuitBreaker(p Provider, name string) *CircuitBreakerProvider {

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    0,
		Timeout:     openTimeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= tripAfter
		},
		IsSuccessful: callerGaveUp,
	}

	return &CircuitBreakerProvider{
		provider: p,
		cb:       gobreaker.NewCircuitBreaker(settings),
	}
}

// callerGaveUp counts caller cancellations as successes.
func callerGaveUp(err error) bool {
	return err == nil || errors.Is(err, context.Canceled)
}

func (c *CircuitBreakerProvider) Chat(
	ctx context.Context,
	r ChatRequest,
) (ChatResponse, error) {

	out, err := c.cb.Execute(func() (interface{}, error) {
		return c.provider.Chat(ctx, r)
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ChatResponse{}, fmt.Errorf("%s unavailable: %w", c.cb.Name(), err)
	}
	if err != nil {
		return ChatResponse{}, err
	}

	resp, ok := out.(ChatResponse)
	if !ok {
		return ChatResponse{}, fmt.Errorf("unexpected circuit breaker response type")
	}

	return resp, nil
}

func (c *CircuitBreakerProvider) State() gobreaker.State {
	return c.cb.State()
}
