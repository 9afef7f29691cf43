package retry

import (
	"context"
	"time"
)

type Fn func() error

// Do runs fn up to attempts times, doubling wait between tries. It stops
// early when ctx is done.
func Do(ctx context.Context, attempts int, wait time.Duration, fn Fn) error {

	if attempts < 1 {
		attempts = 1
	}

	var err error

	for i := 0; i < attempts; i++ {

		if ctx.Err() != nil {
			return ctx.Err()
		}

		err = fn()
		if err == nil {
			return nil
		}

		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		wait = wait * 2
	}

	return err
}
