package cache

import (
	"context"
	"errors"
)

var ErrMiss = errors.New("cache miss")

// Store keeps chat replies keyed by request fingerprint.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
