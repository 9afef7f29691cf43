package ai

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"

	"commit-assistant/internal/cache"
	"commit-assistant/internal/observability"
)

// CachedProvider memoizes replies. Cache failures are logged and never fail
// the call.
type CachedProvider struct {
	provider Provider
	store    cache.Store
	model    string
	logger   *observability.Logger
}

func NewCached(p Provider, store cache.Store, model string, logger *observability.Logger) *CachedProvider {
	return &CachedProvider{
		provider: p,
		store:    store,
		model:    model,
		logger:   logger,
	}
}

func (c *CachedProvider) Chat(ctx context.Context, r ChatRequest) (ChatResponse, error) {

	key := c.key(r)

	content, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		observability.CacheLookups.WithLabelValues("hit").Inc()
		return ChatResponse{Content: content, Provider: "cache", Model: c.model}, nil
	case errors.Is(err, cache.ErrMiss):
		observability.CacheLookups.WithLabelValues("miss").Inc()
	default:
		observability.CacheLookups.WithLabelValues("error").Inc()
		c.logger.Warn("cache get failed", "err", err)
	}

	resp, err := c.provider.Chat(ctx, r)
	if err != nil {
		return ChatResponse{}, err
	}

	if err := c.store.Set(ctx, key, resp.Content); err != nil {
		c.logger.Warn("cache set failed", "err", err)
	}

	return resp, nil
}

func (c *CachedProvider) key(r ChatRequest) string {

	h := sha1.New()
	h.Write([]byte(c.model))
	for _, m := range r.Messages {
		h.Write([]byte{0})
		h.Write([]byte(m.Role))
		h.Write([]byte{0})
		h.Write([]byte(m.Content))
	}

	return hex.EncodeToString(h.Sum(nil))
}
