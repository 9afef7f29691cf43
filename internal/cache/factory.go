package cache

import "commit-assistant/internal/config"

// NewStore returns nil when caching is disabled.
func NewStore(cfg *config.Config) Store {

	switch cfg.CacheType {

	case "redis":
		return NewRedis(
			cfg.RedisAddr,
			"commit_assistant:chat:",
			cfg.CacheTTL,
		)

	case "memory":
		return NewMemory(cfg.CacheTTL)

	default:
		return nil
	}
}
