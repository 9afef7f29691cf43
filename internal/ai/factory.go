package ai

import (
	"time"

	"commit-assistant/internal/cache"
	"commit-assistant/internal/config"
	"commit-assistant/internal/observability"
)

// NewProvider builds the configured client wrapped with retry, circuit
// breaking, metrics and, when a store is given, reply caching.
func NewProvider(cfg *config.Config, store cache.Store, logger *observability.Logger) Provider {

	var (
		p     Provider
		name  string
		model string
	)

	switch cfg.AIProvider {

	case "openai":
		name, model = "openai", cfg.OpenAIModel
		p = NewOpenAI(
			cfg.OpenAIURL,
			cfg.OpenAIKey,
			cfg.OpenAIModel,
			cfg.AITimeout,
		)

	default:
		name, model = "ollama", cfg.OllamaModel
		p = NewOllama(
			cfg.OllamaURL,
			cfg.OllamaModel,
			cfg.AITimeout,
		)
	}

	p = NewRetrying(p, cfg.AIRetryAttempts, 500*time.Millisecond)
	p = NewCircuitBreaker(p, name)

	// a hosted primary still has the local model behind it
	if name != "ollama" {
		p = NewFallback(p, NewOllama(cfg.OllamaURL, cfg.OllamaModel, cfg.AITimeout))
	}
	p = NewMetered(p, name)

	if store != nil {
		p = NewCached(p, store, name+"/"+model, logger)
	}

	return p
}
