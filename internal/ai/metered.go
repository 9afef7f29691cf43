package ai

import (
	"context"
	"time"

	"commit-assistant/internal/observability"
)

// MeteredProvider records call counts, latency and token usage.
type MeteredProvider struct {
	provider Provider
	name     string
}

func NewMetered(p Provider, name string) *MeteredProvider {
	return &MeteredProvider{provider: p, name: name}
}

func (m *MeteredProvider) Chat(ctx context.Context, r ChatRequest) (ChatResponse, error) {

	start := time.Now()

	resp, err := m.provider.Chat(ctx, r)

	observability.AICalls.WithLabelValues(m.name).Inc()
	observability.AILatency.WithLabelValues(m.name).Observe(time.Since(start).Seconds())

	if err != nil {
		observability.AIErrors.WithLabelValues(m.name).Inc()
		return resp, err
	}

	observability.AITokens.WithLabelValues(m.name, resp.Model, "prompt").Add(float64(resp.Usage.PromptTokens))
	observability.AITokens.WithLabelValues(m.name, resp.Model, "completion").Add(float64(resp.Usage.CompletionTokens))

	return resp, nil
}
