package ai_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"commit-assistant/internal/ai"
	"commit-assistant/internal/cache"
	"commit-assistant/internal/config"
	"commit-assistant/internal/mocks"
	"commit-assistant/internal/observability"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errDown = errors.New("connection refused")

func TestFallback_UsesSecondaryOnError(t *testing.T) {
	primary := mocks.NewProvider(t)
	secondary := mocks.NewProvider(t)

	primary.EXPECT().Chat(mock.Anything, mock.Anything).Return(ai.ChatResponse{}, errDown).Once()
	secondary.EXPECT().Chat(mock.Anything, mock.Anything).Return(ai.ChatResponse{Content: "backup"}, nil).Once()

	resp, err := ai.NewFallback(primary, secondary).Chat(context.Background(), ai.UserPrompt("x"))
	require.NoError(t, err)
	require.Equal(t, "backup", resp.Content)
}

func TestFallback_JoinsErrors(t *testing.T) {
	primary := mocks.NewProvider(t)
	secondary := mocks.NewProvider(t)
	errOther := errors.New("quota")

	primary.EXPECT().Chat(mock.Anything, mock.Anything).Return(ai.ChatResponse{}, errDown).Once()
	secondary.EXPECT().Chat(mock.Anything, mock.Anything).Return(ai.ChatResponse{}, errOther).Once()

	_, err := ai.NewFallback(primary, secondary).Chat(context.Background(), ai.UserPrompt("x"))
	require.ErrorIs(t, err, errDown)
	require.ErrorIs(t, err, errOther)
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	provider := mocks.NewProvider(t)
	provider.EXPECT().Chat(mock.Anything, mock.Anything).Return(ai.ChatResponse{}, errDown).Times(3)

	cb := ai.NewCircuitBreaker(provider, "ollama")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := cb.Chat(ctx, ai.UserPrompt("x"))
		require.ErrorIs(t, err, errDown)
	}

	require.Equal(t, gobreaker.StateOpen, cb.State())

	_, err := cb.Chat(ctx, ai.UserPrompt("x"))
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	require.ErrorContains(t, err, "ollama unavailable")
}

func TestCircuitBreaker_IgnoresCallerCancellation(t *testing.T) {
	provider := mocks.NewProvider(t)
	provider.EXPECT().Chat(mock.Anything, mock.Anything).Return(ai.ChatResponse{}, context.Canceled).Times(5)

	cb := ai.NewCircuitBreaker(provider, "ollama")

	for i := 0; i < 5; i++ {
		_, err := cb.Chat(context.Background(), ai.UserPrompt("x"))
		require.ErrorIs(t, err, context.Canceled)
	}

	require.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestRetrying_RetriesUntilSuccess(t *testing.T) {
	provider := mocks.NewProvider(t)
	provider.EXPECT().Chat(mock.Anything, mock.Anything).Return(ai.ChatResponse{}, errDown).Once()
	provider.EXPECT().Chat(mock.Anything, mock.Anything).Return(ai.ChatResponse{Content: "ok"}, nil).Once()

	resp, err := ai.NewRetrying(provider, 3, time.Millisecond).Chat(context.Background(), ai.UserPrompt("x"))
	require.NoError(t, err)
	require.Equal(t, "ok", resp.Content)
}

func TestCached_SecondCallServedFromStore(t *testing.T) {
	provider := mocks.NewProvider(t)
	provider.EXPECT().
		Chat(mock.Anything, ai.UserPrompt("same")).
		Return(ai.ChatResponse{Content: "reply", Provider: "ollama"}, nil).
		Once()

	p := ai.NewCached(provider, cache.NewMemory(time.Minute), "ollama/llama3.2", observability.NewNop())
	ctx := context.Background()

	first, err := p.Chat(ctx, ai.UserPrompt("same"))
	require.NoError(t, err)
	require.Equal(t, "ollama", first.Provider)

	second, err := p.Chat(ctx, ai.UserPrompt("same"))
	require.NoError(t, err)
	require.Equal(t, "reply", second.Content)
	require.Equal(t, "cache", second.Provider)
}

func TestCached_DoesNotStoreFailures(t *testing.T) {
	provider := mocks.NewProvider(t)
	provider.EXPECT().Chat(mock.Anything, mock.Anything).Return(ai.ChatResponse{}, errDown).Twice()

	p := ai.NewCached(provider, cache.NewMemory(time.Minute), "m", nil)

	for i := 0; i < 2; i++ {
		_, err := p.Chat(context.Background(), ai.UserPrompt("x"))
		require.ErrorIs(t, err, errDown)
	}
}

func TestCommitPrompt_ContainsOnlyChangeLines(t *testing.T) {
	req := ai.CommitPrompt("On branch main\n\tmodified:   a.go\nUntracked files:\n")

	require.Len(t, req.Messages, 2)
	require.Equal(t, ai.RoleSystem, req.Messages[0].Role)
	require.Contains(t, req.Messages[1].Content, "modified:   a.go")
	require.NotContains(t, req.Messages[1].Content, "On branch")
}

func TestNewProvider_OpenAIFallsBackToOllama(t *testing.T) {
	ollama := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"local"}}`))
	}))
	defer ollama.Close()

	cfg := &config.Config{
		AIProvider:      "openai",
		OpenAIURL:       "http://127.0.0.1:1",
		OllamaURL:       ollama.URL,
		OllamaModel:     "llama3.2",
		AITimeout:       time.Second,
		AIRetryAttempts: 1,
	}

	resp, err := ai.NewProvider(cfg, nil, nil).Chat(context.Background(), ai.UserPrompt("x"))
	require.NoError(t, err)
	require.Equal(t, "local", resp.Content)
}
