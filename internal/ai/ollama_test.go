package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"commit-assistant/internal/ai"

	"github.com/stretchr/testify/require"
)

func TestOllama_ChatSendsSingleUserMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/chat", r.URL.Path)

		var body struct {
			Model    string       `json:"model"`
			Messages []ai.Message `json:"messages"`
			Stream   bool         `json:"stream"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		require.Equal(t, "llama3.2", body.Model)
		require.False(t, body.Stream)
		require.Equal(t, []ai.Message{{Role: ai.RoleUser, Content: "hello"}}, body.Messages)

		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"hi there"},"prompt_eval_count":12,"eval_count":3}`))
	}))
	defer srv.Close()

	p := ai.NewOllama(srv.URL+"/", "llama3.2", time.Second)

	resp, err := p.Chat(context.Background(), ai.UserPrompt("hello"))
	require.NoError(t, err)

	require.Equal(t, "hi there", resp.Content)
	require.Equal(t, "ollama", resp.Provider)
	require.Equal(t, "llama3.2", resp.Model)
	require.Equal(t, ai.Usage{PromptTokens: 12, CompletionTokens: 3, TotalTokens: 15}, resp.Usage)
}

func TestOllama_EstimatesUsageWhenMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"12345678"}}`))
	}))
	defer srv.Close()

	resp, err := ai.NewOllama(srv.URL, "m", time.Second).
		Chat(context.Background(), ai.UserPrompt("abcdefghijkl"))
	require.NoError(t, err)

	require.Equal(t, 3, resp.Usage.PromptTokens)
	require.Equal(t, 2, resp.Usage.CompletionTokens)
	require.Equal(t, 5, resp.Usage.TotalTokens)
}

func TestOllama_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `model "nope" not found`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := ai.NewOllama(srv.URL, "nope", time.Second).
		Chat(context.Background(), ai.UserPrompt("x"))

	require.ErrorContains(t, err, "ollama status 404")
	require.ErrorContains(t, err, "not found")
}

func TestOllama_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	_, err := ai.NewOllama(srv.URL, "m", time.Second).
		Chat(context.Background(), ai.UserPrompt("x"))

	require.ErrorContains(t, err, "decode ollama response")
}

func TestOpenAI_Chat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"done"}}],"usage":{"prompt_tokens":4,"completion_tokens":1,"total_tokens":5}}`))
	}))
	defer srv.Close()

	resp, err := ai.NewOpenAI(srv.URL, "secret", "gpt-4o-mini", time.Second).
		Chat(context.Background(), ai.UserPrompt("x"))
	require.NoError(t, err)

	require.Equal(t, "done", resp.Content)
	require.Equal(t, 5, resp.Usage.TotalTokens)
}

func TestOpenAI_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := ai.NewOpenAI(srv.URL, "k", "m", time.Second).
		Chat(context.Background(), ai.UserPrompt("x"))

	require.ErrorContains(t, err, "no response")
}
