package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type OpenAI struct {
	key    string
	model  string
	url    string
	client *http.Client
}

func NewOpenAI(url, key, model string, timeout time.Duration) *OpenAI {
	return &OpenAI{
		key:    key,
		model:  model,
		url:    strings.TrimRight(url, "/"),
		client: &http.Client{Timeout: timeout},
	}
}

func (o *OpenAI) Chat(ctx context.Context, r ChatRequest) (ChatResponse, error) {

	body := map[string]any{
		"model":    o.model,
		"messages": r.Messages,
	}

	b, err := json.Marshal(body)
	if err != nil {
		return ChatResponse{}, fmt.Errorf("marshal openai request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		o.url+"/v1/chat/completions",
		bytes.NewReader(b),
	)
	if err != nil {
		return ChatResponse{}, fmt.Errorf("build openai request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+o.key)
	req.Header.Set("Content-Type", "application/json")

	res, err := o.client.Do(req)
	if err != nil {
		return ChatResponse{}, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return ChatResponse{}, fmt.Errorf("openai status %d: %s", res.StatusCode, string(b))
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
			TotalTokens      int `json:"total_tokens"`
		} `json:"usage"`
	}

	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return ChatResponse{}, fmt.Errorf("decode openai response: %w", err)
	}

	if len(out.Choices) == 0 {
		return ChatResponse{}, fmt.Errorf("no response")
	}

	return ChatResponse{
		Content:  out.Choices[0].Message.Content,
		Provider: "openai",
		Model:    o.model,
		Usage: Usage{
			PromptTokens:     out.Usage.PromptTokens,
			CompletionTokens: out.Usage.CompletionTokens,
			TotalTokens:      out.Usage.TotalTokens,
		},
	}, nil
}
