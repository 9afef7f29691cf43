package ai

import "context"

type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages []Message
}

// UserPrompt wraps a single user-role message.
func UserPrompt(prompt string) ChatRequest {
	return ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: prompt}},
	}
}

type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

type ChatResponse struct {
	Content  string
	Provider string
	Model    string
	Usage    Usage
}

//go:generate mockery --name Provider --output ../mocks --with-expecter
type Provider interface {
	Chat(ctx context.Context, r ChatRequest) (ChatResponse, error)
}
