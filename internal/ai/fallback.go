package ai

import (
	"context"
	"errors"
)

type FallbackProvider struct {
	primary   Provider
	secondary Provider
}

func NewFallback(p1, p2 Provider) *FallbackProvider {
	return &FallbackProvider{
		primary:   p1,
		secondary: p2,
	}
}

func (f *FallbackProvider) Chat(
	ctx context.Context,
	r ChatRequest,
) (ChatResponse, error) {

	resp, err := f.primary.Chat(ctx, r)
	if err == nil {
		return resp, nil
	}

	resp, err2 := f.secondary.Chat(ctx, r)
	if err2 != nil {
		return ChatResponse{}, errors.Join(err, err2)
	}

	return resp, nil
}
