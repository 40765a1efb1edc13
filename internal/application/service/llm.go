package service

import "context"

// ChatRequest is one call to the text-generation model. Temperature is fixed
// by the caller (0.7 everywhere today); MaxTokens bounds the response size
// per operation.
type ChatRequest struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float32
}

type LLMService interface {
	GenerateChatResponse(ctx context.Context, req ChatRequest) (string, error)
}
