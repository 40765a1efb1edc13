package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/mylance/content-engine/internal/application/service"
	"github.com/mylance/content-engine/internal/config"
	"github.com/mylance/content-engine/pkg/logger"
)

type openAIAdapter struct {
	client *openai.Client
	model  string
	log    logger.Logger
}

// NewOpenAIAdapter builds the chat-completion adapter. BaseURL is optional so
// the same adapter can point at an OpenAI-compatible local endpoint.
func NewOpenAIAdapter(cfg config.Config, log logger.Logger) (service.LLMService, error) {
	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("openai API key is not configured")
	}

	clientConfig := openai.DefaultConfig(cfg.OpenAI.APIKey)
	if cfg.OpenAI.BaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAI.BaseURL
	}

	client := openai.NewClientWithConfig(clientConfig)

	log.Info("OpenAI Chat (LLM) Adapter initialized")
	return &openAIAdapter{client: client, model: cfg.OpenAI.Model, log: log}, nil
}

func (a *openAIAdapter) GenerateChatResponse(ctx context.Context, req service.ChatRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.UserPrompt,
	})

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		Stream:      false,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no chat choices")
	}

	return resp.Choices[0].Message.Content, nil
}
