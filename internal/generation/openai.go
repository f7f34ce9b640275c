package generation

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIGenerator runs prompts against a hosted chat-completion API.
type OpenAIGenerator struct {
	config GeneratorConfig
	client *openai.Client
}

func init() {
	RegisterGenerator(BackendOpenAI, NewOpenAIGenerator)
}

// NewOpenAIGenerator creates a generator backed by the OpenAI API
func NewOpenAIGenerator(config GeneratorConfig) (TextGenerator, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%w: missing API key", ErrInvalidConfiguration)
	}

	config = applyDefaults(config)
	if config.ModelName == "" {
		config.ModelName = defaultOpenAIModel
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.Endpoint != "" {
		clientConfig.BaseURL = config.Endpoint
	}

	return &OpenAIGenerator{
		config: config,
		client: openai.NewClientWithConfig(clientConfig),
	}, nil
}

// Name returns the configured model name
func (g *OpenAIGenerator) Name() string {
	return g.config.ModelName
}

// Backend returns the backend type
func (g *OpenAIGenerator) Backend() BackendType {
	return BackendOpenAI
}

// Generate produces a completion for the prompt
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: g.config.ModelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: float32(g.config.Temperature),
		TopP:        float32(g.config.TopP),
		Stop:        g.config.Stop,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", ErrContextDeadlineExceeded
		}
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && (apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500) {
			return "", fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
