package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultLlamaCppEndpoint = "http://127.0.0.1:8081"

// LlamaCppGenerator talks to a local llama.cpp server running a quantized
// GGUF model. This is the backend the service ships with when no hosted API
// credentials are configured.
type LlamaCppGenerator struct {
	config GeneratorConfig
	client *http.Client
}

func init() {
	RegisterGenerator(BackendLlamaCpp, NewLlamaCppGenerator)
}

// NewLlamaCppGenerator creates a generator backed by a llama.cpp completion server
func NewLlamaCppGenerator(config GeneratorConfig) (TextGenerator, error) {
	config = applyDefaults(config)
	if config.Endpoint == "" {
		config.Endpoint = defaultLlamaCppEndpoint
	}
	if config.ModelName == "" {
		config.ModelName = "local"
	}

	client := &http.Client{
		Timeout: time.Duration(config.Timeout) * time.Second,
	}

	return &LlamaCppGenerator{
		config: config,
		client: client,
	}, nil
}

// Name returns the configured model name
func (g *LlamaCppGenerator) Name() string {
	return g.config.ModelName
}

// Backend returns the backend type
func (g *LlamaCppGenerator) Backend() BackendType {
	return BackendLlamaCpp
}

// Generate produces a completion for the prompt
func (g *LlamaCppGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	payload := struct {
		Prompt      string   `json:"prompt"`
		NPredict    int      `json:"n_predict"`
		Temperature float64  `json:"temperature"`
		TopP        float64  `json:"top_p"`
		Stop        []string `json:"stop"`
	}{
		Prompt:      prompt,
		NPredict:    g.config.MaxTokens,
		Temperature: g.config.Temperature,
		TopP:        g.config.TopP,
		Stop:        g.config.Stop,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	url := strings.TrimSuffix(g.config.Endpoint, "/") + "/completion"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", ErrContextDeadlineExceeded
		}
		return "", fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrGenerationFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusServiceUnavailable || resp.StatusCode == http.StatusTooManyRequests {
			return "", fmt.Errorf("%w: status code %d", ErrBackendUnavailable, resp.StatusCode)
		}
		return "", fmt.Errorf("%w: status code %d", ErrGenerationFailed, resp.StatusCode)
	}

	var response struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("%w: malformed response: %v", ErrGenerationFailed, err)
	}
	if response.Content == "" {
		return "", ErrEmptyCompletion
	}
	return response.Content, nil
}
