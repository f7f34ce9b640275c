// Package generation abstracts the text-generation backend behind a single
// interface. Exactly one backend is wired in at startup; everything above
// this package only ever sees prompt text in, generated text out.
package generation

import "context"

// BackendType identifies a text-generation backend implementation
type BackendType string

const (
	// BackendOpenAI is a hosted chat-completion API
	BackendOpenAI BackendType = "openai"

	// BackendLlamaCpp is a local llama.cpp-style completion server running a
	// quantized model
	BackendLlamaCpp BackendType = "llamacpp"
)

// GeneratorConfig contains configuration for generation backends
type GeneratorConfig struct {
	APIKey      string
	Endpoint    string
	ModelName   string
	MaxTokens   int
	Temperature float64
	TopP        float64
	Stop        []string
	Timeout     int // Timeout in seconds
}

// Generation defaults, tuned for short clinical answers.
const (
	DefaultMaxTokens   = 512
	DefaultTemperature = 0.7
	DefaultTopP        = 0.95
	DefaultTimeout     = 60 // seconds
)

// DefaultStop are the sequences that end a completion. The quantized models
// tend to start role-playing the next turn without them.
var DefaultStop = []string{"Human:", "User:"}

// TextGenerator is an opaque function from prompt text to generated text.
// Calls may block for seconds to tens of seconds.
type TextGenerator interface {
	// Name returns the configured model name
	Name() string

	// Backend returns the backend type
	Backend() BackendType

	// Generate produces a completion for the prompt
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFactory creates a generator from a configuration
type GeneratorFactory func(config GeneratorConfig) (TextGenerator, error)

var generatorFactories = make(map[BackendType]GeneratorFactory)

// RegisterGenerator registers a factory for a backend type
func RegisterGenerator(backend BackendType, factory GeneratorFactory) {
	generatorFactories[backend] = factory
}

// NewGenerator returns a generator for the requested backend type
func NewGenerator(backend BackendType, config GeneratorConfig) (TextGenerator, error) {
	factory, exists := generatorFactories[backend]
	if !exists {
		return nil, ErrUnsupportedBackend
	}
	return factory(config)
}

// applyDefaults fills unset config fields with the package defaults
func applyDefaults(config GeneratorConfig) GeneratorConfig {
	if config.MaxTokens == 0 {
		config.MaxTokens = DefaultMaxTokens
	}
	if config.Temperature == 0 {
		config.Temperature = DefaultTemperature
	}
	if config.TopP == 0 {
		config.TopP = DefaultTopP
	}
	if config.Stop == nil {
		config.Stop = DefaultStop
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	return config
}
