package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLlamaCppGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/completion", r.URL.Path)

		var req struct {
			Prompt      string   `json:"prompt"`
			NPredict    int      `json:"n_predict"`
			Temperature float64  `json:"temperature"`
			TopP        float64  `json:"top_p"`
			Stop        []string `json:"stop"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "say hi", req.Prompt)
		assert.Equal(t, DefaultMaxTokens, req.NPredict)
		assert.Equal(t, DefaultTemperature, req.Temperature)
		assert.Equal(t, DefaultTopP, req.TopP)
		assert.Equal(t, DefaultStop, req.Stop)

		json.NewEncoder(w).Encode(map[string]string{"content": "hi there"})
	}))
	defer server.Close()

	gen, err := NewGenerator(BackendLlamaCpp, GeneratorConfig{Endpoint: server.URL})
	require.NoError(t, err)
	assert.Equal(t, BackendLlamaCpp, gen.Backend())

	out, err := gen.Generate(context.Background(), "say hi")
	require.NoError(t, err)
	assert.Equal(t, "hi there", out)
}

func TestLlamaCppServerOverloaded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	gen, err := NewGenerator(BackendLlamaCpp, GeneratorConfig{Endpoint: server.URL})
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestLlamaCppEmptyCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"content": ""})
	}))
	defer server.Close()

	gen, err := NewGenerator(BackendLlamaCpp, GeneratorConfig{Endpoint: server.URL})
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestNewGeneratorUnknownBackend(t *testing.T) {
	_, err := NewGenerator(BackendType("gemini"), GeneratorConfig{})
	assert.ErrorIs(t, err, ErrUnsupportedBackend)
}

func TestNewOpenAIGeneratorRequiresAPIKey(t *testing.T) {
	_, err := NewGenerator(BackendOpenAI, GeneratorConfig{})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
