package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Ahmad-AL-Ahmady/MedLens/internal/imaging"
)

// Default configuration values for the remote classifier
const (
	defaultRemoteTimeout = 30 // seconds
)

// RemoteClassifier calls a model-serving endpoint over HTTP. The serving
// process owns the network weights; this client only ships the tensor and
// maps the returned probability vector onto the model's label set.
type RemoteClassifier struct {
	config ClassifierConfig
	labels []string
	client *http.Client
}

// NewRemoteClassifier creates a classifier backed by a model server
func NewRemoteClassifier(config ClassifierConfig, labels []string) (*RemoteClassifier, error) {
	if config.BaseURL == "" || config.ModelName == "" {
		return nil, ErrInvalidConfiguration
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: empty label set for model %s", ErrInvalidConfiguration, config.ModelName)
	}

	if config.Timeout == 0 {
		config.Timeout = defaultRemoteTimeout
	}

	client := &http.Client{
		Timeout: time.Duration(config.Timeout) * time.Second,
	}

	return &RemoteClassifier{
		config: config,
		labels: labels,
		client: client,
	}, nil
}

// Name returns the served model name
func (c *RemoteClassifier) Name() string {
	return c.config.ModelName
}

// Labels returns the fixed ordered label set
func (c *RemoteClassifier) Labels() []string {
	return c.labels
}

// Classify sends the tensor to the model server and returns the argmax prediction
func (c *RemoteClassifier) Classify(ctx context.Context, tensor imaging.Tensor) (Prediction, error) {
	payload := struct {
		Instances [][]float32 `json:"instances"`
		Shape     []int       `json:"shape"`
	}{
		Instances: [][]float32{tensor.Data},
		Shape:     tensor.Shape(),
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return Prediction{}, fmt.Errorf("failed to marshal predict request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/models/%s:predict", strings.TrimSuffix(c.config.BaseURL, "/"), c.config.ModelName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return Prediction{}, fmt.Errorf("failed to create predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Prediction{}, fmt.Errorf("%w: %v", ErrInference, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Prediction{}, fmt.Errorf("%w: reading response: %v", ErrInference, err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResponse struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &errorResponse); err == nil && errorResponse.Error != "" {
			return Prediction{}, fmt.Errorf("%w: %s", ErrInference, errorResponse.Error)
		}
		return Prediction{}, fmt.Errorf("%w: status code %d", ErrInference, resp.StatusCode)
	}

	var response struct {
		Predictions [][]float64 `json:"predictions"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return Prediction{}, fmt.Errorf("%w: malformed response: %v", ErrInference, err)
	}
	if len(response.Predictions) == 0 {
		return Prediction{}, fmt.Errorf("%w: empty predictions", ErrInference)
	}

	return predictionFromProbs(c.labels, response.Predictions[0])
}
