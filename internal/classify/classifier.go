package classify

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ahmad-AL-Ahmady/MedLens/internal/imaging"
)

// Standard errors for classifier operations
var (
	// ErrInference is returned when a classifier invocation fails
	ErrInference = errors.New("classifier inference failed")

	// ErrInvalidConfiguration is returned when a classifier configuration is invalid
	ErrInvalidConfiguration = errors.New("invalid classifier configuration")
)

// Prediction is the outcome of a single classifier invocation: the argmax
// label of the underlying probability vector and its probability mass.
type Prediction struct {
	Label      string
	Confidence float64
}

// Classifier is the capability every image model exposes, regardless of how
// it is served. Implementations must not retain the tensor after returning.
type Classifier interface {
	// Name returns the name of the classifier implementation
	Name() string

	// Labels returns the fixed ordered label set this classifier predicts over
	Labels() []string

	// Classify runs inference on a preprocessed tensor
	Classify(ctx context.Context, tensor imaging.Tensor) (Prediction, error)
}

// ClassifierConfig contains configuration options shared by classifier
// implementations.
type ClassifierConfig struct {
	BaseURL   string
	ModelName string
	Timeout   int // Timeout in seconds
}

// predictionFromProbs maps a probability vector onto a label set.
func predictionFromProbs(labels []string, probs []float64) (Prediction, error) {
	if len(probs) != len(labels) {
		return Prediction{}, fmt.Errorf("%w: got %d probabilities for %d labels",
			ErrInference, len(probs), len(labels))
	}
	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}
	return Prediction{Label: labels[best], Confidence: probs[best]}, nil
}
