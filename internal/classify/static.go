package classify

import (
	"context"

	"github.com/Ahmad-AL-Ahmady/MedLens/internal/imaging"
)

// StaticClassifier returns a fixed probability vector regardless of input.
// Used in tests and as a stand-in while a model server is offline.
type StaticClassifier struct {
	ModelName string
	LabelSet  []string
	Probs     []float64
	Err       error
}

func (c *StaticClassifier) Name() string {
	return c.ModelName
}

func (c *StaticClassifier) Labels() []string {
	return c.LabelSet
}

func (c *StaticClassifier) Classify(ctx context.Context, tensor imaging.Tensor) (Prediction, error) {
	if c.Err != nil {
		return Prediction{}, c.Err
	}
	return predictionFromProbs(c.LabelSet, c.Probs)
}
