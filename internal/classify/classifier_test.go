package classify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmad-AL-Ahmady/MedLens/internal/imaging"
)

func TestPredictionFromProbs(t *testing.T) {
	pred, err := predictionFromProbs([]string{"benign", "malignant"}, []float64{0.19, 0.81})
	require.NoError(t, err)
	assert.Equal(t, "malignant", pred.Label)
	assert.Equal(t, 0.81, pred.Confidence)

	// Ties resolve to the first index, matching argmax semantics.
	pred, err = predictionFromProbs([]string{"Normal", "Tumor"}, []float64{0.5, 0.5})
	require.NoError(t, err)
	assert.Equal(t, "Normal", pred.Label)
}

func TestPredictionFromProbsLengthMismatch(t *testing.T) {
	_, err := predictionFromProbs([]string{"a", "b", "c"}, []float64{0.5, 0.5})
	assert.ErrorIs(t, err, ErrInference)
}

func TestRegistryLookupIsCaseSensitive(t *testing.T) {
	registry := NewRegistry()
	skin := &StaticClassifier{ModelName: "skin", LabelSet: BodyPartLabels["Skin"], Probs: []float64{1, 0}}
	require.NoError(t, registry.Register("Skin", skin))

	_, ok := registry.Get("Skin")
	assert.True(t, ok)

	_, ok = registry.Get("skin")
	assert.False(t, ok)
	_, ok = registry.Get("SKIN")
	assert.False(t, ok)
}

func TestRegistryRejectsDuplicatesAndNil(t *testing.T) {
	registry := NewRegistry()
	skin := &StaticClassifier{ModelName: "skin", LabelSet: BodyPartLabels["Skin"], Probs: []float64{1, 0}}

	require.NoError(t, registry.Register("Skin", skin))
	assert.Error(t, registry.Register("Skin", skin))
	assert.Error(t, registry.Register("", skin))
	assert.Error(t, registry.Register("Eye", nil))
}

func TestRegistryBodyParts(t *testing.T) {
	registry := NewRegistry()
	for _, part := range []string{"Skin", "Chest", "Eye"} {
		c := &StaticClassifier{ModelName: part, LabelSet: BodyPartLabels[part], Probs: make([]float64, len(BodyPartLabels[part]))}
		require.NoError(t, registry.Register(part, c))
	}
	assert.Equal(t, []string{"Chest", "Eye", "Skin"}, registry.BodyParts())
}

func TestBodyPartLabelSetsAreDistinct(t *testing.T) {
	seen := make(map[string]string)
	for part, labels := range BodyPartLabels {
		key := ""
		for _, l := range labels {
			key += l + "\x00"
		}
		if other, dup := seen[key]; dup {
			t.Fatalf("body parts %s and %s share a label set", part, other)
		}
		seen[key] = part
	}
}

func TestRemoteClassifierPredict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/models/skin:predict", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req struct {
			Instances [][]float32 `json:"instances"`
			Shape     []int       `json:"shape"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Instances, 1)

		json.NewEncoder(w).Encode(map[string][][]float64{
			"predictions": {{0.19, 0.81}},
		})
	}))
	defer server.Close()

	classifier, err := NewRemoteClassifier(ClassifierConfig{
		BaseURL:   server.URL,
		ModelName: "skin",
	}, BodyPartLabels["Skin"])
	require.NoError(t, err)

	tensor := imaging.Tensor{Data: []float32{0.5, 0.5, 0.5}, Width: 1, Height: 1}
	pred, err := classifier.Classify(context.Background(), tensor)
	require.NoError(t, err)
	assert.Equal(t, "malignant", pred.Label)
	assert.Equal(t, 0.81, pred.Confidence)
}

func TestRemoteClassifierServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "model not loaded"})
	}))
	defer server.Close()

	classifier, err := NewRemoteClassifier(ClassifierConfig{
		BaseURL:   server.URL,
		ModelName: "skin",
	}, BodyPartLabels["Skin"])
	require.NoError(t, err)

	_, err = classifier.Classify(context.Background(), imaging.Tensor{})
	assert.ErrorIs(t, err, ErrInference)
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestNewRemoteClassifierValidation(t *testing.T) {
	_, err := NewRemoteClassifier(ClassifierConfig{ModelName: "skin"}, BodyPartLabels["Skin"])
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = NewRemoteClassifier(ClassifierConfig{BaseURL: "http://localhost:8501", ModelName: "skin"}, nil)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
