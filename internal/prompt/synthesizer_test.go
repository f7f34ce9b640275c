package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInformationPrompt(t *testing.T) {
	p := Information("Pneumonia in Chest")

	assert.True(t, strings.HasPrefix(p, "Provide medical information about Pneumonia in Chest."))
	assert.Contains(t, p, "Description, Causes, Symptoms, Treatments")
	assert.Contains(t, p, "End with 3-5 practical advice points for patients as bullet points.")
}

func TestContextualQAPrompt(t *testing.T) {
	p := ContextualQA("malignant in Skin", 0.81, "Is it curable?")

	assert.Contains(t, p, "diagnosed with malignant in Skin")
	assert.Contains(t, p, "(Confidence: 81.00%)")
	assert.Contains(t, p, "Question: Is it curable?")
	assert.True(t, strings.HasSuffix(p, "Answer:"))
}

func TestContextualQAConfidenceFormatting(t *testing.T) {
	assert.Contains(t, ContextualQA("x", 0.9765, "q"), "97.65%")
	assert.Contains(t, ContextualQA("x", 1.0, "q"), "100.00%")
	assert.Contains(t, ContextualQA("x", 0.0, "q"), "0.00%")
}

func TestSynthesisIsDeterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		assert.Equal(t, Information("DRUSEN"), Information("DRUSEN"))
		assert.Equal(t, ContextualQA("DRUSEN in Eye", 0.5, "why?"), ContextualQA("DRUSEN in Eye", 0.5, "why?"))
	}
}
