package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTrimsWhitespace(t *testing.T) {
	assert.Equal(t, "Pneumonia is treatable.", Sanitize("  \n Pneumonia is treatable. \n ", true))
}

func TestSanitizeStripsLeakedInstructionPrefix(t *testing.T) {
	raw := "Use appropriate language level for an adult audience. Pneumonia is an infection."
	assert.Equal(t, "Pneumonia is an infection.", Sanitize(raw, true))

	raw = "Provide sources to support the information provided in the response.\nCauses include bacteria."
	assert.Equal(t, "Causes include bacteria.", Sanitize(raw, true))
}

func TestSanitizeDoesNotTouchMidStringFragments(t *testing.T) {
	raw := "The doctor said: Use appropriate language level matters."
	assert.Equal(t, raw, Sanitize(raw, true))
}

func TestSanitizeStripsLeadingTag(t *testing.T) {
	assert.Equal(t, "Pneumonia overview.", Sanitize("<s>Pneumonia overview.", true))
	assert.Equal(t, "Pneumonia overview.", Sanitize("<|assistant|> Pneumonia overview.", true))

	// Tags later in the text stay.
	assert.Equal(t, "See <b>bold</b> text.", Sanitize("See <b>bold</b> text.", true))
}

func TestSanitizeAnswerMarker(t *testing.T) {
	raw := "Context: diagnosed with Pneumonia.\nQuestion: is it serious?\nAnswer: It can be, depending on severity."

	// Contextual calls cut through the marker.
	assert.Equal(t, "It can be, depending on severity.", Sanitize(raw, false))

	// Information calls keep the text as-is.
	assert.Equal(t, raw, Sanitize(raw, true))
}

func TestSanitizeDropsBlankLeadingLines(t *testing.T) {
	raw := "<think>\n\n\nThe condition is benign."
	assert.Equal(t, "The condition is benign.", Sanitize(raw, true))
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"Use appropriate language level for an adult audience. Pneumonia is an infection.",
		"<s>Pneumonia overview.",
		"plain text with no artifacts",
		"Question: why?\nAnswer: because.",
		"adult audience Provide sources nested artifacts",
		"",
	}
	for _, informational := range []bool{true, false} {
		for _, raw := range inputs {
			once := Sanitize(raw, informational)
			twice := Sanitize(once, informational)
			assert.Equal(t, once, twice, "input %q informational=%v", raw, informational)
		}
	}
}
