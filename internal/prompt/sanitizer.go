package prompt

import (
	"regexp"
	"strings"
)

// Instruction fragments the generator sometimes echoes back at the start of
// a completion. Checked in this order, prefix-only.
var leakedPrefixes = []string{
	"Use appropriate language level for an adult audience.",
	"Provide sources to support the information provided in the response.",
	"Use appropriate language level",
	"Provide sources",
	"adult audience",
}

// answerMarker separates the echoed QA prompt from the actual answer
const answerMarker = "Answer:"

var leadingTag = regexp.MustCompile(`^<[^>]+>`)

// Sanitize cleans raw generated text into a user-facing answer.
// informational marks information-style requests, whose responses keep any
// literal "Answer:" content. Sanitize is idempotent: applying it to its own
// output is a no-op.
func Sanitize(raw string, informational bool) string {
	text := strings.TrimSpace(raw)

	// Each step can expose another artifact underneath, so run to fixpoint.
	for {
		cleaned := sanitizeOnce(text, informational)
		if cleaned == text {
			return cleaned
		}
		text = cleaned
	}
}

func sanitizeOnce(text string, informational bool) string {
	for _, phrase := range leakedPrefixes {
		if strings.HasPrefix(text, phrase) {
			text = strings.TrimSpace(text[len(phrase):])
		}
	}

	if strings.HasPrefix(text, "<") {
		text = strings.TrimSpace(leadingTag.ReplaceAllString(text, ""))
	}

	if !informational {
		if idx := strings.Index(text, answerMarker); idx >= 0 {
			text = text[idx+len(answerMarker):]
		}
	}

	// Drop fully blank leading lines left over by the cuts above.
	lines := strings.Split(text, "\n")
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	return strings.TrimSpace(strings.Join(lines[start:], "\n"))
}
