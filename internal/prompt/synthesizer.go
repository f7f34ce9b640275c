// Package prompt turns a diagnosis context and a user message into the
// deterministic text handed to the generation backend, and cleans what
// comes back.
package prompt

import "fmt"

// Information builds the prompt requesting medical information about a
// disease or condition. The closing advice instruction is load-bearing:
// the frontend renders the trailing bullet list separately.
func Information(subject string) string {
	return fmt.Sprintf(
		"Provide medical information about %s. "+
			"Include: Description, Causes, Symptoms, Treatments. "+
			"End with 3-5 practical advice points for patients as bullet points. "+
			"Be accurate and concise.",
		subject,
	)
}

// ContextualQA builds the prompt for a free-form question against the
// current diagnosis. confidence is the raw probability in [0,1] and is
// rendered as a percentage with two decimals.
func ContextualQA(description string, confidence float64, question string) string {
	return fmt.Sprintf(
		"Context: The patient has been diagnosed with %s (Confidence: %.2f%%).\n"+
			"Question: %s\n"+
			"Answer:",
		description, confidence*100, question,
	)
}
