package api

import (
	"context"
	"fmt"

	"github.com/Ahmad-AL-Ahmady/MedLens/internal/generation"
	"github.com/Ahmad-AL-Ahmady/MedLens/internal/prompt"
)

// MedicalInfoProvider synthesizes, generates and sanitizes the medical
// information text for a disease subject. It backs both the cascade's
// auto-enrichment and the chat flow's information requests.
type MedicalInfoProvider struct {
	generator generation.TextGenerator
}

// NewMedicalInfoProvider creates a provider on top of a generation backend
func NewMedicalInfoProvider(generator generation.TextGenerator) *MedicalInfoProvider {
	return &MedicalInfoProvider{generator: generator}
}

// MedicalInfo produces the cleaned information text for a subject
func (p *MedicalInfoProvider) MedicalInfo(ctx context.Context, subject string) (string, error) {
	raw, err := p.generator.Generate(ctx, prompt.Information(subject))
	if err != nil {
		return "", fmt.Errorf("generating medical info for %q: %w", subject, err)
	}
	return prompt.Sanitize(raw, true), nil
}
