package api

import (
	"context"
	"math"

	"github.com/Ahmad-AL-Ahmady/MedLens/internal/diagnosis"
	"github.com/Ahmad-AL-Ahmady/MedLens/internal/imaging"
	"github.com/Ahmad-AL-Ahmady/MedLens/internal/logger"
	"github.com/Ahmad-AL-Ahmady/MedLens/internal/models"
)

// ScanProcessor turns raw upload bytes into a diagnosis payload: decode and
// preprocess, run the cascade, shape the response.
type ScanProcessor struct {
	cascade *diagnosis.Cascade
	log     *logger.Logger
}

// NewScanProcessor creates a scan processor
func NewScanProcessor(cascade *diagnosis.Cascade, log *logger.Logger) *ScanProcessor {
	if log == nil {
		log = logger.NewNop()
	}
	return &ScanProcessor{cascade: cascade, log: log}
}

// ProcessScan diagnoses an uploaded image for the given session context
func (p *ScanProcessor) ProcessScan(ctx context.Context, data []byte, bodyPart string, dctx *diagnosis.Context) (models.DiagnosisResponse, error) {
	tensor, err := imaging.Preprocess(data)
	if err != nil {
		return models.DiagnosisResponse{}, err
	}

	result, err := p.cascade.Diagnose(ctx, tensor, bodyPart, dctx)
	if err != nil {
		return models.DiagnosisResponse{}, err
	}

	p.log.Info("scan classified",
		"label", result.Label,
		"body_part", result.BodyPart,
		"confidence", result.Confidence,
	)

	return models.DiagnosisResponse{
		ClassificationResult: result.Description,
		ConfidenceScore:      ScaleConfidence(result.Confidence),
		BodyPart:             result.BodyPart,
		MedicalInfo:          result.MedicalInfo,
	}, nil
}

// ScaleConfidence converts a probability in [0,1] to a 0-100 score rounded
// to two decimals.
func ScaleConfidence(confidence float64) float64 {
	return math.Round(confidence*10000) / 100
}

// SnapshotResponse shapes a stored diagnosis snapshot into the same payload
// POST /predict returns, without re-running inference.
func SnapshotResponse(snap diagnosis.Snapshot) models.DiagnosisResponse {
	return models.DiagnosisResponse{
		ClassificationResult: snap.Description(),
		ConfidenceScore:      ScaleConfidence(snap.Confidence),
		BodyPart:             snap.BodyPart,
		MedicalInfo:          snap.MedicalInfo,
	}
}
