package diagnosis

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ahmad-AL-Ahmady/MedLens/internal/classify"
	"github.com/Ahmad-AL-Ahmady/MedLens/internal/imaging"
	"github.com/Ahmad-AL-Ahmady/MedLens/internal/logger"
)

// InfoProvider produces sanitized medical information for a diagnosis
// subject. The cascade uses it to warm the context cache right after an
// abnormal finding, so the first chat turn about it is instant.
type InfoProvider interface {
	MedicalInfo(ctx context.Context, subject string) (string, error)
}

// Result is the outcome of one pass through the classification cascade.
// Confidence is the raw probability in [0,1]; the boundary scales it.
type Result struct {
	Label       string
	Confidence  float64
	BodyPart    string
	Description string
	MedicalInfo string
}

// Cascade is the two-stage classification pipeline: a gate classifier
// decides whether the upload is a valid X-ray, then a body-part-specific
// classifier produces the diagnostic label.
type Cascade struct {
	gate     classify.Classifier
	registry *classify.Registry
	info     InfoProvider
	log      *logger.Logger
}

// NewCascade creates a cascade. info may be nil, in which case no
// auto-enrichment happens.
func NewCascade(gate classify.Classifier, registry *classify.Registry, info InfoProvider, log *logger.Logger) *Cascade {
	if log == nil {
		log = logger.NewNop()
	}
	return &Cascade{
		gate:     gate,
		registry: registry,
		info:     info,
		log:      log,
	}
}

// Diagnose classifies a preprocessed tensor and records the outcome in dctx.
// On classifier failure the context keeps its previous value; partial
// updates never happen.
func (c *Cascade) Diagnose(ctx context.Context, tensor imaging.Tensor, bodyPart string, dctx *Context) (Result, error) {
	gatePred, err := c.gate.Classify(ctx, tensor)
	if err != nil {
		return Result{}, fmt.Errorf("gate classifier: %w", err)
	}

	// Gate rejection short-circuits: no body-part model is consulted.
	if gatePred.Label != classify.GateValidLabel {
		dctx.Update(LabelInvalidImage, gatePred.Confidence, BodyPartUnknown)
		return c.result(dctx), nil
	}

	classifier, ok := c.registry.Get(bodyPart)
	if !ok {
		dctx.Update(LabelUnknownBodyPart, 0.0, bodyPart)
		return c.result(dctx), nil
	}

	pred, err := classifier.Classify(ctx, tensor)
	if err != nil {
		return Result{}, fmt.Errorf("%s classifier: %w", bodyPart, err)
	}

	dctx.Update(pred.Label, pred.Confidence, bodyPart)

	if c.info != nil && isAbnormal(pred.Label) {
		subject := dctx.Description()
		info, err := c.info.MedicalInfo(ctx, subject)
		if err != nil {
			// The diagnosis itself succeeded; the cache just stays cold and
			// the first chat turn pays for generation instead.
			c.log.Warn("auto-enrichment failed", "subject", subject, "error", err)
		} else {
			dctx.CacheMedicalInfo(info)
		}
	}

	return c.result(dctx), nil
}

func (c *Cascade) result(dctx *Context) Result {
	snap := dctx.Snapshot()
	return Result{
		Label:       snap.Label,
		Confidence:  snap.Confidence,
		BodyPart:    snap.BodyPart,
		Description: snap.Description(),
		MedicalInfo: snap.MedicalInfo,
	}
}

// isAbnormal reports whether a label denotes a disease finding rather than
// healthy anatomy or a sentinel.
func isAbnormal(label string) bool {
	switch strings.ToLower(label) {
	case "normal", "normal anatomy":
		return false
	}
	return label != LabelUnknownBodyPart
}
