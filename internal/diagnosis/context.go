package diagnosis

import "sync"

// Sentinel values a Context can hold in place of a real classification.
const (
	// LabelUnknown is the label before any image has been classified
	LabelUnknown = "Unknown"

	// LabelInvalidImage is the canonical label for uploads the gate rejected
	LabelInvalidImage = "Not a valid X-ray image"

	// LabelNoAbnormalities is an older alias for a gate rejection. Nothing
	// writes it anymore, but states carrying it still count as invalid.
	LabelNoAbnormalities = "No abnormalities detected"

	// LabelUnknownBodyPart is the label when the requested body part has no classifier
	LabelUnknownBodyPart = "Unknown body part"

	// BodyPartUnknown is the body-part value outside a successful classification
	BodyPartUnknown = "Unknown"
)

// Snapshot is a consistent copy of a Context taken under its lock. Request
// handling reads one snapshot and never goes back to the live Context, so a
// concurrent update cannot be half-observed.
type Snapshot struct {
	Label       string
	Confidence  float64
	BodyPart    string
	MedicalInfo string
}

// Description returns the canonical human-readable diagnosis reference:
// "{label} in {body part}", or the bare label when no body part is known.
func (s Snapshot) Description() string {
	if s.BodyPart != BodyPartUnknown {
		return s.Label + " in " + s.BodyPart
	}
	return s.Label
}

// IsInvalid reports whether the snapshot holds no usable diagnosis
func (s Snapshot) IsInvalid() bool {
	return s.Label == LabelInvalidImage || s.Label == LabelNoAbnormalities
}

// Context is the mutable record of the most recent diagnosis for one
// session. The cascade writes it, the chat flow reads it.
type Context struct {
	mu          sync.RWMutex
	label       string
	confidence  float64
	bodyPart    string
	medicalInfo string
}

// NewContext creates a context with no diagnosis yet
func NewContext() *Context {
	return &Context{
		label:    LabelUnknown,
		bodyPart: BodyPartUnknown,
	}
}

// Update overwrites all diagnosis fields in one step. Cached medical
// information always belongs to the previous diagnosis at this point, so it
// is cleared in the same critical section.
func (c *Context) Update(label string, confidence float64, bodyPart string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.label = label
	c.confidence = confidence
	c.bodyPart = bodyPart
	c.medicalInfo = ""
}

// CacheMedicalInfo stores generated medical information for the current diagnosis
func (c *Context) CacheMedicalInfo(info string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.medicalInfo = info
}

// Snapshot returns a consistent copy of the current state
func (c *Context) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		Label:       c.label,
		Confidence:  c.confidence,
		BodyPart:    c.bodyPart,
		MedicalInfo: c.medicalInfo,
	}
}

// Description returns the canonical diagnosis reference for the current state
func (c *Context) Description() string {
	return c.Snapshot().Description()
}

// IsInvalid reports whether the context holds no usable diagnosis
func (c *Context) IsInvalid() bool {
	return c.Snapshot().IsInvalid()
}
