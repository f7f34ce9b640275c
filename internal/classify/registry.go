package classify

import (
	"fmt"
	"sort"
)

// Registry maps a body-part key to the classifier serving that body part.
// It is populated once at startup and read-only during request handling.
type Registry struct {
	classifiers map[string]Classifier
}

// NewRegistry creates an empty classifier registry
func NewRegistry() *Registry {
	return &Registry{
		classifiers: make(map[string]Classifier),
	}
}

// Register adds a classifier for a body-part key
func (r *Registry) Register(bodyPart string, c Classifier) error {
	if bodyPart == "" {
		return fmt.Errorf("body part key cannot be empty")
	}
	if c == nil {
		return fmt.Errorf("classifier for %q cannot be nil", bodyPart)
	}
	if _, exists := r.classifiers[bodyPart]; exists {
		return fmt.Errorf("classifier for %q already registered", bodyPart)
	}
	r.classifiers[bodyPart] = c
	return nil
}

// Get returns the classifier for a body-part key. Lookup is case-sensitive.
func (r *Registry) Get(bodyPart string) (Classifier, bool) {
	c, ok := r.classifiers[bodyPart]
	return c, ok
}

// BodyParts returns the registered body-part keys in sorted order
func (r *Registry) BodyParts() []string {
	parts := make([]string, 0, len(r.classifiers))
	for part := range r.classifiers {
		parts = append(parts, part)
	}
	sort.Strings(parts)
	return parts
}
