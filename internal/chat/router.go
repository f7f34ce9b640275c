package chat

import (
	"strings"

	"github.com/Ahmad-AL-Ahmady/MedLens/internal/diagnosis"
)

// rule pairs an intent kind with its predicate and optional payload
// extractor. Rules are evaluated in order and the first match wins; nothing
// falls through to a later rule.
type rule struct {
	kind    Kind
	match   func(raw, norm string, snap diagnosis.Snapshot) bool
	subject func(raw string, snap diagnosis.Snapshot) string
}

// Router classifies chat messages by strict rule priority
type Router struct {
	rules []rule
}

// NewRouter creates a router with the fixed rule table
func NewRouter() *Router {
	return &Router{rules: []rule{
		{
			kind: IntentTeamQuery,
			match: func(_, norm string, _ diagnosis.Snapshot) bool {
				return containsAny(norm, teamKeywords)
			},
		},
		{
			kind: IntentIdentityQuery,
			match: func(_, norm string, _ diagnosis.Snapshot) bool {
				return containsAny(norm, identityKeywords)
			},
		},
		// The guard outranks greetings: once the gate rejected an image,
		// even "hello" gets the warning until a valid scan arrives.
		{
			kind: IntentInvalidImage,
			match: func(_, _ string, snap diagnosis.Snapshot) bool {
				return snap.IsInvalid()
			},
		},
		{
			kind: IntentGreeting,
			match: func(_, norm string, _ diagnosis.Snapshot) bool {
				return isOneOf(norm, greetingTokens)
			},
		},
		{
			kind: IntentCachedInfo,
			match: func(_, norm string, _ diagnosis.Snapshot) bool {
				return norm == cachedInfoPhrase
			},
		},
		{
			kind: IntentNamedInfo,
			match: func(_, norm string, _ diagnosis.Snapshot) bool {
				return strings.HasPrefix(norm, namedInfoTrigger)
			},
			subject: extractSubject,
		},
		{
			kind: IntentContextual,
			match: func(_, _ string, _ diagnosis.Snapshot) bool {
				return true
			},
			subject: func(raw string, _ diagnosis.Snapshot) string {
				return strings.TrimSpace(raw)
			},
		},
	}}
}

// Route classifies a message against the session's diagnosis snapshot
func (r *Router) Route(message string, snap diagnosis.Snapshot) Intent {
	norm := strings.ToLower(strings.TrimSpace(message))
	for _, rule := range r.rules {
		if !rule.match(message, norm, snap) {
			continue
		}
		intent := Intent{Kind: rule.kind}
		if rule.subject != nil {
			intent.Subject = rule.subject(message, snap)
		}
		return intent
	}
	// The fallback rule always matches; this is unreachable.
	return Intent{Kind: IntentContextual, Subject: strings.TrimSpace(message)}
}

// extractSubject strips a known request prefix and returns the disease name
// to ask about. An empty remainder, or one that just repeats the raw
// classification label, is replaced with the full description so the prompt
// stays body-part-qualified.
func extractSubject(message string, snap diagnosis.Snapshot) string {
	subject := strings.TrimSpace(message)
	lower := strings.ToLower(subject)
	for _, prefix := range namedInfoPrefixes {
		if strings.HasPrefix(lower, prefix) {
			subject = strings.TrimSpace(subject[len(prefix):])
			break
		}
	}
	if subject == "" || subject == snap.Label {
		return snap.Description()
	}
	return subject
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func isOneOf(text string, tokens []string) bool {
	for _, token := range tokens {
		if text == token {
			return true
		}
	}
	return false
}
