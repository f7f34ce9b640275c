// Package chat classifies incoming messages into intents and carries the
// canned replies for the intents that never reach the generator.
package chat

// Kind is the classified purpose of an incoming chat message
type Kind string

const (
	// IntentTeamQuery asks who built the system
	IntentTeamQuery Kind = "team_query"

	// IntentIdentityQuery asks what or who the assistant is
	IntentIdentityQuery Kind = "identity_query"

	// IntentGreeting is an exact greeting token
	IntentGreeting Kind = "greeting"

	// IntentInvalidImage fires when the session holds no usable diagnosis
	IntentInvalidImage Kind = "invalid_image"

	// IntentCachedInfo requests medical information about the current diagnosis
	IntentCachedInfo Kind = "cached_info"

	// IntentNamedInfo requests information about a named disease
	IntentNamedInfo Kind = "named_info"

	// IntentContextual is the fallback: a free-form question against the diagnosis
	IntentContextual Kind = "contextual"
)

// Intent is a routed message. Subject carries the extracted disease name
// for IntentNamedInfo and the verbatim question for IntentContextual; it is
// empty for every other kind.
type Intent struct {
	Kind    Kind
	Subject string
}
