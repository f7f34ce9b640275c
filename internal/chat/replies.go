package chat

// Keyword sets are bilingual (English and Arabic) because the frontend
// serves both audiences. Team and identity keywords match anywhere in the
// message; greeting tokens must match the whole trimmed message.
var (
	teamKeywords = []string{
		"who created you", "who created this", "who developed you", "who made you",
		"development team", "creators", "developers", "من طورك", "من صنعك", "من انشأك",
		"فريق التطوير", "المطورين", "من صمم", "من برمج", "مين عملك", "الفريق",
	}

	identityKeywords = []string{
		"who are you", "من انت", "انت مين", "اسمك", "what are you", "your name", "ما اسمك",
	}

	greetingTokens = []string{
		"start", "hello", "hi", "ابدأ", "مرحبا", "السلام عليكم",
	}
)

// The exact phrase the frontend sends when the user taps the
// "medical information" quick action.
const cachedInfoPhrase = "provide medical information about it"

// Prefix family for information requests about a named disease, longest
// first so the more specific phrase wins.
var namedInfoPrefixes = []string{
	"provide information and treatments for",
	"provide information for",
}

// namedInfoTrigger routes a message into the named-info rule even when the
// phrasing doesn't match a known prefix exactly.
const namedInfoTrigger = "provide information"

// Canned replies for the intents resolved without the generator.
const (
	TeamReply = `The development team at MedLens:
- Ahmed Alahmady (Backend Developer)
- Ahmed Alashmawy (Frontend Developer)
- Ola Tarek (Frontend Developer)
- Alzahraa El Sayed (Frontend Developer)
- Karim Osama (AI Developer)`

	IdentityReply = "I am MedLens AI, your medical imaging analysis assistant. " +
		"I can help diagnose medical conditions from X-ray images and provide valuable medical information."

	GreetingReply = "👋 Hello and welcome! I'm MedLens AI, here to help answer your medical imaging questions. Just ask away! 😊"

	InvalidImageReply = "🚨 The image you uploaded is not a valid x-ray. " +
		"Please upload a medical x-ray so I can provide an accurate medical analysis."
)

// CannedReply returns the fixed response for an intent kind, or "" when the
// kind requires generation.
func CannedReply(kind Kind) string {
	switch kind {
	case IntentTeamQuery:
		return TeamReply
	case IntentIdentityQuery:
		return IdentityReply
	case IntentGreeting:
		return GreetingReply
	case IntentInvalidImage:
		return InvalidImageReply
	}
	return ""
}
