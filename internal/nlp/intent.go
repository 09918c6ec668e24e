package nlp

import "strings"

// Intent represents the classified purpose of a user message.
type Intent int

const (
	// IntentUnknown is for messages matching no recognized intent.
	IntentUnknown Intent = iota
	// IntentBook is for booking requests.
	IntentBook
	// IntentCheck is for availability queries.
	IntentCheck
	// IntentHelp is for help requests.
	IntentHelp
)

// String returns the string representation of an Intent.
func (i Intent) String() string {
	switch i {
	case IntentBook:
		return "book"
	case IntentCheck:
		return "check"
	case IntentHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Keyword lists for intent classification, checked in priority order.
// Booking keywords win over availability keywords when both are present.
var (
	bookKeywords = []string{"book", "schedule", "set up"}

	checkKeywords = []string{
		"free", "available", "availability", "free time",
		"this week", "this weekend", "check schedule",
		"my calendar", "my time",
	}
)

// ClassifyIntent assigns exactly one Intent to a raw user message.
// Classification is a pure function of the current message; it carries no
// state across calls.
func ClassifyIntent(text string) Intent {
	lower := strings.ToLower(text)

	if containsAny(lower, bookKeywords) {
		return IntentBook
	}
	if containsAny(lower, checkKeywords) {
		return IntentCheck
	}
	if strings.Contains(lower, "help") {
		return IntentHelp
	}
	return IntentUnknown
}

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
