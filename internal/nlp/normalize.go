package nlp

import (
	"regexp"
	"strings"
)

// junkVocabulary is the fixed list of filler words and phrases stripped
// during normalization. It covers the verbs that trigger a booking intent,
// articles, prepositions, and the domain nouns users wrap around the actual
// date/time expression. Multi-word phrases must precede their single-word
// prefixes in the alternation.
var junkVocabulary = []string{
	"set up",
	"book", "schedule", "meeting", "appointment", "event", "call",
	"something", "please", "for", "with", "the", "a", "on", "to", "me", "my",
}

var (
	junkPattern       = regexp.MustCompile(`\b(?:` + strings.Join(junkVocabulary, "|") + `)\b`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize lower-cases text and removes all whole-word occurrences of the
// junk vocabulary, leaving a residue intended to carry the date/time tokens.
// Word-boundary matching guarantees no partial matches inside longer tokens
// ("a" never touches "saturday"). The result has runs of whitespace collapsed
// to single spaces and is trimmed, so Normalize is idempotent.
func Normalize(text string) string {
	cleaned := junkPattern.ReplaceAllString(strings.ToLower(text), "")
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(cleaned, " "))
}
