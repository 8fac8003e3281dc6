package domain

import "strings"

// CanonicalAnswer is the normalized form of an answer: one of the option
// codes "1".."4", or AnswerUnset when the source value could not be mapped.
// All correctness comparisons happen on this type, never on raw fields.
type CanonicalAnswer string

// AnswerUnset marks a value that did not normalize to a valid option code.
const AnswerUnset CanonicalAnswer = ""

// IsSet reports whether the answer holds a valid option code.
func (a CanonicalAnswer) IsSet() bool {
	return a != AnswerUnset
}

// NormalizeAnswer converts a raw answer field to its canonical option code.
// Accepted forms are a bare letter (a-d, any case), a bare digit (1-4), or
// either followed by arbitrary text, e.g. "b. because the verb is plural".
// Only the first character is inspected. Anything else yields AnswerUnset:
// malformed question data must degrade to "never correct", not fail a request.
func NormalizeAnswer(raw string) CanonicalAnswer {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return AnswerUnset
	}
	switch c := s[0]; {
	case c >= 'a' && c <= 'd':
		return CanonicalAnswer(rune('1' + (c - 'a')))
	case c >= '1' && c <= '4':
		return CanonicalAnswer(c)
	default:
		return AnswerUnset
	}
}
