package quiz

import "strings"

// TextMatches compares a learner's typed answer against the canonical one.
// Surrounding whitespace is trimmed and the comparison is case-insensitive;
// internal spacing and punctuation must match.
func TextMatches(learnerAnswer, answer string) bool {
	return strings.EqualFold(strings.TrimSpace(learnerAnswer), strings.TrimSpace(answer))
}
