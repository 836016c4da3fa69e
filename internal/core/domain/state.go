package domain

import "strings"

// NormalizeState canonicalises a state name for comparison and
// display. Directory sources disagree on the separator in compound
// names ("JAMMU AND KASHMIR" vs "JAMMU & KASHMIR"); the canonical
// form uppercases, collapses whitespace and uses the "AND" spelling.
func NormalizeState(state string) string {
	s := strings.ToUpper(strings.TrimSpace(state))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "&", " AND ")
	return strings.Join(strings.Fields(s), " ")
}

// SameState reports whether two raw state values refer to the same
// state under normalization.
func SameState(a, b string) bool {
	return NormalizeState(a) == NormalizeState(b)
}

// CanonicalStateLabel returns the single display label for a raw
// state value: title case with a lowercase "and" separator, so both
// separator variants of "JAMMU AND KASHMIR" render as
// "Jammu and Kashmir".
func CanonicalStateLabel(state string) string {
	norm := NormalizeState(state)
	if norm == "" {
		return ""
	}
	words := strings.Fields(strings.ToLower(norm))
	for i, w := range words {
		if w == "and" && i > 0 {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
