package domain

// MatchType identifies how a query matched a candidate field.
type MatchType string

// Match types, strongest first.
const (
	// MatchExact means the field contains the query as a substring.
	MatchExact MatchType = "exact"

	// MatchWordStart means some word in the field starts with the query.
	MatchWordStart MatchType = "word-start"

	// MatchContains is a second containment check in the rule cascade.
	// It cannot fire after MatchExact and is effectively unreachable.
	MatchContains MatchType = "contains"

	// MatchFuzzy means the edit distance to the field is within threshold.
	MatchFuzzy MatchType = "fuzzy"

	// MatchAcronym means the field's word initials contain the query.
	MatchAcronym MatchType = "acronym"
)

// String returns the string representation.
func (m MatchType) String() string {
	return string(m)
}

// MatchResult is the outcome of matching a query against one field.
// Lower scores are better; an exact containment scores 0.
type MatchResult struct {
	// Score is the match cost. 0 exact, 1 word-start, 3+distance fuzzy,
	// 4 acronym.
	Score int

	// Type identifies which rule produced the match.
	Type MatchType
}

// Suggestion is a ranked search suggestion built from one matched
// field of one entity.
type Suggestion struct {
	// Text is the matched field value, used for display.
	Text string

	// Field is the canonical field the match came from.
	Field string

	// Entity is the record that produced the suggestion.
	Entity Entity

	// WeightedScore is match score times field weight. Lower is better.
	WeightedScore int

	// Type is the match type of the underlying field match.
	Type MatchType
}
