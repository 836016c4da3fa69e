package services

import (
	"strings"

	"github.com/collegedex/collegedex-cli/internal/core/domain"
)

// DefaultThreshold is the edit distance bound for fuzzy matches.
// It is an absolute distance, not normalized by length, so a short
// query can never fuzzy-match a much longer single word.
const DefaultThreshold = 3

// FuzzyMatcher decides whether and how well a query matches a
// candidate text field. It is stateless and safe for concurrent use.
type FuzzyMatcher struct{}

// NewFuzzyMatcher creates a fuzzy matcher.
func NewFuzzyMatcher() *FuzzyMatcher {
	return &FuzzyMatcher{}
}

// Match scores query against text. Returns nil when either input is
// empty or no rule matches. threshold bounds the fuzzy rule; values
// <= 0 use DefaultThreshold. Comparison is case-insensitive.
//
// Rules are tried in order, first hit wins:
//
//	substring containment        score 0  exact
//	word starts with query       score 1  word-start
//	substring containment        score 2  contains (unreachable)
//	edit distance <= threshold   score 3+distance  fuzzy
//	word initials contain query  score 4  acronym
func (m *FuzzyMatcher) Match(query, text string, threshold int) *domain.MatchResult {
	if query == "" || text == "" {
		return nil
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	q := strings.ToLower(query)
	t := strings.ToLower(text)
	words := strings.Fields(t)

	if strings.Contains(t, q) {
		return &domain.MatchResult{Score: 0, Type: domain.MatchExact}
	}

	for _, word := range words {
		if strings.HasPrefix(word, q) {
			return &domain.MatchResult{Score: 1, Type: domain.MatchWordStart}
		}
	}

	// Containment is re-checked at this rank to keep the documented
	// rule order intact. The exact rule above already returned on
	// containment, so this branch cannot fire.
	if strings.Contains(t, q) {
		return &domain.MatchResult{Score: 2, Type: domain.MatchContains}
	}

	if d := fuzzyDistance(q, t, words); d <= threshold {
		return &domain.MatchResult{Score: 3 + d, Type: domain.MatchFuzzy}
	}

	if strings.Contains(initials(words), q) {
		return &domain.MatchResult{Score: 4, Type: domain.MatchAcronym}
	}

	return nil
}

// fuzzyDistance returns the smallest edit distance between the query
// and the whole text or any single word of it. Matching per word as
// well lets "aims" reach "aiims" inside "aiims delhi", where the
// whole-text distance would be dominated by the extra words.
func fuzzyDistance(query, text string, words []string) int {
	best := Levenshtein(query, text)
	for _, word := range words {
		if d := Levenshtein(query, word); d < best {
			best = d
		}
	}
	return best
}

// initials joins the first rune of each word, so "all india institute"
// becomes "aii".
func initials(words []string) string {
	var b strings.Builder
	for _, word := range words {
		r := []rune(word)
		if len(r) > 0 {
			b.WriteRune(r[0])
		}
	}
	return b.String()
}

// Levenshtein computes the edit distance between two strings using
// the full dynamic-programming matrix with unit costs for insertion,
// deletion and substitution. O(len(a)*len(b)) time and space.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	matrix := make([][]int, la+1)
	for i := range matrix {
		matrix[i] = make([]int, lb+1)
		matrix[i][0] = i
	}
	for j := 0; j <= lb; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			matrix[i][j] = minInt(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[la][lb]
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
