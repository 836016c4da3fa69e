package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/collegedex/collegedex-cli/internal/cache"
	"github.com/collegedex/collegedex-cli/internal/core/domain"
	"github.com/collegedex/collegedex-cli/internal/core/ports/driven"
	"github.com/collegedex/collegedex-cli/internal/core/ports/driving"
	"github.com/collegedex/collegedex-cli/internal/logger"
)

// Ensure SuggestService implements the interface.
var _ driving.SuggestService = (*SuggestService)(nil)

// DefaultMaxSuggestions is the suggestion limit when the caller
// passes none.
const DefaultMaxSuggestions = 8

// minQueryLength is the shortest query that produces suggestions.
const minQueryLength = 2

// suggestFields are the entity fields evaluated for suggestions, with
// their ranking weights. Weighted score is match score times weight,
// lower is better: an exact name match (0 x 10) always outranks a
// fuzzy management match (4 x 3).
var suggestFields = []struct {
	field  string
	weight int
}{
	{domain.FieldName, 10},
	{domain.FieldCity, 8},
	{domain.FieldState, 6},
	{domain.FieldCollegeType, 4},
	{domain.FieldManagementType, 3},
}

// Rank applies the fuzzy matcher across the weighted fields of each
// entity and returns deduplicated, ascending-sorted suggestions. Pure
// function of its inputs.
func Rank(entities []domain.Entity, query string, maxResults int) []domain.Suggestion {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minQueryLength {
		return []domain.Suggestion{}
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxSuggestions
	}

	matcher := NewFuzzyMatcher()

	suggestions := make([]domain.Suggestion, 0)
	seen := make(map[string]bool)

	for _, entity := range entities {
		for _, f := range suggestFields {
			text := entity.Str(f.field)
			match := matcher.Match(query, text, 0)
			if match == nil {
				continue
			}

			// Dedup by (display text, field), keeping the first hit.
			key := strings.ToLower(text) + "|" + f.field
			if seen[key] {
				continue
			}
			seen[key] = true

			suggestions = append(suggestions, domain.Suggestion{
				Text:          text,
				Field:         f.field,
				Entity:        entity,
				WeightedScore: match.Score * f.weight,
				Type:          match.Type,
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].WeightedScore < suggestions[j].WeightedScore
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	return suggestions
}

// SuggestService serves ranked suggestions over the directory,
// caching the college snapshot between queries.
type SuggestService struct {
	store driven.EntityStore
	cache *cache.Cache
}

// NewSuggestService creates a suggestion service. The cache is
// optional; without it every query refetches the directory.
func NewSuggestService(store driven.EntityStore, c *cache.Cache) *SuggestService {
	return &SuggestService{
		store: store,
		cache: c,
	}
}

// Suggest returns ranked suggestions for a query.
func (s *SuggestService) Suggest(ctx context.Context, query string, maxResults int) ([]domain.Suggestion, error) {
	logger.Section("Suggestion Ranking")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if len([]rune(query)) < minQueryLength {
		logger.Debug("Query below minimum length, returning no suggestions")
		return []domain.Suggestion{}, nil
	}

	entities, err := fetchColleges(ctx, s.store, s.cache)
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}
	logger.Debug("Ranking across %d entities", len(entities))

	suggestions := Rank(entities, query, maxResults)
	logger.Info("Suggestions: %d", len(suggestions))
	return suggestions, nil
}

// fetchColleges loads the college snapshot through the cache,
// collapsing concurrent fetches into one store call.
func fetchColleges(ctx context.Context, store driven.EntityStore, c *cache.Cache) ([]domain.Entity, error) {
	if store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	if c == nil {
		return store.ListColleges(ctx)
	}

	key := cache.Key("colleges", nil)
	if cached, ok := c.Get(key); ok {
		logger.Debug("College snapshot served from cache")
		return cached.([]domain.Entity), nil
	}

	fetched, err := c.Do(key, func() (any, error) {
		logger.Debug("Fetching college snapshot from store")
		entities, err := store.ListColleges(ctx)
		if err != nil {
			return nil, err
		}
		c.Set(key, entities, cache.CategoryColleges)
		return entities, nil
	})
	if err != nil {
		return nil, err
	}
	return fetched.([]domain.Entity), nil
}
