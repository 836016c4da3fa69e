package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegedex/collegedex-cli/internal/cache"
	"github.com/collegedex/collegedex-cli/internal/core/domain"
)

// --- Mock implementations ---

// mockEntityStore implements driven.EntityStore for testing.
type mockEntityStore struct {
	colleges   []domain.Entity
	courses    map[string][]domain.Entity
	listErr    error
	coursesErr error
	listCalls  atomic.Int32
}

func (m *mockEntityStore) ListColleges(_ context.Context) ([]domain.Entity, error) {
	m.listCalls.Add(1)
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.colleges, nil
}

func (m *mockEntityStore) ListCourses(_ context.Context, collegeID string) ([]domain.Entity, error) {
	if m.coursesErr != nil {
		return nil, m.coursesErr
	}
	courses, ok := m.courses[collegeID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return courses, nil
}

func (m *mockEntityStore) UpsertCollege(_ context.Context, _ domain.Entity, _ []domain.Entity) error {
	return nil
}

func (m *mockEntityStore) DeleteCollege(_ context.Context, _ string) error {
	return nil
}

func (m *mockEntityStore) Close() error {
	return nil
}

// directoryFixture returns the two-college directory used across tests.
func directoryFixture() []domain.Entity {
	return []domain.Entity{
		{
			domain.FieldID:             "1",
			domain.FieldName:           "AIIMS Delhi",
			domain.FieldCollegeType:    "MEDICAL",
			domain.FieldState:          "Delhi",
			domain.FieldManagementType: "GOVERNMENT",
		},
		{
			domain.FieldID:             "2",
			domain.FieldName:           "JIPMER Puducherry",
			domain.FieldCollegeType:    "MEDICAL",
			domain.FieldState:          "Puducherry",
			domain.FieldManagementType: "GOVERNMENT",
		},
	}
}

// TestRank_ShortQuery tests that queries under two characters yield nothing
func TestRank_ShortQuery(t *testing.T) {
	got := Rank(directoryFixture(), "a", 8)
	assert.Empty(t, got)

	got = Rank(directoryFixture(), " ", 8)
	assert.Empty(t, got)
}

// TestRank_EmptyEntities tests ranking over an empty directory
func TestRank_EmptyEntities(t *testing.T) {
	assert.Empty(t, Rank(nil, "aims", 8))
}

// TestRank_FuzzyTopSuggestion tests the directory scenario: "aims"
// finds AIIMS Delhi by name through a fuzzy match.
func TestRank_FuzzyTopSuggestion(t *testing.T) {
	got := Rank(directoryFixture(), "aims", 8)

	require.NotEmpty(t, got)
	assert.Equal(t, "AIIMS Delhi", got[0].Text)
	assert.Equal(t, domain.FieldName, got[0].Field)
	assert.Equal(t, domain.MatchFuzzy, got[0].Type)
}

// TestRank_SortedAscending tests ranking monotonicity
func TestRank_SortedAscending(t *testing.T) {
	entities := append(directoryFixture(), domain.Entity{
		domain.FieldID:   "3",
		domain.FieldName: "Delhi Dental College",
		domain.FieldCity: "Delhi",
	})

	got := Rank(entities, "delhi", 8)

	require.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].WeightedScore, got[i].WeightedScore,
			"suggestions out of order at %d", i)
	}
}

// TestRank_ExactNameBeatsLowWeightFields tests that score 0 times any
// weight outranks any nonzero score.
func TestRank_ExactNameBeatsLowWeightFields(t *testing.T) {
	entities := []domain.Entity{
		{
			domain.FieldID:   "1",
			domain.FieldName: "Madras Medical College",
			// State fuzzy-matches "madrs" too, at weight 6.
			domain.FieldState: "Madrs",
		},
	}

	got := Rank(entities, "madras", 8)

	require.NotEmpty(t, got)
	assert.Equal(t, "Madras Medical College", got[0].Text)
	assert.Equal(t, 0, got[0].WeightedScore)
}

// TestRank_Deduplicates tests dedup by (text, field) across entities
func TestRank_Deduplicates(t *testing.T) {
	entities := []domain.Entity{
		{domain.FieldID: "1", domain.FieldName: "A College", domain.FieldState: "Delhi"},
		{domain.FieldID: "2", domain.FieldName: "B College", domain.FieldState: "Delhi"},
	}

	got := Rank(entities, "delhi", 8)

	require.Len(t, got, 1)
	assert.Equal(t, "Delhi", got[0].Text)
	assert.Equal(t, domain.FieldState, got[0].Field)
}

// TestRank_Deterministic tests that identical inputs yield identical output
func TestRank_Deterministic(t *testing.T) {
	entities := directoryFixture()
	first := Rank(entities, "medical", 8)
	second := Rank(entities, "medical", 8)
	assert.Equal(t, first, second)
}

// TestRank_Truncation tests the maxResults cut
func TestRank_Truncation(t *testing.T) {
	entities := make([]domain.Entity, 0, 20)
	for i := 0; i < 20; i++ {
		entities = append(entities, domain.Entity{
			domain.FieldID:   string(rune('a' + i)),
			domain.FieldName: "Medical College " + string(rune('A'+i)),
		})
	}

	got := Rank(entities, "medical", 5)
	assert.Len(t, got, 5)
}

// TestSuggestService_CachesSnapshot tests that repeated queries hit the store once
func TestSuggestService_CachesSnapshot(t *testing.T) {
	store := &mockEntityStore{colleges: directoryFixture()}
	svc := NewSuggestService(store, cache.New())

	_, err := svc.Suggest(context.Background(), "aims", 0)
	require.NoError(t, err)
	_, err = svc.Suggest(context.Background(), "jipmer", 0)
	require.NoError(t, err)

	assert.Equal(t, int32(1), store.listCalls.Load())
}

// TestSuggestService_NoCache tests operation without a cache
func TestSuggestService_NoCache(t *testing.T) {
	store := &mockEntityStore{colleges: directoryFixture()}
	svc := NewSuggestService(store, nil)

	got, err := svc.Suggest(context.Background(), "aims", 0)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "AIIMS Delhi", got[0].Text)
}

// TestSuggestService_ShortQuery tests the no-op path
func TestSuggestService_ShortQuery(t *testing.T) {
	store := &mockEntityStore{colleges: directoryFixture()}
	svc := NewSuggestService(store, cache.New())

	got, err := svc.Suggest(context.Background(), "a", 0)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, int32(0), store.listCalls.Load())
}

// TestSuggestService_StoreError tests error propagation from the store
func TestSuggestService_StoreError(t *testing.T) {
	store := &mockEntityStore{listErr: errors.New("db locked")}
	svc := NewSuggestService(store, cache.New())

	_, err := svc.Suggest(context.Background(), "aims", 0)
	assert.Error(t, err)
}

// TestSuggestService_NilStore tests the unconfigured-store error
func TestSuggestService_NilStore(t *testing.T) {
	svc := NewSuggestService(nil, cache.New())

	_, err := svc.Suggest(context.Background(), "aims", 0)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
