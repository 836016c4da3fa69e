package cli

import (
	"context"
	"errors"

	"github.com/collegedex/collegedex-cli/internal/core/domain"
)

// mockSuggestService returns canned suggestions for command tests.
type mockSuggestService struct{}

func (m *mockSuggestService) Suggest(_ context.Context, _ string, maxResults int) ([]domain.Suggestion, error) {
	suggestions := []domain.Suggestion{
		{
			Text:  "AIIMS Delhi",
			Field: domain.FieldName,
			Entity: domain.Entity{
				domain.FieldID:    "clg-1",
				domain.FieldName:  "AIIMS Delhi",
				domain.FieldCity:  "New Delhi",
				domain.FieldState: "Delhi",
			},
			WeightedScore: 0,
			Type:          domain.MatchExact,
		},
		{
			Text:  "Puducherry",
			Field: domain.FieldCity,
			Entity: domain.Entity{
				domain.FieldID:    "clg-2",
				domain.FieldName:  "JIPMER",
				domain.FieldCity:  "Puducherry",
				domain.FieldState: "Puducherry",
			},
			WeightedScore: 8,
			Type:          domain.MatchExact,
		},
	}
	if maxResults < len(suggestions) {
		suggestions = suggestions[:maxResults]
	}
	return suggestions, nil
}

type mockSuggestServiceError struct{}

func (m *mockSuggestServiceError) Suggest(context.Context, string, int) ([]domain.Suggestion, error) {
	return nil, errors.New("mock suggest error")
}

// mockFilterService returns a fixed filter result for command tests.
type mockFilterService struct{}

func (m *mockFilterService) Filter(context.Context, domain.FilterSelection) (*domain.FilterResult, error) {
	return &domain.FilterResult{
		Entities: []domain.Entity{
			{
				domain.FieldID:             "clg-1",
				domain.FieldName:           "AIIMS Delhi",
				domain.FieldCity:           "New Delhi",
				domain.FieldState:          "Delhi",
				domain.FieldCollegeType:    "MEDICAL",
				domain.FieldManagementType: "Government",
				domain.FieldTotalCourses:   3,
			},
		},
		Options: domain.AvailableOptions{
			States:          []string{"Delhi", "Puducherry"},
			ManagementTypes: []string{"Government"},
			Courses:         []string{"MBBS", "MD"},
		},
	}, nil
}

func (m *mockFilterService) Courses(_ context.Context, collegeID string) ([]domain.Entity, error) {
	if collegeID == "missing" {
		return nil, domain.ErrNotFound
	}
	return []domain.Entity{
		{
			domain.FieldID:         "crs-1",
			domain.FieldCourseName: "MD",
			domain.FieldBranch:     "General Medicine",
			domain.FieldTotalSeats: 12,
		},
	}, nil
}

type mockFilterServiceError struct{}

func (m *mockFilterServiceError) Filter(context.Context, domain.FilterSelection) (*domain.FilterResult, error) {
	return nil, errors.New("mock filter error")
}

func (m *mockFilterServiceError) Courses(context.Context, string) ([]domain.Entity, error) {
	return nil, errors.New("mock filter error")
}

// setupTestServices installs mock services and returns a cleanup that
// restores the previous wiring and resets the filter flags.
func setupTestServices() func() {
	oldSuggest := suggestService
	oldFilter := filterService

	suggestService = &mockSuggestService{}
	filterService = &mockFilterService{}

	return func() {
		suggestService = oldSuggest
		filterService = oldFilter
		resetListFlags()
	}
}

func resetListFlags() {
	listStream = ""
	listState = ""
	listManagement = ""
	listCourse = ""
	listBranch = ""
	listJSON = false
}
