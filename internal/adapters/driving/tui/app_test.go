package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegedex/collegedex-cli/internal/core/domain"
)

type mockSuggestService struct {
	err error
}

func (m *mockSuggestService) Suggest(_ context.Context, query string, _ int) ([]domain.Suggestion, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []domain.Suggestion{
		{
			Text:  "AIIMS Delhi",
			Field: domain.FieldName,
			Entity: domain.Entity{
				domain.FieldID:    "clg-1",
				domain.FieldName:  "AIIMS Delhi",
				domain.FieldCity:  "New Delhi",
				domain.FieldState: "Delhi",
			},
			Type: domain.MatchFuzzy,
		},
	}, nil
}

type mockFilterService struct {
	err     error
	lastSel domain.FilterSelection
}

func (m *mockFilterService) Filter(_ context.Context, sel domain.FilterSelection) (*domain.FilterResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastSel = sel
	return &domain.FilterResult{
		Entities: []domain.Entity{
			{domain.FieldID: "clg-1", domain.FieldName: "AIIMS Delhi", domain.FieldState: "Delhi"},
		},
		Options: domain.AvailableOptions{
			States:          []string{"Delhi", "Puducherry"},
			ManagementTypes: []string{"Government"},
		},
	}, nil
}

func (m *mockFilterService) Courses(context.Context, string) ([]domain.Entity, error) {
	return nil, nil
}

func newTestPorts() *Ports {
	return &Ports{
		Suggest: &mockSuggestService{},
		Filter:  &mockFilterService{},
	}
}

// runCmd executes a command returned by Update and feeds the resulting
// message back into the app, mimicking a single bubbletea step.
func runCmd(app *App, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if msg := cmd(); msg != nil {
		app.Update(msg)
	}
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, modeSearch, app.mode)
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{Filter: &mockFilterService{}})

	assert.Error(t, err)
	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrMissingSuggestService)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")
	result := app.WithContext(ctx)

	assert.Equal(t, app, result)
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.ready)
	assert.Equal(t, 100, app.width)
}

func TestApp_TabSwitchesMode(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, modeFilter, app.mode)

	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, modeSearch, app.mode)
}

func TestApp_TypingTriggersSuggestions(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("aiims")})
	require.NotNil(t, cmd)

	// The batched command wraps the fetch; run the fetch directly.
	runCmd(app, app.suggestCmd("aiims"))

	require.Len(t, app.suggestions, 1)
	assert.Equal(t, "AIIMS Delhi", app.suggestions[0].Entity.Name())
	assert.Contains(t, app.View(), "AIIMS Delhi")
}

func TestApp_StaleSuggestionsDropped(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.input.SetValue("jipmer")

	app.Update(suggestionsMsg{
		query: "aiims",
		items: []domain.Suggestion{{Text: "AIIMS Delhi", Field: domain.FieldName}},
	})

	assert.Empty(t, app.suggestions)
}

func TestApp_EscClearsQuery(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.input.SetValue("aiims")
	app.suggestions = []domain.Suggestion{{Text: "AIIMS Delhi"}}

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Empty(t, app.input.Value())
	assert.Empty(t, app.suggestions)
}

func TestApp_FilterCycleAppliesSelection(t *testing.T) {
	ports := newTestPorts()
	filter := ports.Filter.(*mockFilterService)
	app, _ := NewApp(ports)
	runCmd(app, app.filterCmd())

	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, modeFilter, app.mode)

	// First dimension is the stream. Cycling down selects MEDICAL.
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.NotNil(t, cmd)
	runCmd(app, cmd)

	assert.Equal(t, string(domain.CollegeTypeMedical), app.sel.Stream)
	assert.Equal(t, string(domain.CollegeTypeMedical), filter.lastSel.Stream)
}

func TestApp_FilterCycleWrapsBackToAny(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	runCmd(app, app.filterCmd())
	app.Update(tea.KeyMsg{Type: tea.KeyTab})

	// Cycling up from "any" wraps to the last stream value.
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyUp})
	runCmd(app, cmd)

	assert.Equal(t, string(domain.CollegeTypeDNB), app.sel.Stream)
}

func TestApp_FilterStateOptionsComeFromResult(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	runCmd(app, app.filterCmd())

	options := app.dimOptions(dimState)

	assert.Equal(t, []string{"", "Delhi", "Puducherry"}, options)
}

func TestApp_ChangingStreamClearsCourse(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	runCmd(app, app.filterCmd())

	app.sel = app.sel.WithStream(string(domain.CollegeTypeMedical)).WithCourse("MD")
	require.Equal(t, "MD", app.sel.Course)

	runCmd(app, app.apply(dimStream, string(domain.CollegeTypeDental)))

	assert.Equal(t, string(domain.CollegeTypeDental), app.sel.Stream)
	assert.Empty(t, app.sel.Course)
}

func TestApp_ErrorShownInView(t *testing.T) {
	ports := &Ports{
		Suggest: &mockSuggestService{err: errors.New("store offline")},
		Filter:  &mockFilterService{},
	}
	app, _ := NewApp(ports)

	runCmd(app, app.suggestCmd("aiims"))

	assert.Contains(t, app.View(), "store offline")
}

func TestApp_QuitKeys(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_ViewShowsFilterSummary(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	runCmd(app, app.filterCmd())
	app.Update(tea.KeyMsg{Type: tea.KeyTab})

	view := app.View()

	assert.Contains(t, view, "Stream")
	assert.Contains(t, view, "1 colleges match")
	assert.Contains(t, view, "AIIMS Delhi")
}
