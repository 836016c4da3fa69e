package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/collegedex/collegedex-cli/internal/core/domain"
)

// mode identifies which pane of the app is active.
type mode int

const (
	modeSearch mode = iota
	modeFilter
)

// Filter dimensions in display order.
var dimNames = []string{"Stream", "State", "Management", "Course", "Branch"}

const (
	dimStream = iota
	dimState
	dimManagement
	dimCourse
	dimBranch
)

// Messages produced by the async commands.
type suggestionsMsg struct {
	query string
	items []domain.Suggestion
}

type filterMsg struct {
	result *domain.FilterResult
}

type errMsg struct {
	err error
}

// App is the TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *Styles

	// input is the live search box.
	input textinput.Model

	mode mode

	// suggestions holds the results for the current query.
	suggestions []domain.Suggestion
	selected    int

	// sel is the current filter selection, result the last filter outcome.
	sel    domain.FilterSelection
	result *domain.FilterResult
	dim    int

	err    error
	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "Type a college, city or state"
	input.Prompt = "> "
	input.CharLimit = 64
	input.Focus()

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: DefaultStyles(),
		input:  input,
		mode:   modeSearch,
		width:  80,
		height: 24,
	}, nil
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Init starts the cursor blink and loads the unfiltered directory.
func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.filterCmd())
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case suggestionsMsg:
		// Stale responses from earlier keystrokes are dropped.
		if msg.query != strings.TrimSpace(a.input.Value()) {
			return a, nil
		}
		a.suggestions = msg.items
		if a.selected >= len(a.suggestions) {
			a.selected = 0
		}
		a.err = nil
		return a, nil

	case filterMsg:
		a.result = msg.result
		a.err = nil
		return a, nil

	case errMsg:
		a.err = msg.err
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	if msg.Type == tea.KeyTab {
		if a.mode == modeSearch {
			a.mode = modeFilter
			a.input.Blur()
		} else {
			a.mode = modeSearch
			a.input.Focus()
		}
		return a, nil
	}

	if a.mode == modeFilter {
		return a.handleFilterKey(msg)
	}
	return a.handleSearchKey(msg)
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if a.selected > 0 {
			a.selected--
		}
		return a, nil
	case tea.KeyDown:
		if a.selected < len(a.suggestions)-1 {
			a.selected++
		}
		return a, nil
	case tea.KeyEsc:
		a.input.SetValue("")
		a.suggestions = nil
		a.selected = 0
		return a, nil
	}

	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)

	if a.input.Value() != before {
		query := strings.TrimSpace(a.input.Value())
		if query == "" {
			a.suggestions = nil
			a.selected = 0
			return a, cmd
		}
		return a, tea.Batch(cmd, a.suggestCmd(query))
	}
	return a, cmd
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyLeft:
		if a.dim > 0 {
			a.dim--
		}
		return a, nil
	case tea.KeyRight:
		if a.dim < len(dimNames)-1 {
			a.dim++
		}
		return a, nil
	case tea.KeyUp:
		return a, a.cycle(-1)
	case tea.KeyDown:
		return a, a.cycle(1)
	case tea.KeyEsc:
		return a, a.apply(a.dim, "")
	case tea.KeyRunes:
		if string(msg.Runes) == "q" {
			return a, tea.Quit
		}
	}
	return a, nil
}

// dimValue returns the current value of the given dimension.
func (a *App) dimValue(dim int) string {
	switch dim {
	case dimStream:
		return a.sel.Stream
	case dimState:
		return a.sel.State
	case dimManagement:
		return a.sel.ManagementType
	case dimCourse:
		return a.sel.Course
	case dimBranch:
		return a.sel.Branch
	}
	return ""
}

// dimOptions returns the selectable values for a dimension, with the
// empty string standing for "no selection". Values other than stream
// come from the synchronized options of the last filter result.
func (a *App) dimOptions(dim int) []string {
	if dim == dimStream {
		return []string{"", string(domain.CollegeTypeMedical), string(domain.CollegeTypeDental), string(domain.CollegeTypeDNB)}
	}
	if a.result == nil {
		return []string{""}
	}
	var values []string
	switch dim {
	case dimState:
		values = a.result.Options.States
	case dimManagement:
		values = a.result.Options.ManagementTypes
	case dimCourse:
		values = a.result.Options.Courses
	case dimBranch:
		values = a.result.Options.Branches
	}
	return append([]string{""}, values...)
}

// cycle moves the active dimension to its next or previous value and
// re-runs the filter.
func (a *App) cycle(delta int) tea.Cmd {
	options := a.dimOptions(a.dim)
	if len(options) < 2 {
		return nil
	}

	current := a.dimValue(a.dim)
	idx := 0
	for i, v := range options {
		if v == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(options)) % len(options)
	return a.apply(a.dim, options[idx])
}

// apply sets one dimension of the selection. Narrower dimensions are
// cleared by the selection methods when a wider one changes.
func (a *App) apply(dim int, value string) tea.Cmd {
	switch dim {
	case dimStream:
		a.sel = a.sel.WithStream(value)
	case dimState:
		a.sel = a.sel.WithState(value)
	case dimManagement:
		a.sel = a.sel.WithManagementType(value)
	case dimCourse:
		a.sel = a.sel.WithCourse(value)
	case dimBranch:
		a.sel = a.sel.WithBranch(value)
	}
	return a.filterCmd()
}

func (a *App) suggestCmd(query string) tea.Cmd {
	ctx := a.ctx
	return func() tea.Msg {
		items, err := a.ports.Suggest.Suggest(ctx, query, 8)
		if err != nil {
			return errMsg{err: err}
		}
		return suggestionsMsg{query: query, items: items}
	}
}

func (a *App) filterCmd() tea.Cmd {
	ctx := a.ctx
	sel := a.sel
	return func() tea.Msg {
		result, err := a.ports.Filter.Filter(ctx, sel)
		if err != nil {
			return errMsg{err: err}
		}
		return filterMsg{result: result}
	}
}

// View renders the app.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Collegedex"))
	b.WriteString("\n\n")

	if a.mode == modeSearch {
		a.renderSearch(&b)
	} else {
		a.renderFilter(&b)
	}

	if a.err != nil {
		b.WriteString("\n")
		b.WriteString(a.styles.Error.Render("Error: " + a.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render(a.helpLine()))
	return b.String()
}

func (a *App) renderSearch(b *strings.Builder) {
	b.WriteString(a.input.View())
	b.WriteString("\n\n")

	if len(a.suggestions) == 0 {
		if strings.TrimSpace(a.input.Value()) != "" {
			b.WriteString(a.styles.Muted.Render("No matches."))
			b.WriteString("\n")
		}
		return
	}

	for i := range a.suggestions {
		s := &a.suggestions[i]
		line := s.Entity.Name()
		if s.Field != domain.FieldName {
			line += " (" + s.Field + ": " + s.Text + ")"
		}
		if i == a.selected {
			b.WriteString(a.styles.Selected.Render("▸ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
		city := s.Entity.Str(domain.FieldCity)
		state := s.Entity.Str(domain.FieldState)
		if city != "" || state != "" {
			b.WriteString(a.styles.Muted.Render("    " + city + ", " + state))
			b.WriteString("\n")
		}
	}
}

func (a *App) renderFilter(b *strings.Builder) {
	for i, name := range dimNames {
		value := a.dimValue(i)
		if value == "" {
			value = "any"
		}
		label := a.styles.Label.Render(fmt.Sprintf("%-11s", name))
		if i == a.dim {
			b.WriteString(a.styles.Selected.Render("▸ "))
			b.WriteString(label)
			b.WriteString(a.styles.Selected.Render(value))
		} else {
			b.WriteString("  " + label + value)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if a.result == nil {
		b.WriteString(a.styles.Muted.Render("Loading directory..."))
		b.WriteString("\n")
		return
	}

	b.WriteString(fmt.Sprintf("%d colleges match\n\n", len(a.result.Entities)))

	shown := len(a.result.Entities)
	limit := a.height - 16
	if limit > 0 && shown > limit {
		shown = limit
	}
	for _, e := range a.result.Entities[:shown] {
		b.WriteString("  " + e.Name())
		if state := e.Str(domain.FieldState); state != "" {
			b.WriteString(a.styles.Muted.Render(" · " + state))
		}
		b.WriteString("\n")
	}
	if shown < len(a.result.Entities) {
		b.WriteString(a.styles.Muted.Render(fmt.Sprintf("  ... and %d more\n", len(a.result.Entities)-shown)))
	}
}

func (a *App) helpLine() string {
	if a.mode == modeSearch {
		return "tab filters · ↑/↓ select · esc clear · ctrl+c quit"
	}
	return "tab search · ←/→ dimension · ↑/↓ value · esc clear · q quit"
}
