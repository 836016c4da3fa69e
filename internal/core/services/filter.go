package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/collegedex/collegedex-cli/internal/cache"
	"github.com/collegedex/collegedex-cli/internal/core/domain"
	"github.com/collegedex/collegedex-cli/internal/core/ports/driven"
	"github.com/collegedex/collegedex-cli/internal/core/ports/driving"
	"github.com/collegedex/collegedex-cli/internal/logger"
)

// Ensure FilterService implements the interface.
var _ driving.FilterService = (*FilterService)(nil)

// Filter dimensions, used to exclude one dimension when computing its
// own option list.
const (
	dimStream     = "stream"
	dimState      = "state"
	dimManagement = "management_type"
	dimCourse     = "course"
	dimBranch     = "branch"
)

// ComputeAvailable narrows the entity set by every active dimension
// and computes each dimension's option list from the set narrowed by
// all the OTHER active dimensions. Selecting a stream therefore
// recomputes which states and management types are offered, without
// clearing an already-selected state. Pure function of its inputs.
//
// Entities that carry no course fields of their own can only match an
// active course or branch dimension through ComputeAvailableWithCourses.
func ComputeAvailable(entities []domain.Entity, sel domain.FilterSelection) *domain.FilterResult {
	return ComputeAvailableWithCourses(entities, nil, sel)
}

// ComputeAvailableWithCourses is ComputeAvailable with a course join:
// course rows keyed by college ID stand in for the course and branch
// fields of colleges that do not carry them. Entities with their own
// course fields ignore the join.
func ComputeAvailableWithCourses(entities []domain.Entity, courses map[string][]domain.Entity, sel domain.FilterSelection) *domain.FilterResult {
	return &domain.FilterResult{
		Entities: narrow(entities, courses, sel, ""),
		Options: domain.AvailableOptions{
			States:          stateOptions(narrow(entities, courses, sel, dimState)),
			ManagementTypes: managementOptions(narrow(entities, courses, sel, dimManagement)),
			Courses:         courseOptions(sel),
			Branches:        branchOptions(sel),
		},
	}
}

// narrow applies every active dimension except skip. Entities missing
// a dimension's field do not match that dimension.
func narrow(entities []domain.Entity, courses map[string][]domain.Entity, sel domain.FilterSelection, skip string) []domain.Entity {
	out := make([]domain.Entity, 0, len(entities))
	for _, e := range entities {
		if sel.Stream != "" && skip != dimStream && !matchesStream(e, sel.Stream) {
			continue
		}
		if sel.State != "" && skip != dimState && !matchesState(e, sel.State) {
			continue
		}
		if sel.ManagementType != "" && skip != dimManagement && !matchesManagement(e, sel.ManagementType) {
			continue
		}
		if sel.Course != "" && skip != dimCourse && !matchesCourse(e, courses[e.ID()], sel.Course) {
			continue
		}
		if sel.Branch != "" && skip != dimBranch && !matchesBranch(e, courses[e.ID()], sel.Branch) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesStream(e domain.Entity, stream string) bool {
	v := e.Str(domain.FieldCollegeType)
	return v != "" && strings.EqualFold(v, stream)
}

func matchesState(e domain.Entity, state string) bool {
	v := e.Str(domain.FieldState)
	return v != "" && domain.SameState(v, state)
}

// matchesManagement matches the derived management filter labels.
// "Government" uses the textual heuristic and always excludes DNB
// institutions, which are their own mutually exclusive value.
func matchesManagement(e domain.Entity, label string) bool {
	switch {
	case strings.EqualFold(label, domain.ManagementGovernment):
		return !isDNB(e) && IsGovernmentCollege(e)
	case strings.EqualFold(label, domain.ManagementDNB):
		return isDNB(e)
	default:
		v := e.Str(domain.FieldManagementType)
		return v != "" && strings.EqualFold(v, label)
	}
}

func matchesCourse(e domain.Entity, rows []domain.Entity, course string) bool {
	if v := e.Str(domain.FieldCourseName); v != "" {
		return strings.EqualFold(v, course)
	}
	for _, r := range rows {
		if strings.EqualFold(r.Str(domain.FieldCourseName), course) {
			return true
		}
	}
	return false
}

func matchesBranch(e domain.Entity, rows []domain.Entity, branch string) bool {
	if v := e.Str(domain.FieldBranch); v != "" {
		return strings.EqualFold(v, branch)
	}
	for _, r := range rows {
		if strings.EqualFold(r.Str(domain.FieldBranch), branch) {
			return true
		}
	}
	return false
}

func isDNB(e domain.Entity) bool {
	return strings.EqualFold(e.Str(domain.FieldCollegeType), string(domain.CollegeTypeDNB))
}

// Name markers for the government classification heuristic.
var (
	privateNameMarkers = []string{
		"private", "trust", "society", "deemed", "charitable",
		"mission", "foundation", "institute", "academy",
	}
	governmentNameMarkers = []string{
		"government", "govt", "state", "central", "national", "all india",
	}
	governmentManagement = []string{"government", "govt", "govt."}
	privateManagement    = []string{"private", "trust", "society", "deemed"}
)

// IsGovernmentCollege classifies an entity as government-run from
// free-text heuristics over its name and management type. Rules are
// evaluated in order, first match wins.
//
// This is a heuristic, not ground truth: a genuinely public college
// named "XYZ Institute of Medical Sciences" is misclassified as
// private by the name rule. Keep the rule order as is; callers rely
// on parity with the published directory behaviour.
func IsGovernmentCollege(e domain.Entity) bool {
	name := strings.ToLower(e.Str(domain.FieldName))
	mgmt := strings.ToLower(strings.TrimSpace(e.Str(domain.FieldManagementType)))

	for _, marker := range privateNameMarkers {
		if strings.Contains(name, marker) {
			return false
		}
	}
	for _, marker := range governmentNameMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	if containsString(governmentManagement, mgmt) {
		return true
	}
	if containsString(privateManagement, mgmt) {
		return false
	}
	// Final rule restates the management check by the original's
	// rule table; it can only return false here.
	return containsString(governmentManagement, mgmt)
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// stateOptions collects the canonical state labels present in the
// entity set, deduplicated across separator variants and sorted.
func stateOptions(entities []domain.Entity) []string {
	byNorm := make(map[string]string)
	for _, e := range entities {
		raw := e.Str(domain.FieldState)
		if raw == "" {
			continue
		}
		norm := domain.NormalizeState(raw)
		if _, ok := byNorm[norm]; !ok {
			byNorm[norm] = domain.CanonicalStateLabel(raw)
		}
	}

	out := make([]string, 0, len(byNorm))
	for _, label := range byNorm {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

// managementOptions collects the derived management labels present in
// the entity set, sorted.
func managementOptions(entities []domain.Entity) []string {
	seen := make(map[string]bool)
	for _, e := range entities {
		label := managementLabel(e)
		if label != "" {
			seen[label] = true
		}
	}

	out := make([]string, 0, len(seen))
	for label := range seen {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

// managementLabel maps one entity to its management filter label.
func managementLabel(e domain.Entity) string {
	if isDNB(e) {
		return domain.ManagementDNB
	}
	if IsGovernmentCollege(e) {
		return domain.ManagementGovernment
	}
	switch strings.ToLower(strings.TrimSpace(e.Str(domain.FieldManagementType))) {
	case "private":
		return domain.ManagementPrivate
	case "trust":
		return domain.ManagementTrust
	case "society":
		return domain.ManagementSociety
	case "deemed":
		return domain.ManagementDeemed
	default:
		return ""
	}
}

// courseOptions returns the courses offered under the selected
// stream. Courses are on the stream → course → branch dependency
// chain, so no stream means no course options.
func courseOptions(sel domain.FilterSelection) []string {
	if sel.Stream == "" {
		return []string{}
	}
	courses := domain.CoursesFor(sel.Stream)
	if courses == nil {
		return []string{}
	}
	return courses
}

// branchOptions returns the branch list for the selected (stream,
// course) pair. Branchless courses yield an empty list, which
// disables the branch selector.
func branchOptions(sel domain.FilterSelection) []string {
	if sel.Stream == "" || sel.Course == "" {
		return []string{}
	}
	return domain.BranchesFor(sel.Stream, sel.Course)
}

// FilterService serves synchronized filter queries over the
// directory, caching computed results per selection.
type FilterService struct {
	store driven.EntityStore
	cache *cache.Cache
}

// NewFilterService creates a filter service. The cache is optional.
func NewFilterService(store driven.EntityStore, c *cache.Cache) *FilterService {
	return &FilterService{
		store: store,
		cache: c,
	}
}

// Filter returns the colleges matching a selection plus synchronized
// option lists for every dimension.
func (s *FilterService) Filter(ctx context.Context, sel domain.FilterSelection) (*domain.FilterResult, error) {
	logger.Section("Filter Synchronization")
	logger.Debug("Selection: %+v", sel)

	key := cache.Key("filter", map[string]string{
		dimStream:     sel.Stream,
		dimState:      sel.State,
		dimManagement: sel.ManagementType,
		dimCourse:     sel.Course,
		dimBranch:     sel.Branch,
	})
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			logger.Debug("Filter result served from cache")
			return cached.(*domain.FilterResult), nil
		}
	}

	entities, err := fetchColleges(ctx, s.store, s.cache)
	if err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}

	courseRows, err := s.courseJoin(ctx, entities, sel)
	if err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}

	result := ComputeAvailableWithCourses(entities, courseRows, sel)
	logger.Info("Filtered entities: %d", len(result.Entities))

	if s.cache != nil {
		s.cache.Set(key, result, cache.CategoryFilterOptions)
	}
	return result, nil
}

// courseJoin fetches course rows per college when the selection has a
// course or branch active. College records do not carry course fields,
// so without the join those dimensions could never match. Lookups go
// through Courses, so rows are cached per college. Colleges without
// course rows simply never match the dimension.
func (s *FilterService) courseJoin(ctx context.Context, entities []domain.Entity, sel domain.FilterSelection) (map[string][]domain.Entity, error) {
	if sel.Course == "" && sel.Branch == "" {
		return nil, nil
	}

	rows := make(map[string][]domain.Entity, len(entities))
	for _, e := range entities {
		id := e.ID()
		if id == "" {
			continue
		}
		courses, err := s.Courses(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		rows[id] = courses
	}
	return rows, nil
}

// Courses returns the course records for a college, cached per
// college and deduplicated across concurrent callers.
func (s *FilterService) Courses(ctx context.Context, collegeID string) ([]domain.Entity, error) {
	if collegeID == "" {
		return nil, fmt.Errorf("courses: %w", domain.ErrInvalidInput)
	}
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	key := cache.Key("courses", map[string]string{"college_id": collegeID})
	if s.cache == nil {
		return s.store.ListCourses(ctx, collegeID)
	}

	if cached, ok := s.cache.Get(key); ok {
		return cached.([]domain.Entity), nil
	}

	fetched, err := s.cache.Do(key, func() (any, error) {
		courses, err := s.store.ListCourses(ctx, collegeID)
		if err != nil {
			return nil, err
		}
		s.cache.Set(key, courses, cache.CategoryCourses)
		return courses, nil
	})
	if err != nil {
		return nil, err
	}
	return fetched.([]domain.Entity), nil
}
