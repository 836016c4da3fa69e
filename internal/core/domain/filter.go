package domain

// Management filter values offered to callers. These are filter
// labels, not raw management_type field values: "Government" is a
// derived classification and "DNB" selects by college type.
const (
	ManagementGovernment = "Government"
	ManagementPrivate    = "Private"
	ManagementTrust      = "Trust"
	ManagementSociety    = "Society"
	ManagementDeemed     = "Deemed"
	ManagementDNB        = "DNB"
)

// FilterSelection holds the active value for each filter dimension.
// An empty string means the dimension is not selected.
//
// Dimensions form a dependency chain stream → course → branch:
// changing an upstream dimension clears everything downstream.
// State and management type are outside the chain; selecting a
// stream narrows which states and management types are offered but
// does not clear an already-selected value.
type FilterSelection struct {
	Stream         string
	State          string
	ManagementType string
	Course         string
	Branch         string
}

// WithStream returns a selection with the stream set and the
// dependent course and branch dimensions cleared. Clearing the
// stream (empty value) also cascades.
func (s FilterSelection) WithStream(stream string) FilterSelection {
	s.Stream = stream
	s.Course = ""
	s.Branch = ""
	return s
}

// WithCourse returns a selection with the course set and the
// dependent branch dimension cleared.
func (s FilterSelection) WithCourse(course string) FilterSelection {
	s.Course = course
	s.Branch = ""
	return s
}

// WithBranch returns a selection with the branch set.
func (s FilterSelection) WithBranch(branch string) FilterSelection {
	s.Branch = branch
	return s
}

// WithState returns a selection with the state set. State is not on
// the dependency chain, so nothing cascades.
func (s FilterSelection) WithState(state string) FilterSelection {
	s.State = state
	return s
}

// WithManagementType returns a selection with the management type set.
func (s FilterSelection) WithManagementType(mt string) FilterSelection {
	s.ManagementType = mt
	return s
}

// IsEmpty returns true if no dimension is selected.
func (s FilterSelection) IsEmpty() bool {
	return s == FilterSelection{}
}

// AvailableOptions lists the values each dimension can still take
// given the other active dimensions. Lists are sorted and
// deduplicated. Branches is empty when the selected course has no
// branch concept.
type AvailableOptions struct {
	States          []string
	ManagementTypes []string
	Courses         []string
	Branches        []string
}

// FilterResult is the outcome of a filter computation: the entities
// matching the selection plus the synchronized option lists.
type FilterResult struct {
	Entities []Entity
	Options  AvailableOptions
}
