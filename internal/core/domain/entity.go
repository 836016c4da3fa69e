package domain

// Canonical college fields.
const (
	FieldID             = "id"
	FieldName           = "name"
	FieldCity           = "city"
	FieldState          = "state"
	FieldCollegeType    = "college_type"
	FieldManagementType = "management_type"
	FieldTotalCourses   = "total_courses"
)

// Canonical course fields.
const (
	FieldCourseName = "course_name"
	FieldCourseType = "course_type"
	FieldBranch     = "branch"
	FieldTotalSeats = "total_seats"
	FieldDuration   = "duration"
)

// Entity is a single college or course record from the directory.
// Records are opaque field maps so the search and filter logic can
// treat colleges and courses uniformly. Entities are read-only
// snapshots from the entity store; the core never mutates them.
type Entity map[string]any

// Str returns the named field as a string, or "" if absent
// or not a string.
func (e Entity) Str(field string) string {
	v, ok := e[field]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// Int returns the named field as an int, or 0 if absent.
// Numeric fields arrive as int, int64 (sqlite) or float64 (JSON).
func (e Entity) Int(field string) int {
	v, ok := e[field]
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

// ID returns the entity identifier, or "" if absent.
func (e Entity) ID() string {
	return e.Str(FieldID)
}

// Name returns the display name: the college name for college
// records, the course name for course records.
func (e Entity) Name() string {
	if n := e.Str(FieldName); n != "" {
		return n
	}
	return e.Str(FieldCourseName)
}
