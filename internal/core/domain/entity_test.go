package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEntity_Str tests string field access
func TestEntity_Str(t *testing.T) {
	e := Entity{
		FieldName:  "AIIMS Delhi",
		FieldState: "Delhi",
	}

	assert.Equal(t, "AIIMS Delhi", e.Str(FieldName))
	assert.Equal(t, "", e.Str(FieldCity))
	assert.Equal(t, "", e.Str("missing"))
}

// TestEntity_Str_NonString tests that non-string values read as empty
func TestEntity_Str_NonString(t *testing.T) {
	e := Entity{FieldTotalCourses: 12}
	assert.Equal(t, "", e.Str(FieldTotalCourses))
}

// TestEntity_Int tests numeric field access across source types
func TestEntity_Int(t *testing.T) {
	e := Entity{
		"a": 3,
		"b": int64(4),  // sqlite
		"c": float64(5), // JSON
		"d": "6",
	}

	assert.Equal(t, 3, e.Int("a"))
	assert.Equal(t, 4, e.Int("b"))
	assert.Equal(t, 5, e.Int("c"))
	assert.Equal(t, 0, e.Int("d"))
	assert.Equal(t, 0, e.Int("missing"))
}

// TestEntity_Name tests the display-name fallback from college to course records
func TestEntity_Name(t *testing.T) {
	college := Entity{FieldName: "JIPMER Puducherry"}
	course := Entity{FieldCourseName: "MD"}

	assert.Equal(t, "JIPMER Puducherry", college.Name())
	assert.Equal(t, "MD", course.Name())
	assert.Equal(t, "", Entity{}.Name())
}

// TestCollegeType_IsValid tests type validation
func TestCollegeType_IsValid(t *testing.T) {
	assert.True(t, CollegeTypeMedical.IsValid())
	assert.True(t, CollegeTypeDental.IsValid())
	assert.True(t, CollegeTypeDNB.IsValid())
	assert.False(t, CollegeType("NURSING").IsValid())
}

// TestCollegeType_Description tests human-readable descriptions
func TestCollegeType_Description(t *testing.T) {
	assert.Equal(t, "Medical College", CollegeTypeMedical.Description())
	assert.Equal(t, "DNB Hospital", CollegeTypeDNB.Description())
	assert.Equal(t, "Unknown", CollegeType("x").Description())
}
