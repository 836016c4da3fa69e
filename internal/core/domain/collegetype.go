package domain

const unknownDescription = "Unknown"

// CollegeType classifies a college by the courses it runs.
type CollegeType string

// Recognised college types.
const (
	// CollegeTypeMedical runs MBBS and medical postgraduate courses.
	CollegeTypeMedical CollegeType = "MEDICAL"

	// CollegeTypeDental runs BDS and MDS courses.
	CollegeTypeDental CollegeType = "DENTAL"

	// CollegeTypeDNB is an accredited hospital running DNB programmes.
	// DNB institutions sit outside the government/private split and are
	// filtered as their own management value.
	CollegeTypeDNB CollegeType = "DNB"
)

// IsValid returns true if the college type is recognised.
func (t CollegeType) IsValid() bool {
	switch t {
	case CollegeTypeMedical, CollegeTypeDental, CollegeTypeDNB:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t CollegeType) String() string {
	return string(t)
}

// Description returns a human-readable description of the type.
func (t CollegeType) Description() string {
	switch t {
	case CollegeTypeMedical:
		return "Medical College"
	case CollegeTypeDental:
		return "Dental College"
	case CollegeTypeDNB:
		return "DNB Hospital"
	default:
		return unknownDescription
	}
}
