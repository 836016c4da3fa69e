package domain

import "strings"

// streamCourses lists the courses offered under each stream.
var streamCourses = map[string][]string{
	"MEDICAL": {"MBBS", "MD", "MS", "DIPLOMA", "M.SC", "PH.D"},
	"DENTAL":  {"BDS", "MDS"},
	"DNB":     {"DNB"},
}

// courseBranches is the static branch table keyed by stream then
// course. Courses absent from a stream's inner map have no branch
// concept; the branch selector is disabled for them.
var courseBranches = map[string]map[string][]string{
	"MEDICAL": {
		"MD": {
			"ANAESTHESIOLOGY",
			"COMMUNITY MEDICINE",
			"DERMATOLOGY",
			"FORENSIC MEDICINE",
			"GENERAL MEDICINE",
			"MICROBIOLOGY",
			"PAEDIATRICS",
			"PATHOLOGY",
			"PHARMACOLOGY",
			"PSYCHIATRY",
			"RADIO DIAGNOSIS",
			"RADIOTHERAPY",
		},
		"MS": {
			"ENT",
			"GENERAL SURGERY",
			"OBSTETRICS AND GYNAECOLOGY",
			"OPHTHALMOLOGY",
			"ORTHOPAEDICS",
		},
	},
	"DENTAL": {
		"MDS": {
			"CONSERVATIVE DENTISTRY",
			"ORAL AND MAXILLOFACIAL SURGERY",
			"ORAL MEDICINE AND RADIOLOGY",
			"ORAL PATHOLOGY",
			"ORTHODONTICS",
			"PAEDODONTICS",
			"PERIODONTICS",
			"PROSTHODONTICS",
			"PUBLIC HEALTH DENTISTRY",
		},
	},
	"DNB": {
		"DNB": {
			"ANAESTHESIOLOGY",
			"EMERGENCY MEDICINE",
			"FAMILY MEDICINE",
			"GENERAL MEDICINE",
			"GENERAL SURGERY",
			"OBSTETRICS AND GYNAECOLOGY",
			"ORTHOPAEDICS",
			"PAEDIATRICS",
			"RADIO DIAGNOSIS",
		},
	},
}

// CoursesFor returns the courses offered under a stream, or nil for
// an unknown stream.
func CoursesFor(stream string) []string {
	courses, ok := streamCourses[strings.ToUpper(strings.TrimSpace(stream))]
	if !ok {
		return nil
	}
	out := make([]string, len(courses))
	copy(out, courses)
	return out
}

// BranchesFor returns the branches for a (stream, course) pair.
// Returns an empty slice for branchless courses (MBBS, BDS, DIPLOMA,
// M.SC, PH.D) and unknown pairs.
func BranchesFor(stream, course string) []string {
	byCourse, ok := courseBranches[strings.ToUpper(strings.TrimSpace(stream))]
	if !ok {
		return []string{}
	}
	branches, ok := byCourse[strings.ToUpper(strings.TrimSpace(course))]
	if !ok {
		return []string{}
	}
	out := make([]string, len(branches))
	copy(out, branches)
	return out
}

// HasBranches reports whether a course under a stream has branches.
func HasBranches(stream, course string) bool {
	return len(BranchesFor(stream, course)) > 0
}
