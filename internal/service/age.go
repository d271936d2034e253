package service

import "strings"

// ageThreshold pairs a restriction label with its upper bound in years.
type ageThreshold struct {
	label string
	years float64
}

// ageThresholds is the closed set of age-restriction expressions found in the
// knowledge base. The labels are mutually exclusive by construction, so the
// first containment match decides the threshold.
var ageThresholds = []ageThreshold{
	{"< 18 years", 18},
	{"< 16 years", 16},
	{"< 12 years", 12},
	{"< 8 years", 8},
	{"< 4 years", 4},
	{"< 2 years", 2},
	{"< 2 weeks", 2.0 / 52.0},
	{"< 6 months", 0.5},
	{"< 1 year", 1},
}

// ViolatesAgeRestriction reports whether a patient of the given age in years
// falls under the restriction's upper bound. The comparison is strictly less
// than; an age exactly at the threshold does not violate it.
//
// Restrictions may carry free-text qualifying clauses (e.g. "< 12 years with
// cardiac conditions"); only the numeric threshold is evaluated, the
// qualifier is ignored. A restriction matching no known threshold (e.g.
// "All ages") is treated as non-applicable and returns false, never an error.
func ViolatesAgeRestriction(restriction string, ageYears float64) bool {
	for _, t := range ageThresholds {
		if strings.Contains(restriction, t.label) {
			return ageYears < t.years
		}
	}
	return false
}
