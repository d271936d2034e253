package service

import "strings"

// combinationSuffixes are co-formulation suffixes stripped before lookup, so
// a combination product resolves to its leading ingredient.
var combinationSuffixes = []string{
	"/acetaminophen",
	"/clavulanate",
}

// synonymReplacements maps trade or regional names onto the canonical
// ingredient name used by the interaction tables and the evidence source.
var synonymReplacements = map[string]string{
	"paracetamol": "acetaminophen",
}

// NormalizeDrugName canonicalizes a free-text drug name for interaction-table
// and evidence-source lookups: lowercase, strip combination suffixes, apply
// the synonym map, keep only the first whitespace-delimited token. It is pure
// and total; any input, including the empty string, yields a result.
//
// Inappropriate and omission criteria matching intentionally does NOT use
// this function; those match raw case-insensitive substrings.
func NormalizeDrugName(name string) string {
	name = strings.ToLower(name)
	for _, suffix := range combinationSuffixes {
		name = strings.ReplaceAll(name, suffix, "")
	}
	for from, to := range synonymReplacements {
		name = strings.ReplaceAll(name, from, to)
	}
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimSpace(fields[0])
}
