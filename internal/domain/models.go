package domain

import "strings"

// Core Enums and Types

// Severity represents the clinical severity of a drug-drug interaction.
type Severity string

const (
	SeverityMajor    Severity = "Major"
	SeverityModerate Severity = "Moderate"
	SeverityMonitor  Severity = "Monitor"
)

// String returns the severity as a string.
func (s Severity) String() string {
	return string(s)
}

// AgeUnit represents the unit of a patient age value.
type AgeUnit string

const (
	AgeUnitYears  AgeUnit = "years"
	AgeUnitMonths AgeUnit = "months"
)

// Valid reports whether the unit is one of the supported values.
func (u AgeUnit) Valid() bool {
	return u == AgeUnitYears || u == AgeUnitMonths
}

// Knowledge Base Models

// Criterion represents an explicit inappropriate-prescription criterion
// (POPI or KIDs list). Tables of these are defined once at load time and
// never mutated.
type Criterion struct {
	Medication     string `json:"medication"`
	AgeRestriction string `json:"age_restriction"`
	Condition      string `json:"condition"`
	Rationale      string `json:"rationale"`
	Reference      string `json:"reference"`
}

// MatchesMedication reports whether the criterion's medication name fragment
// occurs in the candidate medication name, case-insensitively. Matching is on
// the raw name; interaction-style normalization is deliberately not applied.
func (c Criterion) MatchesMedication(medication string) bool {
	return strings.Contains(strings.ToLower(medication), strings.ToLower(c.Medication))
}

// OmissionCriterion represents a PIPc prescription-omission criterion: a
// condition that requires a standard-of-care medication to be present.
type OmissionCriterion struct {
	Condition         string `json:"condition"`
	MissingMedication string `json:"missing_medication"`
	Rationale         string `json:"rationale"`
	Reference         string `json:"reference"`
}

// MatchesIndication reports whether the criterion's condition name fragment
// occurs in the indication text, case-insensitively.
func (o OmissionCriterion) MatchesIndication(indication string) bool {
	return strings.Contains(strings.ToLower(indication), strings.ToLower(o.Condition))
}

// SatisfiedBy reports whether any of the criterion's required-medication
// alternatives (joined by " or ") matches any of the selected medications.
// Containment is checked in both directions so a bare ingredient name
// satisfies an alternative that carries a descriptive wrapper, e.g.
// "Salbutamol" satisfies "Short-acting beta-2 agonist (Salbutamol)".
func (o OmissionCriterion) SatisfiedBy(medications []string) bool {
	alternatives := strings.Split(o.MissingMedication, " or ")
	for _, med := range medications {
		lowered := strings.ToLower(strings.TrimSpace(med))
		if lowered == "" {
			continue
		}
		for _, alt := range alternatives {
			a := strings.ToLower(alt)
			if strings.Contains(lowered, a) || strings.Contains(a, lowered) {
				return true
			}
		}
	}
	return false
}

// InteractionRule represents a curated critical drug-drug interaction.
type InteractionRule struct {
	Severity             Severity `json:"severity"`
	Mechanism            string   `json:"mechanism"`
	Management           string   `json:"management"`
	ClinicalSignificance string   `json:"clinical_significance"`
	Reference            string   `json:"reference"`
}

// PairKey is the order-independent lookup key for an interaction between two
// canonical drug names.
type PairKey struct {
	First  string
	Second string
}

// NewPairKey builds the canonical key for two normalized drug names. The
// names are sorted so (a,b) and (b,a) produce the same key.
func NewPairKey(a, b string) PairKey {
	if a > b {
		a, b = b, a
	}
	return PairKey{First: a, Second: b}
}

// String returns a stable textual form of the key, usable as a cache key.
func (k PairKey) String() string {
	return k.First + "|" + k.Second
}

// Request/Response Models

// ScreeningRequest represents one prescription-screening invocation.
// Medications are free-text names in prescription order; duplicates and case
// variants are permitted and not deduplicated.
type ScreeningRequest struct {
	AgeValue    float64  `json:"age_value"`
	AgeUnit     AgeUnit  `json:"age_unit"`
	Indication  string   `json:"indication"`
	Medications []string `json:"medications"`
}

// AgeYears returns the patient age converted to years.
func (r ScreeningRequest) AgeYears() float64 {
	if r.AgeUnit == AgeUnitMonths {
		return r.AgeValue / 12
	}
	return r.AgeValue
}

// InappropriateFinding flags a selected medication that is contraindicated
// for the patient's age. Medication echoes the input name that triggered the
// criterion.
type InappropriateFinding struct {
	Medication     string `json:"medication"`
	AgeRestriction string `json:"age_restriction"`
	Condition      string `json:"condition"`
	Rationale      string `json:"rationale"`
	Reference      string `json:"reference"`
}

// OmissionFinding flags a standard-of-care medication that is absent for the
// stated indication.
type OmissionFinding struct {
	Condition         string `json:"condition"`
	MissingMedication string `json:"missing_medication"`
	Rationale         string `json:"rationale"`
	Reference         string `json:"reference"`
}

// InteractionFinding flags a known or evidence-suggested interaction between
// two selected medications. Drug1 and Drug2 echo the original input strings,
// not their normalized forms.
type InteractionFinding struct {
	Drug1                string   `json:"drug1"`
	Drug2                string   `json:"drug2"`
	Severity             Severity `json:"severity"`
	Mechanism            string   `json:"mechanism"`
	Management           string   `json:"management"`
	ClinicalSignificance string   `json:"clinical_significance"`
	Reference            string   `json:"reference"`
}

// ScreeningResult carries the three finding sequences of one screening, in
// discovery order. The engine imposes no deduplication or sorting; overlapping
// criteria may therefore yield duplicate findings.
type ScreeningResult struct {
	Inappropriate []InappropriateFinding `json:"inappropriate"`
	Omissions     []OmissionFinding      `json:"omissions"`
	Interactions  []InteractionFinding   `json:"interactions"`
}
