// Package openfda provides a client for the openFDA drug endpoints used as
// the adverse-event evidence source for interaction screening.
package openfda

import "context"

// EvidenceSource is the capability the interaction resolver depends on.
// Implementations report adverse-event co-occurrence evidence for a pair of
// normalized drug names; tests substitute deterministic fakes.
type EvidenceSource interface {
	CoOccurrence(ctx context.Context, drug1, drug2 string) (*CoOccurrenceResult, error)
}

// ReactionCount is one ranked reaction term from the adverse-event counts.
type ReactionCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// CoOccurrenceResult is the outcome of an adverse-event co-occurrence query.
// Found is true when the source reports at least one reaction term for the
// pair; Reactions then carries the top terms in rank order.
type CoOccurrenceResult struct {
	Found     bool     `json:"found"`
	Reactions []string `json:"reactions,omitempty"`
	Source    string   `json:"source,omitempty"`
}

// eventCountResponse is the JSON shape of an openFDA count query response.
type eventCountResponse struct {
	Results []ReactionCount `json:"results"`
}

// labelResponse is the JSON shape of an openFDA drug label query response.
type labelResponse struct {
	Results []labelDocument `json:"results"`
}

// labelDocument carries the label sections that describe interactions.
type labelDocument struct {
	DrugInteractions    []string `json:"drug_interactions"`
	Contraindications   []string `json:"contraindications"`
	WarningsAndCautions []string `json:"warnings_and_cautions"`
}
