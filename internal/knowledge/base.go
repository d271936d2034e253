// Package knowledge holds the curated pediatric drug-safety tables: POPI and
// KIDs inappropriate-prescription criteria, PIPc omission criteria, the
// critical interaction rules, and the reference lists of medication and
// condition names.
package knowledge

import (
	"github.com/sirupsen/logrus"

	"github.com/pediasafe-screening-server/internal/domain"
)

// Base is the immutable drug knowledge base. It is built once per process by
// NewBase and exposes read-only views of its tables; there is no mutation
// API, so concurrent readers need no locking.
type Base struct {
	inappropriate []domain.Criterion
	omissions     []domain.OmissionCriterion
	interactions  map[domain.PairKey]domain.InteractionRule
	medications   []string
	conditions    []string
}

// NewBase assembles the knowledge base from the curated tables. The POPI and
// KIDs lists are combined into a single inappropriate-use list, POPI first.
func NewBase(logger *logrus.Logger) *Base {
	popi := popiCriteria()
	kids := kidsCriteria()

	inappropriate := make([]domain.Criterion, 0, len(popi)+len(kids))
	inappropriate = append(inappropriate, popi...)
	inappropriate = append(inappropriate, kids...)

	b := &Base{
		inappropriate: inappropriate,
		omissions:     pipcCriteria(),
		interactions:  criticalInteractions(),
		medications:   commonMedications(),
		conditions:    commonConditions(),
	}

	logger.WithFields(logrus.Fields{
		"inappropriate_criteria": len(b.inappropriate),
		"omission_criteria":      len(b.omissions),
		"interaction_rules":      len(b.interactions),
	}).Info("Initialized drug knowledge base")

	return b
}

// InappropriateCriteria returns the combined POPI and KIDs criteria.
// The returned slice must not be modified.
func (b *Base) InappropriateCriteria() []domain.Criterion {
	return b.inappropriate
}

// OmissionCriteria returns the PIPc omission criteria.
// The returned slice must not be modified.
func (b *Base) OmissionCriteria() []domain.OmissionCriterion {
	return b.omissions
}

// Interaction looks up the curated interaction rule for a pair of normalized
// drug names. The key is order-independent, so (a,b) and (b,a) resolve to the
// same rule.
func (b *Base) Interaction(key domain.PairKey) (domain.InteractionRule, bool) {
	rule, ok := b.interactions[key]
	return rule, ok
}

// CommonMedications returns the reference list of pediatric medication names.
func (b *Base) CommonMedications() []string {
	return b.medications
}

// CommonConditions returns the reference list of pediatric condition names.
func (b *Base) CommonConditions() []string {
	return b.conditions
}
