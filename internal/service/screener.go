// Package service implements the screening pipeline: drug name
// normalization, age restriction evaluation, interaction resolution and the
// orchestrating screening engine.
package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/pediasafe-screening-server/internal/domain"
	"github.com/pediasafe-screening-server/internal/knowledge"
)

// ScreeningEngine runs the three screening passes over a prescription:
// inappropriate medications for age, omitted indicated medications, and
// drug-drug interactions.
type ScreeningEngine struct {
	base     *knowledge.Base
	resolver *InteractionResolver
	logger   *logrus.Logger
}

// NewScreeningEngine creates a screening engine.
func NewScreeningEngine(base *knowledge.Base, resolver *InteractionResolver, logger *logrus.Logger) *ScreeningEngine {
	return &ScreeningEngine{
		base:     base,
		resolver: resolver,
		logger:   logger,
	}
}

// Screen evaluates a prescription and returns all findings. It never returns
// an error: external evidence failures degrade to fewer interaction findings
// and every pass tolerates empty inputs. The three finding lists are always
// non-nil so they serialize as empty arrays.
func (e *ScreeningEngine) Screen(ctx context.Context, req domain.ScreeningRequest) domain.ScreeningResult {
	ageYears := req.AgeYears()

	e.logger.WithFields(logrus.Fields{
		"age_years":   ageYears,
		"indication":  req.Indication,
		"medications": len(req.Medications),
	}).Info("Starting prescription screening")

	result := domain.ScreeningResult{
		Inappropriate: e.screenInappropriate(req.Medications, ageYears),
		Omissions:     e.screenOmissions(req.Indication, req.Medications),
		Interactions:  e.screenInteractions(ctx, req.Medications),
	}

	e.logger.WithFields(logrus.Fields{
		"inappropriate": len(result.Inappropriate),
		"omissions":     len(result.Omissions),
		"interactions":  len(result.Interactions),
	}).Info("Completed prescription screening")

	return result
}

// screenInappropriate matches each prescribed medication against the POPI and
// KIDs criteria in table order. A medication matching several criteria yields
// one finding per criterion; findings echo the prescriber's original
// medication string, not the criterion fragment.
func (e *ScreeningEngine) screenInappropriate(medications []string, ageYears float64) []domain.InappropriateFinding {
	findings := make([]domain.InappropriateFinding, 0)
	for _, medication := range medications {
		for _, criterion := range e.base.InappropriateCriteria() {
			if !criterion.MatchesMedication(medication) {
				continue
			}
			if !ViolatesAgeRestriction(criterion.AgeRestriction, ageYears) {
				continue
			}
			findings = append(findings, domain.InappropriateFinding{
				Medication:     medication,
				AgeRestriction: criterion.AgeRestriction,
				Condition:      criterion.Condition,
				Rationale:      criterion.Rationale,
				Reference:      criterion.Reference,
			})
		}
	}
	return findings
}

// screenOmissions reports each omission criterion whose condition matches the
// indication and whose required medication is absent from the prescription.
// Criteria sharing a condition can each produce a finding.
func (e *ScreeningEngine) screenOmissions(indication string, medications []string) []domain.OmissionFinding {
	findings := make([]domain.OmissionFinding, 0)
	if indication == "" {
		return findings
	}
	for _, criterion := range e.base.OmissionCriteria() {
		if !criterion.MatchesIndication(indication) {
			continue
		}
		if criterion.SatisfiedBy(medications) {
			continue
		}
		findings = append(findings, domain.OmissionFinding{
			Condition:         criterion.Condition,
			MissingMedication: criterion.MissingMedication,
			Rationale:         criterion.Rationale,
			Reference:         criterion.Reference,
		})
	}
	return findings
}

// screenInteractions delegates to the resolver; fewer than two medications
// cannot interact.
func (e *ScreeningEngine) screenInteractions(ctx context.Context, medications []string) []domain.InteractionFinding {
	if len(medications) < 2 {
		return make([]domain.InteractionFinding, 0)
	}
	findings := e.resolver.Resolve(ctx, medications)
	if findings == nil {
		findings = make([]domain.InteractionFinding, 0)
	}
	return findings
}
