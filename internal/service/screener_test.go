package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pediasafe-screening-server/internal/domain"
	"github.com/pediasafe-screening-server/internal/knowledge"
)

func newTestEngine(t *testing.T) *ScreeningEngine {
	t.Helper()
	base := knowledge.NewBase(testLogger())
	resolver, err := NewInteractionResolver(base, &fakeEvidenceSource{}, nil, domain.ResolverConfig{}, testLogger())
	require.NoError(t, err)
	return NewScreeningEngine(base, resolver, testLogger())
}

func TestScreeningEngine_AsthmaScenario(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Screen(context.Background(), domain.ScreeningRequest{
		AgeValue:    5,
		AgeUnit:     domain.AgeUnitYears,
		Indication:  "Asthma",
		Medications: []string{"Aspirin", "Salbutamol"},
	})

	require.Len(t, result.Inappropriate, 1)
	assert.Equal(t, "Aspirin", result.Inappropriate[0].Medication)
	assert.Equal(t, "< 16 years", result.Inappropriate[0].AgeRestriction)

	// Salbutamol satisfies the asthma reliever criterion
	assert.Empty(t, result.Omissions)
	assert.Empty(t, result.Interactions)
}

func TestScreeningEngine_AsthmaWithoutReliever(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Screen(context.Background(), domain.ScreeningRequest{
		AgeValue:    7,
		AgeUnit:     domain.AgeUnitYears,
		Indication:  "Asthma",
		Medications: []string{"Cetirizine"},
	})

	require.Len(t, result.Omissions, 1)
	assert.Equal(t, "Asthma", result.Omissions[0].Condition)
	assert.Contains(t, result.Omissions[0].MissingMedication, "Salbutamol")
}

func TestScreeningEngine_AgeInMonths(t *testing.T) {
	engine := newTestEngine(t)

	// 18 months converts to 1.5 years, under the 2 year loperamide threshold
	result := engine.Screen(context.Background(), domain.ScreeningRequest{
		AgeValue:    18,
		AgeUnit:     domain.AgeUnitMonths,
		Medications: []string{"Loperamide"},
	})

	require.Len(t, result.Inappropriate, 1)
	assert.Equal(t, "Loperamide", result.Inappropriate[0].Medication)
	assert.Equal(t, "< 2 years", result.Inappropriate[0].AgeRestriction)
}

func TestScreeningEngine_AgeAtThresholdNotFlagged(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Screen(context.Background(), domain.ScreeningRequest{
		AgeValue:    16,
		AgeUnit:     domain.AgeUnitYears,
		Medications: []string{"Aspirin"},
	})

	assert.Empty(t, result.Inappropriate)
}

func TestScreeningEngine_SubstringMedicationMatch(t *testing.T) {
	engine := newTestEngine(t)

	// The finding echoes the prescriber's spelling, not the criterion name
	result := engine.Screen(context.Background(), domain.ScreeningRequest{
		AgeValue:    10,
		AgeUnit:     domain.AgeUnitYears,
		Medications: []string{"aspirin 100mg"},
	})

	require.Len(t, result.Inappropriate, 1)
	assert.Equal(t, "aspirin 100mg", result.Inappropriate[0].Medication)
}

func TestScreeningEngine_InteractionFindings(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Screen(context.Background(), domain.ScreeningRequest{
		AgeValue:    12,
		AgeUnit:     domain.AgeUnitYears,
		Medications: []string{"Warfarin", "Aspirin"},
	})

	require.Len(t, result.Interactions, 1)
	assert.Equal(t, domain.SeverityMajor, result.Interactions[0].Severity)

	// Aspirin under 16 is also flagged as inappropriate
	require.Len(t, result.Inappropriate, 1)
	assert.Equal(t, "Aspirin", result.Inappropriate[0].Medication)
}

func TestScreeningEngine_EmptyRequest(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Screen(context.Background(), domain.ScreeningRequest{
		AgeValue: 5,
		AgeUnit:  domain.AgeUnitYears,
	})

	assert.NotNil(t, result.Inappropriate)
	assert.NotNil(t, result.Omissions)
	assert.NotNil(t, result.Interactions)
	assert.Empty(t, result.Inappropriate)
	assert.Empty(t, result.Omissions)
	assert.Empty(t, result.Interactions)
}

func TestScreeningEngine_Idempotent(t *testing.T) {
	engine := newTestEngine(t)

	req := domain.ScreeningRequest{
		AgeValue:    3,
		AgeUnit:     domain.AgeUnitYears,
		Indication:  "ADHD (Attention Deficit Hyperactivity Disorder)",
		Medications: []string{"Promethazine", "Dextromethorphan"},
	}

	first := engine.Screen(context.Background(), req)
	second := engine.Screen(context.Background(), req)

	assert.Equal(t, first, second)
}

func TestScreeningEngine_MultipleCriteriaYieldMultipleFindings(t *testing.T) {
	engine := newTestEngine(t)

	// A two year old gets both the dextromethorphan and pseudoephedrine flags
	result := engine.Screen(context.Background(), domain.ScreeningRequest{
		AgeValue:    2,
		AgeUnit:     domain.AgeUnitYears,
		Medications: []string{"Dextromethorphan", "Pseudoephedrine"},
	})

	require.Len(t, result.Inappropriate, 2)
	assert.Equal(t, "Dextromethorphan", result.Inappropriate[0].Medication)
	assert.Equal(t, "Pseudoephedrine", result.Inappropriate[1].Medication)
}
