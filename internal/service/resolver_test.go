package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pediasafe-screening-server/internal/domain"
	"github.com/pediasafe-screening-server/internal/knowledge"
	"github.com/pediasafe-screening-server/pkg/openfda"
)

// fakeEvidenceSource returns canned co-occurrence results keyed by the
// normalized pair and counts calls. Safe for concurrent use.
type fakeEvidenceSource struct {
	mu      sync.Mutex
	results map[domain.PairKey]*openfda.CoOccurrenceResult
	err     error
	calls   int
}

func (f *fakeEvidenceSource) CoOccurrence(ctx context.Context, drug1, drug2 string) (*openfda.CoOccurrenceResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if result, ok := f.results[domain.NewPairKey(drug1, drug2)]; ok {
		return result, nil
	}
	return &openfda.CoOccurrenceResult{Found: false}, nil
}

func (f *fakeEvidenceSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestResolver(t *testing.T, source openfda.EvidenceSource) *InteractionResolver {
	t.Helper()
	resolver, err := NewInteractionResolver(knowledge.NewBase(testLogger()), source, nil, domain.ResolverConfig{}, testLogger())
	require.NoError(t, err)
	return resolver
}

func TestInteractionResolver_CuratedRuleTakesPrecedence(t *testing.T) {
	source := &fakeEvidenceSource{
		// Evidence also exists for the pair; the curated rule must win
		results: map[domain.PairKey]*openfda.CoOccurrenceResult{
			domain.NewPairKey("warfarin", "aspirin"): {Found: true, Reactions: []string{"Haemorrhage"}, Source: "OpenFDA Adverse Events Database"},
		},
	}
	resolver := newTestResolver(t, source)

	findings := resolver.Resolve(context.Background(), []string{"Warfarin", "Aspirin"})

	require.Len(t, findings, 1)
	assert.Equal(t, "Warfarin", findings[0].Drug1)
	assert.Equal(t, "Aspirin", findings[0].Drug2)
	assert.Equal(t, domain.SeverityMajor, findings[0].Severity)
	assert.Equal(t, "Clinical pharmacology database and FDA drug labels", findings[0].Reference)
	assert.Zero(t, source.callCount(), "curated pair should never reach the evidence source")
}

func TestInteractionResolver_CuratedRuleIsOrderIndependent(t *testing.T) {
	resolver := newTestResolver(t, &fakeEvidenceSource{})

	forward := resolver.Resolve(context.Background(), []string{"Digoxin", "Amiodarone"})
	reverse := resolver.Resolve(context.Background(), []string{"Amiodarone", "Digoxin"})

	require.Len(t, forward, 1)
	require.Len(t, reverse, 1)
	assert.Equal(t, forward[0].Mechanism, reverse[0].Mechanism)
	assert.Equal(t, "Digoxin", forward[0].Drug1)
	assert.Equal(t, "Amiodarone", reverse[0].Drug1)
}

func TestInteractionResolver_AdverseEventFallback(t *testing.T) {
	source := &fakeEvidenceSource{
		results: map[domain.PairKey]*openfda.CoOccurrenceResult{
			domain.NewPairKey("ibuprofen", "cetirizine"): {
				Found:     true,
				Reactions: []string{"Nausea", "Rash", "Dizziness", "Headache", "Fatigue"},
				Source:    "OpenFDA Adverse Events Database",
			},
		},
	}
	resolver := newTestResolver(t, source)

	findings := resolver.Resolve(context.Background(), []string{"Ibuprofen", "Cetirizine"})

	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, "Ibuprofen", f.Drug1)
	assert.Equal(t, "Cetirizine", f.Drug2)
	assert.Equal(t, domain.SeverityMonitor, f.Severity)
	// Mechanism text carries at most three reaction terms
	assert.Equal(t, "Potential interaction based on reported adverse events: Nausea, Rash, Dizziness", f.Mechanism)
	assert.Equal(t, "Monitor patient closely for unusual symptoms or side effects", f.Management)
	assert.Equal(t, "Interaction reported in FDA adverse events database", f.ClinicalSignificance)
	assert.Equal(t, "OpenFDA Adverse Events Database - OpenFDA Adverse Events Database", f.Reference)
}

func TestInteractionResolver_NoEvidenceNoFinding(t *testing.T) {
	resolver := newTestResolver(t, &fakeEvidenceSource{})

	findings := resolver.Resolve(context.Background(), []string{"Ibuprofen", "Cetirizine"})

	assert.Empty(t, findings)
}

func TestInteractionResolver_SourceFailureDegradesSilently(t *testing.T) {
	source := &fakeEvidenceSource{err: errors.New("connection refused")}
	resolver := newTestResolver(t, source)

	findings := resolver.Resolve(context.Background(), []string{"Ibuprofen", "Cetirizine", "Loratadine"})

	assert.Empty(t, findings)
}

func TestInteractionResolver_CuratedRulesSurviveSourceFailure(t *testing.T) {
	source := &fakeEvidenceSource{err: errors.New("service unavailable")}
	resolver := newTestResolver(t, source)

	findings := resolver.Resolve(context.Background(), []string{"Warfarin", "Ibuprofen", "Aspirin"})

	require.Len(t, findings, 1)
	assert.Equal(t, "Warfarin", findings[0].Drug1)
	assert.Equal(t, "Aspirin", findings[0].Drug2)
}

func TestInteractionResolver_AscendingPairOrder(t *testing.T) {
	meds := []string{"Warfarin", "Aspirin", "Digoxin", "Amiodarone"}
	resolver := newTestResolver(t, &fakeEvidenceSource{})

	findings := resolver.Resolve(context.Background(), meds)

	// Curated hits among the six pairs: (warfarin,aspirin) at pair index 0,
	// (digoxin,amiodarone) at pair index 5. Order must be deterministic.
	require.Len(t, findings, 2)
	assert.Equal(t, "Warfarin", findings[0].Drug1)
	assert.Equal(t, "Aspirin", findings[0].Drug2)
	assert.Equal(t, "Digoxin", findings[1].Drug1)
	assert.Equal(t, "Amiodarone", findings[1].Drug2)
}

func TestInteractionResolver_DuplicateMedicationsNotCollapsed(t *testing.T) {
	resolver := newTestResolver(t, &fakeEvidenceSource{})

	findings := resolver.Resolve(context.Background(), []string{"Warfarin", "Aspirin", "aspirin"})

	// (Warfarin,Aspirin) and (Warfarin,aspirin) both hit the curated rule
	require.Len(t, findings, 2)
	assert.Equal(t, "Aspirin", findings[0].Drug2)
	assert.Equal(t, "aspirin", findings[1].Drug2)
}

func TestInteractionResolver_MemoizesEvidenceLookups(t *testing.T) {
	source := &fakeEvidenceSource{}
	resolver := newTestResolver(t, source)

	resolver.Resolve(context.Background(), []string{"Ibuprofen", "Cetirizine"})
	first := source.callCount()
	resolver.Resolve(context.Background(), []string{"Ibuprofen", "Cetirizine"})

	assert.Equal(t, 1, first)
	assert.Equal(t, first, source.callCount(), "second resolve should be served from the memo")
}

func TestInteractionResolver_FewerThanTwoMedications(t *testing.T) {
	resolver := newTestResolver(t, &fakeEvidenceSource{})

	assert.Empty(t, resolver.Resolve(context.Background(), nil))
	assert.Empty(t, resolver.Resolve(context.Background(), []string{"Aspirin"}))
}

func TestInteractionResolver_ManyMedicationsBoundedWorkers(t *testing.T) {
	// 10 medications make 45 pairs; the pool must drain them all
	meds := make([]string, 10)
	for i := range meds {
		meds[i] = fmt.Sprintf("drug%d", i)
	}
	source := &fakeEvidenceSource{}
	resolver := newTestResolver(t, source)

	findings := resolver.Resolve(context.Background(), meds)

	assert.Empty(t, findings)
	assert.Equal(t, 45, source.callCount())
}
