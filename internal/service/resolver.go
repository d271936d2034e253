package service

import (
	"context"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sirupsen/logrus"

	"github.com/pediasafe-screening-server/internal/domain"
	"github.com/pediasafe-screening-server/internal/knowledge"
	"github.com/pediasafe-screening-server/pkg/openfda"
)

const (
	fallbackManagement   = "Monitor patient closely for unusual symptoms or side effects"
	fallbackSignificance = "Interaction reported in FDA adverse events database"

	// fallbackMechanismTerms caps how many reaction terms appear in the
	// mechanism text of an adverse-event finding.
	fallbackMechanismTerms = 3

	defaultMemoSize = 1024
	defaultWorkers  = 4
)

// EvidenceTier is an optional shared cache for co-occurrence results sitting
// between the in-process memo and the openFDA source.
type EvidenceTier interface {
	Get(ctx context.Context, key domain.PairKey) (*openfda.CoOccurrenceResult, bool)
	Set(ctx context.Context, key domain.PairKey, result *openfda.CoOccurrenceResult)
}

// InteractionResolver detects drug-drug interactions across a medication
// list. The curated interaction table always takes precedence; pairs it does
// not cover fall back to adverse-event co-occurrence evidence from openFDA.
// Evidence-source failures degrade silently to "no finding" so screening
// never fails because an upstream is down.
type InteractionResolver struct {
	base     *knowledge.Base
	source   openfda.EvidenceSource
	evidence EvidenceTier
	memo     *lru.Cache
	workers  int
	logger   *logrus.Logger
}

// NewInteractionResolver creates a resolver. The evidence tier may be nil;
// cacheSize and workers fall back to defaults when non-positive.
func NewInteractionResolver(base *knowledge.Base, source openfda.EvidenceSource, evidence EvidenceTier, config domain.ResolverConfig, logger *logrus.Logger) (*InteractionResolver, error) {
	if config.CacheSize <= 0 {
		config.CacheSize = defaultMemoSize
	}
	if config.Workers <= 0 {
		config.Workers = defaultWorkers
	}

	memo, err := lru.New(config.CacheSize)
	if err != nil {
		return nil, err
	}

	return &InteractionResolver{
		base:     base,
		source:   source,
		evidence: evidence,
		memo:     memo,
		workers:  config.Workers,
		logger:   logger,
	}, nil
}

// drugPair is one unordered pair slotted into the result order. Raw names are
// echoed in findings; normalized names drive table lookup and the evidence
// query.
type drugPair struct {
	slot       int
	raw1, raw2 string
	norm1      string
	norm2      string
}

// Resolve checks every unordered pair of the given medications and returns
// the findings in ascending pair order: (0,1), (0,2), ..., (1,2), and so on
// over the input indexes. Duplicate input names produce duplicate pairs and
// are not collapsed. Pairs are resolved concurrently under a bounded worker
// pool; the slot index restores the deterministic order afterwards.
func (r *InteractionResolver) Resolve(ctx context.Context, medications []string) []domain.InteractionFinding {
	normalized := make([]string, len(medications))
	for i, m := range medications {
		normalized[i] = NormalizeDrugName(m)
	}

	var pairs []drugPair
	for i := 0; i < len(medications); i++ {
		for j := i + 1; j < len(medications); j++ {
			pairs = append(pairs, drugPair{
				slot:  len(pairs),
				raw1:  medications[i],
				raw2:  medications[j],
				norm1: normalized[i],
				norm2: normalized[j],
			})
		}
	}
	if len(pairs) == 0 {
		return nil
	}

	results := make([]*domain.InteractionFinding, len(pairs))
	semaphore := make(chan struct{}, r.workers)
	var wg sync.WaitGroup

	for _, p := range pairs {
		wg.Add(1)
		go func(p drugPair) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()
			results[p.slot] = r.resolvePair(ctx, p)
		}(p)
	}
	wg.Wait()

	findings := make([]domain.InteractionFinding, 0, len(pairs))
	for _, f := range results {
		if f != nil {
			findings = append(findings, *f)
		}
	}
	return findings
}

// resolvePair resolves one pair: curated table first, adverse-event evidence
// otherwise. The finding echoes the raw input names.
func (r *InteractionResolver) resolvePair(ctx context.Context, p drugPair) *domain.InteractionFinding {
	key := domain.NewPairKey(p.norm1, p.norm2)

	if rule, ok := r.base.Interaction(key); ok {
		return &domain.InteractionFinding{
			Drug1:                p.raw1,
			Drug2:                p.raw2,
			Severity:             rule.Severity,
			Mechanism:            rule.Mechanism,
			Management:           rule.Management,
			ClinicalSignificance: rule.ClinicalSignificance,
			Reference:            rule.Reference,
		}
	}

	result, err := r.coOccurrence(ctx, key, p.norm1, p.norm2)
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"drug1": p.norm1,
			"drug2": p.norm2,
		}).WithError(err).Debug("Adverse event lookup failed, skipping pair")
		return nil
	}

	if !result.Found || len(result.Reactions) == 0 {
		return nil
	}

	terms := result.Reactions
	if len(terms) > fallbackMechanismTerms {
		terms = terms[:fallbackMechanismTerms]
	}

	return &domain.InteractionFinding{
		Drug1:                p.raw1,
		Drug2:                p.raw2,
		Severity:             domain.SeverityMonitor,
		Mechanism:            "Potential interaction based on reported adverse events: " + strings.Join(terms, ", "),
		Management:           fallbackManagement,
		ClinicalSignificance: fallbackSignificance,
		Reference:            "OpenFDA Adverse Events Database - " + result.Source,
	}
}

// coOccurrence fetches evidence for a normalized pair through the cache
// tiers: in-process memo, shared Redis tier, then the openFDA source. Only
// successful results are cached; a failed lookup is retried on the next pair.
func (r *InteractionResolver) coOccurrence(ctx context.Context, key domain.PairKey, drug1, drug2 string) (*openfda.CoOccurrenceResult, error) {
	if cached, ok := r.memo.Get(key.String()); ok {
		return cached.(*openfda.CoOccurrenceResult), nil
	}

	if r.evidence != nil {
		if cached, ok := r.evidence.Get(ctx, key); ok {
			r.memo.Add(key.String(), cached)
			return cached, nil
		}
	}

	result, err := r.source.CoOccurrence(ctx, drug1, drug2)
	if err != nil {
		return nil, err
	}

	r.memo.Add(key.String(), result)
	if r.evidence != nil {
		r.evidence.Set(ctx, key, result)
	}
	return result, nil
}
