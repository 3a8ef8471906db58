package service

import (
	"math"
	"math/rand/v2"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/credencehq/credence/internal/domain"
)

// aggregateAndSampleMean is the reduced pipeline used by the sensitivity
// re-runs: aggregate, sample, return only the posterior mean percentage. It
// is deliberately a separate routine from the full computation so the
// analyzer never re-enters the diagnostics-and-sensitivity wrapper.
func aggregateAndSampleMean(prior domain.BetaParams, evidence []domain.Evidence, criteria map[string]domain.Criterion, strengthScale float64, sampleCount int, quasiRandom bool, rng *rand.Rand, logger *zap.Logger) float64 {
	params := ApplyEvidence(prior, evidence, criteria, strengthScale, nil)
	samples := SampleBeta(params, sampleCount, quasiRandom, rng, logger)
	return stat.Mean(samples, nil) * 100
}

// SensitivityRanking measures each item's marginal impact on the posterior
// mean by recomputing the pipeline with that item held out:
// impact = fullMeanPct - reducedMeanPct, sorted descending by magnitude.
//
// Two documented properties of this measure:
//   - it is leave-one-out, not Shapley: interaction effects between items
//     are not attributed, and impacts need not sum to anything in particular;
//   - Direction is the held-out item's own support flag, which can disagree
//     with the sign of Impact when importance weighting dominates.
//
// Correlation adjustment is not applied inside the re-runs even when the
// full computation used it; holding one member out would change every
// groupmate's discount and conflate group effects with item effects.
func SensitivityRanking(prior domain.BetaParams, evidence []domain.Evidence, criteria map[string]domain.Criterion, fullMeanPct, strengthScale float64, sampleCount int, quasiRandom bool, rng *rand.Rand, logger *zap.Logger) []domain.SensitivityItem {
	if len(evidence) < 2 {
		return nil
	}

	items := make([]domain.SensitivityItem, 0, len(evidence))
	reduced := make([]domain.Evidence, 0, len(evidence)-1)
	for i, ev := range evidence {
		reduced = reduced[:0]
		reduced = append(reduced, evidence[:i]...)
		reduced = append(reduced, evidence[i+1:]...)

		reducedMean := aggregateAndSampleMean(prior, reduced, criteria, strengthScale, sampleCount, quasiRandom, rng, logger)

		direction := domain.DirectionOpposing
		if ev.Supports() {
			direction = domain.DirectionSupporting
		}
		name := ev.ID()
		if c, ok := criteria[ev.ID()]; ok && c.Name != "" {
			name = c.Name
		}
		items = append(items, domain.SensitivityItem{
			CriterionID: ev.ID(),
			Name:        name,
			Impact:      fullMeanPct - reducedMean,
			Direction:   direction,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return math.Abs(items[i].Impact) > math.Abs(items[j].Impact)
	})
	return items
}
