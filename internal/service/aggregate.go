package service

import (
	"github.com/credencehq/credence/internal/domain"
)

const (
	DefaultEvidenceStrengthScale = 5.0

	// DefaultImportance is the soft default used when an evaluation
	// references a criterion id with no matching criterion.
	DefaultImportance = 50.0
)

// CriteriaIndex builds the id lookup the aggregator joins evaluations
// against.
func CriteriaIndex(criteria []domain.Criterion) map[string]domain.Criterion {
	index := make(map[string]domain.Criterion, len(criteria))
	for _, c := range criteria {
		index[c.ID] = c
	}
	return index
}

// CorrelationScales turns correlation groups into a per-identifier
// pseudo-count multiplier. A group of g members with correlation factor f
// carries 1+(g-1)(1-f) effective observations, so each member is scaled by
// effective/g. Identifiers outside every group keep scale 1 (absent from the
// map). Groups with fewer than two members are ignored.
func CorrelationScales(groups []domain.CorrelationGroup) map[string]float64 {
	scales := make(map[string]float64)
	for _, g := range groups {
		size := float64(len(g.Members))
		if size < 2 {
			continue
		}
		factor := g.Factor
		if factor < 0 {
			factor = 0
		}
		if factor > 1 {
			factor = 1
		}
		effective := 1 + (size-1)*(1-factor)
		for _, id := range g.Members {
			scales[id] = effective / size
		}
	}
	return scales
}

// pseudoObservation reduces either evidence form to the shared update rule:
// a fractional observation count, a strength in [0,1], and the side it lands
// on. For the item form the value carries direction and magnitude together,
// so strength is the value itself and the update never swaps sides.
func pseudoObservation(ev domain.Evidence, criteria map[string]domain.Criterion, strengthScale float64) (pseudoCount, strength float64, supports bool) {
	switch ev.Kind {
	case domain.KindItem:
		if ev.Item == nil {
			return 0, 0, true
		}
		return (ev.Item.Weight / 100) * strengthScale, ev.Item.Value / 100, true
	case domain.KindEvaluation:
		if ev.Evaluation == nil {
			return 0, 0, true
		}
		importance := DefaultImportance
		if c, ok := criteria[ev.Evaluation.CriterionID]; ok {
			importance = c.Importance
		}
		pseudoCount = (ev.Evaluation.Confidence / 100) * (importance / 100) * strengthScale
		return pseudoCount, ev.Evaluation.Strength / 100, ev.Evaluation.SupportsDecision
	}
	return 0, 0, true
}

// ApplyEvidence folds a sequence of evidence into the Beta parameters as
// weighted pseudo-observations. corrScales may be nil (no correlation
// adjustment). The fold is pure: the input params are not modified and an
// empty sequence returns them unchanged.
func ApplyEvidence(params domain.BetaParams, evidence []domain.Evidence, criteria map[string]domain.Criterion, strengthScale float64, corrScales map[string]float64) domain.BetaParams {
	if strengthScale <= 0 {
		strengthScale = DefaultEvidenceStrengthScale
	}
	alpha, beta := params.Alpha, params.Beta
	for _, ev := range evidence {
		pseudoCount, strength, supports := pseudoObservation(ev, criteria, strengthScale)
		if scale, ok := corrScales[ev.ID()]; ok {
			pseudoCount *= scale
		}
		if supports {
			alpha += strength * pseudoCount
			beta += (1 - strength) * pseudoCount
		} else {
			beta += strength * pseudoCount
			alpha += (1 - strength) * pseudoCount
		}
	}
	return domain.BetaParams{Alpha: alpha, Beta: beta}
}
