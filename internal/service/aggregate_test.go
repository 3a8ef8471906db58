package service

import (
	"math"
	"testing"

	"github.com/credencehq/credence/internal/domain"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestApplyEvidence_ItemForm(t *testing.T) {
	prior := domain.BetaParams{Alpha: 5, Beta: 5}
	items := []domain.Evidence{
		domain.ItemEvidence(domain.EvidenceItem{ID: "market", Value: 80, Weight: 100}),
	}

	// pseudoCount = (100/100)*5 = 5; alpha += 0.8*5, beta += 0.2*5
	got := ApplyEvidence(prior, items, nil, 5, nil)
	if !almostEqual(got.Alpha, 9, 1e-9) {
		t.Errorf("alpha = %f, want 9", got.Alpha)
	}
	if !almostEqual(got.Beta, 6, 1e-9) {
		t.Errorf("beta = %f, want 6", got.Beta)
	}
}

func TestApplyEvidence_EvaluationForm(t *testing.T) {
	prior := domain.BetaParams{Alpha: 5, Beta: 5}
	criteria := CriteriaIndex([]domain.Criterion{
		{ID: "salary", Name: "Salary", Importance: 100},
	})

	tests := []struct {
		name      string
		eval      domain.CriterionEvaluation
		wantAlpha float64
		wantBeta  float64
	}{
		{
			name: "full strength supporter",
			eval: domain.CriterionEvaluation{
				CriterionID:      "salary",
				SupportsDecision: true,
				Strength:         100,
				Confidence:       100,
			},
			// pseudoCount = 1*1*5 = 5, strength 1: all mass on alpha
			wantAlpha: 10,
			wantBeta:  5,
		},
		{
			name: "full strength opposer swaps sides",
			eval: domain.CriterionEvaluation{
				CriterionID:      "salary",
				SupportsDecision: false,
				Strength:         100,
				Confidence:       100,
			},
			wantAlpha: 5,
			wantBeta:  10,
		},
		{
			name: "partial strength splits the pseudo-count",
			eval: domain.CriterionEvaluation{
				CriterionID:      "salary",
				SupportsDecision: true,
				Strength:         60,
				Confidence:       50,
			},
			// pseudoCount = 0.5*1*5 = 2.5; alpha += 1.5, beta += 1.0
			wantAlpha: 6.5,
			wantBeta:  6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyEvidence(prior, []domain.Evidence{domain.EvaluationEvidence(tt.eval)}, criteria, 5, nil)
			if !almostEqual(got.Alpha, tt.wantAlpha, 1e-9) {
				t.Errorf("alpha = %f, want %f", got.Alpha, tt.wantAlpha)
			}
			if !almostEqual(got.Beta, tt.wantBeta, 1e-9) {
				t.Errorf("beta = %f, want %f", got.Beta, tt.wantBeta)
			}
		})
	}
}

func TestApplyEvidence_MissingCriterionDefaultsImportance(t *testing.T) {
	prior := domain.BetaParams{Alpha: 5, Beta: 5}
	eval := domain.CriterionEvaluation{
		CriterionID:      "nonexistent",
		SupportsDecision: true,
		Strength:         100,
		Confidence:       100,
	}

	// importance falls back to 50: pseudoCount = 1*0.5*5 = 2.5
	got := ApplyEvidence(prior, []domain.Evidence{domain.EvaluationEvidence(eval)}, map[string]domain.Criterion{}, 5, nil)
	if !almostEqual(got.Alpha, 7.5, 1e-9) {
		t.Errorf("alpha = %f, want 7.5", got.Alpha)
	}
	if !almostEqual(got.Beta, 5, 1e-9) {
		t.Errorf("beta = %f, want 5", got.Beta)
	}
}

func TestApplyEvidence_EmptyListLeavesPrior(t *testing.T) {
	prior := domain.BetaParams{Alpha: 3.5, Beta: 6.5}
	got := ApplyEvidence(prior, nil, nil, 5, nil)
	if got != prior {
		t.Errorf("params = %+v, want unchanged prior %+v", got, prior)
	}
}

func TestCorrelationScales(t *testing.T) {
	groups := []domain.CorrelationGroup{
		{Members: []string{"a", "b"}, Factor: 1},   // identical evidence
		{Members: []string{"c", "d"}, Factor: 0},   // independent
		{Members: []string{"e", "f"}, Factor: 0.5}, // halfway
		{Members: []string{"solo"}, Factor: 0.9},   // ignored, size < 2
	}
	scales := CorrelationScales(groups)

	// identical pair: effective = 1, each scaled by 1/2
	if !almostEqual(scales["a"], 0.5, 1e-9) {
		t.Errorf("scale[a] = %f, want 0.5", scales["a"])
	}
	// independent pair: effective = 2, no discount
	if !almostEqual(scales["c"], 1, 1e-9) {
		t.Errorf("scale[c] = %f, want 1", scales["c"])
	}
	// halfway: effective = 1.5, each scaled by 0.75
	if !almostEqual(scales["e"], 0.75, 1e-9) {
		t.Errorf("scale[e] = %f, want 0.75", scales["e"])
	}
	if _, ok := scales["solo"]; ok {
		t.Error("single-member group should be ignored")
	}
}

func TestApplyEvidence_CorrelationDiscount(t *testing.T) {
	prior := domain.BetaParams{Alpha: 5, Beta: 5}
	criteria := CriteriaIndex([]domain.Criterion{
		{ID: "x", Importance: 100},
		{ID: "y", Importance: 100},
	})
	evidence := []domain.Evidence{
		domain.EvaluationEvidence(domain.CriterionEvaluation{CriterionID: "x", SupportsDecision: true, Strength: 100, Confidence: 100}),
		domain.EvaluationEvidence(domain.CriterionEvaluation{CriterionID: "y", SupportsDecision: true, Strength: 100, Confidence: 100}),
	}
	scales := CorrelationScales([]domain.CorrelationGroup{{Members: []string{"x", "y"}, Factor: 1}})

	// fully correlated duplicates should count as one observation total
	got := ApplyEvidence(prior, evidence, criteria, 5, scales)
	if !almostEqual(got.Alpha, 10, 1e-9) {
		t.Errorf("alpha = %f, want 10 (two half-weight updates)", got.Alpha)
	}

	unadjusted := ApplyEvidence(prior, evidence, criteria, 5, nil)
	if !almostEqual(unadjusted.Alpha, 15, 1e-9) {
		t.Errorf("unadjusted alpha = %f, want 15", unadjusted.Alpha)
	}
}
