package domain

// DecisionDocument is the on-disk (YAML) shape of a decision handed to the
// CLI. A document may carry either criterion evaluations or plain evidence
// items; evaluations take precedence when both are present.
type DecisionDocument struct {
	Name              string                `yaml:"name"`
	Prior             float64               `yaml:"prior"`
	Options           *DocumentOptions      `yaml:"options,omitempty"`
	Criteria          []Criterion           `yaml:"criteria,omitempty"`
	Evaluations       []CriterionEvaluation `yaml:"evaluations,omitempty"`
	Evidence          []EvidenceItem        `yaml:"evidence,omitempty"`
	CorrelationGroups []CorrelationGroup    `yaml:"correlation_groups,omitempty"`
}

// DocumentOptions mirrors InferenceOptions for file input. Seed is separate
// because a file carries a number, not a random source.
type DocumentOptions struct {
	SampleCount                int     `yaml:"sample_count,omitempty"`
	EvidenceStrengthScale      float64 `yaml:"evidence_strength_scale,omitempty"`
	PriorConcentration         float64 `yaml:"prior_concentration,omitempty"`
	ApplyCorrelationAdjustment bool    `yaml:"apply_correlation_adjustment,omitempty"`
	UseQuasiRandom             *bool   `yaml:"use_quasi_random,omitempty"`
	Seed                       uint64  `yaml:"seed,omitempty"`
}

// ToInferenceOptions converts file options into engine options, leaving Src
// unset; the caller decides how Seed (if any) becomes a random source.
func (d *DocumentOptions) ToInferenceOptions() *InferenceOptions {
	if d == nil {
		return nil
	}
	return &InferenceOptions{
		EvidenceStrengthScale:      d.EvidenceStrengthScale,
		PriorConcentration:         d.PriorConcentration,
		ApplyCorrelationAdjustment: d.ApplyCorrelationAdjustment,
		UseQuasiRandom:             d.UseQuasiRandom,
		SampleCount:                d.SampleCount,
	}
}
