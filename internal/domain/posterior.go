package domain

// BetaParams holds the shape parameters of a Beta distribution over the
// decision probability. Both stay at or above the 0.5 floor applied by the
// prior parameterizer, so the density is never U-shaped.
type BetaParams struct {
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
}

// Mean returns the distribution mean α/(α+β) as a probability in (0,1).
func (p BetaParams) Mean() float64 {
	return p.Alpha / (p.Alpha + p.Beta)
}

type SensitivityDirection string

const (
	DirectionSupporting SensitivityDirection = "supporting"
	DirectionOpposing   SensitivityDirection = "opposing"
)

// ConvergenceDiagnostic summarizes sampling quality for one posterior draw.
type ConvergenceDiagnostic struct {
	GewekeZ             float64 `json:"geweke_z"`
	IsConverged         bool    `json:"is_converged"`
	EffectiveSampleSize int     `json:"effective_sample_size"`
	MonteCarloSE        float64 `json:"monte_carlo_se"`
}

// SensitivityItem reports the leave-one-out impact of a single piece of
// evidence on the posterior mean, in percentage points. Direction is the
// held-out item's own support flag, not the sign of Impact; the two can
// disagree when importance weighting dominates.
type SensitivityItem struct {
	CriterionID string               `json:"criterion_id"`
	Name        string               `json:"name,omitempty"`
	Impact      float64              `json:"impact"`
	Direction   SensitivityDirection `json:"direction"`
}

// PosteriorResult is the full output of one inference call. Posterior and
// the credible bounds are percentages in [0,100]. WinPercentage and
// Sensitivity are populated only for the evaluation form.
type PosteriorResult struct {
	Posterior     float64               `json:"posterior"`
	CredibleLow   float64               `json:"credible_low"`
	CredibleHigh  float64               `json:"credible_high"`
	WinPercentage *float64              `json:"win_percentage,omitempty"`
	Convergence   ConvergenceDiagnostic `json:"convergence"`
	Sensitivity   []SensitivityItem     `json:"sensitivity,omitempty"`
	Params        BetaParams            `json:"params"`
	Samples       []float64             `json:"-"`
}
