package service

import (
	"math"

	"github.com/credencehq/credence/internal/domain"
)

const (
	DefaultPriorConcentration = 10.0

	// MinBetaParam keeps both shape parameters away from the U-shaped
	// regime (alpha, beta < 1 at both ends), where density blows up at the
	// boundaries and quantile/rejection sampling loses stability.
	MinBetaParam = 0.5
)

// PriorParams converts a subjective prior percentage and a concentration
// into Beta shape parameters. The unclamped mean alpha/(alpha+beta)
// reproduces the prior exactly; higher concentration clusters the
// distribution more tightly around it.
//
// Callers keep priorPercent strictly inside (0, 100); values at the
// boundaries are absorbed by the parameter floor rather than rejected.
func PriorParams(priorPercent, concentration float64) domain.BetaParams {
	if concentration <= 0 {
		concentration = DefaultPriorConcentration
	}
	p := priorPercent / 100
	return domain.BetaParams{
		Alpha: math.Max(MinBetaParam, p*concentration),
		Beta:  math.Max(MinBetaParam, (1-p)*concentration),
	}
}
