package service

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/credencehq/credence/internal/domain"
)

const (
	// Geweke compares the mean of the first 10% of the sequence against the
	// last 50%; |z| below 1.96 means the two segments share a mean at 95%
	// confidence and the sequence is treated as stationary.
	gewekeFirstFraction = 0.10
	gewekeLastFraction  = 0.50
	gewekeThreshold     = 1.96

	// Below this many samples the lag-1 autocorrelation estimate is too
	// noisy to trust, so ESS is reported as n.
	minSamplesForESS = 10

	lagOneFloor = -0.5
	lagOneCeil  = 0.99
)

// SummarizeSamples reduces a sample sequence to the posterior point estimate
// and the 95% credible interval, all as percentages. Bounds are empirical
// order statistics at floor(n*0.025) and floor(n*0.975), not interpolated.
func SummarizeSamples(samples []float64) (meanPct, lowPct, highPct float64) {
	n := len(samples)
	if n == 0 {
		return 0, 0, 0
	}
	meanPct = stat.Mean(samples, nil) * 100

	sorted := make([]float64, n)
	copy(sorted, samples)
	sort.Float64s(sorted)

	lowIdx := int(float64(n) * 0.025)
	highIdx := int(float64(n) * 0.975)
	if highIdx >= n {
		highIdx = n - 1
	}
	return meanPct, sorted[lowIdx] * 100, sorted[highIdx] * 100
}

// WinPercentage is the fraction of samples above 0.5, as a percentage
// rounded to the nearest integer.
func WinPercentage(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	wins := 0
	for _, x := range samples {
		if x > 0.5 {
			wins++
		}
	}
	return math.Round(100 * float64(wins) / float64(len(samples)))
}

// Diagnose computes the convergence diagnostics for one sample sequence.
func Diagnose(samples []float64) domain.ConvergenceDiagnostic {
	z := gewekeZ(samples)
	ess := EffectiveSampleSize(samples)
	return domain.ConvergenceDiagnostic{
		GewekeZ:             z,
		IsConverged:         math.Abs(z) < gewekeThreshold,
		EffectiveSampleSize: ess,
		MonteCarloSE:        MonteCarloStandardError(samples, ess),
	}
}

// gewekeZ compares early and late segment means. Degenerate inputs
// (zero-variance segments, segments too short to estimate variance) yield
// NaN, which is normalized to 0 rather than propagated.
func gewekeZ(samples []float64) float64 {
	n := len(samples)
	n1 := int(float64(n) * gewekeFirstFraction)
	n2 := int(float64(n) * gewekeLastFraction)
	if n1 < 2 || n2 < 2 {
		return 0
	}
	first := samples[:n1]
	last := samples[n-n2:]

	m1, v1 := stat.MeanVariance(first, nil)
	m2, v2 := stat.MeanVariance(last, nil)

	z := (m1 - m2) / math.Sqrt(v1/float64(n1)+v2/float64(n2))
	if math.IsNaN(z) {
		return 0
	}
	return z
}

// EffectiveSampleSize estimates n/(1+2*rho1) where rho1 is the lag-1
// autocorrelation, clamped to [-0.5, 0.99] for stability. The result is
// floored at 1 and rounded; sequences shorter than 10 report their own
// length.
func EffectiveSampleSize(samples []float64) int {
	n := len(samples)
	if n < minSamplesForESS {
		return n
	}
	rho := lagOneAutocorrelation(samples)
	if rho < lagOneFloor {
		rho = lagOneFloor
	}
	if rho > lagOneCeil {
		rho = lagOneCeil
	}
	ess := float64(n) / (1 + 2*rho)
	if math.IsNaN(ess) || math.IsInf(ess, 0) {
		ess = float64(n)
	}
	if ess < 1 {
		ess = 1
	}
	return int(math.Round(ess))
}

func lagOneAutocorrelation(samples []float64) float64 {
	n := len(samples)
	mean := stat.Mean(samples, nil)

	var num, den float64
	for i := 0; i < n; i++ {
		d := samples[i] - mean
		den += d * d
		if i < n-1 {
			num += d * (samples[i+1] - mean)
		}
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// MonteCarloStandardError is sqrt(sample variance / ESS): the uncertainty of
// the posterior mean estimate itself.
func MonteCarloStandardError(samples []float64, ess int) float64 {
	if len(samples) < 2 || ess < 1 {
		return 0
	}
	return math.Sqrt(stat.Variance(samples, nil) / float64(ess))
}
