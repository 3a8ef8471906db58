package service

import (
	"math"
	"math/rand/v2"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/credencehq/credence/internal/domain"
)

const (
	DefaultSampleCount = 10000

	// Regime bounds: inside them the Beta quantile function is well
	// conditioned and inverse-CDF sampling is used; outside, log-space
	// rejection takes over.
	moderateParamMin = 0.1
	moderateParamMax = 1000.0

	// Rejection sampling gives up after this many proposals per requested
	// sample and hands off to the next strategy.
	rejectionAttemptsPerSample = 100

	haltonOffsetRange = 1000

	// unitEpsilon keeps emitted samples strictly inside (0,1).
	unitEpsilon = 1e-12
)

// sampleStrategy is one step of the sampler's ordered degradation chain.
// Strategies are tried in order until one reports success, which keeps each
// fallback visible and independently testable.
type sampleStrategy struct {
	name string
	draw func() ([]float64, bool)
}

// SampleBeta draws n values from Beta(params), all strictly inside (0,1).
//
// In the moderate parameter regime it maps a randomly offset base-2 Halton
// sequence through the Beta quantile function (or draws directly when
// quasiRandom is off). For extreme parameters it runs log-space
// acceptance-rejection against a uniform proposal, falling back to direct
// draws and finally to the distribution mode; the last fallback trades
// accuracy for termination and is logged as such.
func SampleBeta(params domain.BetaParams, n int, quasiRandom bool, rng *rand.Rand, logger *zap.Logger) []float64 {
	if n <= 0 {
		n = DefaultSampleCount
	}
	dist := distuv.Beta{Alpha: params.Alpha, Beta: params.Beta, Src: rng}

	if moderateRegime(params) {
		if quasiRandom {
			return quantileSamples(dist, n, rng)
		}
		samples, _ := directSamples(dist, n)
		return samples
	}

	strategies := []sampleStrategy{
		{name: "log_rejection", draw: func() ([]float64, bool) { return rejectionSamples(params, n, rng) }},
		{name: "direct", draw: func() ([]float64, bool) { return directSamples(dist, n) }},
		{name: "mode", draw: func() ([]float64, bool) { return modeSamples(params, n), true }},
	}
	for i, strat := range strategies {
		samples, ok := strat.draw()
		if !ok {
			continue
		}
		if i > 0 {
			logger.Warn("beta sampler degraded to fallback strategy",
				zap.String("strategy", strat.name),
				zap.Float64("alpha", params.Alpha),
				zap.Float64("beta", params.Beta))
		}
		return samples
	}
	return modeSamples(params, n)
}

func moderateRegime(params domain.BetaParams) bool {
	return params.Alpha >= moderateParamMin && params.Alpha <= moderateParamMax &&
		params.Beta >= moderateParamMin && params.Beta <= moderateParamMax
}

// quantileSamples is the variance-reduced path: low-discrepancy uniforms
// pushed through the inverse CDF.
func quantileSamples(dist distuv.Beta, n int, rng *rand.Rand) []float64 {
	offset := rng.IntN(haltonOffsetRange)
	samples := haltonSequence(n, offset)
	for i, u := range samples {
		samples[i] = clampOpenUnit(dist.Quantile(u))
	}
	return samples
}

// directSamples draws pseudo-random variates. It reports failure if any
// draw comes back non-finite, which only happens for pathological shape
// parameters.
func directSamples(dist distuv.Beta, n int) ([]float64, bool) {
	samples := make([]float64, n)
	for i := range samples {
		x := dist.Rand()
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, false
		}
		samples[i] = clampOpenUnit(x)
	}
	return samples, true
}

// rejectionSamples runs acceptance-rejection with a uniform proposal,
// comparing log densities relative to the mode so the ratio stays finite for
// shape parameters far beyond where the raw density overflows.
func rejectionSamples(params domain.BetaParams, n int, rng *rand.Rand) ([]float64, bool) {
	mode := betaMode(params)
	logPDFAtMode := logBetaPDF(mode, params)
	if math.IsNaN(logPDFAtMode) || math.IsInf(logPDFAtMode, 0) {
		return nil, false
	}

	samples := make([]float64, 0, n)
	maxAttempts := n * rejectionAttemptsPerSample
	for attempts := 0; attempts < maxAttempts && len(samples) < n; attempts++ {
		x := rng.Float64()
		if x <= 0 || x >= 1 {
			continue
		}
		logRatio := logBetaPDF(x, params) - logPDFAtMode
		if math.Log(rng.Float64()) < logRatio {
			samples = append(samples, x)
		}
	}
	if len(samples) < n {
		return nil, false
	}
	return samples, true
}

// modeSamples emits the mode n times. Last-resort output only: it carries no
// posterior spread at all.
func modeSamples(params domain.BetaParams, n int) []float64 {
	mode := betaMode(params)
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = mode
	}
	return samples
}

// betaMode returns the interior mode when both parameters exceed 1,
// otherwise it snaps toward the boundary favored by the dominant parameter.
// The snap stays off the exact boundary so the log density there is finite.
func betaMode(params domain.BetaParams) float64 {
	if params.Alpha > 1 && params.Beta > 1 {
		return (params.Alpha - 1) / (params.Alpha + params.Beta - 2)
	}
	if params.Alpha >= params.Beta {
		return 0.99
	}
	return 0.01
}

// logBetaPDF evaluates the Beta log density via log-gamma. The normalizer is
// never formed as a gamma-function product, which overflows past shape
// parameters of roughly 150.
func logBetaPDF(x float64, params domain.BetaParams) float64 {
	if x <= 0 || x >= 1 {
		return math.Inf(-1)
	}
	la, _ := math.Lgamma(params.Alpha)
	lb, _ := math.Lgamma(params.Beta)
	lab, _ := math.Lgamma(params.Alpha + params.Beta)
	logBetaFn := la + lb - lab
	return (params.Alpha-1)*math.Log(x) + (params.Beta-1)*math.Log(1-x) - logBetaFn
}

func clampOpenUnit(x float64) float64 {
	if x < unitEpsilon {
		return unitEpsilon
	}
	if x > 1-unitEpsilon {
		return 1 - unitEpsilon
	}
	return x
}
