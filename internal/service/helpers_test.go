package service

import (
	"testing"

	"go.uber.org/zap"

	"github.com/credencehq/credence/internal/domain"
)

// SampleBetaForTest draws a reproducible quasi-random sample set.
func SampleBetaForTest(t *testing.T, alpha, beta float64, n int) []float64 {
	t.Helper()
	return SampleBeta(domain.BetaParams{Alpha: alpha, Beta: beta}, n, true, testRNG(1234), zap.NewNop())
}
