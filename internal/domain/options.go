package domain

import "math/rand/v2"

// InferenceOptions tunes one posterior computation. The zero value (or a nil
// pointer) means "use defaults"; the service fills unset fields from its
// Default* constants. UseQuasiRandom is a pointer because its default is true.
type InferenceOptions struct {
	EvidenceStrengthScale      float64
	PriorConcentration         float64
	ApplyCorrelationAdjustment bool
	UseQuasiRandom             *bool
	SampleCount                int

	// Src is the random source consumed by sequence-offset selection and
	// rejection sampling. Nil means a time-seeded PCG; inject a fixed-seed
	// source for reproducible runs.
	Src rand.Source
}

// QuasiRandomEnabled resolves the UseQuasiRandom tri-state.
func (o *InferenceOptions) QuasiRandomEnabled() bool {
	if o == nil || o.UseQuasiRandom == nil {
		return true
	}
	return *o.UseQuasiRandom
}
