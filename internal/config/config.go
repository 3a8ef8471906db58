package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by CREDENCE_ENV (or .env by default).
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("CREDENCE_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Load env file (ignore error if file doesn't exist)
	_ = godotenv.Load(envFile)

	return nil
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

// SampleCount returns the Monte Carlo sample count per inference.
// Defaults to 10000 if not set.
func SampleCount() int {
	n, err := strconv.Atoi(os.Getenv("CREDENCE_SAMPLE_COUNT"))
	if err != nil || n <= 0 {
		return 10000
	}
	return n
}

// EvidenceStrengthScale returns the pseudo-count scale applied to evidence.
// Defaults to 5 if not set.
func EvidenceStrengthScale() float64 {
	s, err := strconv.ParseFloat(os.Getenv("CREDENCE_EVIDENCE_SCALE"), 64)
	if err != nil || s <= 0 {
		return 5
	}
	return s
}

// PriorConcentration returns how tightly the prior Beta clusters around the
// stated prior probability. Defaults to 10 if not set.
func PriorConcentration() float64 {
	c, err := strconv.ParseFloat(os.Getenv("CREDENCE_PRIOR_CONCENTRATION"), 64)
	if err != nil || c <= 0 {
		return 10
	}
	return c
}

// UseQuasiRandom reports whether the variance-reduced quasi-random sampler
// is enabled. Defaults to true; set CREDENCE_QUASI_RANDOM=false to force
// direct pseudo-random draws.
func UseQuasiRandom() bool {
	v, err := strconv.ParseBool(os.Getenv("CREDENCE_QUASI_RANDOM"))
	if err != nil {
		return true
	}
	return v
}

// Seed returns the fixed random seed for reproducible runs.
// 0 (the default) means non-deterministic.
func Seed() uint64 {
	s, err := strconv.ParseUint(os.Getenv("CREDENCE_SEED"), 10, 64)
	if err != nil {
		return 0
	}
	return s
}
