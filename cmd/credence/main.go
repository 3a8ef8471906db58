package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/credencehq/credence/internal/buildconfig"
	"github.com/credencehq/credence/internal/config"
	"github.com/credencehq/credence/internal/domain"
	"github.com/credencehq/credence/internal/service"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	compact := flag.Bool("compact", false, "emit compact JSON instead of indented")
	flag.Parse()

	if *showVersion {
		fmt.Println(buildconfig.VersionString())
		return
	}

	if err := config.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger := newLogger(config.LogLevel())
	defer func() { _ = logger.Sync() }()

	if flag.NArg() != 1 {
		logger.Fatal("usage: credence [flags] <decision.yaml>")
	}

	raw, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		logger.Fatal("failed to read decision file", zap.Error(err))
	}

	var doc domain.DecisionDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		logger.Fatal("failed to parse decision file", zap.Error(err))
	}
	if doc.Prior <= 0 || doc.Prior >= 100 {
		logger.Fatal("prior must be strictly between 0 and 100",
			zap.Float64("prior", doc.Prior))
	}

	opts := buildOptions(doc.Options)
	svc := service.NewPosteriorService(logger)

	var result *domain.PosteriorResult
	if len(doc.Evaluations) > 0 {
		result = svc.FromEvaluations(doc.Prior, doc.Evaluations, doc.Criteria, doc.CorrelationGroups, opts)
	} else {
		result = svc.FromEvidence(doc.Prior, doc.Evidence, opts)
	}

	var out []byte
	if *compact {
		out, err = json.Marshal(result)
	} else {
		out, err = json.MarshalIndent(result, "", "  ")
	}
	if err != nil {
		logger.Fatal("failed to encode result", zap.Error(err))
	}
	fmt.Println(string(out))
}

// buildOptions layers file options over env defaults. A non-zero seed (file
// wins over env) makes the run reproducible.
func buildOptions(docOpts *domain.DocumentOptions) *domain.InferenceOptions {
	opts := docOpts.ToInferenceOptions()
	if opts == nil {
		opts = &domain.InferenceOptions{}
	}
	if opts.SampleCount <= 0 {
		opts.SampleCount = config.SampleCount()
	}
	if opts.EvidenceStrengthScale <= 0 {
		opts.EvidenceStrengthScale = config.EvidenceStrengthScale()
	}
	if opts.PriorConcentration <= 0 {
		opts.PriorConcentration = config.PriorConcentration()
	}
	if opts.UseQuasiRandom == nil {
		quasi := config.UseQuasiRandom()
		opts.UseQuasiRandom = &quasi
	}

	seed := config.Seed()
	if docOpts != nil && docOpts.Seed != 0 {
		seed = docOpts.Seed
	}
	if seed != 0 {
		opts.Src = rand.NewPCG(seed, seed)
	}
	return opts
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
