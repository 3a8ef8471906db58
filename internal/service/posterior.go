package service

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/credencehq/credence/internal/domain"
)

// PosteriorService runs the full inference pipeline: prior parameterization,
// evidence aggregation, posterior sampling, diagnostics and sensitivity.
// Every call owns its parameters, sample buffer and random stream, so a
// single service is safe for concurrent callers.
type PosteriorService struct {
	logger *zap.Logger
}

func NewPosteriorService(logger *zap.Logger) *PosteriorService {
	return &PosteriorService{logger: logger}
}

type resolvedOptions struct {
	strengthScale    float64
	concentration    float64
	applyCorrelation bool
	quasiRandom      bool
	sampleCount      int
	rng              *rand.Rand
}

func resolveOptions(opts *domain.InferenceOptions) resolvedOptions {
	cfg := resolvedOptions{
		strengthScale: DefaultEvidenceStrengthScale,
		concentration: DefaultPriorConcentration,
		quasiRandom:   true,
		sampleCount:   DefaultSampleCount,
	}
	var src rand.Source
	if opts != nil {
		if opts.EvidenceStrengthScale > 0 {
			cfg.strengthScale = opts.EvidenceStrengthScale
		}
		if opts.PriorConcentration > 0 {
			cfg.concentration = opts.PriorConcentration
		}
		if opts.SampleCount > 0 {
			cfg.sampleCount = opts.SampleCount
		}
		cfg.applyCorrelation = opts.ApplyCorrelationAdjustment
		cfg.quasiRandom = opts.QuasiRandomEnabled()
		src = opts.Src
	}
	if src == nil {
		seed := uint64(time.Now().UnixNano())
		src = rand.NewPCG(seed, seed)
	}
	cfg.rng = rand.New(src)
	return cfg
}

// FromEvidence computes the posterior for the simple evidence-item form.
// The result carries the posterior percentage, the 95% credible interval,
// the raw samples and the convergence diagnostic.
func (s *PosteriorService) FromEvidence(priorPercent float64, items []domain.EvidenceItem, opts *domain.InferenceOptions) *domain.PosteriorResult {
	evidence := make([]domain.Evidence, 0, len(items))
	for _, item := range items {
		evidence = append(evidence, domain.ItemEvidence(item))
	}
	return s.compute(priorPercent, evidence, nil, nil, opts, false)
}

// FromEvaluations computes the posterior for the criterion-evaluation form,
// additionally reporting the win percentage and the leave-one-out
// sensitivity ranking.
func (s *PosteriorService) FromEvaluations(priorPercent float64, evals []domain.CriterionEvaluation, criteria []domain.Criterion, groups []domain.CorrelationGroup, opts *domain.InferenceOptions) *domain.PosteriorResult {
	evidence := make([]domain.Evidence, 0, len(evals))
	for _, eval := range evals {
		evidence = append(evidence, domain.EvaluationEvidence(eval))
	}
	return s.compute(priorPercent, evidence, CriteriaIndex(criteria), groups, opts, true)
}

func (s *PosteriorService) compute(priorPercent float64, evidence []domain.Evidence, criteria map[string]domain.Criterion, groups []domain.CorrelationGroup, opts *domain.InferenceOptions, evaluationForm bool) *domain.PosteriorResult {
	cfg := resolveOptions(opts)
	runID := uuid.New()

	prior := PriorParams(priorPercent, cfg.concentration)

	var corrScales map[string]float64
	if cfg.applyCorrelation {
		corrScales = CorrelationScales(groups)
	}
	params := ApplyEvidence(prior, evidence, criteria, cfg.strengthScale, corrScales)

	samples := SampleBeta(params, cfg.sampleCount, cfg.quasiRandom, cfg.rng, s.logger)
	meanPct, lowPct, highPct := SummarizeSamples(samples)

	result := &domain.PosteriorResult{
		Posterior:    meanPct,
		CredibleLow:  lowPct,
		CredibleHigh: highPct,
		Convergence:  Diagnose(samples),
		Params:       params,
		Samples:      samples,
	}

	if evaluationForm {
		win := WinPercentage(samples)
		result.WinPercentage = &win
		result.Sensitivity = SensitivityRanking(prior, evidence, criteria, meanPct, cfg.strengthScale, cfg.sampleCount, cfg.quasiRandom, cfg.rng, s.logger)
	}

	s.logger.Debug("posterior computed",
		zap.String("run_id", runID.String()),
		zap.Float64("prior_percent", priorPercent),
		zap.Float64("alpha", params.Alpha),
		zap.Float64("beta", params.Beta),
		zap.Float64("posterior", result.Posterior),
		zap.Int("evidence_count", len(evidence)),
		zap.Bool("converged", result.Convergence.IsConverged))

	return result
}
