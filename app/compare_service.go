package app

import (
	"context"
	"time"

	"govalue/domain/compare"
	"govalue/internal"
	"govalue/internal/config"
	"govalue/ports"
)

// CompareService orchestrates a comparison request: applies configured
// sampling defaults and caps, delegates to the comparator port, and logs
// the outcome. It holds no state between invocations.
type CompareService struct {
	comparator ports.ComparatorPort
	sampling   config.SamplingConfig
	logger     *internal.Logger
}

// NewCompareService creates the comparison orchestration service
func NewCompareService(comparator ports.ComparatorPort, sampling config.SamplingConfig, logger *internal.Logger) *CompareService {
	return &CompareService{
		comparator: comparator,
		sampling:   sampling,
		logger:     logger,
	}
}

// Compare runs a single pairwise comparison. A zero sample count takes
// the configured default; counts above the configured maximum are capped
// to bound latency. Negative counts are rejected by the engine before
// any sampling.
func (s *CompareService) Compare(ctx context.Context, a, b compare.ProductInput, opts compare.Options) (*compare.ComparisonResult, error) {
	if opts.SampleCount == 0 {
		opts.SampleCount = s.sampling.DefaultSamples
	}
	if opts.SampleCount > s.sampling.MaxSamples {
		s.logger.Warn("sample count %d exceeds maximum, capping to %d", opts.SampleCount, s.sampling.MaxSamples)
		opts.SampleCount = s.sampling.MaxSamples
	}
	if opts.Seed == 0 {
		opts.Seed = s.sampling.Seed
	}

	started := time.Now()
	result, err := s.comparator.Compare(ctx, a, b, opts)
	if err != nil {
		s.logger.Debug("comparison rejected: %v", err)
		return nil, err
	}

	s.logger.Info("comparison %s: P(first)=%.4f P(second)=%.4f samples=%d took=%s",
		result.ID, result.ProbFirstBetter, result.ProbSecondBetter, result.SampleCount, time.Since(started))
	return result, nil
}
