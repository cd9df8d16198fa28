package engine

import (
	"context"
	"time"

	"govalue/domain/compare"
	"govalue/domain/core"
	"govalue/ports"

	"github.com/montanaflynn/stats"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/distuv"
)

// stream names for the two posterior sample arrays; derived per-name
// from the base seed so a shared seed still yields independent draws
const (
	streamFirst  = "posterior_first"
	streamSecond = "posterior_second"
)

// MonteCarloEngine implements ports.ComparatorPort by sampling each
// product's Beta posterior and comparing the value (p/price) arrays
// empirically.
type MonteCarloEngine struct {
	rng ports.RNGPort
}

// NewMonteCarloEngine creates a comparison engine backed by the given
// random source factory
func NewMonteCarloEngine(rng ports.RNGPort) *MonteCarloEngine {
	return &MonteCarloEngine{rng: rng}
}

var _ ports.ComparatorPort = (*MonteCarloEngine)(nil)

// productSamples holds one product's posterior draws and derived values
type productSamples struct {
	quality []float64 // p_i ~ Beta(alpha, beta)
	value   []float64 // p_i / price
}

// Compare validates both products, draws sampleCount posterior samples
// per product, and returns the empirical comparison. No samples are
// drawn unless every input is valid.
func (e *MonteCarloEngine) Compare(ctx context.Context, a, b compare.ProductInput, opts compare.Options) (*compare.ComparisonResult, error) {
	if err := compare.ValidatePair(a, b); err != nil {
		return nil, err
	}
	n := opts.SampleCount
	if n == 0 {
		n = compare.DefaultSampleCount
	}
	if err := compare.ValidateSampleCount(n); err != nil {
		return nil, err
	}

	srcA := e.source(streamFirst, opts.Seed)
	srcB := e.source(streamSecond, opts.Seed)

	postA := compare.NewPosterior(a)
	postB := compare.NewPosterior(b)

	var first, second productSamples
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		first, err = drawSamples(gctx, postA, a.Price, srcA, n)
		return err
	})
	g.Go(func() error {
		var err error
		second, err = drawSamples(gctx, postB, b.Price, srcB, n)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var firstWins, secondWins int
	for i := 0; i < n; i++ {
		switch {
		case first.value[i] > second.value[i]:
			firstWins++
		case second.value[i] > first.value[i]:
			secondWins++
		}
	}

	probFirst := float64(firstWins) / float64(n)
	probSecond := float64(secondWins) / float64(n)
	// exact floating-point ties; the remainder keeps the three
	// probabilities summing to 1. Clamped so rounding in the
	// subtraction cannot push it below zero.
	probTie := 1 - probFirst - probSecond
	if probTie < 0 {
		probTie = 0
	}

	meanQualityA, _ := stats.Mean(first.quality)
	meanQualityB, _ := stats.Mean(second.quality)
	meanValueA, _ := stats.Mean(first.value)
	meanValueB, _ := stats.Mean(second.value)

	intervalA, err := percentileInterval(first.value)
	if err != nil {
		return nil, err
	}
	intervalB, err := percentileInterval(second.value)
	if err != nil {
		return nil, err
	}

	return &compare.ComparisonResult{
		ID:               core.NewComparisonID(),
		ProbFirstBetter:  probFirst,
		ProbSecondBetter: probSecond,
		ProbTie:          probTie,
		MeanQuality:      [2]float64{meanQualityA, meanQualityB},
		MeanValue:        [2]float64{meanValueA, meanValueB},
		ValueInterval95:  [2]compare.Interval{intervalA, intervalB},
		Successes:        [2]int{a.Successes(), b.Successes()},
		Failures:         [2]int{a.Failures(), b.Failures()},
		SampleCount:      n,
		Seed:             opts.Seed,
		ComputedAt:       time.Now().UTC(),
	}, nil
}

func (e *MonteCarloEngine) source(stream string, seed int64) rand.Source {
	if seed == 0 {
		return e.rng.EntropySource()
	}
	return e.rng.SeededSource(stream, seed)
}

// drawSamples fills one product's posterior and value arrays
func drawSamples(ctx context.Context, post compare.Posterior, price float64, src rand.Source, n int) (productSamples, error) {
	dist := distuv.Beta{Alpha: post.Alpha, Beta: post.Beta, Src: src}

	s := productSamples{
		quality: make([]float64, n),
		value:   make([]float64, n),
	}
	for i := 0; i < n; i++ {
		if i%65536 == 0 {
			if err := ctx.Err(); err != nil {
				return productSamples{}, err
			}
		}
		p := dist.Rand()
		s.quality[i] = p
		s.value[i] = p / price
	}
	return s, nil
}

// percentileInterval computes the [2.5, 97.5] percentile interval of the
// sampled values
func percentileInterval(values []float64) (compare.Interval, error) {
	low, err := stats.Percentile(values, 2.5)
	if err != nil {
		return compare.Interval{}, err
	}
	high, err := stats.Percentile(values, 97.5)
	if err != nil {
		return compare.Interval{}, err
	}
	return compare.Interval{Low: low, High: high}, nil
}
