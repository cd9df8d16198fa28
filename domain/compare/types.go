package compare

import (
	"time"

	"govalue/domain/core"
)

// DefaultSampleCount is the number of Monte Carlo draws per product when the
// caller does not specify one. Large enough that the standard error on a
// probability near 0.5 is about 0.16%.
const DefaultSampleCount = 100_000

// ProductInput holds the observed review data for a single product.
// Reviews of 4 or 5 stars are treated as successes, everything else as
// failures.
type ProductInput struct {
	Price        float64 `json:"price"`
	FiveStar     int     `json:"five_star"`
	FourStar     int     `json:"four_star"`
	TotalReviews int     `json:"total_reviews"`
}

// Successes returns the number of 4-or-5-star reviews
func (p ProductInput) Successes() int {
	return p.FiveStar + p.FourStar
}

// Failures returns the number of reviews below 4 stars
func (p ProductInput) Failures() int {
	return p.TotalReviews - p.Successes()
}

// Posterior is the Beta posterior over the latent quality probability p,
// a uniform Beta(1,1) prior updated by the observed review outcomes.
type Posterior struct {
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
}

// NewPosterior derives the conjugate posterior for a product's review data
func NewPosterior(p ProductInput) Posterior {
	return Posterior{
		Alpha: 1 + float64(p.Successes()),
		Beta:  1 + float64(p.Failures()),
	}
}

// Mean returns the posterior mean alpha/(alpha+beta)
func (d Posterior) Mean() float64 {
	return d.Alpha / (d.Alpha + d.Beta)
}

// Interval is a closed interval [Low, High]
type Interval struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Options controls a single comparison run
type Options struct {
	// SampleCount is the number of Monte Carlo draws per product.
	// Zero means DefaultSampleCount.
	SampleCount int `json:"sample_count,omitempty"`

	// Seed makes the run reproducible when nonzero. Zero draws the
	// seed from entropy.
	Seed int64 `json:"seed,omitempty"`
}

// Verdict summarizes which product the comparison favors
type Verdict string

const (
	VerdictFirst       Verdict = "first"
	VerdictSecond      Verdict = "second"
	VerdictIndifferent Verdict = "indifferent"
)

// ComparisonResult holds the Monte Carlo comparison of two products' value
// distributions (quality probability divided by price).
// INVARIANTS:
// - ProbFirstBetter + ProbSecondBetter + ProbTie == 1 within 1e-9
// - all three probabilities lie in [0, 1]
type ComparisonResult struct {
	ID core.ComparisonID `json:"id"`

	ProbFirstBetter  float64 `json:"prob_first_better"`
	ProbSecondBetter float64 `json:"prob_second_better"`
	ProbTie          float64 `json:"prob_tie"`

	// Index 0 is the first product, index 1 the second
	MeanQuality     [2]float64  `json:"mean_quality"`
	MeanValue       [2]float64  `json:"mean_value"`
	ValueInterval95 [2]Interval `json:"value_interval_95"`
	Successes       [2]int      `json:"successes"`
	Failures        [2]int      `json:"failures"`

	SampleCount int       `json:"sample_count"`
	Seed        int64     `json:"seed,omitempty"`
	ComputedAt  time.Time `json:"computed_at"`
}

// Verdict returns which product the posterior comparison favors
func (r *ComparisonResult) Verdict() Verdict {
	switch {
	case r.ProbFirstBetter > r.ProbSecondBetter:
		return VerdictFirst
	case r.ProbSecondBetter > r.ProbFirstBetter:
		return VerdictSecond
	default:
		return VerdictIndifferent
	}
}
