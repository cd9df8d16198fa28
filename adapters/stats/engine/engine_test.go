package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"govalue/domain/compare"
	"govalue/domain/core"
	"govalue/internal/testkit"
)

const testSamples = 100_000

func newTestEngine() *MonteCarloEngine {
	return NewMonteCarloEngine(NewSeededRNG())
}

func TestCompare_ProbabilitiesSumToOne(t *testing.T) {
	eng := newTestEngine()

	result, err := eng.Compare(context.Background(),
		testkit.WirelessHeadphonesA(), testkit.WirelessHeadphonesB(),
		testkit.DeterministicOptions(testSamples))
	require.NoError(t, err)

	sum := result.ProbFirstBetter + result.ProbSecondBetter + result.ProbTie
	assert.InDelta(t, 1.0, sum, 1e-9)

	for _, p := range []float64{result.ProbFirstBetter, result.ProbSecondBetter, result.ProbTie} {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}

	// continuous sampling: exact floating-point ties are vanishingly rare
	assert.Less(t, result.ProbTie, 1e-3)
}

func TestCompare_DeterministicWithSeed(t *testing.T) {
	eng := newTestEngine()
	a, b := testkit.WirelessHeadphonesA(), testkit.WirelessHeadphonesB()
	opts := testkit.DeterministicOptions(testSamples)

	first, err := eng.Compare(context.Background(), a, b, opts)
	require.NoError(t, err)
	second, err := eng.Compare(context.Background(), a, b, opts)
	require.NoError(t, err)

	assert.Equal(t, first.ProbFirstBetter, second.ProbFirstBetter)
	assert.Equal(t, first.ProbSecondBetter, second.ProbSecondBetter)
	assert.Equal(t, first.MeanQuality, second.MeanQuality)
	assert.Equal(t, first.MeanValue, second.MeanValue)
	assert.Equal(t, first.ValueInterval95, second.ValueInterval95)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCompare_Symmetry(t *testing.T) {
	eng := newTestEngine()
	a, b := testkit.WirelessHeadphonesA(), testkit.WirelessHeadphonesB()
	opts := testkit.DeterministicOptions(testSamples)

	forward, err := eng.Compare(context.Background(), a, b, opts)
	require.NoError(t, err)
	reversed, err := eng.Compare(context.Background(), b, a, opts)
	require.NoError(t, err)

	// same seed, arguments swapped: win probabilities swap within
	// Monte Carlo tolerance
	assert.InDelta(t, forward.ProbFirstBetter, reversed.ProbSecondBetter, 0.01)
	assert.InDelta(t, forward.ProbSecondBetter, reversed.ProbFirstBetter, 0.01)
	assert.InDelta(t, forward.MeanQuality[0], reversed.MeanQuality[1], 0.01)
	assert.InDelta(t, forward.MeanValue[0], reversed.MeanValue[1], 1e-4)
}

func TestCompare_HeadphonesScenario(t *testing.T) {
	eng := newTestEngine()
	a, b := testkit.WirelessHeadphonesA(), testkit.WirelessHeadphonesB()

	result, err := eng.Compare(context.Background(), a, b, testkit.DeterministicOptions(testSamples))
	require.NoError(t, err)

	// posterior means: 1183/1409 and 111/127
	assert.InDelta(t, 0.84, result.MeanQuality[0], 0.01)
	assert.InDelta(t, 0.87, result.MeanQuality[1], 0.01)

	// B is cheaper with a comparable quality posterior, so it wins on
	// value almost surely
	assert.Greater(t, result.ProbSecondBetter, 0.99)
	assert.Equal(t, compare.VerdictSecond, result.Verdict())

	assert.Equal(t, [2]int{1182, 110}, result.Successes)
	assert.Equal(t, [2]int{225, 15}, result.Failures)

	// value intervals bracket the value means
	for i := 0; i < 2; i++ {
		assert.Less(t, result.ValueInterval95[i].Low, result.MeanValue[i])
		assert.Greater(t, result.ValueInterval95[i].High, result.MeanValue[i])
	}
}

func TestCompare_MonotoneInPrice(t *testing.T) {
	eng := newTestEngine()
	b := testkit.WirelessHeadphonesB()
	opts := testkit.DeterministicOptions(testSamples)

	// holding review data fixed, a lower price strictly raises the
	// first product's win probability
	prices := []float64{176, 172, 168}
	var prev float64
	for i, price := range prices {
		a := testkit.WirelessHeadphonesA()
		a.Price = price
		result, err := eng.Compare(context.Background(), a, b, opts)
		require.NoError(t, err)
		if i > 0 {
			assert.Greater(t, result.ProbFirstBetter, prev,
				"price %.0f should beat price %.0f", price, prices[i-1])
		}
		prev = result.ProbFirstBetter
	}
}

func TestCompare_DegenerateZeroSuccesses(t *testing.T) {
	eng := newTestEngine()
	a := compare.ProductInput{Price: 10, FiveStar: 0, FourStar: 0, TotalReviews: 1000}
	b := testkit.WirelessHeadphonesB()

	result, err := eng.Compare(context.Background(), a, b, testkit.DeterministicOptions(testSamples))
	require.NoError(t, err)

	// posterior Beta(1, 1001) concentrates near zero
	assert.Less(t, result.MeanQuality[0], 0.005)
	assert.Greater(t, result.ProbSecondBetter, 0.999)
}

func TestCompare_FailsFastOnInvalidInput(t *testing.T) {
	eng := newTestEngine()
	good := testkit.WirelessHeadphonesB()

	tests := []struct {
		name     string
		a, b     compare.ProductInput
		opts     compare.Options
		sentinel error
	}{
		{
			name:     "invalid price",
			a:        compare.ProductInput{Price: 0, FiveStar: 1, TotalReviews: 2},
			b:        good,
			opts:     compare.Options{SampleCount: 100},
			sentinel: core.ErrInvalidPrice,
		},
		{
			name:     "successes exceed total",
			a:        good,
			b:        compare.ProductInput{Price: 10, FiveStar: 10, FourStar: 5, TotalReviews: 10},
			opts:     compare.Options{SampleCount: 100},
			sentinel: core.ErrInvalidReviewCounts,
		},
		{
			name:     "negative sample count",
			a:        good,
			b:        good,
			opts:     compare.Options{SampleCount: -5},
			sentinel: core.ErrInvalidSampleCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := eng.Compare(context.Background(), tt.a, tt.b, tt.opts)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.sentinel)

			var verr *compare.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestCompare_ZeroSampleCountUsesDefault(t *testing.T) {
	eng := newTestEngine()

	result, err := eng.Compare(context.Background(),
		testkit.WirelessHeadphonesA(), testkit.WirelessHeadphonesB(),
		compare.Options{Seed: testkit.FixedSeed})
	require.NoError(t, err)
	assert.Equal(t, compare.DefaultSampleCount, result.SampleCount)
}

func TestCompare_EntropyPathWithFixedRNG(t *testing.T) {
	// seed 0 routes through the entropy source; the testkit double pins
	// it so the run is still reproducible
	eng := NewMonteCarloEngine(testkit.FixedRNG{})
	a, b := testkit.WirelessHeadphonesA(), testkit.WirelessHeadphonesB()
	opts := compare.Options{SampleCount: 10_000}

	first, err := eng.Compare(context.Background(), a, b, opts)
	require.NoError(t, err)
	second, err := eng.Compare(context.Background(), a, b, opts)
	require.NoError(t, err)

	assert.Equal(t, first.ProbFirstBetter, second.ProbFirstBetter)
	assert.Zero(t, first.Seed)
}

func TestCompare_CancelledContext(t *testing.T) {
	eng := newTestEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := eng.Compare(ctx,
		testkit.WirelessHeadphonesA(), testkit.WirelessHeadphonesB(),
		testkit.DeterministicOptions(testSamples))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSeededRNG_StreamsAreIndependent(t *testing.T) {
	rng := NewSeededRNG()

	a := rng.SeededSource(streamFirst, testkit.FixedSeed)
	b := rng.SeededSource(streamSecond, testkit.FixedSeed)
	assert.NotEqual(t, a.Uint64(), b.Uint64())

	// same name and seed reproduce the same stream
	c := rng.SeededSource(streamFirst, testkit.FixedSeed)
	d := rng.SeededSource(streamFirst, testkit.FixedSeed)
	for i := 0; i < 16; i++ {
		require.Equal(t, c.Uint64(), d.Uint64())
	}
}

func TestCompare_EntropyPathDiffers(t *testing.T) {
	// two unseeded runs should not reproduce each other's samples
	eng := newTestEngine()
	a, b := testkit.WirelessHeadphonesA(), testkit.WirelessHeadphonesB()

	opts := compare.Options{SampleCount: 50_000}
	first, err := eng.Compare(context.Background(), a, b, opts)
	require.NoError(t, err)
	second, err := eng.Compare(context.Background(), a, b, opts)
	require.NoError(t, err)
	assert.NotEqual(t, first.MeanValue, second.MeanValue)
}
