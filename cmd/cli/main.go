package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"govalue/adapters/excel"
	"govalue/adapters/stats/engine"
	"govalue/app"
	"govalue/domain/compare"
	"govalue/internal"
	"govalue/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "govalue-cli",
		Short: "Bayesian value comparison of two products from price and review counts",
	}

	rootCmd.AddCommand(
		newCompareCmd(),
		newBatchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newService(samples int) *app.CompareService {
	sampling := config.SamplingConfig{
		DefaultSamples: compare.DefaultSampleCount,
		MaxSamples:     10 * compare.DefaultSampleCount,
	}
	if samples > sampling.MaxSamples {
		sampling.MaxSamples = samples
	}
	logger := internal.NewLogger(internal.LogLevelWarn)
	return app.NewCompareService(engine.NewMonteCarloEngine(engine.NewSeededRNG()), sampling, logger)
}

func newCompareCmd() *cobra.Command {
	var a, b compare.ProductInput
	var samples int
	var seed int64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two products' posterior value distributions",
		Long: `Compare two products on quality-per-price using a Beta-Bernoulli
posterior over review outcomes and Monte Carlo sampling.

Example: govalue-cli compare --price-a 209 --five-a 1000 --four-a 182 --total-a 1407 \
    --price-b 179 --five-b 95 --four-b 15 --total-b 125 --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newService(samples)
			result, err := service.Compare(cmd.Context(), a, b, compare.Options{SampleCount: samples, Seed: seed})
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			printResult(cmd, "product A", "product B", result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&a.Price, "price-a", 209.00, "Price of product A")
	cmd.Flags().IntVar(&a.FiveStar, "five-a", 1000, "5-star review count of product A")
	cmd.Flags().IntVar(&a.FourStar, "four-a", 182, "4-star review count of product A")
	cmd.Flags().IntVar(&a.TotalReviews, "total-a", 1407, "Total review count of product A")
	cmd.Flags().Float64Var(&b.Price, "price-b", 179.00, "Price of product B")
	cmd.Flags().IntVar(&b.FiveStar, "five-b", 95, "5-star review count of product B")
	cmd.Flags().IntVar(&b.FourStar, "four-b", 15, "4-star review count of product B")
	cmd.Flags().IntVar(&b.TotalReviews, "total-b", 125, "Total review count of product B")
	cmd.Flags().IntVar(&samples, "samples", 0, "Monte Carlo draws per product (0 = default 100000)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible runs (0 = entropy)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the raw result as JSON")

	return cmd
}

func newBatchCmd() *cobra.Command {
	var samples int
	var seed int64
	var outPath string

	cmd := &cobra.Command{
		Use:   "batch [workbook.xlsx]",
		Short: "Run one comparison per workbook row",
		Long: `Read product pairs from an xlsx workbook (columns price_a, five_star_a,
four_star_a, total_reviews_a and the _b equivalents; optional label_a /
label_b) and run each row as an independent pairwise comparison.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := excel.NewReader(args[0]).ReadPairs()
			if err != nil {
				return err
			}

			service := newService(samples)
			results := make([]*compare.ComparisonResult, 0, len(pairs))
			for _, pair := range pairs {
				result, err := service.Compare(cmd.Context(), pair.First, pair.Second, compare.Options{SampleCount: samples, Seed: seed})
				if err != nil {
					return fmt.Errorf("row %d: %w", pair.Row, err)
				}
				results = append(results, result)
				printResult(cmd, label(pair.LabelA, "A"), label(pair.LabelB, "B"), result)
			}

			if outPath != "" {
				if err := excel.WriteResults(outPath, pairs, results); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %d results to %s\n", len(results), outPath)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&samples, "samples", 0, "Monte Carlo draws per product (0 = default 100000)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible runs (0 = entropy)")
	cmd.Flags().StringVar(&outPath, "out", "", "Write results to this xlsx file")

	return cmd
}

func label(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func printResult(cmd *cobra.Command, nameA, nameB string, r *compare.ComparisonResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s wins: %.1f%%   %s wins: %.1f%%   tie: %.3f%%\n",
		nameA, 100*r.ProbFirstBetter, nameB, 100*r.ProbSecondBetter, 100*r.ProbTie)
	fmt.Fprintf(out, "  mean quality:   %.4f vs %.4f\n", r.MeanQuality[0], r.MeanQuality[1])
	fmt.Fprintf(out, "  mean value:     %.6f vs %.6f\n", r.MeanValue[0], r.MeanValue[1])
	fmt.Fprintf(out, "  95%% value CI:   [%.6f, %.6f] vs [%.6f, %.6f]\n",
		r.ValueInterval95[0].Low, r.ValueInterval95[0].High,
		r.ValueInterval95[1].Low, r.ValueInterval95[1].High)
	fmt.Fprintf(out, "  succ/fail:      %d/%d vs %d/%d\n",
		r.Successes[0], r.Failures[0], r.Successes[1], r.Failures[1])

	switch r.Verdict() {
	case compare.VerdictFirst:
		fmt.Fprintf(out, "  recommendation: %s\n", nameA)
	case compare.VerdictSecond:
		fmt.Fprintf(out, "  recommendation: %s\n", nameB)
	default:
		fmt.Fprintln(out, "  recommendation: indifferent")
	}
}
