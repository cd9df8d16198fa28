package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"govalue/domain/compare"
)

var resultHeader = []string{
	"row", "label_a", "label_b",
	"prob_a_better", "prob_b_better", "prob_tie",
	"mean_quality_a", "mean_quality_b",
	"mean_value_a", "mean_value_b",
	"value_ci95_a_low", "value_ci95_a_high",
	"value_ci95_b_low", "value_ci95_b_high",
	"verdict",
}

// WriteResults writes one result row per compared pair to a new workbook
func WriteResults(path string, pairs []PairRow, results []*compare.ComparisonResult) error {
	if len(pairs) != len(results) {
		return fmt.Errorf("pair/result count mismatch: %d vs %d", len(pairs), len(results))
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, name := range resultHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}

	for rowIdx, res := range results {
		pair := pairs[rowIdx]
		values := []interface{}{
			pair.Row, pair.LabelA, pair.LabelB,
			res.ProbFirstBetter, res.ProbSecondBetter, res.ProbTie,
			res.MeanQuality[0], res.MeanQuality[1],
			res.MeanValue[0], res.MeanValue[1],
			res.ValueInterval95[0].Low, res.ValueInterval95[0].High,
			res.ValueInterval95[1].Low, res.ValueInterval95[1].High,
			string(res.Verdict()),
		}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save results workbook %s: %w", path, err)
	}
	return nil
}
