package excel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"govalue/domain/compare"
	"govalue/domain/core"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	path := filepath.Join(t.TempDir(), "pairs.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

var header = []interface{}{
	"label_a", "label_b",
	"price_a", "five_star_a", "four_star_a", "total_reviews_a",
	"price_b", "five_star_b", "four_star_b", "total_reviews_b",
}

func TestReadPairs(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		header,
		{"anc buds", "wired cans", 209.00, 1000, 182, 1407, 179.00, 95, 15, 125},
		{"", "", 49.99, 12, 3, 20, 39.99, 8, 1, 15},
	})

	pairs, err := NewReader(path).ReadPairs()
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	assert.Equal(t, 2, pairs[0].Row)
	assert.Equal(t, "anc buds", pairs[0].LabelA)
	assert.Equal(t, compare.ProductInput{Price: 209.00, FiveStar: 1000, FourStar: 182, TotalReviews: 1407}, pairs[0].First)
	assert.Equal(t, compare.ProductInput{Price: 179.00, FiveStar: 95, FourStar: 15, TotalReviews: 125}, pairs[0].Second)

	assert.Equal(t, 3, pairs[1].Row)
	assert.Empty(t, pairs[1].LabelA)
	assert.Equal(t, 39.99, pairs[1].Second.Price)
}

func TestReadPairs_MissingColumn(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"price_a", "five_star_a", "four_star_a", "total_reviews_a"},
		{209.00, 1000, 182, 1407},
	})

	_, err := NewReader(path).ReadPairs()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price_b")
}

func TestReadPairs_BadCellReportsRow(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		header,
		{"a", "b", 209.00, 1000, 182, 1407, 179.00, 95, 15, 125},
		{"a", "b", "not-a-price", 1, 1, 5, 10.0, 1, 1, 5},
	})

	_, err := NewReader(path).ReadPairs()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
	assert.Contains(t, err.Error(), "price_a")
}

func TestReadPairs_NoDataRows(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{header})

	_, err := NewReader(path).ReadPairs()
	assert.Error(t, err)
}

func TestWriteResults_RoundTrip(t *testing.T) {
	pairs := []PairRow{{
		Row:    2,
		LabelA: "anc buds",
		LabelB: "wired cans",
	}}
	results := []*compare.ComparisonResult{{
		ID:               core.NewComparisonID(),
		ProbFirstBetter:  0.12,
		ProbSecondBetter: 0.88,
		ProbTie:          0,
		MeanQuality:      [2]float64{0.84, 0.87},
		MeanValue:        [2]float64{0.0040, 0.0049},
		ValueInterval95: [2]compare.Interval{
			{Low: 0.0039, High: 0.0041},
			{Low: 0.0043, High: 0.0054},
		},
	}}

	path := filepath.Join(t.TempDir(), "results.xlsx")
	require.NoError(t, WriteResults(path, pairs, results))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "prob_a_better", rows[0][3])
	assert.Equal(t, "anc buds", rows[1][1])
	assert.Equal(t, "second", rows[1][len(resultHeader)-1])
}

func TestWriteResults_CountMismatch(t *testing.T) {
	err := WriteResults(filepath.Join(t.TempDir(), "out.xlsx"), []PairRow{{Row: 2}}, nil)
	assert.Error(t, err)
}
