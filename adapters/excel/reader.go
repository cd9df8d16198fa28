// Package excel reads product-pair comparison requests from workbooks.
// Each row is one independent pairwise comparison; rows are never ranked
// against each other.
package excel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"govalue/domain/compare"
)

// PairRow is one comparison request read from a workbook row
type PairRow struct {
	Row    int // 1-based workbook row, for error reporting
	LabelA string
	LabelB string
	First  compare.ProductInput
	Second compare.ProductInput
}

// required columns per product; label_a / label_b are optional
var requiredColumns = []string{
	"price_a", "five_star_a", "four_star_a", "total_reviews_a",
	"price_b", "five_star_b", "four_star_b", "total_reviews_b",
}

// Reader loads pair rows from an xlsx workbook
type Reader struct {
	path  string
	sheet string
}

// NewReader creates a reader for the workbook's first sheet
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// WithSheet overrides the sheet name
func (r *Reader) WithSheet(sheet string) *Reader {
	r.sheet = sheet
	return r
}

// ReadPairs parses the workbook into comparison requests. The first row
// must be a header naming the required columns (case-insensitive).
func (r *Reader) ReadPairs() ([]PairRow, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", r.path, err)
	}
	defer f.Close()

	sheet := r.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %s has no data rows", sheet)
	}

	header, err := mapHeader(rows[0])
	if err != nil {
		return nil, err
	}

	pairs := make([]PairRow, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2
		if isEmptyRow(row) {
			continue
		}
		pair, err := parseRow(row, header, rowNum)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

func mapHeader(cells []string) (map[string]int, error) {
	header := make(map[string]int, len(cells))
	for i, cell := range cells {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name != "" {
			header[name] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := header[col]; !ok {
			return nil, fmt.Errorf("missing required column %q in header", col)
		}
	}
	return header, nil
}

func parseRow(row []string, header map[string]int, rowNum int) (PairRow, error) {
	get := func(col string) string {
		idx, ok := header[col]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	parseFloat := func(col string) (float64, error) {
		v, err := strconv.ParseFloat(get(col), 64)
		if err != nil {
			return 0, fmt.Errorf("row %d: column %s: %w", rowNum, col, err)
		}
		return v, nil
	}
	parseInt := func(col string) (int, error) {
		v, err := strconv.Atoi(get(col))
		if err != nil {
			return 0, fmt.Errorf("row %d: column %s: %w", rowNum, col, err)
		}
		return v, nil
	}

	var pair PairRow
	var err error
	pair.Row = rowNum
	pair.LabelA = get("label_a")
	pair.LabelB = get("label_b")

	if pair.First.Price, err = parseFloat("price_a"); err != nil {
		return PairRow{}, err
	}
	if pair.First.FiveStar, err = parseInt("five_star_a"); err != nil {
		return PairRow{}, err
	}
	if pair.First.FourStar, err = parseInt("four_star_a"); err != nil {
		return PairRow{}, err
	}
	if pair.First.TotalReviews, err = parseInt("total_reviews_a"); err != nil {
		return PairRow{}, err
	}
	if pair.Second.Price, err = parseFloat("price_b"); err != nil {
		return PairRow{}, err
	}
	if pair.Second.FiveStar, err = parseInt("five_star_b"); err != nil {
		return PairRow{}, err
	}
	if pair.Second.FourStar, err = parseInt("four_star_b"); err != nil {
		return PairRow{}, err
	}
	if pair.Second.TotalReviews, err = parseInt("total_reviews_b"); err != nil {
		return PairRow{}, err
	}
	return pair, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
