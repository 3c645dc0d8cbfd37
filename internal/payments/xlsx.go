package payments

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/cleared-dev/csb58/internal/model"
)

const formatXLSX = "xlsx"

// XLSXParser reads payment lines from the first sheet of a workbook,
// using the same columns as the CSV format.
type XLSXParser struct{}

// Format returns the parser name.
func (p *XLSXParser) Format() string { return formatXLSX }

// Parse reads the first sheet. Short rows are padded with empty cells.
func (p *XLSXParser) Parse(r io.Reader) ([]model.PaymentLine, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		rec := make([]string, numFields)
		copy(rec, row)
		records = append(records, rec)
	}
	return unmarshalRows(records)
}

func isBlank(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}
