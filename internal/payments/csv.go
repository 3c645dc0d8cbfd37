package payments

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"

	"github.com/cleared-dev/csb58/internal/model"
)

// Header is the CSV header of a payments export.
const Header = "id,party_code,bank_account,amount,description,date,due_date,origin,created_at"

// CharsetWindows1252 selects Windows-1252 decoding, common in exports
// from Spanish accounting packages.
const CharsetWindows1252 = "windows-1252"

const (
	numFields      = 9
	dateFormat     = "2006-01-02"
	formatCSV      = "csv"
	formatCSV1252  = "csv-cp1252"
	colID          = 0
	colParty       = 1
	colBankAccount = 2
	colAmount      = 3
	colDesc        = 4
	colDate        = 5
	colDueDate     = 6
	colOrigin      = 7
	colCreatedAt   = 8
)

// CSVParser parses payments CSV files.
type CSVParser struct {
	Charset string // "" or "utf-8", or CharsetWindows1252
}

// Format returns the parser name.
func (p *CSVParser) Format() string {
	if strings.EqualFold(p.Charset, CharsetWindows1252) {
		return formatCSV1252
	}
	return formatCSV
}

// Parse reads a payments CSV, skipping the header row.
func (p *CSVParser) Parse(r io.Reader) ([]model.PaymentLine, error) {
	if strings.EqualFold(p.Charset, CharsetWindows1252) {
		r = charmap.Windows1252.NewDecoder().Reader(r)
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading payments CSV: %w", err)
	}
	return unmarshalRows(records)
}

func unmarshalRows(records [][]string) ([]model.PaymentLine, error) {
	if len(records) <= 1 {
		return nil, nil
	}

	var lines []model.PaymentLine
	for i, rec := range records[1:] {
		l, err := UnmarshalLine(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		lines = append(lines, l)
	}
	return lines, nil
}

// MarshalLine converts a PaymentLine to a CSV row.
func MarshalLine(l model.PaymentLine) []string {
	row := make([]string, numFields)
	row[colID] = l.ID
	row[colParty] = l.PartyCode()
	row[colBankAccount] = l.BankAccount
	row[colAmount] = l.Amount.StringFixed(2)
	row[colDesc] = l.Description
	row[colDate] = l.Date.Format(dateFormat)
	if l.DueDate != nil {
		row[colDueDate] = l.DueDate.Format(dateFormat)
	}
	row[colOrigin] = l.Origin
	if !l.CreatedAt.IsZero() {
		row[colCreatedAt] = l.CreatedAt.Format(time.RFC3339)
	}
	return row
}

// UnmarshalLine converts a CSV row to a PaymentLine.
func UnmarshalLine(record []string) (model.PaymentLine, error) {
	if len(record) != numFields {
		return model.PaymentLine{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	if record[colID] == "" {
		return model.PaymentLine{}, fmt.Errorf("empty payment id")
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.PaymentLine{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.PaymentLine{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	l := model.PaymentLine{
		ID:          record[colID],
		BankAccount: record[colBankAccount],
		Amount:      amount,
		Description: record[colDesc],
		Date:        date,
		Origin:      record[colOrigin],
		CreatedAt:   date,
	}

	if record[colParty] != "" {
		l.Party = &model.Party{Code: record[colParty]}
	}

	if record[colDueDate] != "" {
		due, err := time.Parse(dateFormat, record[colDueDate])
		if err != nil {
			return model.PaymentLine{}, fmt.Errorf("parsing due_date %q: %w", record[colDueDate], err)
		}
		l.DueDate = &due
	}

	if record[colCreatedAt] != "" {
		created, err := parseTimestamp(record[colCreatedAt])
		if err != nil {
			return model.PaymentLine{}, fmt.Errorf("parsing created_at %q: %w", record[colCreatedAt], err)
		}
		l.CreatedAt = created
	}

	return l, nil
}

func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(dateFormat, s)
}
