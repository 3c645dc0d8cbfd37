package parties

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/csb58/internal/model"
)

// Header is the CSV header for parties.csv.
const Header = "code,name,vat_number,street,zip,city,country,subdivision,bank_account"

const (
	numFields      = 9
	colCode        = 0
	colName        = 1
	colVAT         = 2
	colStreet      = 3
	colZip         = 4
	colCity        = 5
	colCountry     = 6
	colSubdivision = 7
	colBankAccount = 8
)

// Entry is one row of parties.csv: a party and its invoice address.
type Entry struct {
	Party   model.Party
	Address *model.Address // nil when every address column is empty
}

// ReadParties reads parties.csv.
func ReadParties(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading parties CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// WriteParties writes parties.csv, header included.
func WriteParties(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colCode] = e.Party.Code
	row[colName] = e.Party.Name
	row[colVAT] = e.Party.VATNumber
	row[colBankAccount] = e.Party.DefaultBankAccount
	if e.Address != nil {
		row[colStreet] = e.Address.Street
		row[colZip] = e.Address.Zip
		row[colCity] = e.Address.City
		row[colCountry] = e.Address.Country
		row[colSubdivision] = e.Address.Subdivision
	}
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	if strings.TrimSpace(record[colCode]) == "" {
		return Entry{}, fmt.Errorf("empty party code")
	}

	e := Entry{
		Party: model.Party{
			Code:               strings.TrimSpace(record[colCode]),
			Name:               record[colName],
			VATNumber:          record[colVAT],
			DefaultBankAccount: record[colBankAccount],
		},
	}

	addr := model.Address{
		Street:      record[colStreet],
		Zip:         record[colZip],
		City:        record[colCity],
		Country:     strings.ToUpper(record[colCountry]),
		Subdivision: record[colSubdivision],
	}
	if addr != (model.Address{}) {
		e.Address = &addr
	}
	return e, nil
}
