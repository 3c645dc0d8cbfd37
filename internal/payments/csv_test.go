package payments

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestCSVParser_Testdata(t *testing.T) {
	f, err := os.Open("../../testdata/payments.csv")
	require.NoError(t, err)
	defer f.Close()

	lines, err := (&CSVParser{}).Parse(f)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, "L1", lines[0].ID)
	assert.Equal(t, "P001", lines[0].PartyCode())
	assert.Equal(t, "", lines[0].BankAccount)
	assert.Equal(t, "100.00", lines[0].Amount.StringFixed(2))
	assert.Equal(t, "Tornillos", lines[0].Description)
	require.NotNil(t, lines[0].DueDate)
	assert.Equal(t, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), *lines[0].DueDate)
	assert.Equal(t, time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC), lines[0].CreatedAt)
	assert.Equal(t, "INV-0001", lines[0].Origin)

	assert.True(t, lines[1].Amount.IsNegative())
	assert.Nil(t, lines[1].DueDate)
	assert.Equal(t, "00491500050000000001", lines[2].BankAccount)
}

func TestCSVParser_Windows1252(t *testing.T) {
	src := Header + "\nL1,P001,,10.00,Peñíscola,2025-02-20,,,\n"
	encoded, err := charmap.Windows1252.NewEncoder().String(src)
	require.NoError(t, err)

	p := &CSVParser{Charset: CharsetWindows1252}
	lines, err := p.Parse(strings.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Peñíscola", lines[0].Description)
	assert.Equal(t, lines[0].Date, lines[0].CreatedAt, "created_at defaults to date")
}

func TestCSVParser_NoParty(t *testing.T) {
	src := Header + "\nL1,,,10.00,x,2025-02-20,,,\n"
	lines, err := (&CSVParser{}).Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Nil(t, lines[0].Party)
}

func TestCSVParser_HeaderOnly(t *testing.T) {
	lines, err := (&CSVParser{}).Parse(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Nil(t, lines)
}

func TestCSVParser_Errors(t *testing.T) {
	tests := []struct {
		row  string
		want string
	}{
		{"L1,P001,,NOTANUMBER,x,2025-02-20,,,", "parsing amount"},
		{"L1,P001,,1.00,x,20/02/2025,,,", "parsing date"},
		{"L1,P001,,1.00,x,2025-02-20,soon,,", "parsing due_date"},
		{"L1,P001,,1.00,x,2025-02-20,,,yesterday", "parsing created_at"},
		{",P001,,1.00,x,2025-02-20,,,", "empty payment id"},
	}
	for _, tt := range tests {
		_, err := (&CSVParser{}).Parse(strings.NewReader(Header + "\n" + tt.row + "\n"))
		require.Error(t, err, tt.row)
		assert.Contains(t, err.Error(), tt.want)
		assert.Contains(t, err.Error(), "row 2")
	}
}

func TestMarshalLine_RoundTrip(t *testing.T) {
	f, err := os.Open("../../testdata/payments.csv")
	require.NoError(t, err)
	defer f.Close()

	lines, err := (&CSVParser{}).Parse(f)
	require.NoError(t, err)

	for _, l := range lines {
		got, err := UnmarshalLine(MarshalLine(l))
		require.NoError(t, err)
		assert.Equal(t, l.ID, got.ID)
		assert.True(t, l.Amount.Equal(got.Amount))
		assert.Equal(t, l.PartyCode(), got.PartyCode())
		assert.Equal(t, l.DueDate, got.DueDate)
		assert.True(t, l.CreatedAt.Equal(got.CreatedAt))
	}
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	for _, format := range []string{"csv", "csv-cp1252", "XLSX"} {
		assert.NotNil(t, r.Get(format), format)
	}
	assert.Nil(t, r.Get("ods"))

	assert.Panics(t, func() { r.Register(&XLSXParser{}) })
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		charset string
		want    string
	}{
		{"payments.csv", "", "csv"},
		{"payments.CSV", "utf-8", "csv"},
		{"payments.csv", "windows-1252", "csv-cp1252"},
		{"export.txt", "", "csv"},
		{"payments.xlsx", "windows-1252", "xlsx"},
	}
	for _, tt := range tests {
		got, err := DetectFormat(tt.path, tt.charset)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := DetectFormat("payments.pdf", "")
	require.Error(t, err)
}

func TestXLSXParser(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		strings.Split(Header, ","),
		{"L1", "P001", "", "100.00", "Tornillos", "2025-02-20", "2025-03-20"},
		{},
		{"L2", "P002", "00491500050000000001", "-5.25", "Abono", "2025-02-21", "", "", "2025-02-21"},
	})

	lines, err := (&XLSXParser{}).Parse(bytes.NewReader(buf))
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "P001", lines[0].PartyCode())
	require.NotNil(t, lines[0].DueDate)
	assert.Equal(t, "-5.25", lines[1].Amount.StringFixed(2))
	assert.Equal(t, "00491500050000000001", lines[1].BankAccount)
}

func TestXLSXParser_NotAWorkbook(t *testing.T) {
	_, err := (&XLSXParser{}).Parse(strings.NewReader("not a zip"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening workbook")
}
