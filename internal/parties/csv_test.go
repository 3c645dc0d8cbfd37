package parties

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/csb58/internal/model"
)

func TestRoundTrip(t *testing.T) {
	entries := []Entry{
		{
			Party:   model.Party{Code: "P001", Name: "Ferretería López", VATNumber: "B11111111", DefaultBankAccount: "01820001310123456789"},
			Address: &model.Address{Street: "Calle Mayor 5", Zip: "28013", City: "Madrid", Country: "ES", Subdivision: "28"},
		},
		{
			Party: model.Party{Code: "P003", Name: "Suministros Vega"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteParties(&buf, entries))

	got, err := ReadParties(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, entries[0].Party, got[0].Party)
	require.NotNil(t, got[0].Address)
	assert.Equal(t, *entries[0].Address, *got[0].Address)
	assert.Nil(t, got[1].Address)
}

func TestUnmarshalEntry_Errors(t *testing.T) {
	_, err := UnmarshalEntry([]string{"P001"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 9 fields")

	_, err = UnmarshalEntry(make([]string, numFields))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty party code")
}

func TestReadTestdata(t *testing.T) {
	f, err := os.Open("../../testdata/parties.csv")
	require.NoError(t, err)
	defer f.Close()

	entries, err := ReadParties(f)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Ferretería López", entries[0].Party.Name)
	require.NotNil(t, entries[1].Address)
	assert.Equal(t, "ES", entries[1].Address.Country, "country is upper-cased")
	assert.Nil(t, entries[2].Address)
	assert.Equal(t, "ES9121000418450200051332", entries[2].Party.DefaultBankAccount)
}

func TestReadParties_Empty(t *testing.T) {
	entries, err := ReadParties(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Nil(t, entries)
}
