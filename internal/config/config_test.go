package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Test Biz", "B12345678")
	cfg.Journal.BankAccount = "21000418450200051332"
	cfg.Journal.INECode = "28079"
	cfg.Journal.IncludeDomicile = true
	cfg.Company.Province = "28"

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default("My Company", "B12345678")

	assert.Equal(t, "My Company", cfg.Company.Name)
	assert.Equal(t, "B12345678", cfg.Company.VATNumber)
	assert.Equal(t, "ES", cfg.Company.Country)
	assert.Equal(t, "000", cfg.Journal.Suffix)
	assert.True(t, cfg.Journal.RequireBankAccount)
	assert.False(t, cfg.Journal.IncludeDomicile)
	assert.False(t, cfg.Journal.ExtendedConcept)
	assert.Equal(t, "exports", cfg.Output.Dir)
	assert.Equal(t, "\r\n", cfg.LineEnding())
	assert.True(t, cfg.Git.AutoCommit)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.NoError(t, Validate(cfg))
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Test Biz", "B12345678")
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Test Biz")
	assert.Contains(t, contents, "vat_number: B12345678")
	assert.Contains(t, contents, "require_bank_account: true")
	assert.Contains(t, contents, "line_ending: crlf")
	assert.Contains(t, contents, "auto_commit: true")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"suffix not numeric", func(c *Config) { c.Journal.Suffix = "0A1" }, "Journal.Suffix"},
		{"suffix too long", func(c *Config) { c.Journal.Suffix = "0001" }, "Journal.Suffix"},
		{"ine too long", func(c *Config) { c.Journal.INECode = "1234567890" }, "Journal.INECode"},
		{"province", func(c *Config) { c.Company.Province = "Madrid" }, "Company.Province"},
		{"country", func(c *Config) { c.Company.Country = "ESP" }, "Company.Country"},
		{"line ending", func(c *Config) { c.Output.LineEnding = "cr" }, "Output.LineEnding"},
		{"output dir", func(c *Config) { c.Output.Dir = "" }, "Output.Dir"},
		{"charset", func(c *Config) { c.Input.Charset = "latin9" }, "Input.Charset"},
		{"log format", func(c *Config) { c.Log.Format = "pretty" }, "Log.Format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default("Test Biz", "B12345678")
			tt.mutate(cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidate_BusinessFieldsOptional(t *testing.T) {
	cfg := Default("", "")
	cfg.Journal.Suffix = ""
	assert.NoError(t, Validate(cfg))
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("CSB58_LOG_FORMAT", "json")
	t.Setenv("CSB58_OUTPUT_DIR", "/tmp/out")
	t.Setenv("CSB58_GIT_AUTO_COMMIT", "false")

	cfg := Default("Test Biz", "B12345678")
	require.NoError(t, ApplyEnv(cfg))

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/out", cfg.Output.Dir)
	assert.False(t, cfg.Git.AutoCommit)
}

func TestApplyEnv_Unset(t *testing.T) {
	cfg := Default("Test Biz", "B12345678")
	require.NoError(t, ApplyEnv(cfg))
	assert.Equal(t, Default("Test Biz", "B12345678"), cfg)
}

func TestApplyEnv_BadBool(t *testing.T) {
	t.Setenv("CSB58_GIT_AUTO_COMMIT", "maybe")
	err := ApplyEnv(Default("Test Biz", "B12345678"))
	require.Error(t, err)
}

func TestLoadProject(t *testing.T) {
	dir := t.TempDir()
	cfg := Default("Test Biz", "B12345678")
	cfg.Journal.Suffix = "12"
	require.NoError(t, Save(filepath.Join(dir, FileName), cfg))

	_, err := LoadProject(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")

	cfg.Journal.Suffix = "012"
	require.NoError(t, Save(filepath.Join(dir, FileName), cfg))
	got, err := LoadProject(dir)
	require.NoError(t, err)
	assert.Equal(t, "012", got.ToJournal().Suffix)
	assert.Equal(t, "B12345678", got.ToCompany().VATNumber)
}
