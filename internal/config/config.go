package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/csb58/internal/model"
)

// FileName is the project configuration file.
const FileName = "remittance.yaml"

// EnvPrefix prefixes environment overrides, e.g. CSB58_LOG_FORMAT.
const EnvPrefix = "csb58"

// Config represents the top-level remittance.yaml configuration.
type Config struct {
	Company CompanyConfig `yaml:"company"`
	Journal JournalConfig `yaml:"journal"`
	Output  OutputConfig  `yaml:"output"`
	Input   InputConfig   `yaml:"input"`
	Git     GitConfig     `yaml:"git"`
	Log     LogConfig     `yaml:"log"`
}

// CompanyConfig identifies the presenter.
type CompanyConfig struct {
	Name      string `yaml:"name"`
	VATNumber string `yaml:"vat_number"`
	Country   string `yaml:"country" validate:"omitempty,len=2,alpha"`
	City      string `yaml:"city"`
	Province  string `yaml:"province" validate:"omitempty,numeric,len=2"`
}

// JournalConfig holds the bank journal the remittance is charged to.
type JournalConfig struct {
	Name               string `yaml:"name"`
	BankAccount        string `yaml:"bank_account"`
	Suffix             string `yaml:"suffix" validate:"omitempty,numeric,len=3"`
	INECode            string `yaml:"ine_code" validate:"omitempty,numeric,max=9"`
	RequireBankAccount bool   `yaml:"require_bank_account"`
	IncludeDomicile    bool   `yaml:"include_domicile"`
	ExtendedConcept    bool   `yaml:"extended_concept"`
	Join               bool   `yaml:"join"`
}

// OutputConfig controls where documents are written.
type OutputConfig struct {
	Dir        string `yaml:"dir" validate:"required"`
	LineEnding string `yaml:"line_ending" validate:"oneof=crlf lf none"`
}

// InputConfig controls payment file decoding.
type InputConfig struct {
	Charset string `yaml:"charset" validate:"omitempty,oneof=utf-8 windows-1252"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email" validate:"omitempty,email"`
}

// LogConfig selects the diagnostic log format.
type LogConfig struct {
	Format string `yaml:"format" validate:"oneof=text json"`
}

// env holds the settings that may be overridden from the environment.
type env struct {
	LogFormat     string `envconfig:"LOG_FORMAT"`
	OutputDir     string `envconfig:"OUTPUT_DIR"`
	GitAutoCommit *bool  `envconfig:"GIT_AUTO_COMMIT"`
}

var validate = validator.New()

// Load reads a remittance.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadProject reads <dir>/remittance.yaml, applies environment overrides
// and validates the result.
func LoadProject(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ApplyEnv overrides cfg with CSB58_* environment variables.
func ApplyEnv(cfg *Config) error {
	var e env
	if err := envconfig.Process(EnvPrefix, &e); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	if e.LogFormat != "" {
		cfg.Log.Format = e.LogFormat
	}
	if e.OutputDir != "" {
		cfg.Output.Dir = e.OutputDir
	}
	if e.GitAutoCommit != nil {
		cfg.Git.AutoCommit = *e.GitAutoCommit
	}
	return nil
}

// Validate checks field formats. Missing company or journal data is left
// to the remittance validator, which reports it per batch.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(companyName, vatNumber string) *Config {
	return &Config{
		Company: CompanyConfig{
			Name:      companyName,
			VATNumber: vatNumber,
			Country:   "ES",
		},
		Journal: JournalConfig{
			Name:               "Bank",
			Suffix:             "000",
			RequireBankAccount: true,
		},
		Output: OutputConfig{
			Dir:        "exports",
			LineEnding: "crlf",
		},
		Input: InputConfig{
			Charset: "utf-8",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "CSB58 Remittances",
			AuthorEmail: "remittances@cleared.dev",
		},
		Log: LogConfig{
			Format: "text",
		},
	}
}

// LineEnding returns the record separator for Output.LineEnding.
func (c *Config) LineEnding() string {
	switch c.Output.LineEnding {
	case "crlf":
		return "\r\n"
	case "lf":
		return "\n"
	}
	return ""
}

// ToCompany converts the company section.
func (c *Config) ToCompany() model.Company {
	return model.Company{
		Name:      c.Company.Name,
		VATNumber: c.Company.VATNumber,
		Country:   c.Company.Country,
		City:      c.Company.City,
		Province:  c.Company.Province,
	}
}

// ToJournal converts the journal section.
func (c *Config) ToJournal() model.Journal {
	return model.Journal{
		Name:               c.Journal.Name,
		BankAccount:        c.Journal.BankAccount,
		Suffix:             c.Journal.Suffix,
		INECode:            c.Journal.INECode,
		RequireBankAccount: c.Journal.RequireBankAccount,
		IncludeDomicile:    c.Journal.IncludeDomicile,
		ExtendedConcept:    c.Journal.ExtendedConcept,
	}
}
