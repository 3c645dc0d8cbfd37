// Package payments reads payment lines from CSV and XLSX exports.
package payments

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cleared-dev/csb58/internal/model"
)

// Parser converts an export into payment lines. Lines carry only their
// party code; resolve them with parties.Service.Attach.
type Parser interface {
	Parse(r io.Reader) ([]model.PaymentLine, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVParser{})
	r.Register(&CSVParser{Charset: CharsetWindows1252})
	r.Register(&XLSXParser{})
	return r
}

// DetectFormat picks a parser format from the file extension and the
// configured CSV charset.
func DetectFormat(path, charset string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return formatXLSX, nil
	case ".csv", ".txt":
		p := &CSVParser{Charset: charset}
		return p.Format(), nil
	}
	return "", fmt.Errorf("unsupported payments file %q", filepath.Base(path))
}
