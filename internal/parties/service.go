// Package parties keeps the payees known to a project.
package parties

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cleared-dev/csb58/internal/model"
)

const (
	partiesDir  = "parties"
	partiesFile = "parties.csv"
)

// Service provides in-memory lookup over parties.csv.
type Service struct {
	entries []Entry
	byCode  map[string]Entry
}

// NewService creates a Service from a slice of entries. Later entries
// win on duplicate codes.
func NewService(entries []Entry) *Service {
	byCode := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byCode[e.Party.Code] = e
	}
	return &Service{entries: entries, byCode: byCode}
}

// Load reads parties/parties.csv from a project root.
func Load(repoRoot string) (*Service, error) {
	path := filepath.Join(repoRoot, partiesDir, partiesFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening parties: %w", err)
	}
	defer f.Close()

	entries, err := ReadParties(f)
	if err != nil {
		return nil, fmt.Errorf("reading parties: %w", err)
	}
	return NewService(entries), nil
}

// All returns all entries.
func (s *Service) All() []Entry {
	return s.entries
}

// Get returns a party by code.
func (s *Service) Get(code string) (model.Party, bool) {
	e, ok := s.byCode[code]
	return e.Party, ok
}

// InvoiceAddressOf returns the party's address, or nil if it has none.
func (s *Service) InvoiceAddressOf(p model.Party) *model.Address {
	e, ok := s.byCode[p.Code]
	if !ok || e.Address == nil {
		return nil
	}
	addr := *e.Address
	return &addr
}

// Attach resolves each line's party by code and fills an empty bank
// account from the party's default. Lines without a party are kept as
// they are.
func (s *Service) Attach(lines []model.PaymentLine) ([]model.PaymentLine, error) {
	out := make([]model.PaymentLine, len(lines))
	for i, l := range lines {
		if l.Party != nil {
			p, ok := s.Get(l.Party.Code)
			if !ok {
				return nil, fmt.Errorf("payment line %s: unknown party %q", l.Ref(), l.Party.Code)
			}
			l.Party = &p
			if l.BankAccount == "" {
				l.BankAccount = p.DefaultBankAccount
			}
		}
		out[i] = l
	}
	return out, nil
}

// Save writes parties/parties.csv under repoRoot.
func (s *Service) Save(repoRoot string) error {
	dir := filepath.Join(repoRoot, partiesDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating parties dir: %w", err)
	}

	path := filepath.Join(dir, partiesFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating parties file: %w", err)
	}
	defer f.Close()

	if err := WriteParties(f, s.entries); err != nil {
		return fmt.Errorf("writing parties: %w", err)
	}
	return nil
}
