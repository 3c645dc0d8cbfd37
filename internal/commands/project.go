package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cleared-dev/csb58/internal/bankaccount"
	"github.com/cleared-dev/csb58/internal/config"
	"github.com/cleared-dev/csb58/internal/logging"
	"github.com/cleared-dev/csb58/internal/model"
	"github.com/cleared-dev/csb58/internal/parties"
	"github.com/cleared-dev/csb58/internal/payments"
	"github.com/cleared-dev/csb58/internal/remittance"
)

// project is a loaded remittance project directory.
type project struct {
	root    string
	cfg     *config.Config
	parties *parties.Service
	logger  *slog.Logger
}

func openProject(repoDir string) (*project, error) {
	root, err := filepath.Abs(repoDir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	cfg, err := config.LoadProject(root)
	if err != nil {
		return nil, err
	}
	ps, err := parties.Load(root)
	if err != nil {
		return nil, err
	}
	return &project{
		root:    root,
		cfg:     cfg,
		parties: ps,
		logger:  logging.New(cfg.Log.Format, os.Stderr),
	}, nil
}

// readPayments parses the payments file and resolves each line's party.
func (p *project) readPayments(path string) ([]model.PaymentLine, error) {
	format, err := payments.DetectFormat(path, p.cfg.Input.Charset)
	if err != nil {
		return nil, err
	}
	parser := payments.DefaultRegistry().Get(format)
	if parser == nil {
		return nil, fmt.Errorf("no parser for format %q", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening payments: %w", err)
	}
	defer f.Close()

	lines, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	p.logger.Debug("payments read", "file", path, "format", format, "lines", len(lines))
	return p.parties.Attach(lines)
}

func (p *project) service() *remittance.Service {
	return remittance.NewService(p.parties, bankaccount.Validator{},
		remittance.WithLogger(p.logger),
		remittance.WithLineEnding(p.cfg.LineEnding()),
	)
}

func (p *project) batch(group string, lines []model.PaymentLine, join bool) remittance.Batch {
	return remittance.Batch{
		Reference: group,
		Journal:   p.cfg.ToJournal(),
		Company:   p.cfg.ToCompany(),
		Lines:     lines,
		Join:      join || p.cfg.Journal.Join,
	}
}

func (p *project) outputDir() string {
	if filepath.IsAbs(p.cfg.Output.Dir) {
		return p.cfg.Output.Dir
	}
	return filepath.Join(p.root, p.cfg.Output.Dir)
}
