package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/csb58/internal/config"
	"github.com/cleared-dev/csb58/internal/gitops"
	"github.com/cleared-dev/csb58/internal/parties"
)

func newInitCommand() *cobra.Command {
	var company string
	var vat string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new remittance project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, company, vat)
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "company name (required)")
	_ = cmd.MarkFlagRequired("company")
	cmd.Flags().StringVar(&vat, "vat", "", "company VAT number (NIF)")

	return cmd
}

func runInit(dir, company, vat string) error {
	for _, d := range []string{"parties", "exports", "logs", "import"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(company, vat)
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if err := parties.NewService(nil).Save(dir); err != nil {
		return fmt.Errorf("writing parties: %w", err)
	}

	// Payment exports stay out of history; generated files are tracked.
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("import/\n"), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "exports", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	if err := gitops.Init(dir); err != nil {
		return err
	}

	c := gitops.Committer{Dir: dir, Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
	hash, err := c.Commit("init: Initialize " + company)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Printf("Initialized remittance project at %s (%s)\n", dir, hash)
	return nil
}
