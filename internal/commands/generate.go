package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/csb58/internal/attachment"
	"github.com/cleared-dev/csb58/internal/gitops"
	"github.com/cleared-dev/csb58/internal/history"
	"github.com/cleared-dev/csb58/internal/id"
)

type generateOptions struct {
	repoDir  string
	payments string
	group    string
	join     bool
	dryRun   bool
}

func newGenerateCommand() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a CSB 58 file from a payments export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts)
		},
	}

	cmd.Flags().StringVar(&opts.repoDir, "repo", ".", "project directory")
	cmd.Flags().StringVar(&opts.payments, "payments", "", "payments file, .csv or .xlsx (required)")
	_ = cmd.MarkFlagRequired("payments")
	cmd.Flags().StringVar(&opts.group, "group", "", "payment group id (default: next id for this month)")
	cmd.Flags().BoolVar(&opts.join, "join", false, "one receipt per party and bank account")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the document instead of storing it")

	return cmd
}

func runGenerate(opts generateOptions) error {
	p, err := openProject(opts.repoDir)
	if err != nil {
		return err
	}
	lines, err := p.readPayments(opts.payments)
	if err != nil {
		return err
	}

	now := time.Now()
	group := opts.group
	if group == "" {
		past, err := history.Read(p.root)
		if err != nil {
			return err
		}
		ids := make([]string, len(past))
		for i, e := range past {
			ids[i] = e.GroupID
		}
		group = id.NextGroupID(ids, now)
	}

	svc := p.service()
	batch := p.batch(group, lines, opts.join)

	if opts.dryRun {
		res, err := svc.Generate(batch)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(res.Document)
		return err
	}

	sink := attachment.NewFileSink(p.outputDir())
	res, err := svc.Process(batch, sink)
	if err != nil {
		return err
	}

	entry := history.Entry{
		Timestamp:  now.UTC().Truncate(time.Second),
		GroupID:    group,
		FileName:   res.FileName,
		Receipts:   len(res.Context.Receipts),
		Amount:     res.Context.Amount,
		DocumentID: res.DocumentID.String(),
	}
	if err := history.Append(p.root, []history.Entry{entry}); err != nil {
		return fmt.Errorf("writing remittance log: %w", err)
	}

	fmt.Printf("Generated %s: %d receipts, %d records, total %s\n",
		sink.Last(), len(res.Context.Receipts), res.Context.RecordCount, res.Context.Amount.StringFixed(2))

	if !p.cfg.Git.AutoCommit || !gitops.IsRepo(p.root) {
		return nil
	}
	c := gitops.Committer{Dir: p.root, Name: p.cfg.Git.AuthorName, Email: p.cfg.Git.AuthorEmail}
	hash, err := c.Commit("remittance: "+group, repoPaths(p.root, sink.Last(), history.Path(p.root))...)
	if err != nil {
		return fmt.Errorf("committing remittance: %w", err)
	}
	fmt.Printf("Committed %s\n", hash)
	return nil
}

// repoPaths returns paths relative to root, dropping those outside it.
func repoPaths(root string, paths ...string) []string {
	var out []string
	for _, path := range paths {
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		out = append(out, rel)
	}
	return out
}
