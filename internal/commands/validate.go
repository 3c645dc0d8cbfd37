package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	var repoDir, paymentsPath string
	var join bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a payments export without generating a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(repoDir, paymentsPath, join)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")
	cmd.Flags().StringVar(&paymentsPath, "payments", "", "payments file, .csv or .xlsx (required)")
	_ = cmd.MarkFlagRequired("payments")
	cmd.Flags().BoolVar(&join, "join", false, "one receipt per party and bank account")

	return cmd
}

func runValidate(repoDir, paymentsPath string, join bool) error {
	p, err := openProject(repoDir)
	if err != nil {
		return err
	}
	lines, err := p.readPayments(paymentsPath)
	if err != nil {
		return err
	}

	ctx, err := p.service().Prepare(p.batch("", lines, join))
	if err != nil {
		return err
	}

	for _, r := range ctx.Receipts {
		fmt.Printf("%-12s %-30s %s %12s %s\n",
			r.Reference(), r.Name(), r.BankAccount, r.Amount.StringFixed(2), r.MaturityDate.Format("2006-01-02"))
	}
	fmt.Printf("OK: %d payment lines, %d receipts, total %s\n", len(lines), len(ctx.Receipts), ctx.Amount.StringFixed(2))
	return nil
}
