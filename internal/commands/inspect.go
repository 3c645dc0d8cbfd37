package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/csb58/internal/csb58"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the fields of every record in a CSB 58 file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0])
		},
	}
}

func runInspect(path string) error {
	doc, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	records, err := csb58.Decode(doc)
	if err != nil {
		return err
	}

	for i, rec := range records {
		fmt.Printf("#%d %s %s\n", i+1, rec.Kind, rec.Layout.Name)
		for _, f := range rec.Layout.Fields() {
			fmt.Printf("  %-22s |%s|\n", f.Name, rec.Fields[f.Name])
		}
	}
	return nil
}
