package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/denisok6893-rgb/ai-phone-comparison/internal/storage"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <catalog>",
		Short: "Check every record of a catalog file against the phone schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			phones, err := storage.LoadPhonesFromFile(args[0])
			var catErr *storage.CatalogError
			if errors.As(err, &catErr) {
				for _, rec := range catErr.Records {
					id := rec.ID
					if id == "" {
						id = "(no id)"
					}
					fmt.Fprintf(out, "record %d %s:\n", rec.Index, id)
					for _, msg := range rec.Errors {
						fmt.Fprintf(out, "  %s\n", msg)
					}
				}
				return catErr
			}
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", args[0], err)
			}

			fmt.Fprintf(out, "%s: %d phones, all valid\n", args[0], len(phones))
			return nil
		},
	}
}
