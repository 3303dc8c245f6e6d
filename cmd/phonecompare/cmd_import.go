package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/denisok6893-rgb/ai-phone-comparison/internal/config"
	"github.com/denisok6893-rgb/ai-phone-comparison/internal/storage"
)

func newImportCommand() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "import <catalog>",
		Short: "Validate a catalog file and upsert it into the SQLite database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				dbPath = cfg.DatabasePath
			}

			phones, err := storage.LoadPhonesFromFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", args[0], err)
			}

			store, err := openStore(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.UpsertMany(cmd.Context(), phones); err != nil {
				return err
			}
			total, err := store.CountPhones(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d phones into %s (%d total)\n", len(phones), dbPath, total)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (defaults to DATABASE_PATH)")

	return cmd
}
