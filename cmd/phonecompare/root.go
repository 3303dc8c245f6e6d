package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phonecompare",
		Short: "Score and compare smartphones side by side",
		Long: `phonecompare scores phones in six categories (display, camera,
performance, battery, build quality and value for money), compares them
spec by spec and explains the outcome.

It can serve the comparison API over HTTP, compare phones from a catalog
file, and import or validate catalogs.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newCompareCommand())
	cmd.AddCommand(newImportCommand())
	cmd.AddCommand(newValidateCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
