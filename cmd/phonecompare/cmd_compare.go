package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/denisok6893-rgb/ai-phone-comparison/internal/comparison"
	"github.com/denisok6893-rgb/ai-phone-comparison/internal/domain"
	"github.com/denisok6893-rgb/ai-phone-comparison/internal/export"
	"github.com/denisok6893-rgb/ai-phone-comparison/internal/storage"
	"github.com/denisok6893-rgb/ai-phone-comparison/internal/visual"
)

type compareOptions struct {
	format      string
	xlsxPath    string
	weightsPath string
}

func newCompareCommand() *cobra.Command {
	var opts compareOptions

	cmd := &cobra.Command{
		Use:   "compare <catalog> <id> <id> [id ...]",
		Short: "Compare phones from a catalog file",
		Long: `Compare two or more phones from a JSON or YAML catalog file.

With two ids the full comparison is printed. With more, every pair is
compared in order (1-2, 1-3, ..., 2-3, ...).`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd.OutOrStdout(), args[0], args[1:], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "Output format: table or json")
	cmd.Flags().StringVar(&opts.xlsxPath, "xlsx", "", "Also write the comparison to an XLSX file (two phones only)")
	cmd.Flags().StringVar(&opts.weightsPath, "weights", "", "Category weights file (YAML or JSON)")

	return cmd
}

func runCompare(out io.Writer, catalogPath string, ids []string, opts compareOptions) error {
	if opts.format != "table" && opts.format != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", opts.format)
	}
	if opts.xlsxPath != "" && len(ids) != 2 {
		return fmt.Errorf("--xlsx needs exactly two phones, got %d", len(ids))
	}

	phones, err := storage.LoadPhonesFromFile(catalogPath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", catalogPath, err)
	}
	found, missing, _ := storage.NewMemoryStore(phones).GetPhones(context.Background(), ids)
	if len(missing) > 0 {
		return fmt.Errorf("unknown phone id(s): %s", strings.Join(missing, ", "))
	}
	operands := make([]*domain.Phone, len(found))
	for i := range found {
		operands[i] = &found[i]
	}

	engine := comparison.NewEngine(loadWeights(opts.weightsPath))

	var results []*domain.ComparisonResult
	if len(operands) == 2 {
		res, err := engine.ComparePhones(operands[0], operands[1])
		if err != nil {
			return err
		}
		results = []*domain.ComparisonResult{res}
	} else {
		if results, err = engine.CompareMultiplePhones(operands); err != nil {
			return err
		}
	}

	if opts.xlsxPath != "" {
		if err := writeXLSXFile(opts.xlsxPath, results[0]); err != nil {
			return err
		}
	}

	if opts.format == "json" {
		return printResultsJSON(out, results)
	}
	for _, res := range results {
		printComparisonTable(out, res)
	}
	return nil
}

func writeXLSXFile(path string, res *domain.ComparisonResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := export.WriteXLSX(f, res); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func printResultsJSON(out io.Writer, results []*domain.ComparisonResult) error {
	var payload any = results
	if len(results) == 1 {
		payload = results[0]
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal comparison: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func printComparisonTable(out io.Writer, res *domain.ComparisonResult) {
	v := visual.Format(res)
	n1, n2 := v.Phones[0].Name, v.Phones[1].Name

	fmt.Fprintln(out, strings.Repeat("=", 70))
	fmt.Fprintf(out, " %s  vs  %s\n", n1, n2)
	fmt.Fprintln(out, strings.Repeat("=", 70))
	fmt.Fprintf(out, "  %-18s %8s %8s  %s\n", "Category", "[1]", "[2]", "Winner")
	for _, c := range v.CategoryScores {
		fmt.Fprintf(out, "  %-18s %8d %8d  %s\n", c.DisplayName, c.Phone1, c.Phone2, winnerLabel(c.Winner, n1, n2))
	}
	fmt.Fprintln(out, strings.Repeat("-", 70))
	fmt.Fprintf(out, "  %-18s %8d %8d  %s\n", "Overall", v.Phones[0].OverallScore, v.Phones[1].OverallScore,
		winnerLabel(v.OverallWinner, n1, n2))
	fmt.Fprintln(out)
	fmt.Fprintln(out, v.Summary)

	printList(out, "Key differences", v.KeyDifferences)
	printList(out, "Recommendations", res.Insights.Recommendations)
	fmt.Fprintln(out)
}

func printList(out io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s:\n", title)
	for _, it := range items {
		fmt.Fprintf(out, "  - %s\n", it)
	}
}

func winnerLabel(w domain.Winner, n1, n2 string) string {
	switch w {
	case domain.WinnerPhone1:
		return n1
	case domain.WinnerPhone2:
		return n2
	}
	return "tie"
}
