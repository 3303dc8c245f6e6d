// Package export renders a comparison result as a spreadsheet.
package export

import (
	"bytes"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/denisok6893-rgb/ai-phone-comparison/internal/comparison"
	"github.com/denisok6893-rgb/ai-phone-comparison/internal/domain"
)

const (
	SummarySheet    = "Summary"
	CategoriesSheet = "Categories"
	SpecsSheet      = "Specs"
)

// BuildXLSX returns the workbook bytes for res.
func BuildXLSX(res *domain.ComparisonResult) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, res); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteXLSX writes a three-sheet workbook: overall scores and insights,
// per-category scores and winners, and every spec-level comparison.
func WriteXLSX(w io.Writer, res *domain.ComparisonResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return err
	}
	for _, name := range []string{CategoriesSheet, SpecsSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	if err := writeRows(f, SummarySheet, summaryRows(res)); err != nil {
		return err
	}
	if err := writeRows(f, CategoriesSheet, categoryRows(res)); err != nil {
		return err
	}
	if err := writeRows(f, SpecsSheet, specRows(res)); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	_, err := f.WriteTo(w)
	return err
}

func summaryRows(res *domain.ComparisonResult) [][]any {
	a, b := res.Phones[0], res.Phones[1]
	rows := [][]any{
		{"", a.DisplayName(), b.DisplayName()},
		{"Price", a.Pricing.CurrentPrice, b.Pricing.CurrentPrice},
		{"Overall score", res.Scores.Phone1.Overall, res.Scores.Phone2.Overall},
		{"Overall winner", winnerName(res, res.OverallWinner)},
		{"Summary", res.Summary},
		{},
		{"Strengths", strings.Join(res.Insights.Phone1.Strengths, ", "), strings.Join(res.Insights.Phone2.Strengths, ", ")},
		{"Weaknesses", strings.Join(res.Insights.Phone1.Weaknesses, ", "), strings.Join(res.Insights.Phone2.Weaknesses, ", ")},
		{"Best for", strings.Join(res.Insights.Phone1.BestFor, ", "), strings.Join(res.Insights.Phone2.BestFor, ", ")},
	}
	for i, r := range res.Insights.Recommendations {
		label := ""
		if i == 0 {
			label = "Recommendations"
		}
		rows = append(rows, []any{label, r})
	}
	return rows
}

func categoryRows(res *domain.ComparisonResult) [][]any {
	rows := [][]any{{"Category", "Weight", res.Phones[0].DisplayName(), res.Phones[1].DisplayName(), "Winner", "Summary"}}
	for _, c := range res.Categories {
		cat := comparison.Category(c.Name)
		rows = append(rows, []any{
			c.DisplayName,
			c.Weight,
			comparison.ScoreOf(res.Scores.Phone1, cat),
			comparison.ScoreOf(res.Scores.Phone2, cat),
			winnerName(res, c.Winner),
			c.Summary,
		})
	}
	return rows
}

func specRows(res *domain.ComparisonResult) [][]any {
	rows := [][]any{{"Category", "Spec", res.Phones[0].DisplayName(), res.Phones[1].DisplayName(), "Winner", "Importance"}}
	for _, c := range res.Categories {
		for _, s := range c.Specs {
			rows = append(rows, []any{
				c.DisplayName,
				s.Category,
				s.Phone1Value,
				s.Phone2Value,
				winnerName(res, s.Winner),
				string(s.Importance),
			})
		}
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func winnerName(res *domain.ComparisonResult, w domain.Winner) string {
	switch w {
	case domain.WinnerPhone1:
		return res.Phones[0].DisplayName()
	case domain.WinnerPhone2:
		return res.Phones[1].DisplayName()
	}
	return "Tie"
}
