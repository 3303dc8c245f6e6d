// Package visual projects a comparison result into the shape the chart and
// summary widgets render. It never recomputes scores or winners.
package visual

import (
	"fmt"
	"math"

	"github.com/denisok6893-rgb/ai-phone-comparison/internal/comparison"
	"github.com/denisok6893-rgb/ai-phone-comparison/internal/domain"
)

const (
	maxKeyDifferences  = 3
	priceGapThreshold  = 10000
	cameraGapThreshold = 20
	batteryGapMAh      = 500
)

type PhoneCard struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Image        string  `json:"image,omitempty"`
	Price        float64 `json:"price"`
	OverallScore int     `json:"overall_score"`
}

type CategoryScore struct {
	Name        string        `json:"name"`
	DisplayName string        `json:"display_name"`
	Phone1      int           `json:"phone1"`
	Phone2      int           `json:"phone2"`
	Winner      domain.Winner `json:"winner"`
}

type ChartSeries struct {
	Name string `json:"name"`
	Data []int  `json:"data"`
}

// ChartData is radar/bar chart input: one label per category and one series
// per phone, aligned by index.
type ChartData struct {
	Labels []string      `json:"labels"`
	Series []ChartSeries `json:"series"`
}

type Comparison struct {
	Phones         [2]PhoneCard    `json:"phones"`
	CategoryScores []CategoryScore `json:"category_scores"`
	KeyDifferences []string        `json:"key_differences"`
	Chart          ChartData       `json:"chart"`
	OverallWinner  domain.Winner   `json:"overall_winner"`
	Summary        string          `json:"summary"`
}

// Format projects res for the presentation layer.
func Format(res *domain.ComparisonResult) Comparison {
	a, b := res.Phones[0], res.Phones[1]
	out := Comparison{
		Phones: [2]PhoneCard{
			card(a, res.Scores.Phone1),
			card(b, res.Scores.Phone2),
		},
		KeyDifferences: keyDifferences(a, b),
		OverallWinner:  res.OverallWinner,
		Summary:        res.Summary,
	}

	s1 := ChartSeries{Name: a.DisplayName()}
	s2 := ChartSeries{Name: b.DisplayName()}
	for _, c := range res.Categories {
		cat := comparison.Category(c.Name)
		v1 := comparison.ScoreOf(res.Scores.Phone1, cat)
		v2 := comparison.ScoreOf(res.Scores.Phone2, cat)
		out.CategoryScores = append(out.CategoryScores, CategoryScore{
			Name:        c.Name,
			DisplayName: c.DisplayName,
			Phone1:      v1,
			Phone2:      v2,
			Winner:      c.Winner,
		})
		out.Chart.Labels = append(out.Chart.Labels, c.DisplayName)
		s1.Data = append(s1.Data, v1)
		s2.Data = append(s2.Data, v2)
	}
	out.Chart.Series = []ChartSeries{s1, s2}
	return out
}

func card(p domain.Phone, s domain.PhoneScores) PhoneCard {
	c := PhoneCard{
		ID:           p.ID,
		Name:         p.DisplayName(),
		Price:        p.Pricing.CurrentPrice,
		OverallScore: s.Overall,
	}
	if len(p.Images) > 0 {
		c.Image = p.Images[0]
	}
	return c
}

// keyDifferences checks price, main camera and battery, in that order, and
// keeps at most three notes.
func keyDifferences(a, b domain.Phone) []string {
	diffs := []string{}

	p1, ok1 := comparison.CurrentPrice(a)
	p2, ok2 := comparison.CurrentPrice(b)
	if gap := math.Abs(p1 - p2); ok1 && ok2 && gap > priceGapThreshold {
		cheaper := a
		if p2 < p1 {
			cheaper = b
		}
		diffs = append(diffs, fmt.Sprintf("%s is %s cheaper", cheaper.DisplayName(), comparison.FormatPrice(gap)))
	}

	m1, m2 := comparison.MainCameraMP(a.Specifications.Camera), comparison.MainCameraMP(b.Specifications.Camera)
	if gap := math.Abs(m1 - m2); gap > cameraGapThreshold {
		better := a
		if m2 > m1 {
			better = b
		}
		diffs = append(diffs, fmt.Sprintf("%s has a higher resolution main camera (%gMP vs %gMP)",
			better.DisplayName(), math.Max(m1, m2), math.Min(m1, m2)))
	}

	c1, c2 := a.Specifications.Battery.Capacity, b.Specifications.Battery.Capacity
	if gap := c1 - c2; gap > batteryGapMAh || -gap > batteryGapMAh {
		larger := a
		if c2 > c1 {
			larger = b
		}
		diffs = append(diffs, fmt.Sprintf("%s has a larger battery (%dmAh vs %dmAh)",
			larger.DisplayName(), max(c1, c2), min(c1, c2)))
	}

	if len(diffs) > maxKeyDifferences {
		diffs = diffs[:maxKeyDifferences]
	}
	return diffs
}
