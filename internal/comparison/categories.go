package comparison

import (
	"time"

	"github.com/denisok6893-rgb/ai-phone-comparison/internal/domain"
)

type Category string

const (
	CategoryDisplay     Category = "display"
	CategoryCamera      Category = "camera"
	CategoryPerformance Category = "performance"
	CategoryBattery     Category = "battery"
	CategoryBuild       Category = "build"
	CategoryValue       Category = "value"
)

type categoryDef struct {
	name        Category
	displayName string
	score       func(p domain.Phone, now time.Time) int
	compare     func(a, b domain.Phone) []domain.SpecComparison
}

// categoryTable is the closed set of comparison dimensions, in result order.
var categoryTable = [...]categoryDef{
	{CategoryDisplay, "Display", scoreDisplay, compareDisplay},
	{CategoryCamera, "Camera", scoreCamera, compareCamera},
	{CategoryPerformance, "Performance", scorePerformance, comparePerformance},
	{CategoryBattery, "Battery", scoreBattery, compareBattery},
	{CategoryBuild, "Build Quality", scoreBuild, compareBuild},
	{CategoryValue, "Value for Money", scoreValue, compareValue},
}

// Categories returns the six categories in their fixed order.
func Categories() []Category {
	out := make([]Category, len(categoryTable))
	for i, def := range categoryTable {
		out[i] = def.name
	}
	return out
}

// DisplayName returns the human label of c.
func (c Category) DisplayName() string {
	for _, def := range categoryTable {
		if def.name == c {
			return def.displayName
		}
	}
	return string(c)
}

// ScoreOf picks the score of category c out of s.
func ScoreOf(s domain.PhoneScores, c Category) int {
	if f := scoreField(&s, c); f != nil {
		return *f
	}
	return 0
}

func scoreField(s *domain.PhoneScores, c Category) *int {
	switch c {
	case CategoryDisplay:
		return &s.Display
	case CategoryCamera:
		return &s.Camera
	case CategoryPerformance:
		return &s.Performance
	case CategoryBattery:
		return &s.Battery
	case CategoryBuild:
		return &s.Build
	case CategoryValue:
		return &s.Value
	}
	return nil
}
