package comparison

import (
	"github.com/denisok6893-rgb/ai-phone-comparison/internal/domain"
)

var importanceVotes = map[domain.Importance]int{
	domain.ImportanceHigh:   3,
	domain.ImportanceMedium: 2,
	domain.ImportanceLow:    1,
}

// attr is one attribute of a pair of phones reduced to comparable magnitudes.
type attr struct {
	label         string
	v1, v2        float64
	show1, show2  string
	importance    domain.Importance
	lowerIsBetter bool
}

func (a attr) comparison() domain.SpecComparison {
	v1, v2 := a.v1, a.v2
	if a.lowerIsBetter {
		v1, v2 = -v1, -v2
	}
	imp := a.importance
	if imp == "" {
		imp = domain.ImportanceMedium
	}
	return domain.SpecComparison{
		Category:    a.label,
		Phone1Value: a.show1,
		Phone2Value: a.show2,
		Winner:      pickWinner(v1, v2),
		Importance:  imp,
	}
}

func buildComparisons(attrs ...attr) []domain.SpecComparison {
	out := make([]domain.SpecComparison, len(attrs))
	for i, a := range attrs {
		out[i] = a.comparison()
	}
	return out
}

// pickWinner favours the strictly greater side.
func pickWinner[T int | float64](a, b T) domain.Winner {
	switch {
	case a > b:
		return domain.WinnerPhone1
	case b > a:
		return domain.WinnerPhone2
	default:
		return domain.WinnerTie
	}
}

// categoryWinner is an importance-weighted vote over the attribute winners.
func categoryWinner(specs []domain.SpecComparison) domain.Winner {
	var votes1, votes2 int
	for _, s := range specs {
		w, ok := importanceVotes[s.Importance]
		if !ok {
			w = importanceVotes[domain.ImportanceMedium]
		}
		switch s.Winner {
		case domain.WinnerPhone1:
			votes1 += w
		case domain.WinnerPhone2:
			votes2 += w
		}
	}
	return pickWinner(votes1, votes2)
}

func newAttr(label string, imp domain.Importance, v1, v2 float64, show1, show2 string) attr {
	return attr{label: label, importance: imp, v1: v1, v2: v2, show1: show1, show2: show2}
}

// unitAttr compares plain magnitudes shown with a unit suffix.
func unitAttr(label string, imp domain.Importance, v1, v2 float64, unit string) attr {
	return newAttr(label, imp, v1, v2, withUnit(v1, unit), withUnit(v2, unit))
}

func compareDisplay(a, b domain.Phone) []domain.SpecComparison {
	d1, d2 := a.Specifications.Display, b.Specifications.Display
	return buildComparisons(
		newAttr("Screen Size", domain.ImportanceHigh,
			firstNumber(d1.Size), firstNumber(d2.Size), orNA(d1.Size), orNA(d2.Size)),
		newAttr("Resolution", domain.ImportanceMedium,
			float64(resolutionTier(d1.Resolution)), float64(resolutionTier(d2.Resolution)),
			orNA(d1.Resolution), orNA(d2.Resolution)),
		newAttr("Panel Type", domain.ImportanceMedium,
			float64(panelTier(d1.Type)), float64(panelTier(d2.Type)), orNA(d1.Type), orNA(d2.Type)),
		unitAttr("Refresh Rate", domain.ImportanceLow,
			float64(d1.RefreshRate), float64(d2.RefreshRate), "Hz"),
	)
}

func compareCamera(a, b domain.Phone) []domain.SpecComparison {
	c1, c2 := a.Specifications.Camera, b.Specifications.Camera
	return buildComparisons(
		unitAttr("Main Camera", domain.ImportanceHigh, MainCameraMP(c1), MainCameraMP(c2), "MP"),
		unitAttr("Front Camera", domain.ImportanceMedium, c1.Front.Megapixels, c2.Front.Megapixels, "MP"),
		newAttr("Rear Cameras", domain.ImportanceLow,
			float64(len(c1.Rear)), float64(len(c2.Rear)),
			countOf(len(c1.Rear), "camera"), countOf(len(c2.Rear), "camera")),
	)
}

func comparePerformance(a, b domain.Phone) []domain.SpecComparison {
	p1, p2 := a.Specifications.Performance, b.Specifications.Performance
	return buildComparisons(
		newAttr("Processor", domain.ImportanceHigh,
			float64(processorTier(p1.Processor)), float64(processorTier(p2.Processor)),
			orNA(p1.Processor), orNA(p2.Processor)),
		unitAttr("RAM", domain.ImportanceMedium, maxOption(p1.RAM), maxOption(p2.RAM), "GB"),
		unitAttr("Storage", domain.ImportanceMedium, maxOption(p1.Storage), maxOption(p2.Storage), "GB"),
	)
}

func compareBattery(a, b domain.Phone) []domain.SpecComparison {
	b1, b2 := a.Specifications.Battery, b.Specifications.Battery
	return buildComparisons(
		unitAttr("Capacity", domain.ImportanceHigh, float64(b1.Capacity), float64(b2.Capacity), "mAh"),
		unitAttr("Charging Speed", domain.ImportanceMedium,
			float64(b1.ChargingSpeed), float64(b2.ChargingSpeed), "W"),
		newAttr("Wireless Charging", domain.ImportanceLow,
			boolMagnitude(b1.WirelessCharging), boolMagnitude(b2.WirelessCharging),
			yesNo(b1.WirelessCharging), yesNo(b2.WirelessCharging)),
	)
}

func compareBuild(a, b domain.Phone) []domain.SpecComparison {
	b1, b2 := a.Specifications.Build, b.Specifications.Build
	return buildComparisons(
		newAttr("Materials", domain.ImportanceMedium,
			float64(materialsTier(b1.Materials)), float64(materialsTier(b2.Materials)),
			joinOrNA(b1.Materials), joinOrNA(b2.Materials)),
		newAttr("Water Resistance", domain.ImportanceMedium,
			float64(waterResistanceTier(b1.WaterResistance)), float64(waterResistanceTier(b2.WaterResistance)),
			orNone(b1.WaterResistance), orNone(b2.WaterResistance)),
		newAttr("Color Options", domain.ImportanceLow,
			float64(len(b1.Colors)), float64(len(b2.Colors)),
			countOf(len(b1.Colors), "color"), countOf(len(b2.Colors), "color")),
	)
}

func compareValue(a, b domain.Phone) []domain.SpecComparison {
	// An unknown price on either side leaves the row tied.
	p1, ok1 := CurrentPrice(a)
	p2, ok2 := CurrentPrice(b)
	if !ok1 || !ok2 {
		p1, p2 = 0, 0
	}
	price := newAttr("Price", domain.ImportanceHigh, p1, p2,
		formatPrice(a.Pricing.CurrentPrice), formatPrice(b.Pricing.CurrentPrice))
	price.lowerIsBetter = true
	return buildComparisons(
		price,
		newAttr("Availability", domain.ImportanceMedium,
			float64(availabilityTier(a.Availability)), float64(availabilityTier(b.Availability)),
			availabilityLabel(a.Availability), availabilityLabel(b.Availability)),
	)
}

// compareCategories builds the six categories for a pair of phones. Summaries
// are filled in later by the formatting step.
func compareCategories(a, b domain.Phone, w Weights) []domain.ComparisonCategory {
	out := make([]domain.ComparisonCategory, 0, len(categoryTable))
	for _, def := range categoryTable {
		specs := def.compare(a, b)
		out = append(out, domain.ComparisonCategory{
			Name:        string(def.name),
			DisplayName: def.displayName,
			Weight:      w.For(def.name),
			Specs:       specs,
			Winner:      categoryWinner(specs),
		})
	}
	return out
}

func boolMagnitude(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
