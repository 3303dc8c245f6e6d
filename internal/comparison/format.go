package comparison

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/denisok6893-rgb/ai-phone-comparison/internal/domain"
)

// All user-facing sentences are composed here from computed facts; scoring
// and comparison code only deals in magnitudes and winners.

const currencySymbol = "₹"

var printer = message.NewPrinter(language.English)

// FormatPrice renders a price in the market currency with grouped digits.
func FormatPrice(v float64) string {
	return printer.Sprintf("%s%d", currencySymbol, int64(math.Round(v)))
}

func formatPrice(v float64) string {
	if v <= 0 {
		return "N/A"
	}
	return FormatPrice(v)
}

func withUnit(v float64, unit string) string {
	if v <= 0 {
		return "N/A"
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + unit
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "None"
	}
	return s
}

func joinOrNA(items []string) string {
	return orNA(strings.Join(items, ", "))
}

func countOf(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func availabilityLabel(a domain.Availability) string {
	switch a {
	case domain.AvailabilityAvailable:
		return "Available"
	case domain.AvailabilityUpcoming:
		return "Upcoming"
	case domain.AvailabilityDiscontinued:
		return "Discontinued"
	}
	return "Unknown"
}

func categorySummary(c domain.ComparisonCategory, a, b domain.Phone) string {
	topic := strings.ToLower(c.DisplayName)
	switch c.Winner {
	case domain.WinnerPhone1:
		return fmt.Sprintf("%s has the better %s.", a.DisplayName(), topic)
	case domain.WinnerPhone2:
		return fmt.Sprintf("%s has the better %s.", b.DisplayName(), topic)
	}
	return fmt.Sprintf("Both phones are evenly matched on %s.", topic)
}

// resultSummary names both phones and credits the winner's top two strengths.
func resultSummary(a, b domain.Phone, winner domain.Winner, ins domain.ComparisonInsights) string {
	intro := fmt.Sprintf("Comparing the %s and the %s.", a.DisplayName(), b.DisplayName())

	var name string
	var strengths []string
	switch winner {
	case domain.WinnerPhone1:
		name, strengths = a.DisplayName(), ins.Phone1.Strengths
	case domain.WinnerPhone2:
		name, strengths = b.DisplayName(), ins.Phone2.Strengths
	default:
		return intro + " Both phones are competitive, with no clear overall winner."
	}

	switch len(strengths) {
	case 0:
		return fmt.Sprintf("%s The %s comes out ahead overall.", intro, name)
	case 1:
		return fmt.Sprintf("%s The %s comes out ahead overall, thanks to its %s.", intro, name, strengths[0])
	}
	return fmt.Sprintf("%s The %s comes out ahead overall, thanks to its %s and %s.",
		intro, name, strengths[0], strengths[1])
}

func valueRecommendation(cheaper domain.Phone, saving float64) string {
	return fmt.Sprintf("Choose the %s for better value for money: it costs %s less.",
		cheaper.DisplayName(), FormatPrice(saving))
}

func performanceRecommendation(p domain.Phone) string {
	return fmt.Sprintf("Choose the %s for gaming and performance-intensive tasks.", p.DisplayName())
}

func cameraRecommendation(p domain.Phone) string {
	return fmt.Sprintf("Choose the %s if photography is your priority.", p.DisplayName())
}
