package comparison

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/denisok6893-rgb/ai-phone-comparison/internal/domain"
)

// Tier classifiers shared by the scorers and the comparator. Both sides must
// read a spec field through the same helper or scores and winners disagree.

var numberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

// firstNumber returns the first decimal number in s, or 0 when there is none.
func firstNumber(s string) float64 {
	m := numberRe.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

func resolutionTier(resolution string) int {
	r := strings.ToUpper(resolution)
	switch {
	case strings.Contains(r, "1440") || strings.Contains(r, "QHD"):
		return 4
	case strings.Contains(r, "1080") || strings.Contains(r, "FHD"):
		return 3
	case strings.Contains(r, "720") || strings.Contains(r, "HD"):
		return 2
	default:
		return 1
	}
}

func panelTier(panel string) int {
	p := strings.ToLower(panel)
	switch {
	case strings.Contains(p, "amoled") || strings.Contains(p, "oled"):
		return 3
	case strings.Contains(p, "ips"):
		return 2
	default:
		return 1
	}
}

// processorFamilies is checked top to bottom; the first family with a
// matching marker decides the tier.
var processorFamilies = []struct {
	tier    int
	markers []string
}{
	{5, []string{"snapdragon 8", "a17", "a16"}},
	{4, []string{"snapdragon 7", "a15", "dimensity 9"}},
	{3, []string{"snapdragon 6", "dimensity 8"}},
	{2, []string{"snapdragon 4", "dimensity 7"}},
}

func processorTier(processor string) int {
	p := strings.ToLower(processor)
	for _, fam := range processorFamilies {
		for _, m := range fam.markers {
			if strings.Contains(p, m) {
				return fam.tier
			}
		}
	}
	return 1
}

// maxOption parses the leading number of every option ("8GB", "1TB") and
// returns the largest, in GB.
func maxOption(options []string) float64 {
	var best float64
	for _, opt := range options {
		v := firstNumber(opt)
		if strings.Contains(strings.ToUpper(opt), "TB") {
			v *= 1024
		}
		if v > best {
			best = v
		}
	}
	return best
}

func materialsTier(materials []string) int {
	m := strings.ToLower(strings.Join(materials, " "))
	glass := strings.Contains(m, "glass")
	metal := strings.Contains(m, "metal")
	switch {
	case glass && metal:
		return 3
	case glass || metal:
		return 2
	default:
		return 1
	}
}

func hasPremiumMaterial(materials []string) bool {
	return strings.Contains(strings.ToLower(strings.Join(materials, " ")), "premium")
}

func waterResistanceTier(rating string) int {
	r := strings.ToLower(rating)
	switch {
	case strings.Contains(r, "ip68"):
		return 4
	case strings.Contains(r, "ip67"):
		return 3
	case strings.Contains(r, "ip65") || strings.Contains(r, "ip54"):
		return 2
	default:
		return 0
	}
}

func availabilityTier(a domain.Availability) int {
	switch a {
	case domain.AvailabilityAvailable:
		return 3
	case domain.AvailabilityUpcoming:
		return 2
	default:
		return 1
	}
}

// MainCameraMP is the resolution of the primary (first) rear camera.
func MainCameraMP(c domain.CameraSpec) float64 {
	if len(c.Rear) == 0 {
		return 0
	}
	return c.Rear[0].Megapixels
}

// CurrentPrice returns the selling price. ok is false when the price is not
// positive, which every reader treats as unknown.
func CurrentPrice(p domain.Phone) (price float64, ok bool) {
	if p.Pricing.CurrentPrice <= 0 {
		return 0, false
	}
	return p.Pricing.CurrentPrice, true
}

var launchLayouts = []string{"2006-01-02", time.RFC3339, "2006-01"}

// ageMonths reports the device age in 30-day months. ok is false when the
// launch date is empty or unparseable.
func ageMonths(launchDate string, now time.Time) (months float64, ok bool) {
	launchDate = strings.TrimSpace(launchDate)
	if launchDate == "" {
		return 0, false
	}
	for _, layout := range launchLayouts {
		t, err := time.Parse(layout, launchDate)
		if err == nil {
			return now.Sub(t).Hours() / 24 / 30, true
		}
	}
	return 0, false
}
