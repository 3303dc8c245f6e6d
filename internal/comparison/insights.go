package comparison

import (
	"github.com/denisok6893-rgb/ai-phone-comparison/internal/domain"
)

const (
	// strengthMargin is the score lead needed for a strength, weakness or
	// best-for tag.
	strengthMargin = 5
	// recommendationGap is the score lead needed for a performance or camera
	// recommendation.
	recommendationGap = 10
	// valuePriceRatio: a phone priced below this share of the other gets a
	// value recommendation.
	valuePriceRatio = 0.8
)

var strengthLabels = map[Category]string{
	CategoryDisplay:     "display quality",
	CategoryCamera:      "camera performance",
	CategoryPerformance: "processing power",
	CategoryBattery:     "battery life",
	CategoryBuild:       "build quality",
	CategoryValue:       "value for money",
}

var bestForScenarios = []struct {
	category Category
	tag      string
}{
	{CategoryCamera, "Photography and content creation"},
	{CategoryPerformance, "Gaming and heavy multitasking"},
	{CategoryBattery, "Long usage sessions and travel"},
	{CategoryValue, "Budget-conscious buyers"},
	{CategoryDisplay, "Media consumption and streaming"},
}

func generateInsights(a, b domain.Phone, s1, s2 domain.PhoneScores) domain.ComparisonInsights {
	ins := domain.ComparisonInsights{
		Phone1:          phoneInsights(s1, s2),
		Phone2:          phoneInsights(s2, s1),
		Recommendations: []string{},
	}

	p1, ok1 := CurrentPrice(a)
	p2, ok2 := CurrentPrice(b)
	if ok1 && ok2 {
		switch {
		case p1 < valuePriceRatio*p2:
			ins.Recommendations = append(ins.Recommendations, valueRecommendation(a, p2-p1))
		case p2 < valuePriceRatio*p1:
			ins.Recommendations = append(ins.Recommendations, valueRecommendation(b, p1-p2))
		}
	}

	if lead, ok := leader(a, b, s1.Performance, s2.Performance, recommendationGap); ok {
		ins.Recommendations = append(ins.Recommendations, performanceRecommendation(lead))
	}
	if lead, ok := leader(a, b, s1.Camera, s2.Camera, recommendationGap); ok {
		ins.Recommendations = append(ins.Recommendations, cameraRecommendation(lead))
	}
	return ins
}

// phoneInsights derives the lists for the phone scored own against other.
func phoneInsights(own, other domain.PhoneScores) domain.PhoneInsights {
	pi := domain.PhoneInsights{
		Strengths:  []string{},
		Weaknesses: []string{},
		BestFor:    []string{},
	}
	for _, c := range Categories() {
		diff := ScoreOf(own, c) - ScoreOf(other, c)
		switch {
		case diff > strengthMargin:
			pi.Strengths = append(pi.Strengths, strengthLabels[c])
		case -diff > strengthMargin:
			pi.Weaknesses = append(pi.Weaknesses, strengthLabels[c])
		}
	}
	for _, sc := range bestForScenarios {
		if ScoreOf(own, sc.category)-ScoreOf(other, sc.category) > strengthMargin {
			pi.BestFor = append(pi.BestFor, sc.tag)
		}
	}
	return pi
}

// leader returns the phone whose score leads by more than gap.
func leader(a, b domain.Phone, s1, s2, gap int) (domain.Phone, bool) {
	switch diff := s1 - s2; {
	case diff > gap:
		return a, true
	case -diff > gap:
		return b, true
	}
	return domain.Phone{}, false
}
