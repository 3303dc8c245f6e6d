package comparison

import (
	"math"
	"time"

	"github.com/denisok6893-rgb/ai-phone-comparison/internal/domain"
)

// step awards bonus when a magnitude reaches min. Step lists are ordered from
// the highest threshold down; only the first match counts.
type step struct {
	min   float64
	bonus int
}

func stepBonus(v float64, steps []step) int {
	for _, s := range steps {
		if v >= s.min {
			return s.bonus
		}
	}
	return 0
}

var (
	displaySizeSteps  = []step{{6.5, 15}, {6.0, 10}, {5.5, 5}}
	refreshRateSteps  = []step{{120, 5}, {90, 3}}
	resolutionBonus   = map[int]int{4: 20, 3: 15, 2: 5}
	panelBonus        = map[int]int{3: 10, 2: 5}
	mainCameraSteps   = []step{{108, 20}, {64, 15}, {48, 10}, {12, 5}}
	frontCameraSteps  = []step{{32, 10}, {16, 7}, {8, 5}}
	cameraCountSteps  = []step{{4, 10}, {3, 7}, {2, 5}}
	processorBonus    = map[int]int{5: 25, 4: 20, 3: 15, 2: 10}
	ramSteps          = []step{{12, 15}, {8, 10}, {6, 7}, {4, 5}}
	storageSteps      = []step{{512, 10}, {256, 7}, {128, 5}}
	capacitySteps     = []step{{5000, 25}, {4500, 20}, {4000, 15}, {3500, 10}, {3000, 5}}
	chargingSteps     = []step{{100, 15}, {65, 12}, {33, 8}, {18, 5}}
	waterBonus        = map[int]int{4: 15, 3: 12, 2: 8}
	availabilityBonus = map[domain.Availability]int{
		domain.AvailabilityAvailable: 20,
		domain.AvailabilityUpcoming:  10,
	}
)

func scoreDisplay(p domain.Phone, _ time.Time) int {
	d := p.Specifications.Display
	score := 50
	score += stepBonus(firstNumber(d.Size), displaySizeSteps)
	score += resolutionBonus[resolutionTier(d.Resolution)]
	score += panelBonus[panelTier(d.Type)]
	score += stepBonus(float64(d.RefreshRate), refreshRateSteps)
	return score
}

func scoreCamera(p domain.Phone, _ time.Time) int {
	c := p.Specifications.Camera
	score := 40
	score += stepBonus(MainCameraMP(c), mainCameraSteps)
	score += stepBonus(c.Front.Megapixels, frontCameraSteps)
	score += stepBonus(float64(len(c.Rear)), cameraCountSteps)
	score += min(10, 2*len(c.Features))
	return score
}

func scorePerformance(p domain.Phone, _ time.Time) int {
	perf := p.Specifications.Performance
	score := 40
	score += processorBonus[processorTier(perf.Processor)]
	score += stepBonus(maxOption(perf.RAM), ramSteps)
	score += stepBonus(maxOption(perf.Storage), storageSteps)
	return score
}

func scoreBattery(p domain.Phone, _ time.Time) int {
	b := p.Specifications.Battery
	score := 40
	score += stepBonus(float64(b.Capacity), capacitySteps)
	score += stepBonus(float64(b.ChargingSpeed), chargingSteps)
	if b.WirelessCharging {
		score += 10
	}
	return score
}

func scoreBuild(p domain.Phone, _ time.Time) int {
	b := p.Specifications.Build
	score := 50
	switch tier := materialsTier(b.Materials); {
	case tier == 3:
		score += 20
	case tier == 2:
		score += 15
	case hasPremiumMaterial(b.Materials):
		score += 10
	}
	score += waterBonus[waterResistanceTier(b.WaterResistance)]
	score += min(15, 2*len(b.Colors))
	return score
}

func scoreValue(p domain.Phone, now time.Time) int {
	score := 50
	if price, ok := CurrentPrice(p); ok {
		switch {
		case price < 15000:
			score += 20
		case price < 30000:
			score += 15
		case price < 50000:
			score += 10
		default:
			score += 5
		}
	}

	if bonus, ok := availabilityBonus[p.Availability]; ok {
		score += bonus
	} else {
		score -= 10
	}

	if age, ok := ageMonths(p.LaunchDate, now); ok {
		switch {
		case age < 6:
			score += 10
		case age < 12:
			score += 5
		case age > 24:
			score -= 5
		}
	}
	return score
}

// ScorePhone runs the six category scorers and aggregates them with w.
func ScorePhone(p domain.Phone, w Weights, now time.Time) domain.PhoneScores {
	var s domain.PhoneScores
	for _, def := range categoryTable {
		*scoreField(&s, def.name) = clampScore(def.score(p, now))
	}
	s.Overall = aggregate(s, w)
	return s
}

// aggregate is the weighted sum of the six category scores, rounded and
// clamped to [0,100].
func aggregate(s domain.PhoneScores, w Weights) int {
	var total float64
	for _, c := range Categories() {
		total += float64(ScoreOf(s, c)) * w.For(c)
	}
	return clampScore(int(math.Round(total)))
}

func clampScore(v int) int {
	return max(0, min(100, v))
}
