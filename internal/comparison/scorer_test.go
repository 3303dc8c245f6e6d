package comparison

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/denisok6893-rgb/ai-phone-comparison/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorePhone_WorkedExample(t *testing.T) {
	a := ScorePhone(galaxyS24Ultra(), DefaultWeights(), testNow)
	b := ScorePhone(onePlus12(), DefaultWeights(), testNow)

	assert.Equal(t, domain.PhoneScores{
		Overall:     88,
		Display:     100,
		Camera:      83,
		Performance: 90,
		Battery:     83,
		Build:       88,
		Value:       80,
	}, a)
	assert.Equal(t, domain.PhoneScores{
		Overall:     79,
		Display:     80,
		Camera:      66,
		Performance: 87,
		Battery:     80,
		Build:       77,
		Value:       90,
	}, b)

	assert.Greater(t, a.Camera, b.Camera)
	assert.Greater(t, b.Value, a.Value)
}

func TestScorePhone_MinimalPhone(t *testing.T) {
	s := ScorePhone(domain.Phone{ID: "bare"}, DefaultWeights(), testNow)

	assert.Equal(t, domain.PhoneScores{
		Overall:     43,
		Display:     50,
		Camera:      40,
		Performance: 40,
		Battery:     40,
		Build:       50,
		Value:       40,
	}, s)
}

func TestScorePhone_AllScoresInRange(t *testing.T) {
	phones := []domain.Phone{
		{},
		galaxyS24Ultra(),
		onePlus12(),
		{
			Availability: domain.AvailabilityDiscontinued,
			LaunchDate:   "2019-01-01",
			Pricing:      domain.Pricing{CurrentPrice: 999999},
		},
		{
			Specifications: domain.PhoneSpecifications{
				Camera: domain.CameraSpec{
					Rear:     []domain.CameraModule{{Megapixels: 200}, {}, {}, {}, {}},
					Front:    domain.CameraModule{Megapixels: 60},
					Features: []string{"a", "b", "c", "d", "e", "f", "g", "h"},
				},
				Build: domain.BuildSpec{
					Materials:       []string{"glass", "metal", "premium"},
					Colors:          []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"},
					WaterResistance: "IP68",
				},
			},
		},
	}
	for _, p := range phones {
		s := ScorePhone(p, DefaultWeights(), testNow)
		for _, v := range []int{s.Overall, s.Display, s.Camera, s.Performance, s.Battery, s.Build, s.Value} {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 100)
		}
	}
}

func TestScoreBattery_MonotoneInCapacity(t *testing.T) {
	p := onePlus12()
	prev := -1
	for capacity := 0; capacity <= 7000; capacity += 250 {
		p.Specifications.Battery.Capacity = capacity
		got := scoreBattery(p, testNow)
		assert.GreaterOrEqual(t, got, prev, "capacity %d", capacity)
		prev = got
	}
}

func TestScoreValue_NonIncreasingInPrice(t *testing.T) {
	p := onePlus12()
	prev := 1 << 30
	for price := 1000.0; price <= 200000; price += 2500 {
		p.Pricing.CurrentPrice = price
		got := scoreValue(p, testNow)
		assert.LessOrEqual(t, got, prev, "price %.0f", price)
		prev = got
	}
}

func TestScorePerformance_MonotoneInProcessorTier(t *testing.T) {
	p := onePlus12()
	prev := -1
	for _, cpu := range []string{"Helio G85", "Dimensity 7050", "Snapdragon 6 Gen 1", "Dimensity 9200", "Snapdragon 8 Gen 3"} {
		p.Specifications.Performance.Processor = cpu
		got := scorePerformance(p, testNow)
		assert.GreaterOrEqual(t, got, prev, cpu)
		prev = got
	}
}

func TestScoreBuild_PremiumKeywordOnlyWithoutTier(t *testing.T) {
	p := domain.Phone{}
	p.Specifications.Build.Materials = []string{"Premium polycarbonate"}
	assert.Equal(t, 60, scoreBuild(p, testNow))

	p.Specifications.Build.Materials = []string{"Premium glass"}
	assert.Equal(t, 65, scoreBuild(p, testNow))
}

func TestScoreValue_AvailabilityAndAge(t *testing.T) {
	p := domain.Phone{Pricing: domain.Pricing{CurrentPrice: 60000}}

	p.Availability = domain.AvailabilityUpcoming
	assert.Equal(t, 65, scoreValue(p, testNow))

	p.Availability = domain.AvailabilityDiscontinued
	p.LaunchDate = "2021-06-01"
	assert.Equal(t, 40, scoreValue(p, testNow))
}

func TestScoreValue_UnknownPriceEarnsNoPriceBonus(t *testing.T) {
	p := domain.Phone{Availability: domain.AvailabilityAvailable}

	for _, price := range []float64{0, -100} {
		p.Pricing.CurrentPrice = price
		assert.Equal(t, 70, scoreValue(p, testNow), "price %.0f", price)
	}

	p.Pricing.CurrentPrice = 9999
	assert.Equal(t, 90, scoreValue(p, testNow))
}

func TestDefaultWeights_SumToOne(t *testing.T) {
	require.NoError(t, DefaultWeights().Validate())
}

func TestWeightsValidate(t *testing.T) {
	w := DefaultWeights()
	w.Camera = 0.5
	require.Error(t, w.Validate())

	w = DefaultWeights()
	w.Build, w.Value = -0.1, 0.3
	require.Error(t, w.Validate())
}

func TestLoadWeightsFromFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "weights.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`display: 0.15
camera: 0.30
performance: 0.20
battery: 0.15
build: 0.10
value: 0.10
`), 0o644))
	w, err := LoadWeightsFromFile(good)
	require.NoError(t, err)
	assert.InDelta(t, 0.30, w.Camera, 1e-9)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"display": 0.9, "camera": 0.9}`), 0o644))
	w, err = LoadWeightsFromFile(bad)
	require.Error(t, err)
	assert.Equal(t, DefaultWeights(), w)

	_, err = LoadWeightsFromFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
