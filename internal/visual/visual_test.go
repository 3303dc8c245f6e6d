package visual

import (
	"testing"
	"time"

	"github.com/denisok6893-rgb/ai-phone-comparison/internal/comparison"
	"github.com/denisok6893-rgb/ai-phone-comparison/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phone(id string, price float64, mainMP float64, battery int) domain.Phone {
	return domain.Phone{
		ID:           id,
		Brand:        "Acme",
		Model:        id,
		Availability: domain.AvailabilityAvailable,
		Pricing:      domain.Pricing{CurrentPrice: price},
		Specifications: domain.PhoneSpecifications{
			Camera:  domain.CameraSpec{Rear: []domain.CameraModule{{Megapixels: mainMP}}},
			Battery: domain.BatterySpec{Capacity: battery},
		},
		Images: []string{"https://img.example.com/" + id + ".png", "https://img.example.com/other.png"},
	}
}

func compare(t *testing.T, a, b domain.Phone) *domain.ComparisonResult {
	t.Helper()
	e := comparison.NewEngine(comparison.DefaultWeights(), comparison.WithClock(func() time.Time {
		return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	}))
	res, err := e.ComparePhones(&a, &b)
	require.NoError(t, err)
	return res
}

func TestFormat_MirrorsResult(t *testing.T) {
	res := compare(t, phone("x1", 80000, 200, 4500), phone("y1", 30000, 50, 5500))

	v := Format(res)

	assert.Equal(t, "x1", v.Phones[0].ID)
	assert.Equal(t, "Acme x1", v.Phones[0].Name)
	assert.Equal(t, "https://img.example.com/x1.png", v.Phones[0].Image)
	assert.Equal(t, res.Scores.Phone1.Overall, v.Phones[0].OverallScore)
	assert.Equal(t, res.Scores.Phone2.Overall, v.Phones[1].OverallScore)
	assert.InDelta(t, 30000.0, v.Phones[1].Price, 1e-9)
	assert.Equal(t, res.OverallWinner, v.OverallWinner)
	assert.Equal(t, res.Summary, v.Summary)

	require.Len(t, v.CategoryScores, len(res.Categories))
	require.Len(t, v.Chart.Labels, len(res.Categories))
	require.Len(t, v.Chart.Series, 2)
	for i, c := range res.Categories {
		cat := comparison.Category(c.Name)
		assert.Equal(t, c.Winner, v.CategoryScores[i].Winner)
		assert.Equal(t, comparison.ScoreOf(res.Scores.Phone1, cat), v.CategoryScores[i].Phone1)
		assert.Equal(t, comparison.ScoreOf(res.Scores.Phone2, cat), v.Chart.Series[1].Data[i])
		assert.Equal(t, c.DisplayName, v.Chart.Labels[i])
	}
}

func TestFormat_KeyDifferencesInPriorityOrder(t *testing.T) {
	res := compare(t, phone("x1", 80000, 200, 4500), phone("y1", 30000, 50, 5500))

	assert.Equal(t, []string{
		"Acme y1 is ₹50,000 cheaper",
		"Acme x1 has a higher resolution main camera (200MP vs 50MP)",
		"Acme y1 has a larger battery (5500mAh vs 4500mAh)",
	}, Format(res).KeyDifferences)
}

func TestFormat_KeyDifferencesBelowThresholds(t *testing.T) {
	res := compare(t, phone("x1", 30000, 50, 5000), phone("y1", 40000, 64, 5500))

	assert.Empty(t, Format(res).KeyDifferences)
}

func TestFormat_UnknownPriceIsNotADifference(t *testing.T) {
	res := compare(t, phone("x1", 0, 50, 5000), phone("y1", 40000, 50, 5000))

	assert.Empty(t, Format(res).KeyDifferences)
}

func TestFormat_MainCameraFromFirstRearModule(t *testing.T) {
	a := phone("x1", 30000, 12, 5000)
	a.Specifications.Camera.Rear = append(a.Specifications.Camera.Rear, domain.CameraModule{Megapixels: 200})
	res := compare(t, a, phone("y1", 30000, 50, 5000))

	assert.Equal(t, []string{
		"Acme y1 has a higher resolution main camera (50MP vs 12MP)",
	}, Format(res).KeyDifferences)
}

func TestFormat_DoesNotMutateResult(t *testing.T) {
	res := compare(t, phone("x1", 80000, 200, 4500), phone("y1", 30000, 50, 5500))
	before := *res
	before.Categories = append([]domain.ComparisonCategory(nil), res.Categories...)

	_ = Format(res)

	assert.Equal(t, before.Scores, res.Scores)
	assert.Equal(t, before.Categories, res.Categories)
	assert.Equal(t, before.OverallWinner, res.OverallWinner)
}
