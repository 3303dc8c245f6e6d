package comparison

import (
	"errors"
	"fmt"
	"testing"

	"github.com/denisok6893-rgb/ai-phone-comparison/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparePhones_WorkedExample(t *testing.T) {
	a, b := galaxyS24Ultra(), onePlus12()

	res, err := newTestEngine().ComparePhones(&a, &b)
	require.NoError(t, err)

	assert.Greater(t, res.Scores.Phone1.Camera, res.Scores.Phone2.Camera)
	assert.Greater(t, res.Scores.Phone2.Value, res.Scores.Phone1.Value)
	assert.Equal(t, domain.WinnerPhone1, res.OverallWinner)

	assert.Contains(t, res.Insights.Phone1.Strengths, "camera performance")
	assert.Contains(t, res.Insights.Phone2.Strengths, "value for money")
	assert.Contains(t, res.Insights.Phone2.Weaknesses, "camera performance")
	assert.Contains(t, res.Insights.Phone1.BestFor, "Photography and content creation")
	assert.Contains(t, res.Insights.Phone2.BestFor, "Budget-conscious buyers")

	assert.Equal(t, []string{
		"Choose the OnePlus 12 for better value for money: it costs ₹83,000 less.",
		"Choose the Samsung Galaxy S24 Ultra if photography is your priority.",
	}, res.Insights.Recommendations)

	assert.Equal(t,
		"Comparing the Samsung Galaxy S24 Ultra and the OnePlus 12. "+
			"The Samsung Galaxy S24 Ultra comes out ahead overall, thanks to its display quality and camera performance.",
		res.Summary)
	assert.Equal(t, testNow, res.GeneratedAt)
}

func TestComparePhones_CategoryWinners(t *testing.T) {
	a, b := galaxyS24Ultra(), onePlus12()

	res, err := newTestEngine().ComparePhones(&a, &b)
	require.NoError(t, err)
	require.Len(t, res.Categories, 6)

	want := map[string]domain.Winner{
		"display":     domain.WinnerPhone1,
		"camera":      domain.WinnerPhone1,
		"performance": domain.WinnerPhone1,
		"battery":     domain.WinnerPhone2,
		"build":       domain.WinnerPhone1,
		"value":       domain.WinnerPhone2,
	}
	for i, c := range res.Categories {
		assert.Equal(t, string(Categories()[i]), c.Name)
		assert.Equal(t, want[c.Name], c.Winner, c.Name)
		assert.InDelta(t, DefaultWeights().For(Category(c.Name)), c.Weight, 1e-9)
		assert.NotEmpty(t, c.Summary)
		assert.GreaterOrEqual(t, len(c.Specs), 2)
	}

	value := res.Categories[5]
	assert.Equal(t, "Price", value.Specs[0].Category)
	assert.Equal(t, "₹125,000", value.Specs[0].Phone1Value)
	assert.Equal(t, "₹42,000", value.Specs[0].Phone2Value)
	assert.Equal(t, domain.WinnerPhone2, value.Specs[0].Winner)
	assert.Equal(t, domain.ImportanceHigh, value.Specs[0].Importance)
	assert.Equal(t, "OnePlus 12 has the better value for money.", value.Summary)
}

func TestComparePhones_IdenticalSpecsTie(t *testing.T) {
	a := galaxyS24Ultra()
	b := cloneAs(a, "samsung-galaxy-s24-ultra-copy")

	res, err := newTestEngine().ComparePhones(&a, &b)
	require.NoError(t, err)

	assert.Equal(t, domain.WinnerTie, res.OverallWinner)
	assert.Equal(t, res.Scores.Phone1, res.Scores.Phone2)
	for _, c := range res.Categories {
		assert.Equal(t, domain.WinnerTie, c.Winner, c.Name)
		for _, s := range c.Specs {
			assert.Equal(t, domain.WinnerTie, s.Winner, s.Category)
		}
	}
	assert.Empty(t, res.Insights.Phone1.Strengths)
	assert.Empty(t, res.Insights.Phone2.Weaknesses)
	assert.Empty(t, res.Insights.Recommendations)
	assert.Contains(t, res.Summary, "Both phones are competitive")
}

func TestComparePhones_SparseInputsTie(t *testing.T) {
	a := domain.Phone{ID: "a", Brand: "Acme", Model: "One"}
	b := domain.Phone{ID: "b", Brand: "Acme", Model: "Two"}

	res, err := newTestEngine().ComparePhones(&a, &b)
	require.NoError(t, err)
	assert.Equal(t, domain.WinnerTie, res.OverallWinner)
	for _, c := range res.Categories {
		assert.Equal(t, domain.WinnerTie, c.Winner, c.Name)
	}
}

func TestComparePhones_UnknownPriceIsNeutral(t *testing.T) {
	a := cloneAs(onePlus12(), "oneplus-12-unpriced")
	a.Pricing.CurrentPrice = 0
	b := onePlus12()

	res, err := newTestEngine().ComparePhones(&a, &b)
	require.NoError(t, err)

	value := res.Categories[5]
	require.Equal(t, "value", value.Name)
	assert.Equal(t, "N/A", value.Specs[0].Phone1Value)
	assert.Equal(t, "₹42,000", value.Specs[0].Phone2Value)
	assert.Equal(t, domain.WinnerTie, value.Specs[0].Winner)
	assert.Equal(t, domain.WinnerTie, value.Winner)

	assert.Equal(t, 80, res.Scores.Phone1.Value)
	assert.Equal(t, 90, res.Scores.Phone2.Value)
	assert.NotContains(t, res.Insights.Phone1.Strengths, "value for money")
	assert.NotContains(t, res.Insights.Phone1.BestFor, "Budget-conscious buyers")
	assert.Contains(t, res.Insights.Phone2.Strengths, "value for money")
	assert.Empty(t, res.Insights.Recommendations)
}

func TestComparePhones_Idempotent(t *testing.T) {
	a, b := galaxyS24Ultra(), onePlus12()
	e := newTestEngine()

	first, err := e.ComparePhones(&a, &b)
	require.NoError(t, err)
	second, err := e.ComparePhones(&a, &b)
	require.NoError(t, err)

	assert.Equal(t, first.Categories, second.Categories)
	assert.Equal(t, first.Scores, second.Scores)
	assert.Equal(t, first.OverallWinner, second.OverallWinner)
	assert.Equal(t, first.Insights, second.Insights)
}

func TestComparePhones_ScoresAreOrderInsensitive(t *testing.T) {
	a, b := galaxyS24Ultra(), onePlus12()
	e := newTestEngine()

	ab, err := e.ComparePhones(&a, &b)
	require.NoError(t, err)
	ba, err := e.ComparePhones(&b, &a)
	require.NoError(t, err)

	assert.Equal(t, ab.Scores.Phone1, ba.Scores.Phone2)
	assert.Equal(t, ab.Scores.Phone2, ba.Scores.Phone1)
	assert.Equal(t, domain.WinnerPhone2, ba.OverallWinner)
}

func TestComparePhones_Errors(t *testing.T) {
	e := newTestEngine()
	a := galaxyS24Ultra()

	_, err := e.ComparePhones(nil, &a)
	var missing *MissingOperandError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "phone1", missing.Position)

	_, err = e.ComparePhones(&a, nil)
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "phone2", missing.Position)

	_, err = e.ComparePhones(nil, nil)
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "both", missing.Position)

	_, err = e.ComparePhones(&a, &a)
	var self *SelfComparisonError
	require.True(t, errors.As(err, &self))
	assert.Equal(t, a.ID, self.PhoneID)

	copyA := a
	_, err = e.ComparePhones(&a, &copyA)
	require.True(t, errors.As(err, &self), "same id in a distinct value is still the same phone")
}

func TestCompareMultiplePhones_InsufficientOperands(t *testing.T) {
	e := newTestEngine()
	a := galaxyS24Ultra()

	var insufficient *InsufficientOperandsError

	_, err := e.CompareMultiplePhones(nil)
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 0, insufficient.Got)

	_, err = e.CompareMultiplePhones([]*domain.Phone{&a})
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 1, insufficient.Got)
}

func TestCompareMultiplePhones_PairwiseOrder(t *testing.T) {
	for n := 2; n <= 5; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			phones := make([]*domain.Phone, n)
			for i := range phones {
				p := cloneAs(onePlus12(), fmt.Sprintf("phone-%d", i))
				p.Pricing.CurrentPrice = float64(20000 + 10000*i)
				phones[i] = &p
			}

			results, err := NewEngine(DefaultWeights(), WithWorkers(2)).CompareMultiplePhones(phones)
			require.NoError(t, err)
			require.Len(t, results, n*(n-1)/2)

			k := 0
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					assert.Equal(t, phones[i].ID, results[k].Phones[0].ID)
					assert.Equal(t, phones[j].ID, results[k].Phones[1].ID)
					k++
				}
			}
		})
	}
}

func TestCompareMultiplePhones_FirstFailingPair(t *testing.T) {
	a, b := galaxyS24Ultra(), onePlus12()

	_, err := newTestEngine().CompareMultiplePhones([]*domain.Phone{&a, &b, nil, &a})

	var missing *MissingOperandError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "phone2", missing.Position)
}
