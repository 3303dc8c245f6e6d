package comparison

import (
	"log/slog"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/denisok6893-rgb/ai-phone-comparison/internal/domain"
)

// Engine compares phones. It holds only its configuration and is safe for
// concurrent use.
type Engine struct {
	weights Weights
	now     func() time.Time
	workers int
}

type Option func(*Engine)

// WithClock sets the clock used for device age and result timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithWorkers bounds the number of pairs compared concurrently by
// CompareMultiplePhones.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

func NewEngine(w Weights, opts ...Option) *Engine {
	e := &Engine{
		weights: w,
		now:     time.Now,
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Score returns the category and overall scores of a single phone.
func (e *Engine) Score(p domain.Phone) domain.PhoneScores {
	return ScorePhone(p, e.weights, e.now())
}

// ComparePhones scores both phones, compares them category by category and
// derives insights and a summary.
func (e *Engine) ComparePhones(a, b *domain.Phone) (*domain.ComparisonResult, error) {
	switch {
	case a == nil && b == nil:
		return nil, &MissingOperandError{Position: "both"}
	case a == nil:
		return nil, &MissingOperandError{Position: "phone1"}
	case b == nil:
		return nil, &MissingOperandError{Position: "phone2"}
	}
	if a == b || identity(*a) == identity(*b) {
		return nil, &SelfComparisonError{PhoneID: a.ID}
	}

	now := e.now()
	s1 := ScorePhone(*a, e.weights, now)
	s2 := ScorePhone(*b, e.weights, now)

	categories := compareCategories(*a, *b, e.weights)
	for i := range categories {
		categories[i].Summary = categorySummary(categories[i], *a, *b)
	}

	winner := pickWinner(s1.Overall, s2.Overall)
	insights := generateInsights(*a, *b, s1, s2)

	return &domain.ComparisonResult{
		Phones:        [2]domain.Phone{*a, *b},
		Categories:    categories,
		Scores:        domain.ScorePair{Phone1: s1, Phone2: s2},
		OverallWinner: winner,
		Insights:      insights,
		Summary:       resultSummary(*a, *b, winner, insights),
		GeneratedAt:   now,
	}, nil
}

// CompareMultiplePhones compares every unordered pair (i<j) of phones. Results
// come back in that enumeration order; pairs are computed concurrently.
func (e *Engine) CompareMultiplePhones(phones []*domain.Phone) ([]*domain.ComparisonResult, error) {
	n := len(phones)
	if n < 2 {
		return nil, &InsufficientOperandsError{Got: n}
	}

	type pair struct{ i, j int }
	pairs := make([]pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, pair{i, j})
		}
	}
	slog.Debug("comparing phone pairs", "phones", n, "pairs", len(pairs))

	results := make([]*domain.ComparisonResult, len(pairs))
	errs := make([]error, len(pairs))
	var g errgroup.Group
	g.SetLimit(e.workers)
	for k, p := range pairs {
		g.Go(func() error {
			results[k], errs[k] = e.ComparePhones(phones[p.i], phones[p.j])
			return nil
		})
	}
	_ = g.Wait()

	// Report the first failing pair in enumeration order.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// identity is the phone id, or brand/model/variant when the id is empty.
func identity(p domain.Phone) string {
	if id := strings.TrimSpace(p.ID); id != "" {
		return "id:" + id
	}
	return "name:" + strings.ToLower(strings.Join([]string{p.Brand, p.Model, p.Variant}, "|"))
}
