package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/denisok6893-rgb/ai-phone-comparison/internal/domain"
)

// MemoryStore keeps the catalog in process memory. It serves the same
// operations as SQLiteStore and is used when no database is configured.
type MemoryStore struct {
	mu     sync.RWMutex
	phones []domain.Phone
}

func NewMemoryStore(phones []domain.Phone) *MemoryStore {
	return &MemoryStore{phones: append([]domain.Phone(nil), phones...)}
}

func (s *MemoryStore) indexOf(id string) int {
	for i, p := range s.phones {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) UpsertMany(_ context.Context, items []domain.Phone) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range items {
		if i := s.indexOf(p.ID); i >= 0 {
			s.phones[i] = p
			continue
		}
		s.phones = append(s.phones, p)
	}
	return nil
}

func (s *MemoryStore) CreatePhone(_ context.Context, p domain.Phone) (domain.Phone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if s.indexOf(p.ID) >= 0 {
		return domain.Phone{}, fmt.Errorf("phone %s already exists", p.ID)
	}
	s.phones = append(s.phones, p)
	return p, nil
}

func (s *MemoryStore) DeletePhone(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.phones = append(s.phones[:i], s.phones[i+1:]...)
	return true, nil
}

func (s *MemoryStore) GetPhone(_ context.Context, id string) (domain.Phone, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.phones[i], true, nil
	}
	return domain.Phone{}, false, nil
}

func (s *MemoryStore) GetPhones(ctx context.Context, ids []string) (found []domain.Phone, missing []string, err error) {
	for _, id := range ids {
		p, ok, _ := s.GetPhone(ctx, id)
		if !ok {
			missing = append(missing, id)
			continue
		}
		found = append(found, p)
	}
	return found, missing, nil
}

func (s *MemoryStore) ListPhones(_ context.Context, f ListFilter) ([]domain.Phone, int, error) {
	f = f.normalized()

	s.mu.RLock()
	var matched []domain.Phone
	for _, p := range s.phones {
		if f.Brand != "" && !strings.EqualFold(p.Brand, strings.TrimSpace(f.Brand)) {
			continue
		}
		if f.MinPrice > 0 && p.Pricing.CurrentPrice < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Pricing.CurrentPrice > f.MaxPrice {
			continue
		}
		if f.Availability != "" && string(p.Availability) != f.Availability {
			continue
		}
		matched = append(matched, p)
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		pi, pj := matched[i].Pricing.CurrentPrice, matched[j].Pricing.CurrentPrice
		switch {
		case f.Sort == "price_asc" && pi != pj:
			return pi < pj
		case f.Sort == "price_desc" && pi != pj:
			return pi > pj
		}
		return matched[i].ID < matched[j].ID
	})

	total := len(matched)
	start := min(f.Offset, total)
	end := min(start+f.Limit, total)
	return matched[start:end], total, nil
}
