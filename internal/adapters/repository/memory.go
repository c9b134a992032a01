package repository

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/okian/sports/internal/domain/model"
)

// MemoryStore is a map-backed Store.
type MemoryStore struct {
	mu         sync.RWMutex
	activities map[string]struct{}
	categories map[string]model.Category
	products   map[string]*model.Product
	ratings    int
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		activities: make(map[string]struct{}),
		categories: make(map[string]model.Category),
		products:   make(map[string]*model.Product),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) AddActivities(_ context.Context, names ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range names {
		s.activities[n] = struct{}{}
	}
	return nil
}

func (s *MemoryStore) HasActivity(_ context.Context, name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.activities[name]
	return ok
}

func (s *MemoryStore) Activities(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.activities))
	for n := range s.activities {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

func (s *MemoryStore) PutCategory(_ context.Context, c model.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories[c.Name] = c.Clone()
	return nil
}

func (s *MemoryStore) Category(_ context.Context, name string) (model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[name]
	if !ok {
		return model.Category{}, fmt.Errorf("category %q: %w", name, ErrNotFound)
	}
	return c.Clone(), nil
}

func (s *MemoryStore) Categories(_ context.Context) []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *MemoryStore) InsertProduct(_ context.Context, p model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[p.Name]; exists {
		return fmt.Errorf("product %q: %w", p.Name, ErrAlreadyExists)
	}
	cp := p.Clone()
	s.products[p.Name] = &cp
	s.ratings += len(cp.Ratings)
	return nil
}

func (s *MemoryStore) Product(_ context.Context, name string) (model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[name]
	if !ok {
		return model.Product{}, fmt.Errorf("product %q: %w", name, ErrNotFound)
	}
	return p.Clone(), nil
}

func (s *MemoryStore) Products(_ context.Context) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *MemoryStore) AppendRating(_ context.Context, product string, r model.Rating) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[product]
	if !ok {
		return fmt.Errorf("product %q: %w", product, ErrNotFound)
	}
	p.Ratings = append(p.Ratings, r)
	s.ratings++
	return nil
}

func (s *MemoryStore) Count(_ context.Context) Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Counts{
		Activities: len(s.activities),
		Categories: len(s.categories),
		Products:   len(s.products),
		Ratings:    s.ratings,
	}
}
