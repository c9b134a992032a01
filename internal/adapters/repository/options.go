package repository

import "github.com/okian/sports/internal/domain/model"

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithCapacity pre-sizes the product map.
func WithCapacity(products int) Option {
	return func(s *MemoryStore) {
		if products > 0 {
			s.products = make(map[string]*model.Product, products)
		}
	}
}
