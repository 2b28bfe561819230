// Package catalog holds the static product catalog. The store is built once
// at startup and read-only afterwards, so it is safe to share across request
// goroutines without locking.
package catalog

import (
	"fmt"

	"github.com/pricebite/pricebite-backend/internal/models"
)

// Store is an ordered, immutable product collection with an id index.
// Iteration order is the seed order and is stable across calls; the legacy
// first-match lookup depends on that.
type Store struct {
	products []models.Product
	byID     map[string]int
}

// NewStore builds a store from products in the given order. Duplicate or
// empty ids are a data error.
func NewStore(products []models.Product) (*Store, error) {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog: product %q has empty id", p.Name)
		}
		if _, ok := byID[p.ID]; ok {
			return nil, fmt.Errorf("catalog: duplicate product id %q", p.ID)
		}
		byID[p.ID] = i
	}
	return &Store{products: products, byID: byID}, nil
}

// All returns every product in seed order. Callers must not modify the
// returned slice.
func (s *Store) All() []models.Product {
	return s.products
}

// ByID looks a product up by its id.
func (s *Store) ByID(id string) (models.Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return s.products[i], true
}

// Len returns the number of products in the store.
func (s *Store) Len() int {
	return len(s.products)
}
