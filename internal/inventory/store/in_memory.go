package store

import (
	"context"
	"fmt"
	"iter"
	"sync"
)

var _ CatalogStore = (*InMemory)(nil)

// document is a stored product together with its assigned identifier.
type document struct {
	id      string
	product Product
}

// InMemory implements CatalogStore using an insertion-ordered slice.
type InMemory struct {
	mu     sync.RWMutex
	docs   []document
	nextID int
}

// NewInMemoryStore creates a new, empty in-memory CatalogStore.
func NewInMemoryStore() *InMemory {
	return &InMemory{nextID: 1}
}

// Reset removes every document.
func (s *InMemory) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs = nil
	return nil
}

// Seed appends the products in order.
func (s *InMemory) Seed(_ context.Context, products []Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range products {
		s.insertLocked(p)
	}
	return nil
}

// InsertOne stores a product and returns its identifier.
func (s *InMemory) InsertOne(_ context.Context, product Product) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertLocked(product), nil
}

// insertLocked requires s.mu to be held for writing.
func (s *InMemory) insertLocked(p Product) string {
	// 24 hex digits, the same shape as a Mongo ObjectID
	id := fmt.Sprintf("%024x", s.nextID)
	s.nextID++
	s.docs = append(s.docs, document{id: id, product: p})
	return id
}

// UpdateMany overwrites every matching product.
func (s *InMemory) UpdateMany(_ context.Context, filter Filter, product Product) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched int64
	for i := range s.docs {
		if filter.Matches(s.docs[i].product) {
			s.docs[i].product = product
			matched++
		}
	}
	return matched, nil
}

// DeleteMany removes every matching product.
func (s *InMemory) DeleteMany(_ context.Context, filter Filter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.docs[:0]
	var deleted int64
	for _, d := range s.docs {
		if filter.Matches(d.product) {
			deleted++
			continue
		}
		kept = append(kept, d)
	}
	s.docs = kept
	return deleted, nil
}

// Find returns a single-use sequence over a snapshot of the matching products.
func (s *InMemory) Find(_ context.Context, filter Filter, opts FindOptions) (iter.Seq2[Product, error], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var snapshot []Product
	for _, d := range s.docs {
		if opts.Limit != nil && int64(len(snapshot)) >= *opts.Limit {
			break
		}
		if filter.Matches(d.product) {
			snapshot = append(snapshot, d.product)
		}
	}

	consumed := false
	return func(yield func(Product, error) bool) {
		if consumed {
			return
		}
		consumed = true
		for _, p := range snapshot {
			if !yield(p, nil) {
				return
			}
		}
	}, nil
}
