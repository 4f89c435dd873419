// Package store provides the catalog storage operations backing the inventory shell.
package store

import (
	"context"
	"iter"
)

// Product represents a product document in the catalog collection.
// The store assigns an identifier on insert; it is not part of the record.
type Product struct {
	Name     string  `bson:"name"     validate:"required"`
	Category string  `bson:"category"`
	Price    float64 `bson:"price"`
}

// Filter selects documents by exact field equality. Nil fields do not constrain.
type Filter struct {
	Name     *string
	Category *string
}

// All returns a filter that matches every document.
func All() Filter {
	return Filter{}
}

// ByName returns a filter that matches documents whose name equals name.
func ByName(name string) Filter {
	return Filter{Name: &name}
}

// ByCategory returns a filter that matches documents whose category equals category.
func ByCategory(category string) Filter {
	return Filter{Category: &category}
}

// Matches reports whether p satisfies every set field of the filter.
func (f Filter) Matches(p Product) bool {
	if f.Name != nil && p.Name != *f.Name {
		return false
	}
	if f.Category != nil && p.Category != *f.Category {
		return false
	}
	return true
}

// FindOptions tunes a Find call. A nil Limit returns every match.
type FindOptions struct {
	Limit *int64
}

// Limit is a helper for building FindOptions with a result cap.
func Limit(n int64) FindOptions {
	return FindOptions{Limit: &n}
}

// CatalogStore is an interface for product storage operations.
// It abstracts the underlying document store, allowing for different implementations (e.g., in-memory, MongoDB).
type CatalogStore interface {
	// Reset drops the collection if it exists and recreates it empty.
	// All documents are lost.
	Reset(ctx context.Context) error

	// Seed bulk-inserts products. The insert is not transactional,
	// some products may be stored when an error is returned.
	Seed(ctx context.Context, products []Product) error

	// InsertOne stores a single product and returns the identifier assigned by the store.
	InsertOne(ctx context.Context, product Product) (string, error)

	// UpdateMany overwrites name, category and price of every document matching filter.
	// Returns the number of matched documents.
	UpdateMany(ctx context.Context, filter Filter, product Product) (int64, error)

	// DeleteMany removes every document matching filter and returns how many were deleted.
	DeleteMany(ctx context.Context, filter Filter) (int64, error)

	// Find returns the documents matching filter in store order.
	// Abandoning the sequence unconsumed is allowed and leaks nothing.
	// The sequence is lazy and can be ranged over only once.
	Find(ctx context.Context, filter Filter, opts FindOptions) (iter.Seq2[Product, error], error)
}
