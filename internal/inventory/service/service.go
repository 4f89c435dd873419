// Package service provides the implementation of inventory business logic.
package service

import (
	"context"
	"fmt"
	"iter"

	"github.com/abgdnv/inventory/internal/inventory/store"
)

// ProductService defines the methods for managing catalog products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// Reset empties the catalog and reloads the seed products.
	Reset(ctx context.Context) error

	// ListAll returns every product in store order.
	ListAll(ctx context.Context) (iter.Seq2[store.Product, error], error)

	// ListByCategory returns at most limit products of the given category.
	ListByCategory(ctx context.Context, category string, limit int64) (iter.Seq2[store.Product, error], error)

	// Add stores a new product and returns its identifier.
	Add(ctx context.Context, product store.Product) (string, error)

	// Update replaces every product named name with product.
	// Returns the number of matched products, which may be zero.
	Update(ctx context.Context, name string, product store.Product) (int64, error)

	// Delete removes every product named name and returns how many were removed.
	Delete(ctx context.Context, name string) (int64, error)
}

// Service implements ProductService on top of a CatalogStore.
type Service struct {
	repository store.CatalogStore
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.CatalogStore) *Service {
	return &Service{
		repository: repo,
	}
}

// Reset drops the catalog and seeds it with store.SeedCatalog.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.repository.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset catalog: %w", err)
	}
	if err := s.repository.Seed(ctx, store.SeedCatalog()); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	return nil
}

// ListAll returns a lazy sequence over all products.
func (s *Service) ListAll(ctx context.Context) (iter.Seq2[store.Product, error], error) {
	products, err := s.repository.Find(ctx, store.All(), store.FindOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

// ListByCategory returns a lazy sequence over at most limit products of category.
func (s *Service) ListByCategory(ctx context.Context, category string, limit int64) (iter.Seq2[store.Product, error], error) {
	products, err := s.repository.Find(ctx, store.ByCategory(category), store.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products of category %q: %w", category, err)
	}
	return products, nil
}

// Add inserts product and returns the identifier assigned by the store.
func (s *Service) Add(ctx context.Context, product store.Product) (string, error) {
	id, err := s.repository.InsertOne(ctx, product)
	if err != nil {
		return "", fmt.Errorf("failed to add product: %w", err)
	}
	return id, nil
}

// Update overwrites every product named name, the new name may differ from name.
func (s *Service) Update(ctx context.Context, name string, product store.Product) (int64, error) {
	matched, err := s.repository.UpdateMany(ctx, store.ByName(name), product)
	if err != nil {
		return 0, fmt.Errorf("failed to update products named %q: %w", name, err)
	}
	return matched, nil
}

// Delete removes every product named name.
func (s *Service) Delete(ctx context.Context, name string) (int64, error) {
	deleted, err := s.repository.DeleteMany(ctx, store.ByName(name))
	if err != nil {
		return 0, fmt.Errorf("failed to delete products named %q: %w", name, err)
	}
	return deleted, nil
}
