package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/nikolayk812/storefront-cart/internal/port"
)

// memoryProducts is the catalog used when no database is configured.
type memoryProducts struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewMemoryProducts(seed ...domain.Product) (port.ProductRepository, error) {
	r := &memoryProducts{}
	if err := r.UpsertProducts(context.Background(), seed); err != nil {
		return nil, fmt.Errorf("r.UpsertProducts: %w", err)
	}
	return r, nil
}

func (r *memoryProducts) GetProduct(_ context.Context, id uuid.UUID) (domain.Product, error) {
	if id == uuid.Nil {
		return domain.Product{}, fmt.Errorf("productID is empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Product{}, port.ErrProductNotFound
	}
	return r.products[i], nil
}

func (r *memoryProducts) ListProducts(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.products), nil
}

func (r *memoryProducts) UpsertProducts(_ context.Context, products []domain.Product) error {
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range products {
		if i := r.indexOf(p.ID); i >= 0 {
			r.products[i] = p
			continue
		}
		r.products = append(r.products, p)
	}
	return nil
}

func (r *memoryProducts) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(r.products, func(p domain.Product) bool {
		return p.ID == id
	})
}
