package port

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront-cart/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpsertProducts(ctx context.Context, products []domain.Product) error
}
