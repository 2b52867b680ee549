package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/nikolayk812/storefront-cart/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// DemoProducts is the starter catalog for local runs.
func DemoProducts(cur currency.Unit) []domain.Product {
	product := func(id, name, price, image string) domain.Product {
		return domain.Product{
			ID:    uuid.MustParse(id),
			Name:  name,
			Price: domain.NewMoney(decimal.RequireFromString(price), cur),
			Image: image,
		}
	}

	return []domain.Product{
		product("5b0c8f0e-54c6-4b8e-9a52-1f0e4d2d7a01", "Golden Watch", "199.99", "/static/img/watch.jpg"),
		product("5b0c8f0e-54c6-4b8e-9a52-1f0e4d2d7a02", "Leather Wallet", "49.50", "/static/img/wallet.jpg"),
		product("5b0c8f0e-54c6-4b8e-9a52-1f0e4d2d7a03", "Silk Scarf", "35.00", "/static/img/scarf.jpg"),
		product("5b0c8f0e-54c6-4b8e-9a52-1f0e4d2d7a04", "Sunglasses", "89.90", "/static/img/sunglasses.jpg"),
	}
}

// CheckCurrency fails when any catalog product is priced in a currency other than cur.
func CheckCurrency(ctx context.Context, repo port.ProductRepository, cur currency.Unit) error {
	products, err := repo.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("repo.ListProducts: %w", err)
	}

	for _, p := range products {
		if p.Price.Currency != cur {
			return fmt.Errorf("product[%s] is priced in %s, catalog currency is %s", p.ID, p.Price.Currency, cur)
		}
	}
	return nil
}
