package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/nikolayk812/storefront-cart/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const (
	getProductSQL = `
SELECT product_id, name, price_amount::text, price_currency, image
FROM products
WHERE product_id = $1`

	listProductsSQL = `
SELECT product_id, name, price_amount::text, price_currency, image
FROM products
ORDER BY created_at, name`

	upsertProductSQL = `
INSERT INTO products (product_id, name, price_amount, price_currency, image)
VALUES ($1, $2, $3::numeric, $4, $5)
ON CONFLICT (product_id) DO UPDATE
SET name           = EXCLUDED.name,
    price_amount   = EXCLUDED.price_amount,
    price_currency = EXCLUDED.price_currency,
    image          = EXCLUDED.image,
    updated_at     = now()`
)

type productRepository struct {
	q    querier
	pool *pgxpool.Pool
}

func NewProducts(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{
		q:    pool,
		pool: pool,
	}
}

func NewProductsWithTx(tx pgx.Tx) port.ProductRepository {
	return &productRepository{
		q:    tx,
		pool: nil, // use provided transaction instead
	}
}

func (r *productRepository) GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	if id == uuid.Nil {
		return domain.Product{}, fmt.Errorf("productID is empty")
	}

	row, err := scanProductRow(r.q.QueryRow(ctx, getProductSQL, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, port.ErrProductNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", err)
	}

	product, err := mapProductRowToDomain(row)
	if err != nil {
		return domain.Product{}, fmt.Errorf("mapProductRowToDomain: %w", err)
	}

	return product, nil
}

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.Query(ctx, listProductsSQL)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	dbRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (productRow, error) {
		return scanProductRow(row)
	})
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}

	products, err := mapProductRowsToDomain(dbRows)
	if err != nil {
		return nil, fmt.Errorf("mapProductRowsToDomain: %w", err)
	}

	return products, nil
}

func (r *productRepository) UpsertProducts(ctx context.Context, products []domain.Product) error {
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	_, err := withTx(ctx, r.pool, r.q, func(q querier) (struct{}, error) {
		for _, p := range products {
			_, err := q.Exec(ctx, upsertProductSQL,
				p.ID,
				p.Name,
				p.Price.Amount.String(),
				p.Price.Currency.String(),
				p.Image,
			)
			if err != nil {
				return struct{}{}, fmt.Errorf("q.UpsertProduct[%s]: %w", p.ID, err)
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

type productRow struct {
	ProductID     uuid.UUID
	Name          string
	PriceAmount   string
	PriceCurrency string
	Image         string
}

func scanProductRow(row pgx.Row) (productRow, error) {
	var r productRow
	err := row.Scan(&r.ProductID, &r.Name, &r.PriceAmount, &r.PriceCurrency, &r.Image)
	return r, err
}

func mapProductRowToDomain(row productRow) (domain.Product, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	amount, err := decimal.NewFromString(row.PriceAmount)
	if err != nil {
		return domain.Product{}, fmt.Errorf("price[%s] is not valid: %w", row.PriceAmount, err)
	}

	return domain.Product{
		ID:    row.ProductID,
		Name:  row.Name,
		Price: domain.Money{Amount: amount, Currency: parsedCurrency},
		Image: row.Image,
	}, nil
}

func mapProductRowsToDomain(rows []productRow) ([]domain.Product, error) {
	var products []domain.Product

	for _, row := range rows {
		product, err := mapProductRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapProductRowToDomain: %w", err)
		}

		products = append(products, product)
	}

	return products, nil
}
