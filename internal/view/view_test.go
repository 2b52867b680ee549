package view_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/nikolayk812/storefront-cart/internal/view"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestNewCartPage(t *testing.T) {
	a := usdItem("A", "10", 2)
	b := usdItem("B", "5", 1)

	tests := []struct {
		name      string
		cart      domain.Cart
		wantEmpty bool
		wantLines []view.LineView
		wantTotal string
		wantCount int
	}{
		{
			name:      "empty cart: empty state",
			cart:      domain.Cart{Currency: currency.USD},
			wantEmpty: true,
		},
		{
			name: "two items: lines and total",
			cart: domain.Cart{Currency: currency.USD, Items: []domain.CartItem{a, b}},
			wantLines: []view.LineView{
				{ProductID: a.ProductID, Name: "A", Image: a.Image, UnitPrice: "$10.00", Quantity: 2, LineTotal: "$20.00"},
				{ProductID: b.ProductID, Name: "B", Image: b.Image, UnitPrice: "$5.00", Quantity: 1, LineTotal: "$5.00"},
			},
			wantTotal: "$25.00",
			wantCount: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := view.NewCartPage(tt.cart, nil)

			assert.Equal(t, tt.wantEmpty, page.Empty)
			assert.Equal(t, tt.wantLines, page.Lines)
			assert.Equal(t, tt.wantTotal, page.Total)
			assert.Equal(t, tt.wantCount, page.CartCount)
			assert.Empty(t, page.Toasts)
		})
	}
}

func TestRenderCart_Empty(t *testing.T) {
	html := renderCart(t, domain.Cart{Currency: currency.USD}, nil)

	assert.Contains(t, html, "Your cart is currently empty.")
	assert.Contains(t, html, `<a href="/" class="btn">Continue Shopping</a>`)
	assert.NotContains(t, html, "<table")
	assert.NotContains(t, html, "Total:")
	assert.NotContains(t, html, "Proceed to Checkout")
	assert.NotContains(t, html, "Clear Cart")
}

func TestRenderCart_Items(t *testing.T) {
	a := usdItem("Golden Watch", "10", 2)
	b := usdItem("Silk Scarf", "5", 1)
	cart := domain.Cart{Currency: currency.USD, Items: []domain.CartItem{a, b}}

	html := renderCart(t, cart, nil)

	assert.NotContains(t, html, "Your cart is currently empty.")
	assert.Contains(t, html, `<table class="cart-table">`)
	assert.Contains(t, html, `<div class="cart-cards">`)
	assert.Contains(t, html, "Total: <span>$25.00</span>")
	assert.Contains(t, html, `href="/checkout"`)
	assert.Contains(t, html, `action="/cart/clear"`)
	assert.Contains(t, html, `<span class="cart-count">3</span>`)

	for _, item := range cart.Items {
		id := item.ProductID.String()
		// table row and card render the same line
		assert.Equal(t, 2, strings.Count(html, `data-product-id="`+id+`"`))
		assert.Equal(t, 2, strings.Count(html, `action="/cart/items/`+id+`/increment"`))
		assert.Equal(t, 2, strings.Count(html, `action="/cart/items/`+id+`/decrement"`))
		assert.Equal(t, 2, strings.Count(html, `action="/cart/items/`+id+`/remove"`))
		assert.Contains(t, html, `alt="`+item.Name+`" width="60" height="60"`)
	}
	assert.Contains(t, html, `<td class="unit-price">$10.00</td>`)
	assert.Contains(t, html, `<td class="line-total">$20.00</td>`)
	assert.Contains(t, html, `<p class="line-total">$20.00</p>`)
	assert.Equal(t, 2, strings.Count(html, "$20.00"), "row and card both show the line total")
	assert.Contains(t, html, `<span class="qty">2</span>`)
}

func TestRenderCart_EscapesNames(t *testing.T) {
	item := usdItem(`<script>alert("x")</script>`, "1", 1)

	html := renderCart(t, domain.Cart{Currency: currency.USD, Items: []domain.CartItem{item}}, nil)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderCart_Toasts(t *testing.T) {
	notifications := []domain.Notification{
		{Kind: domain.NotificationSuccess, Message: "Item removed from cart"},
	}

	html := renderCart(t, domain.Cart{Currency: currency.USD}, notifications)

	assert.Contains(t, html, `<div class="toast toast-success">Item removed from cart</div>`)
}

func TestRenderCatalog(t *testing.T) {
	r, err := view.NewRenderer()
	require.NoError(t, err)

	p := domain.Product{
		ID:    uuid.New(),
		Name:  "Leather Wallet",
		Price: domain.NewMoney(decimal.RequireFromString("49.5"), currency.USD),
		Image: "/static/img/wallet.jpg",
	}

	var buf bytes.Buffer
	err = r.Catalog(&buf, view.NewCatalogPage([]domain.Product{p}, domain.Cart{}, nil))
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "Leather Wallet")
	assert.Contains(t, html, `<p class="price">$49.50</p>`)
	assert.Contains(t, html, `<form method="post" action="/cart/items" class="add-to-cart">`)
	assert.Contains(t, html, `<input type="hidden" name="product_id" value="`+p.ID.String()+`">`)
	assert.Contains(t, html, "Add to Cart")
	assert.Contains(t, html, `<span class="cart-count">0</span>`)
}

func TestRenderCatalog_Empty(t *testing.T) {
	r, err := view.NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Catalog(&buf, view.NewCatalogPage(nil, domain.Cart{}, nil)))

	assert.Contains(t, buf.String(), "No products available yet.")
	assert.NotContains(t, buf.String(), "Add to Cart")
}

func renderCart(t *testing.T, cart domain.Cart, notifications []domain.Notification) string {
	t.Helper()

	r, err := view.NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Cart(&buf, view.NewCartPage(cart, notifications)))
	return buf.String()
}

func usdItem(name, price string, qty int) domain.CartItem {
	id := uuid.New()
	return domain.CartItem{
		ProductID: id,
		Name:      name,
		Price:     domain.NewMoney(decimal.RequireFromString(price), currency.USD),
		Image:     "/static/img/" + id.String() + ".jpg",
		Quantity:  qty,
	}
}
