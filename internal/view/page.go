package view

import (
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront-cart/internal/domain"
)

const (
	CatalogRoute  = "/"
	CartRoute     = "/cart"
	CheckoutRoute = "/checkout"

	// ThumbnailSize is the edge of the square product thumbnail, in pixels.
	ThumbnailSize = 60
)

type Toast struct {
	Kind    string
	Message string
}

// Layout carries what every page shows around its content.
type Layout struct {
	Title     string
	CartCount int
	Toasts    []Toast
}

type LineView struct {
	ProductID uuid.UUID
	Name      string
	Image     string
	UnitPrice string
	Quantity  int
	LineTotal string
}

type CartPage struct {
	Layout
	Empty bool
	Lines []LineView
	Total string
}

type ProductView struct {
	ID    uuid.UUID
	Name  string
	Price string
	Image string
}

type CatalogPage struct {
	Layout
	Products []ProductView
}

// NewCartPage builds the cart page from a cart snapshot. The total is derived here on every render.
func NewCartPage(cart domain.Cart, notifications []domain.Notification) CartPage {
	page := CartPage{
		Layout: newLayout("Your Shopping Cart", cart, notifications),
		Empty:  cart.IsEmpty(),
	}
	if page.Empty {
		return page
	}

	page.Lines = make([]LineView, 0, len(cart.Items))
	for _, item := range cart.Items {
		page.Lines = append(page.Lines, LineView{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			UnitPrice: item.Price.String(),
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal().String(),
		})
	}
	page.Total = cart.Total().String()
	return page
}

func NewCatalogPage(products []domain.Product, cart domain.Cart, notifications []domain.Notification) CatalogPage {
	page := CatalogPage{
		Layout:   newLayout("Shop", cart, notifications),
		Products: make([]ProductView, 0, len(products)),
	}
	for _, p := range products {
		page.Products = append(page.Products, ProductView{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price.String(),
			Image: p.Image,
		})
	}
	return page
}

func newLayout(title string, cart domain.Cart, notifications []domain.Notification) Layout {
	toasts := make([]Toast, 0, len(notifications))
	for _, n := range notifications {
		toasts = append(toasts, Toast{Kind: string(n.Kind), Message: n.Message})
	}
	return Layout{
		Title:     title,
		CartCount: cart.ItemCount(),
		Toasts:    toasts,
	}
}
