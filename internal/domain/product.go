package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type Product struct {
	ID    uuid.UUID
	Name  string
	Price Money
	Image string
}

func (p Product) Validate() error {
	if p.ID == uuid.Nil {
		return fmt.Errorf("product ID is empty")
	}
	if p.Name == "" {
		return fmt.Errorf("product name is empty")
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("product price is negative")
	}
	return nil
}

// CartItem derives the line item added to a cart when the product is picked.
func (p Product) CartItem() CartItem {
	return CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	}
}
