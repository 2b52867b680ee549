package domain

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/currency"
)

type Cart struct {
	OwnerID  string
	Currency currency.Unit
	Items    []CartItem

	// Version counts effective mutations of the cart.
	Version uint64
}

type CartItem struct {
	ProductID uuid.UUID
	Name      string
	Price     Money
	Image     string
	Quantity  int

	CreatedAt time.Time
}

// LineTotal is price times quantity.
func (i CartItem) LineTotal() Money {
	return i.Price.Mul(i.Quantity)
}

// Total is derived on every call, it is never stored.
func (c Cart) Total() Money {
	total := ZeroMoney(c.Currency)
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemCount is the sum of quantities over all line items.
func (c Cart) ItemCount() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

func (c Cart) Find(productID uuid.UUID) (CartItem, bool) {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return CartItem{}, false
}
