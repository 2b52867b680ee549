package port

import (
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront-cart/internal/domain"
)

// CartStore is the single authoritative holder of one session's cart.
// Commands are infallible; unknown ids are no-ops.
type CartStore interface {
	Add(item domain.CartItem)
	Remove(productID uuid.UUID)
	SetQuantity(productID uuid.UUID, dir domain.Direction)
	Clear()

	Cart() domain.Cart
	Subscribe(fn func(domain.Cart)) (unsubscribe func())
}

// CartStores resolves the cart store of a session.
type CartStores interface {
	Get(sessionID string) CartStore
}
