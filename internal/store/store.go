package store

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/nikolayk812/storefront-cart/internal/port"
	"golang.org/x/text/currency"
)

// Store holds one cart in memory. Commands are serialized by cmdMu, which is
// held through subscriber delivery, so subscribers see snapshots in version
// order. mu guards the state and is released before delivery: a subscriber
// may read the store with Cart but must not issue commands.
type Store struct {
	cmdMu     sync.Mutex
	mu        sync.Mutex
	ownerID   string
	currency  currency.Unit
	policy    domain.DecrementPolicy
	now       func() time.Time
	items     []domain.CartItem
	version   uint64
	nextSubID int
	subs      map[int]func(domain.Cart)
}

var _ port.CartStore = (*Store)(nil)

func New(ownerID string, opts ...Option) *Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Store{
		ownerID:  ownerID,
		currency: o.currency,
		policy:   o.policy,
		now:      o.now,
		subs:     make(map[int]func(domain.Cart)),
	}
}

// Add inserts the item at quantity 1, or bumps the quantity of the existing
// line item. The existing price is kept.
func (s *Store) Add(item domain.CartItem) {
	s.mutate(func() bool {
		if i := s.indexOf(item.ProductID); i >= 0 {
			s.items[i].Quantity++
			return true
		}

		item.Quantity = 1
		item.CreatedAt = s.now()
		s.items = append(s.items, item)
		return true
	})
}

func (s *Store) Remove(productID uuid.UUID) {
	s.mutate(func() bool {
		i := s.indexOf(productID)
		if i < 0 {
			return false
		}
		s.items = slices.Delete(s.items, i, i+1)
		return true
	})
}

func (s *Store) SetQuantity(productID uuid.UUID, dir domain.Direction) {
	s.mutate(func() bool {
		i := s.indexOf(productID)
		if i < 0 {
			return false
		}

		switch dir {
		case domain.Increment:
			s.items[i].Quantity++
			return true
		case domain.Decrement:
			if s.items[i].Quantity > 1 {
				s.items[i].Quantity--
				return true
			}
			if s.policy == domain.RemoveAtZero {
				s.items = slices.Delete(s.items, i, i+1)
				return true
			}
			return false
		default:
			return false
		}
	})
}

func (s *Store) Clear() {
	s.mutate(func() bool {
		s.items = nil
		return true
	})
}

func (s *Store) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// Subscribe registers fn to receive the cart after every effective mutation.
func (s *Store) Subscribe(fn func(domain.Cart)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) mutate(fn func() bool) {
	s.cmdMu.Lock()
	defer s.cmdMu.Unlock()

	s.mu.Lock()
	if !fn() {
		s.mu.Unlock()
		return
	}
	s.version++
	cart := s.snapshot()
	subs := make([]func(domain.Cart), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(cart)
	}
}

func (s *Store) snapshot() domain.Cart {
	return domain.Cart{
		OwnerID:  s.ownerID,
		Currency: s.currency,
		Items:    slices.Clone(s.items),
		Version:  s.version,
	}
}

func (s *Store) indexOf(productID uuid.UUID) int {
	return slices.IndexFunc(s.items, func(item domain.CartItem) bool {
		return item.ProductID == productID
	})
}
