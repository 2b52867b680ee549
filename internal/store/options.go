package store

import (
	"time"

	"github.com/nikolayk812/storefront-cart/internal/domain"
	"golang.org/x/text/currency"
)

type options struct {
	currency   currency.Unit
	policy     domain.DecrementPolicy
	now        func() time.Time
	sessionTTL time.Duration
	onCreate   func(sessionID string, s *Store)
}

func defaultOptions() options {
	return options{
		currency:   currency.USD,
		policy:     domain.FloorAtOne,
		now:        time.Now,
		sessionTTL: 30 * time.Minute,
	}
}

type Option func(*options)

func WithCurrency(cur currency.Unit) Option {
	return func(o *options) { o.currency = cur }
}

func WithDecrementPolicy(p domain.DecrementPolicy) Option {
	return func(o *options) { o.policy = p }
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithSessionTTL sets how long an idle session keeps its cart. Registry only.
func WithSessionTTL(ttl time.Duration) Option {
	return func(o *options) { o.sessionTTL = ttl }
}

// WithOnCreate is called once for every store the registry creates, before the
// store is handed to any caller. It runs under the registry lock and must not
// call back into the registry. Registry only.
func WithOnCreate(fn func(sessionID string, s *Store)) Option {
	return func(o *options) { o.onCreate = fn }
}
