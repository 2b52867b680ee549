package store

import (
	"context"
	"sync"
	"time"

	"github.com/nikolayk812/storefront-cart/internal/port"
)

type session struct {
	store    *Store
	lastSeen time.Time
}

// Registry keeps one Store per browsing session and forgets idle sessions.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*session
	opts     []Option
	o        options
}

var _ port.CartStores = (*Registry)(nil)

func NewRegistry(opts ...Option) *Registry {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Registry{
		sessions: make(map[string]*session),
		opts:     opts,
		o:        o,
	}
}

// Get returns the store of the session, creating it on first use.
func (r *Registry) Get(sessionID string) port.CartStore {
	return r.Store(sessionID)
}

func (r *Registry) Store(sessionID string) *Store {
	r.mu.Lock()

	now := r.o.now()
	if sess, ok := r.sessions[sessionID]; ok {
		sess.lastSeen = now
		r.mu.Unlock()
		return sess.store
	}

	s := New(sessionID, r.opts...)
	if r.o.onCreate != nil {
		r.o.onCreate(sessionID, s)
	}
	r.sessions[sessionID] = &session{store: s, lastSeen: now}
	r.mu.Unlock()

	return s
}

// Sweep drops sessions idle for longer than the session TTL and returns how many were dropped.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.o.now().Add(-r.o.sessionTTL)
	var n int
	for id, sess := range r.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, every time.Duration) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.Sweep()
		}
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}
