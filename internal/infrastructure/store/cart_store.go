// Package store holds in-flight cart sessions. Nothing here is durable;
// every persisted fact belongs to the remote sales service.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/luzbrill/pos-terminal/internal/domain/entity"
	"github.com/luzbrill/pos-terminal/pkg/apperror"
)

type cartSession struct {
	mu         sync.Mutex
	cart       *entity.Cart
	submitting bool
	lastSeen   time.Time
}

// CartStore is a mutex-guarded registry of cart sessions keyed by cart ID.
// Each cart is owned by exactly one terminal session; per-cart locking
// serializes mutations and pricing recompute for that cart.
type CartStore struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*cartSession
	ttl   time.Duration
}

// NewCartStore creates a cart store. Carts untouched for ttl are evicted by
// the sweep loop; start it with StartSweeper.
func NewCartStore(ttl time.Duration) *CartStore {
	return &CartStore{
		carts: make(map[uuid.UUID]*cartSession),
		ttl:   ttl,
	}
}

// StartSweeper launches the background eviction loop.
func (s *CartStore) StartSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			s.sweep()
		}
	}()
}

// Put registers a cart session.
func (s *CartStore) Put(cart *entity.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[cart.ID] = &cartSession{cart: cart, lastSeen: time.Now()}
}

// WithCart runs fn with exclusive access to the cart. Errors from fn pass
// through unchanged so domain sentinels survive to the handler.
func (s *CartStore) WithCart(id uuid.UUID, fn func(cart *entity.Cart) error) error {
	sess, err := s.session(id)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastSeen = time.Now()
	return fn(sess.cart)
}

// BeginSubmit arms the submit latch for the cart. A second submit while one
// is in flight fails fast; the trigger is disabled, requests are never
// cancelled.
func (s *CartStore) BeginSubmit(id uuid.UUID) error {
	sess, err := s.session(id)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.submitting {
		return apperror.ErrSubmitInFlight
	}
	sess.submitting = true
	sess.lastSeen = time.Now()
	return nil
}

// EndSubmit releases the submit latch.
func (s *CartStore) EndSubmit(id uuid.UUID) {
	sess, err := s.session(id)
	if err != nil {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.submitting = false
}

// Remove drops a cart session, typically after a successful submit or an
// explicit abandon.
func (s *CartStore) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
}

func (s *CartStore) session(id uuid.UUID) (*cartSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.carts[id]
	if !ok {
		return nil, apperror.ErrCartNotFound
	}
	return sess, nil
}

func (s *CartStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	for id, sess := range s.carts {
		if sess.lastSeen.Before(cutoff) && !sess.submitting {
			delete(s.carts, id)
		}
	}
}

// Len returns the number of live cart sessions.
func (s *CartStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts)
}
