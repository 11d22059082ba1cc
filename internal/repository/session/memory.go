package session

import (
	"context"
	"sync"
	"time"

	"shoply/internal/domain"
)

type memoryEntry struct {
	state     domain.SessionState
	expiresAt time.Time
}

// memoryRepo is an in-process session store used by tests and local runs
// without a database.
type memoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

func NewMemory() Repository {
	return &memoryRepo{sessions: make(map[string]memoryEntry)}
}

func (r *memoryRepo) Get(_ context.Context, id string) (*domain.SessionState, error) {
	r.mu.RLock()
	entry, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	if time.Now().After(entry.expiresAt) {
		r.mu.Lock()
		delete(r.sessions, id)
		r.mu.Unlock()
		return nil, domain.ErrNotFound
	}
	clone := entry.state
	clone.Cart.Items = append([]domain.CartItem(nil), entry.state.Cart.Items...)
	clone.Wishlist = append([]string(nil), entry.state.Wishlist...)
	return &clone, nil
}

func (r *memoryRepo) Save(_ context.Context, id string, state domain.SessionState, expiresAt time.Time) error {
	clone := state
	clone.Cart.Items = append([]domain.CartItem(nil), state.Cart.Items...)
	clone.Wishlist = append([]string(nil), state.Wishlist...)
	r.mu.Lock()
	r.sessions[id] = memoryEntry{state: clone, expiresAt: expiresAt}
	r.mu.Unlock()
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
	return nil
}
