package users

import (
	"context"
	"sync"
)

// InMemoryRepository is a map-backed Repository used by tests and demo
// wiring. It preserves insertion order for email lookups so "first match"
// behaves deterministically, and hands out copies so callers cannot mutate
// stored rows.
type InMemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*User
	order []string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byID: make(map[string]*User)}
}

func cloneUser(u *User) *User {
	c := *u
	if u.TokenExpiresAt != nil {
		t := *u.TokenExpiresAt
		c.TokenExpiresAt = &t
	}
	return &c
}

func (r *InMemoryRepository) Create(_ context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insert(user), nil
}

// insert assumes r.mu is held.
func (r *InMemoryRepository) insert(user *User) *User {
	stored := cloneUser(user)
	r.byID[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return cloneUser(stored)
}

func (r *InMemoryRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findByEmail(email)
}

// findByEmail assumes r.mu is held.
func (r *InMemoryRepository) findByEmail(email string) (*User, error) {
	for _, id := range r.order {
		if u := r.byID[id]; u != nil && u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) GetByID(_ context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.byID[id]; ok {
		return cloneUser(u), nil
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) GetByTokenHash(_ context.Context, tokenHash string) (*User, error) {
	if tokenHash == "" {
		return nil, ErrNotFound
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if u := r.byID[id]; u != nil && u.TokenHash == tokenHash {
			return cloneUser(u), nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) SetTokenHash(_ context.Context, id, tokenHash string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	u.TokenHash = tokenHash
	return cloneUser(u), nil
}

func (r *InMemoryRepository) SetPasswordHash(_ context.Context, id, passwordHash string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	u.PasswordHash = passwordHash
	return cloneUser(u), nil
}

func (r *InMemoryRepository) EnsureByEmail(_ context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, err := r.findByEmail(user.Email); err == nil {
		return existing, nil
	}
	return r.insert(user), nil
}
