package app

import (
	"context"
	"sync"

	"mindwell/internal/errors"
	"mindwell/ports"

	"github.com/google/uuid"
)

// DemoAccountResolver resolves every operation to the single demo account,
// creating it on first use. The resolved ID is cached after the first hit.
type DemoAccountResolver struct {
	users ports.UserRepository

	mu     sync.Mutex
	cached uuid.UUID
}

// NewDemoAccountResolver creates a resolver backed by the user repository
func NewDemoAccountResolver(users ports.UserRepository) *DemoAccountResolver {
	return &DemoAccountResolver{users: users}
}

// Resolve returns the demo account ID
func (r *DemoAccountResolver) Resolve(ctx context.Context) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cached != uuid.Nil {
		return r.cached, nil
	}

	user, err := r.users.GetOrCreateDemoUser(ctx)
	if err != nil {
		return uuid.Nil, errors.DatabaseError("failed to resolve demo account", err)
	}
	r.cached = user.ID
	return r.cached, nil
}
