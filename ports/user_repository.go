package ports

import (
	"context"

	"mindwell/models"

	"github.com/google/uuid"
)

// UserRepository defines the interface for account data operations
type UserRepository interface {
	// GetOrCreateDemoUser gets the demo account or creates it if it doesn't exist
	GetOrCreateDemoUser(ctx context.Context) (*models.User, error)

	// GetUserByID retrieves an account by its ID
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// AccountResolver supplies the account context for an operation.
// The default deployment resolves every request to the single demo account;
// a multi-account deployment swaps in a resolver backed by authentication.
type AccountResolver interface {
	Resolve(ctx context.Context) (uuid.UUID, error)
}
