package ports

import (
	"context"

	"mindwell/models"

	"github.com/google/uuid"
)

// GoalRepository defines the interface for goal data operations
type GoalRepository interface {
	// Create persists a new goal
	Create(ctx context.Context, goal *models.Goal) error

	// GetByID retrieves a goal owned by the given account
	GetByID(ctx context.Context, userID, goalID uuid.UUID) (*models.Goal, error)

	// List returns all goals for the account, newest-first
	List(ctx context.Context, userID uuid.UUID) ([]models.Goal, error)

	// Update persists changed goal fields
	Update(ctx context.Context, goal *models.Goal) error

	// Delete removes a goal, returning the number of rows removed
	Delete(ctx context.Context, userID, goalID uuid.UUID) (int64, error)

	// StatusDistribution groups ALL of the account's goals by status
	// (not time-filtered)
	StatusDistribution(ctx context.Context, userID uuid.UUID) ([]models.GoalStatusBucket, error)
}
