package ports

import (
	"context"
	"time"

	"mindwell/models"

	"github.com/google/uuid"
)

// MoodRepository defines the interface for mood observation data operations
type MoodRepository interface {
	// Create persists a new mood observation
	Create(ctx context.Context, entry *models.MoodEntry) error

	// ListSince returns observations created at or after since,
	// ordered by creation time ascending (the mood trend timeline)
	ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.MoodEntry, error)

	// Distribution groups observations by mood label with count and
	// average intensity inside the window
	Distribution(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.MoodBucket, error)
}
