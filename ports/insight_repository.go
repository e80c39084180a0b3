package ports

import (
	"context"
	"time"

	"mindwell/models"

	"github.com/google/uuid"
)

// InsightRepository defines the interface for insight data operations
type InsightRepository interface {
	// Create persists a new insight
	Create(ctx context.Context, insight *models.Insight) error

	// ListRecent returns the newest insights created at or after since
	ListRecent(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]models.Insight, error)

	// ListRecentByTypes returns the newest insights of the given types
	// created at or after since
	ListRecentByTypes(ctx context.Context, userID uuid.UUID, since time.Time, types []models.InsightType, limit int) ([]models.Insight, error)

	// TypeDistribution groups insights by type inside the window
	TypeDistribution(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.InsightTypeBucket, error)
}
