package postgres

import (
	"context"
	"time"

	"mindwell/models"
	"mindwell/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// InsightRepositoryImpl implements InsightRepository for PostgreSQL
type InsightRepositoryImpl struct {
	db *sqlx.DB
}

// NewInsightRepository creates a new PostgreSQL insight repository
func NewInsightRepository(db *sqlx.DB) ports.InsightRepository {
	return &InsightRepositoryImpl{db: db}
}

// Create persists a new insight
func (r *InsightRepositoryImpl) Create(ctx context.Context, insight *models.Insight) error {
	_, err := extFrom(ctx, r.db).ExecContext(ctx, `
		INSERT INTO insights (id, journal_entry_id, user_id, insight_type, title, content, confidence_score, sentiment_score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, insight.ID, insight.JournalEntryID, insight.UserID, insight.Type, insight.Title,
		insight.Content, insight.ConfidenceScore, insight.SentimentScore, insight.CreatedAt)
	return err
}

// ListRecent returns the newest insights created at or after since
func (r *InsightRepositoryImpl) ListRecent(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]models.Insight, error) {
	insights := []models.Insight{}
	err := sqlx.SelectContext(ctx, extFrom(ctx, r.db), &insights, `
		SELECT id, journal_entry_id, user_id, insight_type, title, content, confidence_score, sentiment_score, created_at
		FROM insights
		WHERE user_id = $1 AND created_at >= $2
		ORDER BY created_at DESC
		LIMIT $3
	`, userID, since, limit)
	return insights, err
}

// ListRecentByTypes returns the newest insights of the given types
func (r *InsightRepositoryImpl) ListRecentByTypes(ctx context.Context, userID uuid.UUID, since time.Time, types []models.InsightType, limit int) ([]models.Insight, error) {
	typeStrings := make([]string, len(types))
	for i, t := range types {
		typeStrings[i] = string(t)
	}

	insights := []models.Insight{}
	err := sqlx.SelectContext(ctx, extFrom(ctx, r.db), &insights, `
		SELECT id, journal_entry_id, user_id, insight_type, title, content, confidence_score, sentiment_score, created_at
		FROM insights
		WHERE user_id = $1 AND created_at >= $2 AND insight_type = ANY($3)
		ORDER BY created_at DESC
		LIMIT $4
	`, userID, since, pq.Array(typeStrings), limit)
	return insights, err
}

// TypeDistribution groups insights by type inside the window
func (r *InsightRepositoryImpl) TypeDistribution(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.InsightTypeBucket, error) {
	buckets := []models.InsightTypeBucket{}
	err := sqlx.SelectContext(ctx, extFrom(ctx, r.db), &buckets, `
		SELECT insight_type, COUNT(*) AS count
		FROM insights
		WHERE user_id = $1 AND created_at >= $2
		GROUP BY insight_type
	`, userID, since)
	return buckets, err
}
