package postgres

import (
	"context"
	"time"

	"mindwell/models"
	"mindwell/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// MoodRepositoryImpl implements MoodRepository for PostgreSQL
type MoodRepositoryImpl struct {
	db *sqlx.DB
}

// NewMoodRepository creates a new PostgreSQL mood repository
func NewMoodRepository(db *sqlx.DB) ports.MoodRepository {
	return &MoodRepositoryImpl{db: db}
}

// Create persists a new mood observation
func (r *MoodRepositoryImpl) Create(ctx context.Context, entry *models.MoodEntry) error {
	_, err := extFrom(ctx, r.db).ExecContext(ctx, `
		INSERT INTO mood_entries (id, journal_entry_id, user_id, mood, intensity, energy_level, stress_level, notes, detected_automatically, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, entry.ID, entry.JournalEntryID, entry.UserID, entry.Mood, entry.Intensity,
		entry.EnergyLevel, entry.StressLevel, entry.Notes, entry.DetectedAutomatically, entry.CreatedAt)
	return err
}

// ListSince returns the mood trend timeline, oldest-first
func (r *MoodRepositoryImpl) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.MoodEntry, error) {
	moods := []models.MoodEntry{}
	err := sqlx.SelectContext(ctx, extFrom(ctx, r.db), &moods, `
		SELECT id, journal_entry_id, user_id, mood, intensity, energy_level, stress_level, notes, detected_automatically, created_at
		FROM mood_entries
		WHERE user_id = $1 AND created_at >= $2
		ORDER BY created_at ASC
	`, userID, since)
	return moods, err
}

// Distribution groups observations by mood label inside the window
func (r *MoodRepositoryImpl) Distribution(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.MoodBucket, error) {
	buckets := []models.MoodBucket{}
	err := sqlx.SelectContext(ctx, extFrom(ctx, r.db), &buckets, `
		SELECT mood,
		       COUNT(*)                      AS count,
		       COALESCE(AVG(intensity), 0.0) AS avg_intensity
		FROM mood_entries
		WHERE user_id = $1 AND created_at >= $2
		GROUP BY mood
	`, userID, since)
	return buckets, err
}
