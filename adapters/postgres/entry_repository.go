package postgres

import (
	"context"
	"time"

	"mindwell/models"
	"mindwell/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// EntryRepositoryImpl implements EntryRepository for PostgreSQL
type EntryRepositoryImpl struct {
	db *sqlx.DB
}

// NewEntryRepository creates a new PostgreSQL journal entry repository
func NewEntryRepository(db *sqlx.DB) ports.EntryRepository {
	return &EntryRepositoryImpl{db: db}
}

// Create persists a new journal entry
func (r *EntryRepositoryImpl) Create(ctx context.Context, entry *models.JournalEntry) error {
	_, err := extFrom(ctx, r.db).ExecContext(ctx, `
		INSERT INTO journal_entries (id, user_id, title, content, is_voice_transcribed, word_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, entry.ID, entry.UserID, entry.Title, entry.Content, entry.IsVoiceTranscribed, entry.WordCount, entry.CreatedAt, entry.UpdatedAt)
	return err
}

// GetByID retrieves an entry owned by the given account
func (r *EntryRepositoryImpl) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	err := sqlx.GetContext(ctx, extFrom(ctx, r.db), &entry, `
		SELECT id, user_id, title, content, is_voice_transcribed, word_count, created_at, updated_at
		FROM journal_entries
		WHERE user_id = $1 AND id = $2
	`, userID, entryID)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns entries newest-first with optional substring search
func (r *EntryRepositoryImpl) List(ctx context.Context, userID uuid.UUID, filter ports.EntryFilter) ([]models.JournalEntry, error) {
	query := `
		SELECT id, user_id, title, content, is_voice_transcribed, word_count, created_at, updated_at
		FROM journal_entries
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	if filter.Search != "" {
		query += ` AND (content ILIKE $2 OR title ILIKE $2)`
		args = append(args, "%"+filter.Search+"%")
	}

	query += ` ORDER BY created_at DESC`
	args = append(args, filter.Limit, filter.Offset)
	if filter.Search != "" {
		query += ` LIMIT $3 OFFSET $4`
	} else {
		query += ` LIMIT $2 OFFSET $3`
	}

	entries := []models.JournalEntry{}
	err := sqlx.SelectContext(ctx, extFrom(ctx, r.db), &entries, query, args...)
	return entries, err
}

// Count returns total matching entries independent of paging
func (r *EntryRepositoryImpl) Count(ctx context.Context, userID uuid.UUID, search string) (int, error) {
	query := `SELECT COUNT(*) FROM journal_entries WHERE user_id = $1`
	args := []interface{}{userID}
	if search != "" {
		query += ` AND (content ILIKE $2 OR title ILIKE $2)`
		args = append(args, "%"+search+"%")
	}

	var total int
	err := sqlx.GetContext(ctx, extFrom(ctx, r.db), &total, query, args...)
	return total, err
}

// Update persists changed entry fields
func (r *EntryRepositoryImpl) Update(ctx context.Context, entry *models.JournalEntry) error {
	_, err := extFrom(ctx, r.db).ExecContext(ctx, `
		UPDATE journal_entries
		SET title = $3, content = $4, word_count = $5, updated_at = $6
		WHERE user_id = $1 AND id = $2
	`, entry.UserID, entry.ID, entry.Title, entry.Content, entry.WordCount, entry.UpdatedAt)
	return err
}

// Delete removes an entry; mood and insight rows cascade at the schema level
func (r *EntryRepositoryImpl) Delete(ctx context.Context, userID, entryID uuid.UUID) (int64, error) {
	res, err := extFrom(ctx, r.db).ExecContext(ctx, `
		DELETE FROM journal_entries
		WHERE user_id = $1 AND id = $2
	`, userID, entryID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListSince returns entries created at or after since, oldest-first
func (r *EntryRepositoryImpl) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.JournalEntry, error) {
	entries := []models.JournalEntry{}
	err := sqlx.SelectContext(ctx, extFrom(ctx, r.db), &entries, `
		SELECT id, user_id, title, content, is_voice_transcribed, word_count, created_at, updated_at
		FROM journal_entries
		WHERE user_id = $1 AND created_at >= $2
		ORDER BY created_at ASC
	`, userID, since)
	return entries, err
}

// Stats aggregates counts and word totals inside the window
func (r *EntryRepositoryImpl) Stats(ctx context.Context, userID uuid.UUID, since time.Time) (*ports.EntryStats, error) {
	var stats ports.EntryStats
	err := sqlx.GetContext(ctx, extFrom(ctx, r.db), &stats, `
		SELECT COUNT(*)                        AS total_entries,
		       COALESCE(SUM(word_count), 0)   AS total_words,
		       COALESCE(AVG(word_count), 0.0) AS avg_words
		FROM journal_entries
		WHERE user_id = $1 AND created_at >= $2
	`, userID, since)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// DailyActivity groups entry counts and word sums per calendar day
func (r *EntryRepositoryImpl) DailyActivity(ctx context.Context, userID uuid.UUID, since time.Time) ([]ports.DailyActivity, error) {
	activity := []ports.DailyActivity{}
	err := sqlx.SelectContext(ctx, extFrom(ctx, r.db), &activity, `
		SELECT created_at::date             AS day,
		       COUNT(*)                     AS entries,
		       COALESCE(SUM(word_count), 0) AS words
		FROM journal_entries
		WHERE user_id = $1 AND created_at >= $2
		GROUP BY created_at::date
		ORDER BY day ASC
	`, userID, since)
	return activity, err
}
