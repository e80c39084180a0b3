package ports

import (
	"context"
	"time"

	"mindwell/models"

	"github.com/google/uuid"
)

// EntryFilter narrows and pages a journal entry listing
type EntryFilter struct {
	Search string
	Offset int
	Limit  int
}

// EntryStats aggregates entry activity inside a time window
type EntryStats struct {
	TotalEntries int     `db:"total_entries"`
	TotalWords   int     `db:"total_words"`
	AvgWords     float64 `db:"avg_words"`
}

// DailyActivity is one calendar day's entry activity
type DailyActivity struct {
	Day     time.Time `db:"day"`
	Entries int       `db:"entries"`
	Words   int       `db:"words"`
}

// EntryRepository defines the interface for journal entry data operations
type EntryRepository interface {
	// Create persists a new journal entry
	Create(ctx context.Context, entry *models.JournalEntry) error

	// GetByID retrieves an entry owned by the given account
	GetByID(ctx context.Context, userID, entryID uuid.UUID) (*models.JournalEntry, error)

	// List returns entries newest-first, optionally filtered by a
	// case-insensitive substring match over title or content
	List(ctx context.Context, userID uuid.UUID, filter EntryFilter) ([]models.JournalEntry, error)

	// Count returns the total matching entries independent of paging
	Count(ctx context.Context, userID uuid.UUID, search string) (int, error)

	// Update persists changed entry fields
	Update(ctx context.Context, entry *models.JournalEntry) error

	// Delete removes an entry; dependent mood and insight rows cascade.
	// Returns the number of rows removed.
	Delete(ctx context.Context, userID, entryID uuid.UUID) (int64, error)

	// ListSince returns entries created at or after since, oldest-first
	ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.JournalEntry, error)

	// Stats aggregates counts and word totals inside the window
	Stats(ctx context.Context, userID uuid.UUID, since time.Time) (*EntryStats, error)

	// DailyActivity groups entry counts and word sums per calendar day,
	// ordered by day ascending, days without entries omitted
	DailyActivity(ctx context.Context, userID uuid.UUID, since time.Time) ([]DailyActivity, error)
}
