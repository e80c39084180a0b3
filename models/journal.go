package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// JournalEntry represents a single free-text journal entry
type JournalEntry struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	UserID             uuid.UUID `json:"user_id" db:"user_id"`
	Title              *string   `json:"title,omitempty" db:"title"`
	Content            string    `json:"content" db:"content"`
	IsVoiceTranscribed bool      `json:"is_voice_transcribed" db:"is_voice_transcribed"`
	WordCount          int       `json:"word_count" db:"word_count"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// JournalEntryCreate defines inputs for creating an entry
type JournalEntryCreate struct {
	Title              *string `json:"title"`
	Content            string  `json:"content"`
	IsVoiceTranscribed bool    `json:"is_voice_transcribed"`
}

// JournalEntryUpdate is a partial update; nil fields are left untouched
type JournalEntryUpdate struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// JournalEntryList is a paginated page of entries
type JournalEntryList struct {
	Entries []JournalEntry `json:"entries"`
	Total   int            `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}

// CountWords returns the whitespace-token count of text
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// ApplyEntryUpdate merges an update into an entry, returning the new state.
// Word count is recomputed whenever content changes.
func ApplyEntryUpdate(entry JournalEntry, update JournalEntryUpdate) JournalEntry {
	if update.Title != nil {
		entry.Title = update.Title
	}
	if update.Content != nil {
		entry.Content = *update.Content
		entry.WordCount = CountWords(*update.Content)
	}
	return entry
}
