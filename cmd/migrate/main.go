package main

import (
	"context"
	"log"
	"os"

	"mindwell/adapters/postgres"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS journal_entries (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title TEXT,
		content TEXT NOT NULL,
		is_voice_transcribed BOOLEAN NOT NULL DEFAULT FALSE,
		word_count INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_journal_entries_user_created
		ON journal_entries (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS mood_entries (
		id UUID PRIMARY KEY,
		journal_entry_id UUID NOT NULL REFERENCES journal_entries(id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		mood TEXT NOT NULL,
		intensity DOUBLE PRECISION NOT NULL,
		energy_level DOUBLE PRECISION,
		stress_level DOUBLE PRECISION,
		notes TEXT,
		detected_automatically BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_mood_entries_user_created
		ON mood_entries (user_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS insights (
		id UUID PRIMARY KEY,
		journal_entry_id UUID NOT NULL REFERENCES journal_entries(id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		insight_type TEXT NOT NULL,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		confidence_score DOUBLE PRECISION,
		sentiment_score DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_insights_user_created
		ON insights (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS goals (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		description TEXT,
		category TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'not_started',
		progress_percentage DOUBLE PRECISION NOT NULL DEFAULT 0,
		target_date TIMESTAMPTZ,
		is_recurring BOOLEAN NOT NULL DEFAULT FALSE,
		detected_from_journal BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		completed_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_goals_user_created
		ON goals (user_id, created_at DESC)`,
}

func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if len(os.Args) > 1 {
		databaseURL = os.Args[1]
	}
	if databaseURL == "" {
		log.Fatal("Usage: migrate <database_url> (or set DATABASE_URL)")
	}

	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	for i, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("Migration statement %d failed: %v", i+1, err)
		}
	}
	log.Printf("Applied %d schema statements", len(schema))

	// Seed the demo account so the API serves requests immediately
	userRepo := postgres.NewUserRepository(db)
	user, err := userRepo.GetOrCreateDemoUser(context.Background())
	if err != nil {
		log.Fatalf("Failed to seed demo account: %v", err)
	}
	log.Printf("Demo account ready: %s (%s)", user.Email, user.ID)
}
