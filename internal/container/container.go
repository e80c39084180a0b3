package container

import (
	"context"
	"fmt"
	"log"

	"mindwell/adapters/postgres"
	"mindwell/ai"
	"mindwell/api"
	"mindwell/app"
	"mindwell/internal/config"
	"mindwell/ports"

	"github.com/jmoiron/sqlx"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config

	// Infrastructure
	DB *sqlx.DB

	// Repositories (data access layer)
	UserRepo    ports.UserRepository
	EntryRepo   ports.EntryRepository
	MoodRepo    ports.MoodRepository
	InsightRepo ports.InsightRepository
	GoalRepo    ports.GoalRepository
	Tx          ports.Transactor

	// AI components
	Analyzer *ai.EntryAnalyzer

	// Services
	Accounts  ports.AccountResolver
	Journal   *app.JournalService
	Goals     *app.GoalService
	Analytics *app.AnalyticsService

	// Transport
	Server *api.Server
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	return &Container{Config: cfg}, nil
}

// InitWithDatabase wires every component that requires database access
func (c *Container) InitWithDatabase(db *sqlx.DB) error {
	if db == nil {
		return fmt.Errorf("database connection cannot be nil")
	}
	c.DB = db

	if err := db.Ping(); err != nil {
		return fmt.Errorf("database connection test failed: %w", err)
	}

	c.UserRepo = postgres.NewUserRepository(db)
	c.EntryRepo = postgres.NewEntryRepository(db)
	c.MoodRepo = postgres.NewMoodRepository(db)
	c.InsightRepo = postgres.NewInsightRepository(db)
	c.GoalRepo = postgres.NewGoalRepository(db)
	c.Tx = postgres.NewTxManager(db)

	c.initAnalyzer()

	c.Accounts = app.NewDemoAccountResolver(c.UserRepo)
	c.Journal = app.NewJournalService(c.EntryRepo, c.MoodRepo, c.InsightRepo, c.GoalRepo, c.Tx, c.Analyzer)
	c.Goals = app.NewGoalService(c.GoalRepo)
	c.Analytics = app.NewAnalyticsService(c.EntryRepo, c.MoodRepo, c.InsightRepo, c.GoalRepo, c.Analyzer)

	c.Server = api.NewServer(
		api.NewJournalHandler(c.Journal, c.Analytics, c.Accounts),
		api.NewGoalHandler(c.Goals, c.Accounts),
		api.NewAnalyticsHandler(c.Journal, c.Analytics, c.Accounts),
	)

	log.Printf("[Container] Initialized with database connection")
	return nil
}

// initAnalyzer builds the entry analyzer. Without an API key the analyzer
// runs in permanent keyword-fallback mode rather than failing startup.
func (c *Container) initAnalyzer() {
	var client ports.LLMClient
	if c.Config.AI.APIKey != "" {
		client = ai.NewOpenAIClient(c.Config.AI)
		log.Printf("[Container] AI analysis enabled with model %s", c.Config.AI.Model)
	} else {
		log.Printf("[Container] OPENAI_API_KEY not set, using keyword-based analysis only")
	}
	c.Analyzer = ai.NewEntryAnalyzer(client, c.Config.AI.SystemRole)
}

// EnsureDemoAccount creates the demo account if it doesn't exist yet
func (c *Container) EnsureDemoAccount(ctx context.Context) error {
	user, err := c.UserRepo.GetOrCreateDemoUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to ensure demo account: %w", err)
	}
	log.Printf("[Container] Demo account ready: %s", user.ID)
	return nil
}

// Shutdown gracefully shuts down all components
func (c *Container) Shutdown(ctx context.Context) error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
