package app

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"
	"time"

	"mindwell/internal/errors"
	"mindwell/models"
	"mindwell/ports"

	"github.com/google/uuid"
)

// Analyzer derives structured signal from raw entry text
type Analyzer interface {
	Analyze(ctx context.Context, content string) *models.AnalysisResult
	GenerateWeeklyInsights(ctx context.Context, contents []string) []models.InsightCandidate
}

// JournalService orchestrates the entry lifecycle: analysis, persistence of
// the entry plus its derived records as one unit of work, and listing.
type JournalService struct {
	entries  ports.EntryRepository
	moods    ports.MoodRepository
	insights ports.InsightRepository
	goals    ports.GoalRepository
	tx       ports.Transactor
	analyzer Analyzer
	now      func() time.Time
}

// NewJournalService creates a journal service
func NewJournalService(
	entries ports.EntryRepository,
	moods ports.MoodRepository,
	insights ports.InsightRepository,
	goals ports.GoalRepository,
	tx ports.Transactor,
	analyzer Analyzer,
) *JournalService {
	return &JournalService{
		entries:  entries,
		moods:    moods,
		insights: insights,
		goals:    goals,
		tx:       tx,
		analyzer: analyzer,
		now:      time.Now,
	}
}

// CreateEntry analyzes the body text and persists the entry together with
// every derived record in one transaction. The analyzer call happens before
// the transaction opens so a slow backend never holds a connection.
func (s *JournalService) CreateEntry(ctx context.Context, userID uuid.UUID, req models.JournalEntryCreate) (*models.JournalEntry, *models.AnalysisResult, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, nil, errors.InvalidInput("content is required")
	}

	analysis := s.analyzer.Analyze(ctx, req.Content)

	now := s.now()
	entry := &models.JournalEntry{
		ID:                 uuid.New(),
		UserID:             userID,
		Title:              req.Title,
		Content:            req.Content,
		IsVoiceTranscribed: req.IsVoiceTranscribed,
		WordCount:          models.CountWords(req.Content),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.entries.Create(ctx, entry); err != nil {
			return err
		}
		if analysis.Mood != nil {
			if err := s.persistMood(ctx, entry, analysis.Mood, now); err != nil {
				return err
			}
		}
		for _, candidate := range analysis.Insights {
			if err := s.persistInsight(ctx, entry, candidate, analysis.SentimentScore, now); err != nil {
				return err
			}
		}
		if len(analysis.Goals) > 0 {
			if err := s.persistDetectedGoals(ctx, userID, analysis.Goals, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			return nil, nil, err
		}
		return nil, nil, errors.DatabaseError("failed to create journal entry", err)
	}

	return entry, analysis, nil
}

// persistMood stores the analyzer's mood signal, clamping the 1-10 scales
// at this boundary since the analyzer emits values unclamped.
func (s *JournalService) persistMood(ctx context.Context, entry *models.JournalEntry, mood *models.MoodAnalysis, now time.Time) error {
	record := &models.MoodEntry{
		ID:                    uuid.New(),
		JournalEntryID:        entry.ID,
		UserID:                entry.UserID,
		Mood:                  mood.Mood,
		Intensity:             models.Clamp(mood.Intensity, 1, 10),
		EnergyLevel:           models.ClampPtr(mood.EnergyLevel, 1, 10),
		StressLevel:           models.ClampPtr(mood.StressLevel, 1, 10),
		DetectedAutomatically: mood.DetectedAutomatically,
		CreatedAt:             now,
	}
	if err := record.Validate(); err != nil {
		return errors.ValidationError(err.Error())
	}
	return s.moods.Create(ctx, record)
}

// persistInsight stores one insight carrying the entry-level sentiment score
func (s *JournalService) persistInsight(ctx context.Context, entry *models.JournalEntry, candidate models.InsightCandidate, sentiment float64, now time.Time) error {
	confidence := models.Clamp(candidate.Confidence, 0, 1)
	record := &models.Insight{
		ID:              uuid.New(),
		JournalEntryID:  entry.ID,
		UserID:          entry.UserID,
		Type:            candidate.Type,
		Title:           candidate.Title,
		Content:         candidate.Content,
		ConfidenceScore: &confidence,
		SentimentScore:  &sentiment,
		CreatedAt:       now,
	}
	if err := record.Validate(); err != nil {
		return errors.ValidationError(err.Error())
	}
	return s.insights.Create(ctx, record)
}

// persistDetectedGoals stores detected goals, dropping any candidate whose
// title is already contained (case-insensitively) in an existing goal title.
// The read-then-write check is best-effort; two concurrent creations may
// still produce near-duplicates.
func (s *JournalService) persistDetectedGoals(ctx context.Context, userID uuid.UUID, candidates []models.GoalCandidate, now time.Time) error {
	existing, err := s.goals.List(ctx, userID)
	if err != nil {
		return err
	}

	for _, candidate := range candidates {
		if hasSimilarGoal(existing, candidate.Title) {
			continue
		}
		goal := &models.Goal{
			ID:                  uuid.New(),
			UserID:              userID,
			Title:               candidate.Title,
			Description:         candidate.Description,
			Category:            candidate.Category,
			Status:              models.GoalNotStarted,
			DetectedFromJournal: true,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		if err := goal.Validate(); err != nil {
			return errors.ValidationError(err.Error())
		}
		if err := s.goals.Create(ctx, goal); err != nil {
			return err
		}
		existing = append(existing, *goal)
	}
	return nil
}

func hasSimilarGoal(existing []models.Goal, candidateTitle string) bool {
	needle := strings.ToLower(candidateTitle)
	for _, goal := range existing {
		if strings.Contains(strings.ToLower(goal.Title), needle) {
			return true
		}
	}
	return false
}

// GetEntry retrieves one entry owned by the account
func (s *JournalService) GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*models.JournalEntry, error) {
	entry, err := s.entries.GetByID(ctx, userID, entryID)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFound("journal entry")
		}
		return nil, errors.DatabaseError("failed to get journal entry", err)
	}
	return entry, nil
}

// ListEntries returns a page of entries, newest-first, with the total count
// independent of page size. Page and per-page are clamped defensively; the
// transport boundary enforces the caller-facing limits.
func (s *JournalService) ListEntries(ctx context.Context, userID uuid.UUID, page, perPage int, search string) (*models.JournalEntryList, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}

	entries, err := s.entries.List(ctx, userID, ports.EntryFilter{
		Search: search,
		Offset: (page - 1) * perPage,
		Limit:  perPage,
	})
	if err != nil {
		return nil, errors.DatabaseError("failed to list journal entries", err)
	}

	total, err := s.entries.Count(ctx, userID, search)
	if err != nil {
		return nil, errors.DatabaseError("failed to count journal entries", err)
	}

	return &models.JournalEntryList{
		Entries: entries,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// UpdateEntry applies only the provided fields. A content change recomputes
// the word count; derived records are never touched and analysis does not
// re-run.
func (s *JournalService) UpdateEntry(ctx context.Context, userID, entryID uuid.UUID, update models.JournalEntryUpdate) (*models.JournalEntry, error) {
	current, err := s.GetEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	if update.Content != nil && strings.TrimSpace(*update.Content) == "" {
		return nil, errors.InvalidInput("content cannot be empty")
	}

	merged := models.ApplyEntryUpdate(*current, update)
	merged.UpdatedAt = s.now()

	if err := s.entries.Update(ctx, &merged); err != nil {
		return nil, errors.DatabaseError("failed to update journal entry", err)
	}
	return &merged, nil
}

// DeleteEntry removes an entry; mood observations and insights referencing
// it are removed by the storage cascade, goals are left untouched.
func (s *JournalService) DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	affected, err := s.entries.Delete(ctx, userID, entryID)
	if err != nil {
		return errors.DatabaseError("failed to delete journal entry", err)
	}
	if affected == 0 {
		return errors.NotFound("journal entry")
	}
	return nil
}

// RecentInsights returns the newest insights inside the trailing window
func (s *JournalService) RecentInsights(ctx context.Context, userID uuid.UUID, days, limit int) ([]models.Insight, error) {
	since := s.now().AddDate(0, 0, -days)
	insights, err := s.insights.ListRecent(ctx, userID, since, limit)
	if err != nil {
		return nil, errors.DatabaseError("failed to list insights", err)
	}
	return insights, nil
}

// MoodTrends returns the mood trend timeline for the trailing window,
// ordered by observation time ascending
func (s *JournalService) MoodTrends(ctx context.Context, userID uuid.UUID, days int) ([]models.MoodTrendPoint, error) {
	since := s.now().AddDate(0, 0, -days)
	moods, err := s.moods.ListSince(ctx, userID, since)
	if err != nil {
		return nil, errors.DatabaseError("failed to list mood entries", err)
	}
	return moodTrendPoints(moods), nil
}

func moodTrendPoints(moods []models.MoodEntry) []models.MoodTrendPoint {
	points := make([]models.MoodTrendPoint, len(moods))
	for i, m := range moods {
		points[i] = models.MoodTrendPoint{
			Date:        m.CreatedAt.Format("2006-01-02"),
			Mood:        m.Mood,
			Intensity:   m.Intensity,
			EnergyLevel: m.EnergyLevel,
			StressLevel: m.StressLevel,
		}
	}
	return points
}
