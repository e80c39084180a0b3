package app

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"mindwell/models"
	"mindwell/ports"

	"github.com/google/uuid"
)

// In-memory repository fakes. They ignore the transaction context; the
// fake transactor below records rollbacks instead.

type fakeEntryRepo struct {
	entries map[uuid.UUID]models.JournalEntry
	order   []uuid.UUID
	failOn  string
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: make(map[uuid.UUID]models.JournalEntry)}
}

func (r *fakeEntryRepo) Create(ctx context.Context, entry *models.JournalEntry) error {
	if r.failOn == "create" {
		return errors.New("storage down")
	}
	r.entries[entry.ID] = *entry
	r.order = append(r.order, entry.ID)
	return nil
}

func (r *fakeEntryRepo) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*models.JournalEntry, error) {
	entry, ok := r.entries[entryID]
	if !ok || entry.UserID != userID {
		return nil, sql.ErrNoRows
	}
	return &entry, nil
}

func (r *fakeEntryRepo) List(ctx context.Context, userID uuid.UUID, filter ports.EntryFilter) ([]models.JournalEntry, error) {
	matched := r.match(userID, filter.Search)
	// newest-first by insertion order
	var out []models.JournalEntry
	for i := len(matched) - 1; i >= 0; i-- {
		out = append(out, matched[i])
	}
	if filter.Offset >= len(out) {
		return nil, nil
	}
	out = out[filter.Offset:]
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *fakeEntryRepo) Count(ctx context.Context, userID uuid.UUID, search string) (int, error) {
	return len(r.match(userID, search)), nil
}

func (r *fakeEntryRepo) match(userID uuid.UUID, search string) []models.JournalEntry {
	var out []models.JournalEntry
	needle := strings.ToLower(search)
	for _, id := range r.order {
		entry := r.entries[id]
		if entry.UserID != userID {
			continue
		}
		if needle != "" {
			title := ""
			if entry.Title != nil {
				title = *entry.Title
			}
			if !strings.Contains(strings.ToLower(entry.Content), needle) &&
				!strings.Contains(strings.ToLower(title), needle) {
				continue
			}
		}
		out = append(out, entry)
	}
	return out
}

func (r *fakeEntryRepo) Update(ctx context.Context, entry *models.JournalEntry) error {
	if _, ok := r.entries[entry.ID]; !ok {
		return sql.ErrNoRows
	}
	r.entries[entry.ID] = *entry
	return nil
}

func (r *fakeEntryRepo) Delete(ctx context.Context, userID, entryID uuid.UUID) (int64, error) {
	entry, ok := r.entries[entryID]
	if !ok || entry.UserID != userID {
		return 0, nil
	}
	delete(r.entries, entryID)
	return 1, nil
}

func (r *fakeEntryRepo) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.JournalEntry, error) {
	var out []models.JournalEntry
	for _, id := range r.order {
		entry := r.entries[id]
		if entry.UserID == userID && !entry.CreatedAt.Before(since) {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (r *fakeEntryRepo) Stats(ctx context.Context, userID uuid.UUID, since time.Time) (*ports.EntryStats, error) {
	stats := &ports.EntryStats{}
	for _, entry := range r.entries {
		if entry.UserID == userID && !entry.CreatedAt.Before(since) {
			stats.TotalEntries++
			stats.TotalWords += entry.WordCount
		}
	}
	if stats.TotalEntries > 0 {
		stats.AvgWords = float64(stats.TotalWords) / float64(stats.TotalEntries)
	}
	return stats, nil
}

func (r *fakeEntryRepo) DailyActivity(ctx context.Context, userID uuid.UUID, since time.Time) ([]ports.DailyActivity, error) {
	byDay := make(map[string]*ports.DailyActivity)
	var days []string
	for _, id := range r.order {
		entry := r.entries[id]
		if entry.UserID != userID || entry.CreatedAt.Before(since) {
			continue
		}
		key := entry.CreatedAt.Format("2006-01-02")
		if byDay[key] == nil {
			day, _ := time.Parse("2006-01-02", key)
			byDay[key] = &ports.DailyActivity{Day: day}
			days = append(days, key)
		}
		byDay[key].Entries++
		byDay[key].Words += entry.WordCount
	}
	var out []ports.DailyActivity
	for _, key := range days {
		out = append(out, *byDay[key])
	}
	return out, nil
}

type fakeMoodRepo struct {
	moods  []models.MoodEntry
	failOn string
}

func (r *fakeMoodRepo) Create(ctx context.Context, entry *models.MoodEntry) error {
	if r.failOn == "create" {
		return errors.New("storage down")
	}
	r.moods = append(r.moods, *entry)
	return nil
}

func (r *fakeMoodRepo) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.MoodEntry, error) {
	var out []models.MoodEntry
	for _, m := range r.moods {
		if m.UserID == userID && !m.CreatedAt.Before(since) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMoodRepo) Distribution(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.MoodBucket, error) {
	counts := make(map[models.MoodType]*models.MoodBucket)
	var order []models.MoodType
	for _, m := range r.moods {
		if m.UserID != userID || m.CreatedAt.Before(since) {
			continue
		}
		if counts[m.Mood] == nil {
			counts[m.Mood] = &models.MoodBucket{Mood: m.Mood}
			order = append(order, m.Mood)
		}
		counts[m.Mood].Count++
		counts[m.Mood].AvgIntensity += m.Intensity
	}
	var out []models.MoodBucket
	for _, mood := range order {
		b := counts[mood]
		b.AvgIntensity /= float64(b.Count)
		out = append(out, *b)
	}
	return out, nil
}

type fakeInsightRepo struct {
	insights []models.Insight
}

func (r *fakeInsightRepo) Create(ctx context.Context, insight *models.Insight) error {
	r.insights = append(r.insights, *insight)
	return nil
}

func (r *fakeInsightRepo) ListRecent(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]models.Insight, error) {
	return r.listFiltered(userID, since, nil, limit), nil
}

func (r *fakeInsightRepo) ListRecentByTypes(ctx context.Context, userID uuid.UUID, since time.Time, types []models.InsightType, limit int) ([]models.Insight, error) {
	return r.listFiltered(userID, since, types, limit), nil
}

func (r *fakeInsightRepo) listFiltered(userID uuid.UUID, since time.Time, types []models.InsightType, limit int) []models.Insight {
	wantType := func(t models.InsightType) bool {
		if types == nil {
			return true
		}
		for _, want := range types {
			if t == want {
				return true
			}
		}
		return false
	}
	var out []models.Insight
	for i := len(r.insights) - 1; i >= 0; i-- {
		in := r.insights[i]
		if in.UserID == userID && !in.CreatedAt.Before(since) && wantType(in.Type) {
			out = append(out, in)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}

func (r *fakeInsightRepo) TypeDistribution(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.InsightTypeBucket, error) {
	counts := make(map[models.InsightType]int)
	var order []models.InsightType
	for _, in := range r.insights {
		if in.UserID != userID || in.CreatedAt.Before(since) {
			continue
		}
		if counts[in.Type] == 0 {
			order = append(order, in.Type)
		}
		counts[in.Type]++
	}
	var out []models.InsightTypeBucket
	for _, t := range order {
		out = append(out, models.InsightTypeBucket{Type: t, Count: counts[t]})
	}
	return out, nil
}

type fakeGoalRepo struct {
	goals  map[uuid.UUID]models.Goal
	order  []uuid.UUID
	failOn string
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[uuid.UUID]models.Goal)}
}

func (r *fakeGoalRepo) Create(ctx context.Context, goal *models.Goal) error {
	if r.failOn == "create" {
		return errors.New("storage down")
	}
	r.goals[goal.ID] = *goal
	r.order = append(r.order, goal.ID)
	return nil
}

func (r *fakeGoalRepo) GetByID(ctx context.Context, userID, goalID uuid.UUID) (*models.Goal, error) {
	goal, ok := r.goals[goalID]
	if !ok || goal.UserID != userID {
		return nil, sql.ErrNoRows
	}
	return &goal, nil
}

func (r *fakeGoalRepo) List(ctx context.Context, userID uuid.UUID) ([]models.Goal, error) {
	var out []models.Goal
	for i := len(r.order) - 1; i >= 0; i-- {
		goal := r.goals[r.order[i]]
		if goal.UserID == userID {
			out = append(out, goal)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) Update(ctx context.Context, goal *models.Goal) error {
	if _, ok := r.goals[goal.ID]; !ok {
		return sql.ErrNoRows
	}
	r.goals[goal.ID] = *goal
	return nil
}

func (r *fakeGoalRepo) Delete(ctx context.Context, userID, goalID uuid.UUID) (int64, error) {
	goal, ok := r.goals[goalID]
	if !ok || goal.UserID != userID {
		return 0, nil
	}
	delete(r.goals, goalID)
	return 1, nil
}

func (r *fakeGoalRepo) StatusDistribution(ctx context.Context, userID uuid.UUID) ([]models.GoalStatusBucket, error) {
	counts := make(map[models.GoalStatus]int)
	var order []models.GoalStatus
	for _, id := range r.order {
		goal, ok := r.goals[id]
		if !ok || goal.UserID != userID {
			continue
		}
		if counts[goal.Status] == 0 {
			order = append(order, goal.Status)
		}
		counts[goal.Status]++
	}
	var out []models.GoalStatusBucket
	for _, s := range order {
		out = append(out, models.GoalStatusBucket{Status: s, Count: counts[s]})
	}
	return out, nil
}

// fakeTx runs fn directly and records whether the unit rolled back
type fakeTx struct {
	calls      int
	rolledBack bool
}

func (t *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	if err := fn(ctx); err != nil {
		t.rolledBack = true
		return err
	}
	return nil
}

// fakeAnalyzer returns a canned analysis result
type fakeAnalyzer struct {
	result  *models.AnalysisResult
	weekly  []models.InsightCandidate
	entries []string
}

func (a *fakeAnalyzer) Analyze(ctx context.Context, content string) *models.AnalysisResult {
	if a.result != nil {
		return a.result
	}
	return &models.AnalysisResult{
		SentimentScore: 0,
		Goals:          []models.GoalCandidate{},
		Insights:       []models.InsightCandidate{},
		WordCount:      models.CountWords(content),
		Degraded:       true,
		Mood: &models.MoodAnalysis{
			Mood:                  models.MoodNeutral,
			Intensity:             5,
			DetectedAutomatically: true,
		},
	}
}

func (a *fakeAnalyzer) GenerateWeeklyInsights(ctx context.Context, contents []string) []models.InsightCandidate {
	a.entries = contents
	if a.weekly == nil {
		return []models.InsightCandidate{}
	}
	return a.weekly
}

type fakeUserRepo struct {
	user  *models.User
	calls int
}

func (r *fakeUserRepo) GetOrCreateDemoUser(ctx context.Context) (*models.User, error) {
	r.calls++
	if r.user == nil {
		r.user = &models.User{ID: uuid.New(), Email: "demo@mindwell.local", Name: "Demo User"}
	}
	return r.user, nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	if r.user != nil && r.user.ID == userID {
		return r.user, nil
	}
	return nil, sql.ErrNoRows
}
