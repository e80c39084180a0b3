package app

import (
	"context"
	"fmt"
	"time"

	"mindwell/internal/errors"
	"mindwell/models"
	"mindwell/ports"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
)

// JournalStats summarizes writing volume inside a window
type JournalStats struct {
	TotalEntries     int     `json:"total_entries"`
	TotalWords       int     `json:"total_words"`
	AvgWordsPerEntry float64 `json:"avg_words_per_entry"`
}

// ActivityPoint is one calendar day on the activity timeline
type ActivityPoint struct {
	Date    string `json:"date"`
	Entries int    `json:"entries"`
	Words   int    `json:"words"`
}

// DashboardStats is the combined dashboard report
type DashboardStats struct {
	PeriodDays          int                        `json:"period_days"`
	JournalStats        JournalStats               `json:"journal_stats"`
	MoodDistribution    []models.MoodBucket        `json:"mood_distribution"`
	GoalDistribution    []models.GoalStatusBucket  `json:"goal_distribution"`
	InsightDistribution []models.InsightTypeBucket `json:"insight_distribution"`
	ActivityTimeline    []ActivityPoint            `json:"activity_timeline"`
}

// WritingConsistency describes writing streaks inside a window
type WritingConsistency struct {
	CurrentStreak         int     `json:"current_streak"`
	MaxStreak             int     `json:"max_streak"`
	DaysWithEntries       int     `json:"days_with_entries"`
	ConsistencyPercentage float64 `json:"consistency_percentage"`
}

// ProductivityStats is the productivity report
type ProductivityStats struct {
	PeriodDays         int                `json:"period_days"`
	WritingConsistency WritingConsistency `json:"writing_consistency"`
	WordCountTrends    []ActivityPoint    `json:"word_count_trends"`
	RecentInsights     []models.Insight   `json:"recent_insights"`
}

// MoodSummary aggregates mood observations inside a window
type MoodSummary struct {
	AvgIntensity     float64 `json:"avg_intensity"`
	PositivityRatio  float64 `json:"positivity_ratio"`
	TotalMoodEntries int     `json:"total_mood_entries"`
}

// EmotionalHealthStats is the emotional health report
type EmotionalHealthStats struct {
	PeriodDays     int                     `json:"period_days"`
	MoodSummary    MoodSummary             `json:"mood_summary"`
	MoodTrends     []models.MoodTrendPoint `json:"mood_trends"`
	RecentInsights []models.Insight        `json:"recent_insights"`
}

// WeeklySummary is the synthesized seven-day report
type WeeklySummary struct {
	Period       string                    `json:"period"`
	TotalEntries int                       `json:"total_entries"`
	TotalWords   int                       `json:"total_words"`
	MoodTrends   []models.MoodTrendPoint   `json:"mood_trends"`
	Insights     []models.InsightCandidate `json:"insights"`
}

// AnalyticsService aggregates stored records into reports. It only reads;
// the generative backend is consulted for the weekly summary alone.
type AnalyticsService struct {
	entries  ports.EntryRepository
	moods    ports.MoodRepository
	insights ports.InsightRepository
	goals    ports.GoalRepository
	analyzer Analyzer
	now      func() time.Time
}

// NewAnalyticsService creates an analytics service
func NewAnalyticsService(
	entries ports.EntryRepository,
	moods ports.MoodRepository,
	insights ports.InsightRepository,
	goals ports.GoalRepository,
	analyzer Analyzer,
) *AnalyticsService {
	return &AnalyticsService{
		entries:  entries,
		moods:    moods,
		insights: insights,
		goals:    goals,
		analyzer: analyzer,
		now:      time.Now,
	}
}

// Dashboard assembles the combined report for the trailing window.
// The independent aggregate queries run concurrently.
func (s *AnalyticsService) Dashboard(ctx context.Context, userID uuid.UUID, days int) (*DashboardStats, error) {
	since := s.now().AddDate(0, 0, -days)
	report := &DashboardStats{PeriodDays: days}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		entryStats, err := s.entries.Stats(ctx, userID, since)
		if err != nil {
			return err
		}
		report.JournalStats = JournalStats{
			TotalEntries:     entryStats.TotalEntries,
			TotalWords:       entryStats.TotalWords,
			AvgWordsPerEntry: entryStats.AvgWords,
		}
		return nil
	})
	g.Go(func() error {
		buckets, err := s.moods.Distribution(ctx, userID, since)
		if err != nil {
			return err
		}
		report.MoodDistribution = buckets
		return nil
	})
	g.Go(func() error {
		buckets, err := s.goals.StatusDistribution(ctx, userID)
		if err != nil {
			return err
		}
		report.GoalDistribution = buckets
		return nil
	})
	g.Go(func() error {
		buckets, err := s.insights.TypeDistribution(ctx, userID, since)
		if err != nil {
			return err
		}
		report.InsightDistribution = buckets
		return nil
	})
	g.Go(func() error {
		activity, err := s.entries.DailyActivity(ctx, userID, since)
		if err != nil {
			return err
		}
		report.ActivityTimeline = activityPoints(activity)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, errors.DatabaseError("failed to build dashboard", err)
	}
	return report, nil
}

// Productivity computes writing streaks and consistency for the window,
// plus the five newest productivity insights
func (s *AnalyticsService) Productivity(ctx context.Context, userID uuid.UUID, days int) (*ProductivityStats, error) {
	now := s.now()
	since := now.AddDate(0, 0, -days)

	activity, err := s.entries.DailyActivity(ctx, userID, since)
	if err != nil {
		return nil, errors.DatabaseError("failed to load writing activity", err)
	}

	activeDays := make(map[string]bool, len(activity))
	for _, day := range activity {
		activeDays[day.Day.Format("2006-01-02")] = true
	}
	current, max := computeStreaks(activeDays, now, days)

	consistency := 0.0
	if days > 0 {
		consistency = float64(len(activeDays)) / float64(days) * 100
	}

	recent, err := s.insights.ListRecentByTypes(ctx, userID, since,
		[]models.InsightType{models.InsightProductivity}, 5)
	if err != nil {
		return nil, errors.DatabaseError("failed to load productivity insights", err)
	}

	return &ProductivityStats{
		PeriodDays: days,
		WritingConsistency: WritingConsistency{
			CurrentStreak:         current,
			MaxStreak:             max,
			DaysWithEntries:       len(activeDays),
			ConsistencyPercentage: consistency,
		},
		WordCountTrends: activityPoints(activity),
		RecentInsights:  recent,
	}, nil
}

// computeStreaks scans the window from today backward. The current streak is
// the consecutive run of active days ending today; it is zero when today has
// no entry. The max streak is the longest run anywhere in the window.
func computeStreaks(activeDays map[string]bool, now time.Time, windowDays int) (current, max int) {
	run := 0
	countingCurrent := true
	for i := 0; i < windowDays; i++ {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		if activeDays[day] {
			run++
			if countingCurrent {
				current = run
			}
		} else {
			countingCurrent = false
			if run > max {
				max = run
			}
			run = 0
		}
	}
	if run > max {
		max = run
	}
	return current, max
}

// EmotionalHealth aggregates mood observations into an average intensity,
// positivity ratio and trend timeline for the window, plus the five newest
// mood and emotional-health insights
func (s *AnalyticsService) EmotionalHealth(ctx context.Context, userID uuid.UUID, days int) (*EmotionalHealthStats, error) {
	since := s.now().AddDate(0, 0, -days)

	moods, err := s.moods.ListSince(ctx, userID, since)
	if err != nil {
		return nil, errors.DatabaseError("failed to load mood entries", err)
	}

	recent, err := s.insights.ListRecentByTypes(ctx, userID, since,
		[]models.InsightType{models.InsightMood, models.InsightEmotionalHealth}, 5)
	if err != nil {
		return nil, errors.DatabaseError("failed to load emotional health insights", err)
	}

	return &EmotionalHealthStats{
		PeriodDays:     days,
		MoodSummary:    summarizeMoods(moods),
		MoodTrends:     moodTrendPoints(moods),
		RecentInsights: recent,
	}, nil
}

func summarizeMoods(moods []models.MoodEntry) MoodSummary {
	summary := MoodSummary{TotalMoodEntries: len(moods)}
	if len(moods) == 0 {
		return summary
	}

	intensities := make([]float64, len(moods))
	positive := 0
	for i, m := range moods {
		intensities[i] = m.Intensity
		if models.PositiveMoods[m.Mood] {
			positive++
		}
	}
	// stats.Mean only errors on empty input, handled above
	avg, _ := stats.Mean(intensities)
	summary.AvgIntensity = avg
	summary.PositivityRatio = float64(positive) / float64(len(moods))
	return summary
}

// WeeklySummary aggregates the trailing seven days and asks the generative
// backend for week-level insights over the raw entry texts. Backend failure
// degrades to an empty insight list, never an error.
func (s *AnalyticsService) WeeklySummary(ctx context.Context, userID uuid.UUID) (*WeeklySummary, error) {
	now := s.now()
	since := now.AddDate(0, 0, -7)

	entries, err := s.entries.ListSince(ctx, userID, since)
	if err != nil {
		return nil, errors.DatabaseError("failed to load weekly entries", err)
	}
	moods, err := s.moods.ListSince(ctx, userID, since)
	if err != nil {
		return nil, errors.DatabaseError("failed to load weekly mood entries", err)
	}

	totalWords := 0
	contents := make([]string, len(entries))
	for i, e := range entries {
		totalWords += e.WordCount
		contents[i] = e.Content
	}

	var insights []models.InsightCandidate
	if len(entries) > 0 {
		insights = s.analyzer.GenerateWeeklyInsights(ctx, contents)
	}

	return &WeeklySummary{
		Period:       fmt.Sprintf("%s to %s", since.Format("2006-01-02"), now.Format("2006-01-02")),
		TotalEntries: len(entries),
		TotalWords:   totalWords,
		MoodTrends:   moodTrendPoints(moods),
		Insights:     insights,
	}, nil
}

func activityPoints(activity []ports.DailyActivity) []ActivityPoint {
	points := make([]ActivityPoint, len(activity))
	for i, day := range activity {
		points[i] = ActivityPoint{
			Date:    day.Day.Format("2006-01-02"),
			Entries: day.Entries,
			Words:   day.Words,
		}
	}
	return points
}
