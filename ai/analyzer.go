package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"mindwell/models"
	"mindwell/ports"
)

// moodKeywords drives the deterministic fallback. Scan order is fixed:
// ties are broken by the first mood reaching the maximum keyword count.
var moodKeywords = []struct {
	mood     models.MoodType
	keywords []string
}{
	{models.MoodVeryHappy, []string{"ecstatic", "overjoyed", "thrilled", "elated", "euphoric"}},
	{models.MoodHappy, []string{"happy", "glad", "pleased", "content", "joyful", "cheerful"}},
	{models.MoodExcited, []string{"excited", "enthusiastic", "pumped", "energetic"}},
	{models.MoodGrateful, []string{"grateful", "thankful", "blessed", "appreciative"}},
	{models.MoodCalm, []string{"calm", "peaceful", "serene", "relaxed", "tranquil"}},
	{models.MoodAnxious, []string{"anxious", "worried", "nervous", "uneasy", "concerned"}},
	{models.MoodStressed, []string{"stressed", "overwhelmed", "pressure", "tension"}},
	{models.MoodSad, []string{"sad", "disappointed", "down", "blue", "melancholy"}},
	{models.MoodVerySad, []string{"depressed", "devastated", "heartbroken", "miserable"}},
	{models.MoodAngry, []string{"angry", "furious", "irritated", "mad", "frustrated"}},
	{models.MoodFrustrated, []string{"frustrated", "annoyed", "bothered", "vexed"}},
}

// EntryAnalyzer derives structured signal from raw journal text.
// The primary path calls the generative-language backend; when that is
// unavailable or returns a malformed document, the analyzer degrades to the
// deterministic keyword fallback. It never touches storage.
type EntryAnalyzer struct {
	entryClient  *StructuredClient[entryAnalysisDocument]
	weeklyClient *StructuredClient[weeklyInsightsDocument]
}

// NewEntryAnalyzer creates an analyzer. A nil client disables the remote
// path entirely; every analysis is then a deterministic fallback.
func NewEntryAnalyzer(client ports.LLMClient, systemRole string) *EntryAnalyzer {
	a := &EntryAnalyzer{}
	if client != nil {
		a.entryClient = NewStructuredClient[entryAnalysisDocument](client, systemRole)
		a.weeklyClient = NewStructuredClient[weeklyInsightsDocument](client, weeklySystemContext)
	}
	return a
}

type remoteMood struct {
	PrimaryMood string   `json:"primary_mood"`
	Intensity   float64  `json:"intensity"`
	EnergyLevel *float64 `json:"energy_level"`
	StressLevel *float64 `json:"stress_level"`
}

type remoteInsight struct {
	Type       string  `json:"type"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Confidence float64 `json:"confidence"`
}

type remoteGoal struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Category    string  `json:"category"`
	Confidence  float64 `json:"confidence"`
}

type entryAnalysisDocument struct {
	Mood     remoteMood      `json:"mood"`
	Insights []remoteInsight `json:"insights"`
	Goals    []remoteGoal    `json:"goals"`
}

type weeklyInsightsDocument struct {
	Insights []remoteInsight `json:"insights"`
}

// Analyze produces the full structured signal for one entry's text.
// It never fails: the sentiment path swallows nothing (it is pure) and any
// remote failure flips Degraded and falls back to keyword mood detection.
func (a *EntryAnalyzer) Analyze(ctx context.Context, content string) *models.AnalysisResult {
	result := &models.AnalysisResult{
		SentimentScore: Polarity(content),
		Goals:          []models.GoalCandidate{},
		Insights:       []models.InsightCandidate{},
		WordCount:      models.CountWords(content),
	}

	if a.entryClient != nil {
		doc, err := a.entryClient.GetJSONResponse(ctx, buildEntryAnalysisPrompt(content), 0.3)
		if err == nil {
			mood, goals, insights, convErr := convertEntryDocument(doc)
			if convErr == nil {
				result.Mood = mood
				result.Goals = goals
				result.Insights = insights
				return result
			}
			err = convErr
		}
		log.Printf("[Analyzer] remote analysis discarded: %v", err)
	}

	result.Degraded = true
	result.Mood = fallbackMoodAnalysis(content)
	return result
}

// GenerateWeeklyInsights produces the weekly narrative insight pair from all
// of a week's entries in one backend call. There is no deterministic
// fallback: no client or any failure yields an empty list.
func (a *EntryAnalyzer) GenerateWeeklyInsights(ctx context.Context, contents []string) []models.InsightCandidate {
	if a.weeklyClient == nil || len(contents) == 0 {
		return []models.InsightCandidate{}
	}

	doc, err := a.weeklyClient.GetJSONResponse(ctx, buildWeeklyInsightsPrompt(contents), 0.4)
	if err != nil {
		log.Printf("[Analyzer] weekly insights unavailable: %v", err)
		return []models.InsightCandidate{}
	}

	insights, err := convertInsights(doc.Insights)
	if err != nil {
		log.Printf("[Analyzer] weekly insights discarded: %v", err)
		return []models.InsightCandidate{}
	}
	return insights
}

// convertEntryDocument maps the remote document onto domain types.
// Any unknown enum value fails the whole document; the remote outcome is
// all-or-nothing, never partially trusted.
func convertEntryDocument(doc *entryAnalysisDocument) (*models.MoodAnalysis, []models.GoalCandidate, []models.InsightCandidate, error) {
	mood := models.MoodType(doc.Mood.PrimaryMood)
	if err := mood.Validate(); err != nil {
		return nil, nil, nil, err
	}

	moodAnalysis := &models.MoodAnalysis{
		Mood:                  mood,
		Intensity:             doc.Mood.Intensity,
		EnergyLevel:           doc.Mood.EnergyLevel,
		StressLevel:           doc.Mood.StressLevel,
		DetectedAutomatically: true,
	}

	goals := make([]models.GoalCandidate, 0, len(doc.Goals))
	for _, g := range doc.Goals {
		category := models.GoalCategory(g.Category)
		if err := category.Validate(); err != nil {
			return nil, nil, nil, err
		}
		if strings.TrimSpace(g.Title) == "" {
			return nil, nil, nil, fmt.Errorf("goal candidate missing title")
		}
		goals = append(goals, models.GoalCandidate{
			Title:       g.Title,
			Description: g.Description,
			Category:    category,
			Confidence:  g.Confidence,
		})
	}

	insights, err := convertInsights(doc.Insights)
	if err != nil {
		return nil, nil, nil, err
	}

	return moodAnalysis, goals, insights, nil
}

func convertInsights(raw []remoteInsight) ([]models.InsightCandidate, error) {
	insights := make([]models.InsightCandidate, 0, len(raw))
	for _, in := range raw {
		insightType := models.InsightType(in.Type)
		if err := insightType.Validate(); err != nil {
			return nil, err
		}
		if strings.TrimSpace(in.Title) == "" {
			return nil, fmt.Errorf("insight missing title")
		}
		insights = append(insights, models.InsightCandidate{
			Type:       insightType,
			Title:      in.Title,
			Content:    in.Content,
			Confidence: in.Confidence,
		})
	}
	return insights, nil
}

// fallbackMoodAnalysis scans the keyword table against the lower-cased text.
// Each mood scores the count of its keywords found as substrings; the
// highest score wins with first-at-max tie-break in table order.
func fallbackMoodAnalysis(content string) *models.MoodAnalysis {
	contentLower := strings.ToLower(content)

	bestMood := models.MoodNeutral
	bestScore := 0

	for _, row := range moodKeywords {
		score := 0
		for _, keyword := range row.keywords {
			if strings.Contains(contentLower, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestMood = row.mood
		}
	}

	if bestScore == 0 {
		return &models.MoodAnalysis{
			Mood:                  models.MoodNeutral,
			Intensity:             5.0,
			DetectedAutomatically: true,
		}
	}

	intensity := float64(bestScore*2 + 3)
	if intensity > 10 {
		intensity = 10
	}
	return &models.MoodAnalysis{
		Mood:                  bestMood,
		Intensity:             intensity,
		DetectedAutomatically: true,
	}
}
