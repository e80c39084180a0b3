package ai

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"mindwell/internal/config"
	"mindwell/models"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLLM returns a canned response or error for every completion
type fakeLLM struct {
	response string
	err      error
	calls    int
}

func (f *fakeLLM) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	f.calls++
	return f.response, f.err
}

func TestFallbackMoodAnalysis(t *testing.T) {
	tests := []struct {
		name              string
		content           string
		expectedMood      models.MoodType
		expectedIntensity float64
	}{
		{
			name:              "No keywords yields neutral",
			content:           "went to the office and wrote some code",
			expectedMood:      models.MoodNeutral,
			expectedIntensity: 5.0,
		},
		{
			name:              "Single keyword",
			content:           "feeling grateful today",
			expectedMood:      models.MoodGrateful,
			expectedIntensity: 5.0,
		},
		{
			name:              "Multiple keywords raise intensity",
			content:           "so anxious and worried, really nervous about tomorrow",
			expectedMood:      models.MoodAnxious,
			expectedIntensity: 9.0,
		},
		{
			name:              "Intensity capped at ten",
			content:           "anxious worried nervous uneasy concerned",
			expectedMood:      models.MoodAnxious,
			expectedIntensity: 10.0,
		},
		{
			name:              "Substring match",
			content:           "unhappy with the result",
			expectedMood:      models.MoodHappy,
			expectedIntensity: 5.0,
		},
		{
			name:              "Tie goes to first mood in table order",
			content:           "happy and calm",
			expectedMood:      models.MoodHappy,
			expectedIntensity: 5.0,
		},
		{
			name:              "Angry and frustrated share a keyword, angry scans first",
			content:           "frustrated with everything",
			expectedMood:      models.MoodAngry,
			expectedIntensity: 5.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fallbackMoodAnalysis(tt.content)
			assert.Equal(t, tt.expectedMood, got.Mood)
			assert.Equal(t, tt.expectedIntensity, got.Intensity)
			assert.True(t, got.DetectedAutomatically)
		})
	}
}

func TestAnalyze_NoClientDegrades(t *testing.T) {
	analyzer := NewEntryAnalyzer(nil, "")
	result := analyzer.Analyze(context.Background(), "feeling calm and peaceful tonight")

	require.NotNil(t, result)
	assert.True(t, result.Degraded)
	require.NotNil(t, result.Mood)
	assert.Equal(t, models.MoodCalm, result.Mood.Mood)
	assert.Empty(t, result.Goals)
	assert.Empty(t, result.Insights)
	assert.Equal(t, 5, result.WordCount)
	assert.Greater(t, result.SentimentScore, 0.0)
}

func TestAnalyze_RemoteSuccess(t *testing.T) {
	client := &fakeLLM{response: `{
		"mood": {"primary_mood": "excited", "intensity": 8, "energy_level": 9},
		"insights": [
			{"type": "productivity", "title": "Shipping momentum", "content": "Finishing the feature built real momentum.", "confidence": 0.85}
		],
		"goals": [
			{"title": "Run a marathon", "category": "health", "confidence": 0.7}
		]
	}`}

	analyzer := NewEntryAnalyzer(client, "analyst")
	result := analyzer.Analyze(context.Background(), "shipped the feature, feeling great")

	assert.False(t, result.Degraded)
	require.NotNil(t, result.Mood)
	assert.Equal(t, models.MoodExcited, result.Mood.Mood)
	assert.Equal(t, 8.0, result.Mood.Intensity)
	require.NotNil(t, result.Mood.EnergyLevel)
	assert.Equal(t, 9.0, *result.Mood.EnergyLevel)
	assert.True(t, result.Mood.DetectedAutomatically)

	require.Len(t, result.Insights, 1)
	assert.Equal(t, models.InsightProductivity, result.Insights[0].Type)

	require.Len(t, result.Goals, 1)
	assert.Equal(t, models.CategoryHealth, result.Goals[0].Category)
}

func TestAnalyze_RemoteFailureDegrades(t *testing.T) {
	client := &fakeLLM{err: errors.New("connection refused")}
	analyzer := NewEntryAnalyzer(client, "analyst")

	result := analyzer.Analyze(context.Background(), "stressed and overwhelmed at work")

	assert.True(t, result.Degraded)
	require.NotNil(t, result.Mood)
	assert.Equal(t, models.MoodStressed, result.Mood.Mood)
	assert.Equal(t, 1, client.calls)
}

func TestAnalyze_UnknownEnumDiscardsWholeDocument(t *testing.T) {
	// A single bad enum anywhere poisons the entire remote result
	client := &fakeLLM{response: `{
		"mood": {"primary_mood": "happy", "intensity": 7},
		"insights": [
			{"type": "observation", "title": "Something", "content": "...", "confidence": 0.9}
		],
		"goals": []
	}`}

	analyzer := NewEntryAnalyzer(client, "analyst")
	result := analyzer.Analyze(context.Background(), "a perfectly ordinary day")

	assert.True(t, result.Degraded)
	require.NotNil(t, result.Mood)
	assert.Equal(t, models.MoodNeutral, result.Mood.Mood)
	assert.Empty(t, result.Insights)
}

func TestAnalyze_MalformedJSONDegrades(t *testing.T) {
	client := &fakeLLM{response: "I'm sorry, I can't produce JSON right now."}
	analyzer := NewEntryAnalyzer(client, "analyst")

	result := analyzer.Analyze(context.Background(), "feeling happy")

	assert.True(t, result.Degraded)
	assert.Equal(t, models.MoodHappy, result.Mood.Mood)
}

func TestAnalyze_MarkdownFencedJSONAccepted(t *testing.T) {
	client := &fakeLLM{response: "```json\n{\"mood\": {\"primary_mood\": \"calm\", \"intensity\": 6}, \"insights\": [], \"goals\": []}\n```"}
	analyzer := NewEntryAnalyzer(client, "analyst")

	result := analyzer.Analyze(context.Background(), "quiet evening")

	assert.False(t, result.Degraded)
	assert.Equal(t, models.MoodCalm, result.Mood.Mood)
}

func TestGenerateWeeklyInsights(t *testing.T) {
	t.Run("No client yields empty", func(t *testing.T) {
		analyzer := NewEntryAnalyzer(nil, "")
		got := analyzer.GenerateWeeklyInsights(context.Background(), []string{"entry one"})
		assert.Empty(t, got)
	})

	t.Run("No entries yields empty without a call", func(t *testing.T) {
		client := &fakeLLM{response: "{}"}
		analyzer := NewEntryAnalyzer(client, "analyst")
		got := analyzer.GenerateWeeklyInsights(context.Background(), nil)
		assert.Empty(t, got)
		assert.Equal(t, 0, client.calls)
	})

	t.Run("Backend failure yields empty", func(t *testing.T) {
		client := &fakeLLM{err: errors.New("timeout")}
		analyzer := NewEntryAnalyzer(client, "analyst")
		got := analyzer.GenerateWeeklyInsights(context.Background(), []string{"entry one", "entry two"})
		assert.Empty(t, got)
	})

	t.Run("Valid pair converts", func(t *testing.T) {
		client := &fakeLLM{response: `{"insights": [
			{"type": "patterns", "title": "Morning writing", "content": "Entries cluster before 9am.", "confidence": 0.8},
			{"type": "recommendations", "title": "Protect mornings", "content": "Keep the early slot free.", "confidence": 0.75}
		]}`}
		analyzer := NewEntryAnalyzer(client, "analyst")
		got := analyzer.GenerateWeeklyInsights(context.Background(), []string{"entry one", "entry two"})
		require.Len(t, got, 2)
		assert.Equal(t, models.InsightPatterns, got[0].Type)
		assert.Equal(t, models.InsightRecommendations, got[1].Type)
	})
}

// TestLiveEntryAnalysis performs a live fire test against the real backend.
// Requires OPENAI_API_KEY; skipped otherwise.
func TestLiveEntryAnalysis(t *testing.T) {
	if err := godotenv.Load("../.env"); err != nil {
		_ = godotenv.Load(".env")
	}
	if os.Getenv("OPENAI_API_KEY") == "" {
		t.Skip("OPENAI_API_KEY not set, skipping live test")
	}

	cfg := config.AIConfig{
		APIKey:    os.Getenv("OPENAI_API_KEY"),
		Model:     "gpt-4o-mini",
		BaseURL:   "https://api.openai.com/v1",
		MaxTokens: 2000,
		Timeout:   30 * time.Second,
	}
	analyzer := NewEntryAnalyzer(NewOpenAIClient(cfg), "You are an expert journal analyst.")

	result := analyzer.Analyze(context.Background(),
		"Finished my first 10k run today. Exhausted but proud, and I want to sign up for a half marathon next.")

	require.NotNil(t, result)
	if result.Degraded {
		t.Fatal("live analysis degraded to fallback")
	}
	require.NotNil(t, result.Mood)
	t.Logf("mood=%s intensity=%.1f insights=%d goals=%d",
		result.Mood.Mood, result.Mood.Intensity, len(result.Insights), len(result.Goals))
}
