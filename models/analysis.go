package models

// MoodAnalysis is the analyzer's mood signal for one entry.
// Values are emitted as-is; range clamping happens at the persistence boundary.
type MoodAnalysis struct {
	Mood                  MoodType `json:"mood"`
	Intensity             float64  `json:"intensity"`
	EnergyLevel           *float64 `json:"energy_level,omitempty"`
	StressLevel           *float64 `json:"stress_level,omitempty"`
	DetectedAutomatically bool     `json:"detected_automatically"`
}

// GoalCandidate is a goal detected in an entry, pending deduplication
type GoalCandidate struct {
	Title       string       `json:"title"`
	Description *string      `json:"description,omitempty"`
	Category    GoalCategory `json:"category"`
	Confidence  float64      `json:"confidence"`
}

// InsightCandidate is an insight produced by analysis, not yet persisted
type InsightCandidate struct {
	Type       InsightType `json:"type"`
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	Confidence float64     `json:"confidence"`
}

// AnalysisResult is the full structured signal derived from one entry's text
type AnalysisResult struct {
	SentimentScore float64            `json:"sentiment_score"`
	Mood           *MoodAnalysis      `json:"mood_analysis,omitempty"`
	Goals          []GoalCandidate    `json:"goals"`
	Insights       []InsightCandidate `json:"insights"`
	WordCount      int                `json:"word_count"`
	Degraded       bool               `json:"degraded"`
}
