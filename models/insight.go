package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InsightType is a closed set of narrative insight categories
type InsightType string

const (
	InsightMood            InsightType = "mood"
	InsightProductivity    InsightType = "productivity"
	InsightRelationships   InsightType = "relationships"
	InsightGoals           InsightType = "goals"
	InsightEmotionalHealth InsightType = "emotional_health"
	InsightPatterns        InsightType = "patterns"
	InsightRecommendations InsightType = "recommendations"
)

// AllInsightTypes lists every valid insight type
var AllInsightTypes = []InsightType{
	InsightMood, InsightProductivity, InsightRelationships, InsightGoals,
	InsightEmotionalHealth, InsightPatterns, InsightRecommendations,
}

// Validate rejects insight types outside the closed set
func (t InsightType) Validate() error {
	for _, known := range AllInsightTypes {
		if t == known {
			return nil
		}
	}
	return fmt.Errorf("unknown insight type: %q", string(t))
}

// Insight is a narrative observation derived from one journal entry.
// Immutable once created.
type Insight struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	JournalEntryID  uuid.UUID   `json:"journal_entry_id" db:"journal_entry_id"`
	UserID          uuid.UUID   `json:"user_id" db:"user_id"`
	Type            InsightType `json:"type" db:"insight_type"`
	Title           string      `json:"title" db:"title"`
	Content         string      `json:"content" db:"content"`
	ConfidenceScore *float64    `json:"confidence_score,omitempty" db:"confidence_score"`
	SentimentScore  *float64    `json:"sentiment_score,omitempty" db:"sentiment_score"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
}

// Validate enforces type membership and the confidence range
func (i *Insight) Validate() error {
	if err := i.Type.Validate(); err != nil {
		return err
	}
	if i.Title == "" {
		return fmt.Errorf("insight title is required")
	}
	if i.ConfidenceScore != nil && (*i.ConfidenceScore < 0 || *i.ConfidenceScore > 1) {
		return fmt.Errorf("confidence_score %.2f outside [0,1]", *i.ConfidenceScore)
	}
	return nil
}

// InsightTypeBucket is one row of the dashboard insight distribution
type InsightTypeBucket struct {
	Type  InsightType `json:"type" db:"insight_type"`
	Count int         `json:"count" db:"count"`
}
