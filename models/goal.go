package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GoalStatus is a closed set of goal lifecycle states
type GoalStatus string

const (
	GoalNotStarted GoalStatus = "not_started"
	GoalInProgress GoalStatus = "in_progress"
	GoalCompleted  GoalStatus = "completed"
	GoalPaused     GoalStatus = "paused"
	GoalAbandoned  GoalStatus = "abandoned"
)

// AllGoalStatuses lists every valid goal status
var AllGoalStatuses = []GoalStatus{
	GoalNotStarted, GoalInProgress, GoalCompleted, GoalPaused, GoalAbandoned,
}

// Validate rejects statuses outside the closed set
func (s GoalStatus) Validate() error {
	for _, known := range AllGoalStatuses {
		if s == known {
			return nil
		}
	}
	return fmt.Errorf("unknown goal status: %q", string(s))
}

// GoalCategory is a closed set of goal categories
type GoalCategory string

const (
	CategoryHealth              GoalCategory = "health"
	CategoryCareer              GoalCategory = "career"
	CategoryRelationships       GoalCategory = "relationships"
	CategoryPersonalDevelopment GoalCategory = "personal_development"
	CategoryFinance             GoalCategory = "finance"
	CategoryEducation           GoalCategory = "education"
	CategoryHobby               GoalCategory = "hobby"
	CategoryTravel              GoalCategory = "travel"
	CategoryOther               GoalCategory = "other"
)

// AllGoalCategories lists every valid goal category
var AllGoalCategories = []GoalCategory{
	CategoryHealth, CategoryCareer, CategoryRelationships,
	CategoryPersonalDevelopment, CategoryFinance, CategoryEducation,
	CategoryHobby, CategoryTravel, CategoryOther,
}

// Validate rejects categories outside the closed set
func (c GoalCategory) Validate() error {
	for _, known := range AllGoalCategories {
		if c == known {
			return nil
		}
	}
	return fmt.Errorf("unknown goal category: %q", string(c))
}

// Goal is account-scoped; it carries no reference to any single journal entry
type Goal struct {
	ID                  uuid.UUID    `json:"id" db:"id"`
	UserID              uuid.UUID    `json:"user_id" db:"user_id"`
	Title               string       `json:"title" db:"title"`
	Description         *string      `json:"description,omitempty" db:"description"`
	Category            GoalCategory `json:"category" db:"category"`
	Status              GoalStatus   `json:"status" db:"status"`
	ProgressPercentage  float64      `json:"progress_percentage" db:"progress_percentage"`
	TargetDate          *time.Time   `json:"target_date,omitempty" db:"target_date"`
	IsRecurring         bool         `json:"is_recurring" db:"is_recurring"`
	DetectedFromJournal bool         `json:"detected_from_journal" db:"detected_from_journal"`
	CreatedAt           time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at" db:"updated_at"`
	CompletedAt         *time.Time   `json:"completed_at,omitempty" db:"completed_at"`
}

// Validate enforces enum membership and the progress range
func (g *Goal) Validate() error {
	if g.Title == "" {
		return fmt.Errorf("goal title is required")
	}
	if err := g.Category.Validate(); err != nil {
		return err
	}
	if err := g.Status.Validate(); err != nil {
		return err
	}
	if g.ProgressPercentage < 0 || g.ProgressPercentage > 100 {
		return fmt.Errorf("progress_percentage %.2f outside [0,100]", g.ProgressPercentage)
	}
	return nil
}

// GoalCreate defines inputs for a user-created goal
type GoalCreate struct {
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Category    GoalCategory `json:"category"`
	TargetDate  *time.Time   `json:"target_date"`
	IsRecurring bool         `json:"is_recurring"`
}

// GoalUpdate is a partial update; nil fields are left untouched
type GoalUpdate struct {
	Title              *string       `json:"title"`
	Description        *string       `json:"description"`
	Category           *GoalCategory `json:"category"`
	Status             *GoalStatus   `json:"status"`
	ProgressPercentage *float64      `json:"progress_percentage"`
	TargetDate         *time.Time    `json:"target_date"`
	IsRecurring        *bool         `json:"is_recurring"`
}

// GoalList wraps goals with a total for the caller
type GoalList struct {
	Goals []Goal `json:"goals"`
	Total int    `json:"total"`
}

// GoalStatusBucket is one row of the goal status distribution
type GoalStatusBucket struct {
	Status GoalStatus `json:"status" db:"status"`
	Count  int        `json:"count" db:"count"`
}

// ApplyGoalUpdate merges an update into a goal, returning the new state.
// Moving into completed stamps CompletedAt at now; moving out clears it.
func ApplyGoalUpdate(goal Goal, update GoalUpdate, now time.Time) Goal {
	if update.Title != nil {
		goal.Title = *update.Title
	}
	if update.Description != nil {
		goal.Description = update.Description
	}
	if update.Category != nil {
		goal.Category = *update.Category
	}
	if update.Status != nil && *update.Status != goal.Status {
		if *update.Status == GoalCompleted {
			completed := now
			goal.CompletedAt = &completed
		} else if goal.Status == GoalCompleted {
			goal.CompletedAt = nil
		}
		goal.Status = *update.Status
	}
	if update.ProgressPercentage != nil {
		goal.ProgressPercentage = *update.ProgressPercentage
	}
	if update.TargetDate != nil {
		goal.TargetDate = update.TargetDate
	}
	if update.IsRecurring != nil {
		goal.IsRecurring = *update.IsRecurring
	}
	return goal
}
