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

// GoalService manages manually created and journal-detected goals
type GoalService struct {
	goals ports.GoalRepository
	now   func() time.Time
}

// NewGoalService creates a goal service
func NewGoalService(goals ports.GoalRepository) *GoalService {
	return &GoalService{goals: goals, now: time.Now}
}

// CreateGoal stores a manually created goal
func (s *GoalService) CreateGoal(ctx context.Context, userID uuid.UUID, req models.GoalCreate) (*models.Goal, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, errors.InvalidInput("title is required")
	}

	now := s.now()
	goal := &models.Goal{
		ID:                  uuid.New(),
		UserID:              userID,
		Title:               req.Title,
		Description:         req.Description,
		Category:            req.Category,
		Status:              models.GoalNotStarted,
		TargetDate:          req.TargetDate,
		DetectedFromJournal: false,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := goal.Validate(); err != nil {
		return nil, errors.ValidationError(err.Error())
	}
	if err := s.goals.Create(ctx, goal); err != nil {
		return nil, errors.DatabaseError("failed to create goal", err)
	}
	return goal, nil
}

// GetGoal retrieves one goal owned by the account
func (s *GoalService) GetGoal(ctx context.Context, userID, goalID uuid.UUID) (*models.Goal, error) {
	goal, err := s.goals.GetByID(ctx, userID, goalID)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFound("goal")
		}
		return nil, errors.DatabaseError("failed to get goal", err)
	}
	return goal, nil
}

// ListGoals returns every goal for the account, newest-first
func (s *GoalService) ListGoals(ctx context.Context, userID uuid.UUID) (*models.GoalList, error) {
	goals, err := s.goals.List(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("failed to list goals", err)
	}
	return &models.GoalList{Goals: goals, Total: len(goals)}, nil
}

// UpdateGoal applies only the provided fields. Moving a goal into the
// completed status stamps the completion time; moving it out clears it.
func (s *GoalService) UpdateGoal(ctx context.Context, userID, goalID uuid.UUID, update models.GoalUpdate) (*models.Goal, error) {
	current, err := s.GetGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	merged := models.ApplyGoalUpdate(*current, update, now)
	merged.UpdatedAt = now
	if err := merged.Validate(); err != nil {
		return nil, errors.ValidationError(err.Error())
	}
	if err := s.goals.Update(ctx, &merged); err != nil {
		return nil, errors.DatabaseError("failed to update goal", err)
	}
	return &merged, nil
}

// DeleteGoal removes a goal
func (s *GoalService) DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error {
	affected, err := s.goals.Delete(ctx, userID, goalID)
	if err != nil {
		return errors.DatabaseError("failed to delete goal", err)
	}
	if affected == 0 {
		return errors.NotFound("goal")
	}
	return nil
}
