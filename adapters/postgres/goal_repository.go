package postgres

import (
	"context"

	"mindwell/models"
	"mindwell/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// GoalRepositoryImpl implements GoalRepository for PostgreSQL
type GoalRepositoryImpl struct {
	db *sqlx.DB
}

// NewGoalRepository creates a new PostgreSQL goal repository
func NewGoalRepository(db *sqlx.DB) ports.GoalRepository {
	return &GoalRepositoryImpl{db: db}
}

// Create persists a new goal
func (r *GoalRepositoryImpl) Create(ctx context.Context, goal *models.Goal) error {
	_, err := extFrom(ctx, r.db).ExecContext(ctx, `
		INSERT INTO goals (id, user_id, title, description, category, status, progress_percentage, target_date, is_recurring, detected_from_journal, created_at, updated_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, goal.ID, goal.UserID, goal.Title, goal.Description, goal.Category, goal.Status,
		goal.ProgressPercentage, goal.TargetDate, goal.IsRecurring, goal.DetectedFromJournal,
		goal.CreatedAt, goal.UpdatedAt, goal.CompletedAt)
	return err
}

// GetByID retrieves a goal owned by the given account
func (r *GoalRepositoryImpl) GetByID(ctx context.Context, userID, goalID uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	err := sqlx.GetContext(ctx, extFrom(ctx, r.db), &goal, `
		SELECT id, user_id, title, description, category, status, progress_percentage, target_date, is_recurring, detected_from_journal, created_at, updated_at, completed_at
		FROM goals
		WHERE user_id = $1 AND id = $2
	`, userID, goalID)
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// List returns all goals for the account, newest-first
func (r *GoalRepositoryImpl) List(ctx context.Context, userID uuid.UUID) ([]models.Goal, error) {
	goals := []models.Goal{}
	err := sqlx.SelectContext(ctx, extFrom(ctx, r.db), &goals, `
		SELECT id, user_id, title, description, category, status, progress_percentage, target_date, is_recurring, detected_from_journal, created_at, updated_at, completed_at
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	return goals, err
}

// Update persists changed goal fields
func (r *GoalRepositoryImpl) Update(ctx context.Context, goal *models.Goal) error {
	_, err := extFrom(ctx, r.db).ExecContext(ctx, `
		UPDATE goals
		SET title = $3, description = $4, category = $5, status = $6, progress_percentage = $7,
		    target_date = $8, is_recurring = $9, updated_at = $10, completed_at = $11
		WHERE user_id = $1 AND id = $2
	`, goal.UserID, goal.ID, goal.Title, goal.Description, goal.Category, goal.Status,
		goal.ProgressPercentage, goal.TargetDate, goal.IsRecurring, goal.UpdatedAt, goal.CompletedAt)
	return err
}

// Delete removes a goal, returning the number of rows removed
func (r *GoalRepositoryImpl) Delete(ctx context.Context, userID, goalID uuid.UUID) (int64, error) {
	res, err := extFrom(ctx, r.db).ExecContext(ctx, `
		DELETE FROM goals
		WHERE user_id = $1 AND id = $2
	`, userID, goalID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// StatusDistribution groups ALL of the account's goals by status
func (r *GoalRepositoryImpl) StatusDistribution(ctx context.Context, userID uuid.UUID) ([]models.GoalStatusBucket, error) {
	buckets := []models.GoalStatusBucket{}
	err := sqlx.SelectContext(ctx, extFrom(ctx, r.db), &buckets, `
		SELECT status, COUNT(*) AS count
		FROM goals
		WHERE user_id = $1
		GROUP BY status
	`, userID)
	return buckets, err
}
