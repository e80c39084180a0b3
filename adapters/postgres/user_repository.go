package postgres

import (
	"context"
	"database/sql"
	"errors"

	"mindwell/models"
	"mindwell/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var demoUserID = uuid.MustParse("7a0c2f4e-91d3-4b58-8a6f-2f1e9c03b7d4")

// UserRepositoryImpl implements UserRepository for PostgreSQL
type UserRepositoryImpl struct {
	db *sqlx.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sqlx.DB) ports.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// GetOrCreateDemoUser gets the demo account or creates it if it doesn't exist
func (r *UserRepositoryImpl) GetOrCreateDemoUser(ctx context.Context) (*models.User, error) {
	var user models.User
	err := sqlx.GetContext(ctx, extFrom(ctx, r.db), &user, `
		SELECT id, email, name, created_at, updated_at
		FROM users
		WHERE id = $1
	`, demoUserID)

	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	user = models.User{
		ID:    demoUserID,
		Email: "demo@mindwell.local",
		Name:  "Demo User",
	}

	_, err = extFrom(ctx, r.db).ExecContext(ctx, `
		INSERT INTO users (id, email, name, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
	`, user.ID, user.Email, user.Name)

	if err != nil {
		// Another process may have created the demo account concurrently
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			return r.GetUserByID(ctx, demoUserID)
		}
		return nil, err
	}

	return r.GetUserByID(ctx, demoUserID)
}

// GetUserByID retrieves an account by its ID
func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := sqlx.GetContext(ctx, extFrom(ctx, r.db), &user, `
		SELECT id, email, name, created_at, updated_at
		FROM users
		WHERE id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
