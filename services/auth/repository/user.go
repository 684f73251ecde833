package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/quizarena/internal/pkg/apperr"
	"github.com/piresc/quizarena/internal/pkg/database"
	"github.com/piresc/quizarena/internal/pkg/models"
)

const userColumns = `id, email, phone, display_name, coins, referral_code, referred_by,
	daily_streak, last_daily_bonus_at, total_quizzes, wins, streak, best_rank,
	role, created_at, updated_at`

func (r *AuthRepo) getUser(ctx context.Context, query string, args ...interface{}) (*models.User, error) {
	var user models.User
	if err := database.Executor(ctx, r.db).GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "User not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (r *AuthRepo) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return r.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
}

// GetUserByContact retrieves the user registered with an email or phone
func (r *AuthRepo) GetUserByContact(ctx context.Context, contact string) (*models.User, error) {
	return r.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1 OR phone = $1 LIMIT 1`, contact)
}

// ReferralCodeExists reports whether a referral code is taken
func (r *AuthRepo) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := database.Executor(ctx, r.db).GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM users WHERE referral_code = $1)`, code)
	if err != nil {
		return false, fmt.Errorf("failed to check referral code: %w", err)
	}
	return exists, nil
}

// CreateUser inserts a new account
func (r *AuthRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (
			id, email, phone, display_name, coins, referral_code, referred_by,
			role, created_at, updated_at
		) VALUES (
			:id, :email, :phone, :display_name, :coins, :referral_code, :referred_by,
			:role, :created_at, :updated_at
		)
	`
	if _, err := sqlx.NamedExecContext(ctx, database.Executor(ctx, r.db), query, user); err != nil {
		if database.IsUniqueViolation(err) {
			return apperr.Wrap(apperr.Conflict, "User already exists", err)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
