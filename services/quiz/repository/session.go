package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/quizarena/internal/pkg/apperr"
	"github.com/piresc/quizarena/internal/pkg/database"
	"github.com/piresc/quizarena/internal/pkg/models"
)

const sessionColumns = `id, quiz_id, user_id, status, score, coins_earned, lifelines_used,
	answers, question_order, current_question_index, started_at, completed_at,
	created_at, updated_at`

func (r *QuizRepo) getSession(ctx context.Context, query string, args ...interface{}) (*models.QuizSession, error) {
	var session models.QuizSession
	if err := database.Executor(ctx, r.db).GetContext(ctx, &session, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "Quiz session not found")
		}
		return nil, fmt.Errorf("failed to get quiz session: %w", err)
	}
	return &session, nil
}

// GetSession retrieves the session of a user in a quiz
func (r *QuizRepo) GetSession(ctx context.Context, quizID, userID string) (*models.QuizSession, error) {
	return r.getSession(ctx, `SELECT `+sessionColumns+` FROM quiz_sessions WHERE quiz_id = $1 AND user_id = $2`, quizID, userID)
}

// LockSession retrieves a session and holds its row lock until the transaction ends
func (r *QuizRepo) LockSession(ctx context.Context, sessionID string) (*models.QuizSession, error) {
	return r.getSession(ctx, `SELECT `+sessionColumns+` FROM quiz_sessions WHERE id = $1 FOR UPDATE`, sessionID)
}

// CreateSession inserts a session. A second session for the same quiz and user is a Conflict.
func (r *QuizRepo) CreateSession(ctx context.Context, session *models.QuizSession) error {
	query := `
		INSERT INTO quiz_sessions (
			id, quiz_id, user_id, status, score, coins_earned, lifelines_used,
			answers, question_order, current_question_index, started_at, completed_at,
			created_at, updated_at
		) VALUES (
			:id, :quiz_id, :user_id, :status, :score, :coins_earned, :lifelines_used,
			:answers, :question_order, :current_question_index, :started_at, :completed_at,
			:created_at, :updated_at
		)
	`
	if _, err := sqlx.NamedExecContext(ctx, database.Executor(ctx, r.db), query, session); err != nil {
		if database.IsUniqueViolation(err) {
			return apperr.Wrap(apperr.Conflict, "Quiz session already exists", err)
		}
		return fmt.Errorf("failed to create quiz session: %w", err)
	}
	return nil
}

// UpdateSession writes the mutable progress of a session
func (r *QuizRepo) UpdateSession(ctx context.Context, session *models.QuizSession) error {
	query := `
		UPDATE quiz_sessions
		SET status = :status,
			score = :score,
			coins_earned = :coins_earned,
			lifelines_used = :lifelines_used,
			answers = :answers,
			current_question_index = :current_question_index,
			completed_at = :completed_at,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := sqlx.NamedExecContext(ctx, database.Executor(ctx, r.db), query, session)
	if err != nil {
		return fmt.Errorf("failed to update quiz session: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return apperr.New(apperr.NotFound, "Quiz session not found")
	}
	return nil
}

// CountSessionsSince counts sessions a user created at or after since
func (r *QuizRepo) CountSessionsSince(ctx context.Context, userID string, since time.Time) (int, error) {
	var count int
	err := database.Executor(ctx, r.db).GetContext(ctx, &count,
		`SELECT COUNT(*) FROM quiz_sessions WHERE user_id = $1 AND created_at >= $2`, userID, since)
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return count, nil
}
