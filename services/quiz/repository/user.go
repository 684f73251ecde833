package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/piresc/quizarena/internal/pkg/apperr"
	"github.com/piresc/quizarena/internal/pkg/database"
)

// GetDisplayName returns the display name of a user
func (r *QuizRepo) GetDisplayName(ctx context.Context, userID string) (string, error) {
	var name string
	err := database.Executor(ctx, r.db).GetContext(ctx, &name, `SELECT display_name FROM users WHERE id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperr.New(apperr.NotFound, "User not found")
		}
		return "", fmt.Errorf("failed to get display name: %w", err)
	}
	return name, nil
}

// IncrementTotalQuizzes counts one more completed quiz for a user
func (r *QuizRepo) IncrementTotalQuizzes(ctx context.Context, userID string) error {
	_, err := database.Executor(ctx, r.db).ExecContext(ctx,
		`UPDATE users SET total_quizzes = total_quizzes + 1, updated_at = NOW() WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to increment total quizzes: %w", err)
	}
	return nil
}

// UpdateBestRank lowers best_rank to rank when it improves on the stored one
func (r *QuizRepo) UpdateBestRank(ctx context.Context, userID string, rank int) error {
	query := `
		UPDATE users
		SET best_rank = $2, updated_at = NOW()
		WHERE id = $1 AND (best_rank IS NULL OR best_rank > $2)
	`
	if _, err := database.Executor(ctx, r.db).ExecContext(ctx, query, userID, rank); err != nil {
		return fmt.Errorf("failed to update best rank: %w", err)
	}
	return nil
}
