package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/quizarena/internal/pkg/apperr"
	"github.com/piresc/quizarena/internal/pkg/database"
	"github.com/piresc/quizarena/internal/pkg/models"
)

const quizColumns = `id, title, description, category, type, status, start_time, end_time,
	entry_fee_coins, reward_coins, question_ids, questions_per_game, question_time_limit,
	allow_lifelines, lifeline_cost, created_by, created_at, updated_at`

const questionColumns = `id, prompt, category, difficulty, time_limit_seconds, choices,
	explanation, tags, is_active, created_by, created_at, updated_at`

// ListLobbyQuizzes returns scheduled and live quizzes starting after since
func (r *QuizRepo) ListLobbyQuizzes(ctx context.Context, since time.Time, limit int) ([]models.Quiz, error) {
	query := `
		SELECT ` + quizColumns + `
		FROM quizzes
		WHERE status IN ('scheduled', 'live') AND start_time >= $1
		ORDER BY start_time ASC
		LIMIT $2
	`

	quizzes := []models.Quiz{}
	if err := database.Executor(ctx, r.db).SelectContext(ctx, &quizzes, query, since, limit); err != nil {
		return nil, fmt.Errorf("failed to list lobby quizzes: %w", err)
	}
	return quizzes, nil
}

// GetQuizByID retrieves a quiz by ID
func (r *QuizRepo) GetQuizByID(ctx context.Context, quizID string) (*models.Quiz, error) {
	var quiz models.Quiz
	err := database.Executor(ctx, r.db).GetContext(ctx, &quiz, `SELECT `+quizColumns+` FROM quizzes WHERE id = $1`, quizID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "Quiz not found")
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	return &quiz, nil
}

// CreateQuiz inserts a quiz
func (r *QuizRepo) CreateQuiz(ctx context.Context, quiz *models.Quiz) error {
	query := `
		INSERT INTO quizzes (
			id, title, description, category, type, status, start_time, end_time,
			entry_fee_coins, reward_coins, question_ids, questions_per_game, question_time_limit,
			allow_lifelines, lifeline_cost, created_by, created_at, updated_at
		) VALUES (
			:id, :title, :description, :category, :type, :status, :start_time, :end_time,
			:entry_fee_coins, :reward_coins, :question_ids, :questions_per_game, :question_time_limit,
			:allow_lifelines, :lifeline_cost, :created_by, :created_at, :updated_at
		)
	`
	if _, err := sqlx.NamedExecContext(ctx, database.Executor(ctx, r.db), query, quiz); err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}
	return nil
}

// UpdateQuizStatus moves a quiz from one status to another.
// It fails with InvalidState when the quiz is no longer in from.
func (r *QuizRepo) UpdateQuizStatus(ctx context.Context, quizID string, from, to models.QuizStatus) error {
	query := `UPDATE quizzes SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`

	result, err := database.Executor(ctx, r.db).ExecContext(ctx, query, quizID, from, to)
	if err != nil {
		return fmt.Errorf("failed to update quiz status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return apperr.New(apperr.InvalidState, "Quiz status changed concurrently")
	}
	return nil
}

// ActivatePendingSessions flips every pending session of a quiz to active
func (r *QuizRepo) ActivatePendingSessions(ctx context.Context, quizID string) (int64, error) {
	query := `
		UPDATE quiz_sessions
		SET status = 'active', updated_at = NOW()
		WHERE quiz_id = $1 AND status = 'pending'
	`

	result, err := database.Executor(ctx, r.db).ExecContext(ctx, query, quizID)
	if err != nil {
		return 0, fmt.Errorf("failed to activate pending sessions: %w", err)
	}
	return result.RowsAffected()
}

// GetQuestionByID retrieves a question by ID
func (r *QuizRepo) GetQuestionByID(ctx context.Context, questionID string) (*models.Question, error) {
	var question models.Question
	err := database.Executor(ctx, r.db).GetContext(ctx, &question, `SELECT `+questionColumns+` FROM questions WHERE id = $1`, questionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "Question not found")
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return &question, nil
}

// ExistingQuestionIDs returns the subset of ids that exist
func (r *QuizRepo) ExistingQuestionIDs(ctx context.Context, questionIDs []string) ([]string, error) {
	ids := []string{}
	err := database.Executor(ctx, r.db).SelectContext(ctx, &ids,
		`SELECT id::text FROM questions WHERE id::text = ANY($1)`, pq.Array(questionIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to look up questions: %w", err)
	}
	return ids, nil
}

// CreateQuestion inserts a question
func (r *QuizRepo) CreateQuestion(ctx context.Context, question *models.Question) error {
	query := `
		INSERT INTO questions (
			id, prompt, category, difficulty, time_limit_seconds, choices,
			explanation, tags, is_active, created_by, created_at, updated_at
		) VALUES (
			:id, :prompt, :category, :difficulty, :time_limit_seconds, :choices,
			:explanation, :tags, :is_active, :created_by, :created_at, :updated_at
		)
	`
	if _, err := sqlx.NamedExecContext(ctx, database.Executor(ctx, r.db), query, question); err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}
