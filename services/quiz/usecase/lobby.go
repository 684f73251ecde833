package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/quizarena/internal/pkg/apperr"
	"github.com/piresc/quizarena/internal/pkg/constants"
	"github.com/piresc/quizarena/internal/pkg/models"
	"github.com/piresc/quizarena/internal/utils"
)

// isID reports whether id can name a row. Anything else cannot exist.
func isID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// ListLobbyQuizzes returns upcoming and running quizzes, soonest first
func (u *QuizUC) ListLobbyQuizzes(ctx context.Context) ([]models.QuizSummary, error) {
	quizzes, err := u.quizRepo.ListLobbyQuizzes(ctx, u.now().Add(-constants.LobbyLookback), constants.LobbyListLimit)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.QuizSummary, 0, len(quizzes))
	for i := range quizzes {
		summaries = append(summaries, quizzes[i].Summary())
	}
	return summaries, nil
}

// GetLobby returns the public detail of a quiz
func (u *QuizUC) GetLobby(ctx context.Context, quizID string) (*models.QuizLobby, error) {
	quiz, err := u.getQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	return quiz.Lobby(), nil
}

func (u *QuizUC) getQuiz(ctx context.Context, quizID string) (*models.Quiz, error) {
	if !isID(quizID) {
		return nil, apperr.New(apperr.NotFound, "Quiz not found")
	}
	return u.quizRepo.GetQuizByID(ctx, quizID)
}

// CountFreeEntriesForToday counts sessions the user started since local midnight
func (u *QuizUC) CountFreeEntriesForToday(ctx context.Context, userID string) (*models.FreeEntryUsage, error) {
	count, err := u.quizRepo.CountSessionsSince(ctx, userID, utils.StartOfDay(u.now()))
	if err != nil {
		return nil, fmt.Errorf("failed to count free entries: %w", err)
	}

	remaining := constants.FreeEntriesPerDay - count
	if remaining < 0 {
		remaining = 0
	}
	return &models.FreeEntryUsage{Count: count, Remaining: remaining}, nil
}

// Leaderboard returns the best completed scores of a quiz
func (u *QuizUC) Leaderboard(ctx context.Context, quizID string, limit int) ([]models.LeaderboardEntry, error) {
	if _, err := u.getQuiz(ctx, quizID); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = constants.LeaderboardLimit
	case limit > constants.MaxLeaderboardTop:
		limit = constants.MaxLeaderboardTop
	}
	return u.leaderboardRepo.Top(ctx, quizID, limit)
}

// RecordBestRank stores the finishing position of a completed session when
// it beats the player's previous best
func (u *QuizUC) RecordBestRank(ctx context.Context, event *models.SessionCompletedEvent) error {
	rank, err := u.leaderboardRepo.Rank(ctx, event.QuizID, event.UserID)
	if err != nil {
		return err
	}
	if rank == 0 {
		return nil
	}
	return u.quizRepo.UpdateBestRank(ctx, event.UserID, rank)
}
