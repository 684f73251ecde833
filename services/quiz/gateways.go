package quiz

import (
	"context"

	"github.com/piresc/quizarena/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/quizarena/services/quiz QuizGW

// QuizGW announces session results outside the process and to quiz rooms
type QuizGW interface {
	PublishSessionCompleted(ctx context.Context, event *models.SessionCompletedEvent) error
	BroadcastLeaderboard(quizID string, entries []models.LeaderboardEntry)
}
