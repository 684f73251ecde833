package quiz

import (
	"context"

	"github.com/piresc/quizarena/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/quizarena/services/quiz QuizUC

// QuizUC runs the lobby, sessions and admin authoring
type QuizUC interface {
	ListLobbyQuizzes(ctx context.Context) ([]models.QuizSummary, error)
	GetLobby(ctx context.Context, quizID string) (*models.QuizLobby, error)
	Join(ctx context.Context, quizID, userID string) (*models.JoinResult, error)
	SubmitAnswer(ctx context.Context, req models.SubmitAnswerRequest, userID string) (*models.SubmitAnswerResult, error)
	UseLifeline(ctx context.Context, sessionID, userID string) (*models.LifelineResult, error)
	CountFreeEntriesForToday(ctx context.Context, userID string) (*models.FreeEntryUsage, error)
	Leaderboard(ctx context.Context, quizID string, limit int) ([]models.LeaderboardEntry, error)
	RecordBestRank(ctx context.Context, event *models.SessionCompletedEvent) error

	CreateQuestion(ctx context.Context, adminID string, req models.CreateQuestionRequest) (*models.Question, error)
	CreateQuiz(ctx context.Context, adminID string, req models.CreateQuizRequest) (*models.Quiz, error)
	UpdateQuizStatus(ctx context.Context, quizID string, status models.QuizStatus) (*models.Quiz, error)
}
