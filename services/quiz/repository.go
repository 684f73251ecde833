package quiz

import (
	"context"
	"time"

	"github.com/piresc/quizarena/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/quizarena/services/quiz QuizRepo,LeaderboardRepo

// QuizRepo persists quizzes, questions and sessions
type QuizRepo interface {
	ListLobbyQuizzes(ctx context.Context, since time.Time, limit int) ([]models.Quiz, error)
	GetQuizByID(ctx context.Context, quizID string) (*models.Quiz, error)
	CreateQuiz(ctx context.Context, quiz *models.Quiz) error
	UpdateQuizStatus(ctx context.Context, quizID string, from, to models.QuizStatus) error
	ActivatePendingSessions(ctx context.Context, quizID string) (int64, error)

	GetQuestionByID(ctx context.Context, questionID string) (*models.Question, error)
	ExistingQuestionIDs(ctx context.Context, questionIDs []string) ([]string, error)
	CreateQuestion(ctx context.Context, question *models.Question) error

	GetSession(ctx context.Context, quizID, userID string) (*models.QuizSession, error)
	LockSession(ctx context.Context, sessionID string) (*models.QuizSession, error)
	CreateSession(ctx context.Context, session *models.QuizSession) error
	UpdateSession(ctx context.Context, session *models.QuizSession) error
	CountSessionsSince(ctx context.Context, userID string, since time.Time) (int, error)

	GetDisplayName(ctx context.Context, userID string) (string, error)
	IncrementTotalQuizzes(ctx context.Context, userID string) error
	UpdateBestRank(ctx context.Context, userID string, rank int) error
}

// LeaderboardRepo keeps per-quiz rankings of completed sessions
type LeaderboardRepo interface {
	RecordScore(ctx context.Context, quizID, userID, displayName string, score int) error
	Top(ctx context.Context, quizID string, limit int) ([]models.LeaderboardEntry, error)
	Rank(ctx context.Context, quizID, userID string) (int, error)
}
