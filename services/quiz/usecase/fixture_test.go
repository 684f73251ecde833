package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	dbmocks "github.com/piresc/quizarena/internal/pkg/database/mocks"
	"github.com/piresc/quizarena/internal/pkg/models"
	"github.com/piresc/quizarena/services/quiz/mocks"
	walletmocks "github.com/piresc/quizarena/services/wallet/mocks"
)

var fixedNow = time.Date(2024, 5, 20, 9, 30, 0, 0, time.Local)

type quizFixture struct {
	uc          *QuizUC
	repo        *mocks.MockQuizRepo
	leaderboard *mocks.MockLeaderboardRepo
	gw          *mocks.MockQuizGW
	walletUC    *walletmocks.MockWalletUC
}

func newQuizFixture(t *testing.T) *quizFixture {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockQuizRepo(ctrl)
	leaderboard := mocks.NewMockLeaderboardRepo(ctrl)
	gw := mocks.NewMockQuizGW(ctrl)
	walletUC := walletmocks.NewMockWalletUC(ctrl)
	tx := dbmocks.NewMockTransactor(ctrl)
	tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }).
		AnyTimes()

	uc := NewQuizUC(repo, leaderboard, gw, walletUC, tx)
	uc.now = func() time.Time { return fixedNow }
	uc.shuffle = func([]string) {}

	return &quizFixture{uc: uc, repo: repo, leaderboard: leaderboard, gw: gw, walletUC: walletUC}
}

func newQuiz(status models.QuizStatus, fee, reward int64, questionIDs ...string) *models.Quiz {
	return &models.Quiz{
		ID:            uuid.NewString(),
		Title:         "Morning trivia",
		Type:          models.QuizTypeLive,
		Status:        status,
		StartTime:     fixedNow,
		EntryFeeCoins: fee,
		RewardCoins:   reward,
		QuestionIDs:   pq.StringArray(questionIDs),
		QuizSettings: models.QuizSettings{
			QuestionsPerGame:  len(questionIDs),
			QuestionTimeLimit: 10,
			AllowLifelines:    true,
		},
	}
}

func newQuestion(id string) *models.Question {
	return &models.Question{
		ID:               id,
		Prompt:           "Prompt " + id,
		Category:         "general",
		Difficulty:       models.DifficultyEasy,
		TimeLimitSeconds: 10,
		Choices: models.Choices{
			{ID: "a", Text: "wrong"},
			{ID: "b", Text: "right", IsCorrect: true},
		},
	}
}

func newSession(quizID, userID string, order ...string) *models.QuizSession {
	return &models.QuizSession{
		ID:            uuid.NewString(),
		QuizID:        quizID,
		UserID:        userID,
		Status:        models.SessionStatusActive,
		Answers:       models.Answers{},
		QuestionOrder: pq.StringArray(order),
	}
}
