package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/quizarena/internal/pkg/apperr"
	"github.com/piresc/quizarena/internal/pkg/constants"
	"github.com/piresc/quizarena/internal/pkg/models"
	"github.com/piresc/quizarena/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLobbyQuizzes(t *testing.T) {
	f := newQuizFixture(t)
	quiz := newQuiz(models.QuizStatusScheduled, 20, 220, "q1", "q2", "q3")
	quiz.QuestionsPerGame = 2

	f.repo.EXPECT().ListLobbyQuizzes(gomock.Any(), fixedNow.Add(-constants.LobbyLookback), constants.LobbyListLimit).
		Return([]models.Quiz{*quiz}, nil)

	summaries, err := f.uc.ListLobbyQuizzes(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, quiz.ID, summaries[0].ID)
	assert.Equal(t, 2, summaries[0].TotalQuestions)
}

func TestListLobbyQuizzes_Empty(t *testing.T) {
	f := newQuizFixture(t)
	f.repo.EXPECT().ListLobbyQuizzes(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.Quiz{}, nil)

	summaries, err := f.uc.ListLobbyQuizzes(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

func TestGetLobby(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		f := newQuizFixture(t)
		quiz := newQuiz(models.QuizStatusLive, 0, 100, "q1", "q2")
		f.repo.EXPECT().GetQuizByID(gomock.Any(), quiz.ID).Return(quiz, nil)

		lobby, err := f.uc.GetLobby(context.Background(), quiz.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, lobby.QuestionCount)
		assert.Equal(t, quiz.QuizSettings, lobby.Settings)
	})

	t.Run("Malformed id", func(t *testing.T) {
		f := newQuizFixture(t)

		_, err := f.uc.GetLobby(context.Background(), "not-a-quiz")
		assert.True(t, apperr.Is(err, apperr.NotFound))
	})
}

func TestCountFreeEntriesForToday(t *testing.T) {
	testCases := []struct {
		name          string
		count         int
		wantRemaining int
	}{
		{name: "None used", count: 0, wantRemaining: 3},
		{name: "Some used", count: 2, wantRemaining: 1},
		{name: "Over the allowance", count: 5, wantRemaining: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newQuizFixture(t)
			f.repo.EXPECT().CountSessionsSince(gomock.Any(), "user-1", utils.StartOfDay(fixedNow)).Return(tc.count, nil)

			usage, err := f.uc.CountFreeEntriesForToday(context.Background(), "user-1")
			require.NoError(t, err)
			assert.Equal(t, tc.count, usage.Count)
			assert.Equal(t, tc.wantRemaining, usage.Remaining)
		})
	}
}

func TestLeaderboard(t *testing.T) {
	testCases := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "Default", limit: 0, wantLimit: constants.LeaderboardLimit},
		{name: "Explicit", limit: 5, wantLimit: 5},
		{name: "Clamped", limit: 1000, wantLimit: constants.MaxLeaderboardTop},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newQuizFixture(t)
			quiz := newQuiz(models.QuizStatusLive, 0, 0, "q1")
			entries := []models.LeaderboardEntry{{Rank: 1, UserID: "user-1", DisplayName: "ana", Score: 35}}

			f.repo.EXPECT().GetQuizByID(gomock.Any(), quiz.ID).Return(quiz, nil)
			f.leaderboard.EXPECT().Top(gomock.Any(), quiz.ID, tc.wantLimit).Return(entries, nil)

			got, err := f.uc.Leaderboard(context.Background(), quiz.ID, tc.limit)
			require.NoError(t, err)
			assert.Equal(t, entries, got)
		})
	}
}

func TestRecordBestRank(t *testing.T) {
	event := &models.SessionCompletedEvent{QuizID: "quiz-1", UserID: "user-1"}

	t.Run("Ranked", func(t *testing.T) {
		f := newQuizFixture(t)
		f.leaderboard.EXPECT().Rank(gomock.Any(), "quiz-1", "user-1").Return(2, nil)
		f.repo.EXPECT().UpdateBestRank(gomock.Any(), "user-1", 2).Return(nil)

		require.NoError(t, f.uc.RecordBestRank(context.Background(), event))
	})

	t.Run("Unranked", func(t *testing.T) {
		f := newQuizFixture(t)
		f.leaderboard.EXPECT().Rank(gomock.Any(), "quiz-1", "user-1").Return(0, nil)

		require.NoError(t, f.uc.RecordBestRank(context.Background(), event))
	})

	t.Run("Redis down", func(t *testing.T) {
		f := newQuizFixture(t)
		f.leaderboard.EXPECT().Rank(gomock.Any(), "quiz-1", "user-1").Return(0, errors.New("connection refused"))

		assert.Error(t, f.uc.RecordBestRank(context.Background(), event))
	})
}
