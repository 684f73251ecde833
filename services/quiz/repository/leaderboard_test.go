package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/piresc/quizarena/internal/pkg/database"
	"github.com/piresc/quizarena/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLeaderboardTest(t *testing.T) (*LeaderboardRepo, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client, err := database.NewRedisClient(models.RedisConfig{URL: "redis://" + mr.Addr() + "/0"})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return NewLeaderboardRepo(client), mr
}

func TestLeaderboard_RecordAndTop(t *testing.T) {
	repo, mr := setupLeaderboardTest(t)
	ctx := context.Background()

	require.NoError(t, repo.RecordScore(ctx, "quiz-1", "user-a", "Ana", 35))
	require.NoError(t, repo.RecordScore(ctx, "quiz-1", "user-b", "Bo", 50))
	require.NoError(t, repo.RecordScore(ctx, "quiz-1", "user-c", "Cy", 10))
	require.NoError(t, repo.RecordScore(ctx, "quiz-2", "user-a", "Ana", 99))

	top, err := repo.Top(ctx, "quiz-1", 2)
	require.NoError(t, err)
	assert.Equal(t, []models.LeaderboardEntry{
		{Rank: 1, UserID: "user-b", DisplayName: "Bo", Score: 50},
		{Rank: 2, UserID: "user-a", DisplayName: "Ana", Score: 35},
	}, top)

	assert.Equal(t, LeaderboardTTL, mr.TTL("quiz:leaderboard:quiz-1"))
	assert.Equal(t, LeaderboardTTL, mr.TTL("quiz:leaderboard:names:quiz-1"))
}

func TestLeaderboard_Empty(t *testing.T) {
	repo, _ := setupLeaderboardTest(t)

	top, err := repo.Top(context.Background(), "quiz-1", 10)
	require.NoError(t, err)
	assert.NotNil(t, top)
	assert.Empty(t, top)
}

func TestLeaderboard_Rank(t *testing.T) {
	repo, _ := setupLeaderboardTest(t)
	ctx := context.Background()

	require.NoError(t, repo.RecordScore(ctx, "quiz-1", "user-a", "Ana", 35))
	require.NoError(t, repo.RecordScore(ctx, "quiz-1", "user-b", "Bo", 50))

	rank, err := repo.Rank(ctx, "quiz-1", "user-a")
	require.NoError(t, err)
	assert.Equal(t, 2, rank)

	rank, err = repo.Rank(ctx, "quiz-1", "ghost")
	require.NoError(t, err)
	assert.Equal(t, 0, rank)
}

func TestLeaderboard_Unavailable(t *testing.T) {
	repo, mr := setupLeaderboardTest(t)
	mr.Close()

	_, err := repo.Top(context.Background(), "quiz-1", 10)
	assert.ErrorContains(t, err, "failed to read leaderboard")
}
