package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/quizarena/internal/pkg/constants"
	"github.com/piresc/quizarena/internal/pkg/models"
)

// LeaderboardTTL bounds how long a finished quiz keeps its ranking
const LeaderboardTTL = 7 * 24 * time.Hour

// RecordScore stores the final score of a completed session
func (r *LeaderboardRepo) RecordScore(ctx context.Context, quizID, userID, displayName string, score int) error {
	boardKey := fmt.Sprintf(constants.KeyQuizLeaderboard, quizID)
	namesKey := fmt.Sprintf(constants.KeyQuizLeaderboardNames, quizID)

	if err := r.redisClient.ZAdd(ctx, boardKey, float64(score), userID); err != nil {
		return fmt.Errorf("failed to record leaderboard score: %w", err)
	}
	if err := r.redisClient.HSet(ctx, namesKey, userID, displayName); err != nil {
		return fmt.Errorf("failed to record leaderboard name: %w", err)
	}

	for _, key := range []string{boardKey, namesKey} {
		if err := r.redisClient.Expire(ctx, key, LeaderboardTTL); err != nil {
			return fmt.Errorf("failed to set leaderboard TTL: %w", err)
		}
	}
	return nil
}

// Top returns the best limit scores of a quiz, highest first
func (r *LeaderboardRepo) Top(ctx context.Context, quizID string, limit int) ([]models.LeaderboardEntry, error) {
	boardKey := fmt.Sprintf(constants.KeyQuizLeaderboard, quizID)

	ranked, err := r.redisClient.ZRevRangeWithScores(ctx, boardKey, 0, int64(limit-1))
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	entries := make([]models.LeaderboardEntry, 0, len(ranked))
	if len(ranked) == 0 {
		return entries, nil
	}

	userIDs := make([]string, len(ranked))
	for i, z := range ranked {
		userIDs[i], _ = z.Member.(string)
	}

	names, err := r.redisClient.HMGet(ctx, fmt.Sprintf(constants.KeyQuizLeaderboardNames, quizID), userIDs...)
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard names: %w", err)
	}

	for i, z := range ranked {
		entries = append(entries, models.LeaderboardEntry{
			Rank:        i + 1,
			UserID:      userIDs[i],
			DisplayName: names[i],
			Score:       int(z.Score),
		})
	}
	return entries, nil
}

// Rank returns the 1-based position of a user, or 0 when unranked
func (r *LeaderboardRepo) Rank(ctx context.Context, quizID, userID string) (int, error) {
	rank, ok, err := r.redisClient.ZRevRank(ctx, fmt.Sprintf(constants.KeyQuizLeaderboard, quizID), userID)
	if err != nil {
		return 0, fmt.Errorf("failed to read leaderboard rank: %w", err)
	}
	if !ok {
		return 0, nil
	}
	return int(rank) + 1, nil
}
