package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/quizarena/internal/pkg/database"
)

// QuizRepo implements quiz.QuizRepo over Postgres
type QuizRepo struct {
	db *sqlx.DB
}

// NewQuizRepo creates a new quiz repository
func NewQuizRepo(db *sqlx.DB) *QuizRepo {
	return &QuizRepo{db: db}
}

// LeaderboardRepo implements quiz.LeaderboardRepo over Redis sorted sets
type LeaderboardRepo struct {
	redisClient *database.RedisClient
}

// NewLeaderboardRepo creates a new leaderboard repository
func NewLeaderboardRepo(redisClient *database.RedisClient) *LeaderboardRepo {
	return &LeaderboardRepo{redisClient: redisClient}
}
