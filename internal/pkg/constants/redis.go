package constants

// Redis key formats
const (
	KeyQuizLeaderboard      = "quiz:leaderboard:%s"       // Format: quiz:leaderboard:{quiz_id}
	KeyQuizLeaderboardNames = "quiz:leaderboard:names:%s" // Format: quiz:leaderboard:names:{quiz_id}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)
