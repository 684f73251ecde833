package constants

// WebSocket event types
const (
	// Inbound
	EventQuizJoin     = "quiz:join"
	EventQuizAnswer   = "quiz:answer"
	EventQuizLifeline = "quiz:lifeline"

	// Outbound
	EventQuizJoined      = "quiz:joined"
	EventQuizAnswerAck   = "quiz:answer:ack"
	EventQuizLifelineAck = "quiz:lifeline:ack"
	EventQuizLeaderboard = "quiz:leaderboard"
	EventQuizError       = "quiz:error"
	EventCoinsUpdated    = "coins:updated"
)

// QuizRoom formats the broadcast room of a quiz.
const QuizRoom = "quiz:%s"
