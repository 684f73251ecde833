package constants

// NATS subjects
const (
	// Coin ledger
	SubjectCoinTransactionCreated = "coins.transaction.created"

	// Quiz engine
	SubjectQuizSessionCompleted = "quiz.session.completed"
)
