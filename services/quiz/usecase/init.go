package usecase

import (
	"math/rand"
	"time"

	"github.com/piresc/quizarena/internal/pkg/database"
	"github.com/piresc/quizarena/internal/pkg/lock"
	"github.com/piresc/quizarena/services/quiz"
	"github.com/piresc/quizarena/services/wallet"
)

// QuizUC implements the quiz session engine
type QuizUC struct {
	quizRepo        quiz.QuizRepo
	leaderboardRepo quiz.LeaderboardRepo
	quizGW          quiz.QuizGW
	walletUC        wallet.WalletUC
	tx              database.Transactor
	locks           *lock.KeyedLock
	now             func() time.Time
	shuffle         func(ids []string)
}

// NewQuizUC creates a new quiz usecase instance
func NewQuizUC(
	quizRepo quiz.QuizRepo,
	leaderboardRepo quiz.LeaderboardRepo,
	quizGW quiz.QuizGW,
	walletUC wallet.WalletUC,
	tx database.Transactor,
) *QuizUC {
	return &QuizUC{
		quizRepo:        quizRepo,
		leaderboardRepo: leaderboardRepo,
		quizGW:          quizGW,
		walletUC:        walletUC,
		tx:              tx,
		locks:           lock.NewKeyedLock(),
		now:             time.Now,
		shuffle: func(ids []string) {
			rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
		},
	}
}
