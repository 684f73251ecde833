package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/piresc/quizarena/internal/pkg/apperr"
	"github.com/piresc/quizarena/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo is an in-memory WalletRepo for sequence properties
type memRepo struct {
	mu      sync.Mutex
	users   map[string]*models.User
	entries []models.CoinTransaction
}

func (r *memRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "User not found")
	}
	clone := *u
	return &clone, nil
}

func (r *memRepo) LockUser(ctx context.Context, id string) (*models.User, error) {
	return r.GetUserByID(ctx, id)
}

func (r *memRepo) GetUserByReferralCode(_ context.Context, code string) (*models.User, error) {
	return nil, apperr.New(apperr.NotFound, "User not found")
}

func (r *memRepo) ApplyDelta(_ context.Context, id string, delta int64) (int64, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.users[id]
	if u.Coins+delta < 0 {
		return 0, false, nil
	}
	u.Coins += delta
	return u.Coins, true, nil
}

func (r *memRepo) InsertTransaction(_ context.Context, txn *models.CoinTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *txn)
	return nil
}

func (r *memRepo) ListTransactions(context.Context, string, int) ([]models.CoinTransaction, error) {
	return r.entries, nil
}

func (r *memRepo) UpdateDailyBonus(context.Context, string, int, time.Time) error {
	return nil
}

type nopGW struct{}

func (nopGW) PublishTransactionCreated(context.Context, *models.CoinTransactionEvent) error {
	return nil
}

type directTx struct{}

func (directTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestLedger_BalanceMatchesHistory(t *testing.T) {
	const initial int64 = 250
	repo := &memRepo{users: map[string]*models.User{"user-1": {ID: "user-1", Coins: initial}}}
	uc := NewWalletUC(repo, nopGW{}, directTx{})
	ctx := context.Background()

	steps := []int64{-100, 25, -200, -150, 50, -175, 1000, -1}
	for _, amount := range steps {
		_, err := uc.Adjust(ctx, models.AdjustRequest{UserID: "user-1", Amount: amount, Type: models.TransactionAdminAdjustment})
		if err != nil {
			assert.True(t, apperr.Is(err, apperr.InsufficientFunds))
		}
	}

	user, err := repo.GetUserByID(ctx, "user-1")
	require.NoError(t, err)

	sum := initial
	for _, e := range repo.entries {
		sum += e.Amount
		assert.Equal(t, sum, e.BalanceAfter)
		assert.GreaterOrEqual(t, e.BalanceAfter, int64(0))
	}
	assert.Equal(t, user.Coins, sum)
	// -200 and -175 were rejected
	assert.Len(t, repo.entries, len(steps)-2)
}
