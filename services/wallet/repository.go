package wallet

import (
	"context"
	"time"

	"github.com/piresc/quizarena/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/quizarena/services/wallet WalletRepo

// WalletRepo persists balances and ledger entries
type WalletRepo interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	LockUser(ctx context.Context, userID string) (*models.User, error)
	GetUserByReferralCode(ctx context.Context, code string) (*models.User, error)

	// ApplyDelta adds delta to the balance unless the result would be negative.
	// applied is false when the guard rejected the change.
	ApplyDelta(ctx context.Context, userID string, delta int64) (balance int64, applied bool, err error)
	InsertTransaction(ctx context.Context, txn *models.CoinTransaction) error
	ListTransactions(ctx context.Context, userID string, limit int) ([]models.CoinTransaction, error)

	UpdateDailyBonus(ctx context.Context, userID string, streak int, claimedAt time.Time) error
}
