package wallet

import (
	"context"

	"github.com/piresc/quizarena/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/quizarena/services/wallet WalletUC

// WalletUC is the coin ledger. Every balance change appends exactly one transaction.
type WalletUC interface {
	Adjust(ctx context.Context, req models.AdjustRequest) (int64, error)
	Award(ctx context.Context, req models.AdjustRequest) (int64, error)
	Deduct(ctx context.Context, req models.AdjustRequest) (int64, error)

	ClaimDailyBonus(ctx context.Context, userID string) (*models.DailyBonusResult, error)
	ApplyReferralRewards(ctx context.Context, newUserID, referrerCode string) error

	GetWalletSummary(ctx context.Context, userID string, limit int) (*models.WalletSummary, error)
}
