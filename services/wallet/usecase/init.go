package usecase

import (
	"time"

	"github.com/piresc/quizarena/internal/pkg/database"
	"github.com/piresc/quizarena/services/wallet"
)

// WalletUC implements the coin ledger
type WalletUC struct {
	walletRepo wallet.WalletRepo
	walletGW   wallet.WalletGW
	tx         database.Transactor
	now        func() time.Time
}

// NewWalletUC creates a new wallet usecase instance
func NewWalletUC(
	walletRepo wallet.WalletRepo,
	walletGW wallet.WalletGW,
	tx database.Transactor,
) *WalletUC {
	return &WalletUC{
		walletRepo: walletRepo,
		walletGW:   walletGW,
		tx:         tx,
		now:        time.Now,
	}
}
