package wallet

import (
	"context"

	"github.com/piresc/quizarena/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/quizarena/services/wallet WalletGW

// WalletGW publishes ledger events
type WalletGW interface {
	PublishTransactionCreated(ctx context.Context, event *models.CoinTransactionEvent) error
}
