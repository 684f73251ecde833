package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/quizarena/internal/pkg/apperr"
	"github.com/piresc/quizarena/internal/pkg/database"
	"github.com/piresc/quizarena/internal/pkg/logger"
	"github.com/piresc/quizarena/internal/pkg/models"
)

// Adjust applies a signed change and appends its ledger entry in one transaction
func (u *WalletUC) Adjust(ctx context.Context, req models.AdjustRequest) (int64, error) {
	var txn *models.CoinTransaction

	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := u.walletRepo.GetUserByID(ctx, req.UserID)
		if err != nil {
			return err
		}

		balance, applied, err := u.walletRepo.ApplyDelta(ctx, req.UserID, req.Amount)
		if err != nil {
			return fmt.Errorf("failed to update balance: %w", err)
		}
		if !applied {
			return apperr.InsufficientFundsError(user.Coins, -req.Amount)
		}

		txn = &models.CoinTransaction{
			ID:           uuid.New().String(),
			UserID:       req.UserID,
			Amount:       req.Amount,
			BalanceAfter: balance,
			Type:         req.Type,
			ReferenceID:  req.ReferenceID,
			Metadata:     req.Metadata,
			CreatedAt:    u.now(),
		}
		if err := u.walletRepo.InsertTransaction(ctx, txn); err != nil {
			return fmt.Errorf("failed to record transaction: %w", err)
		}

		database.AfterCommit(ctx, func(ctx context.Context) { u.publishTransaction(ctx, txn) })
		return nil
	})
	if err != nil {
		return 0, err
	}

	return txn.BalanceAfter, nil
}

// Award credits a positive amount
func (u *WalletUC) Award(ctx context.Context, req models.AdjustRequest) (int64, error) {
	if req.Amount <= 0 {
		return 0, apperr.New(apperr.InvalidArgument, "Award amount must be positive")
	}
	return u.Adjust(ctx, req)
}

// Deduct debits a positive amount
func (u *WalletUC) Deduct(ctx context.Context, req models.AdjustRequest) (int64, error) {
	if req.Amount <= 0 {
		return 0, apperr.New(apperr.InvalidArgument, "Deduction amount must be positive")
	}
	req.Amount = -req.Amount
	return u.Adjust(ctx, req)
}

func (u *WalletUC) publishTransaction(ctx context.Context, txn *models.CoinTransaction) {
	event := &models.CoinTransactionEvent{
		TransactionID: txn.ID,
		UserID:        txn.UserID,
		Amount:        txn.Amount,
		BalanceAfter:  txn.BalanceAfter,
		Type:          txn.Type,
		ReferenceID:   txn.ReferenceID,
		CreatedAt:     txn.CreatedAt,
	}
	if err := u.walletGW.PublishTransactionCreated(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish coin transaction event",
			logger.String("transaction_id", txn.ID),
			logger.String("user_id", txn.UserID),
			logger.Err(err))
	}
}
