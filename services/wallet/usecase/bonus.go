package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/quizarena/internal/pkg/apperr"
	"github.com/piresc/quizarena/internal/pkg/constants"
	"github.com/piresc/quizarena/internal/pkg/models"
	"github.com/piresc/quizarena/internal/utils"
)

// ClaimDailyBonus pays the login bonus at most once per local calendar day
func (u *WalletUC) ClaimDailyBonus(ctx context.Context, userID string) (*models.DailyBonusResult, error) {
	result := &models.DailyBonusResult{}

	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := u.walletRepo.LockUser(ctx, userID)
		if err != nil {
			return err
		}

		now := u.now()
		today := utils.StartOfDay(now)
		streak := user.DailyStreak

		if user.LastDailyBonusAt != nil {
			lastDay := utils.StartOfDay(*user.LastDailyBonusAt)
			if lastDay.Equal(today) {
				return apperr.New(apperr.AlreadyClaimed, "Daily bonus already claimed")
			}
			if lastDay.AddDate(0, 0, 1).Before(today) {
				streak = 0
			}
		}
		streak++

		if err := u.walletRepo.UpdateDailyBonus(ctx, userID, streak, now); err != nil {
			return fmt.Errorf("failed to update daily bonus: %w", err)
		}

		balance, err := u.Award(ctx, models.AdjustRequest{
			UserID:   userID,
			Amount:   constants.DailyLoginBonus,
			Type:     models.TransactionBonus,
			Metadata: models.Metadata{"dailyStreak": streak},
		})
		if err != nil {
			return err
		}

		result.Coins = balance
		result.DailyStreak = streak
		result.LastDailyBonusAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ApplyReferralRewards credits both sides of a referral. Unknown codes are ignored.
func (u *WalletUC) ApplyReferralRewards(ctx context.Context, newUserID, referrerCode string) error {
	if referrerCode == "" {
		return nil
	}

	referrer, err := u.walletRepo.GetUserByReferralCode(ctx, referrerCode)
	if err != nil {
		if apperr.Is(err, apperr.NotFound) {
			return nil
		}
		return err
	}
	if referrer.ID == newUserID {
		return nil
	}

	return u.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := u.Award(ctx, models.AdjustRequest{
			UserID:      referrer.ID,
			Amount:      constants.ReferrerReward,
			Type:        models.TransactionReferral,
			ReferenceID: newUserID,
		}); err != nil {
			return fmt.Errorf("failed to reward referrer: %w", err)
		}

		if _, err := u.Award(ctx, models.AdjustRequest{
			UserID:      newUserID,
			Amount:      constants.RefereeReward,
			Type:        models.TransactionReferral,
			ReferenceID: referrer.ID,
		}); err != nil {
			return fmt.Errorf("failed to reward referee: %w", err)
		}
		return nil
	})
}

// GetWalletSummary returns the balance with the most recent ledger entries
func (u *WalletUC) GetWalletSummary(ctx context.Context, userID string, limit int) (*models.WalletSummary, error) {
	switch {
	case limit <= 0:
		limit = constants.DefaultTransactionLimit
	case limit > constants.MaxTransactionLimit:
		limit = constants.MaxTransactionLimit
	}

	user, err := u.walletRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	transactions, err := u.walletRepo.ListTransactions(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if transactions == nil {
		transactions = []models.CoinTransaction{}
	}

	return &models.WalletSummary{
		Coins:            user.Coins,
		DailyStreak:      user.DailyStreak,
		LastDailyBonusAt: user.LastDailyBonusAt,
		Transactions:     transactions,
	}, nil
}
