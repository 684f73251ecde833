package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/quizarena/internal/pkg/apperr"
	"github.com/piresc/quizarena/internal/pkg/database"
	"github.com/piresc/quizarena/internal/pkg/models"
)

const userColumns = `id, email, phone, display_name, coins, referral_code, referred_by,
	daily_streak, last_daily_bonus_at, total_quizzes, wins, streak, best_rank,
	role, created_at, updated_at`

func (r *WalletRepo) getUser(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var user models.User
	if err := database.Executor(ctx, r.db).GetContext(ctx, &user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "User not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (r *WalletRepo) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return r.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
}

// LockUser retrieves a user and holds its row lock until the transaction ends
func (r *WalletRepo) LockUser(ctx context.Context, userID string) (*models.User, error) {
	return r.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, userID)
}

// GetUserByReferralCode retrieves the owner of a referral code
func (r *WalletRepo) GetUserByReferralCode(ctx context.Context, code string) (*models.User, error) {
	return r.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE referral_code = $1`, code)
}

// ApplyDelta adds delta to the balance in one guarded statement
func (r *WalletRepo) ApplyDelta(ctx context.Context, userID string, delta int64) (int64, bool, error) {
	query := `
		UPDATE users
		SET coins = coins + $2, updated_at = NOW()
		WHERE id = $1 AND coins + $2 >= 0
		RETURNING coins
	`

	var balance int64
	err := database.Executor(ctx, r.db).QueryRowxContext(ctx, query, userID, delta).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to apply balance delta: %w", err)
	}
	return balance, true, nil
}

// InsertTransaction appends a ledger entry
func (r *WalletRepo) InsertTransaction(ctx context.Context, txn *models.CoinTransaction) error {
	query := `
		INSERT INTO coin_transactions (
			id, user_id, amount, balance_after, type, reference_id, metadata, created_at
		) VALUES (
			:id, :user_id, :amount, :balance_after, :type, :reference_id, :metadata, :created_at
		)
	`
	if _, err := sqlx.NamedExecContext(ctx, database.Executor(ctx, r.db), query, txn); err != nil {
		return fmt.Errorf("failed to insert coin transaction: %w", err)
	}
	return nil
}

// ListTransactions returns the newest entries of a user first
func (r *WalletRepo) ListTransactions(ctx context.Context, userID string, limit int) ([]models.CoinTransaction, error) {
	query := `
		SELECT id, user_id, amount, balance_after, type, reference_id, metadata, created_at
		FROM coin_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var transactions []models.CoinTransaction
	if err := database.Executor(ctx, r.db).SelectContext(ctx, &transactions, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list coin transactions: %w", err)
	}
	return transactions, nil
}

// UpdateDailyBonus stores the new streak and claim time
func (r *WalletRepo) UpdateDailyBonus(ctx context.Context, userID string, streak int, claimedAt time.Time) error {
	query := `
		UPDATE users
		SET daily_streak = $2, last_daily_bonus_at = $3, updated_at = NOW()
		WHERE id = $1
	`
	result, err := database.Executor(ctx, r.db).ExecContext(ctx, query, userID, streak, claimedAt)
	if err != nil {
		return fmt.Errorf("failed to update daily bonus: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return apperr.New(apperr.NotFound, "User not found")
	}
	return nil
}
