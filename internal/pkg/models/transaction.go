package models

import (
	"time"
)

// TransactionType tags a ledger entry
type TransactionType string

const (
	TransactionBonus           TransactionType = "bonus"
	TransactionEntry           TransactionType = "entry"
	TransactionLifeline        TransactionType = "lifeline"
	TransactionReward          TransactionType = "reward"
	TransactionReferral        TransactionType = "referral"
	TransactionAdminAdjustment TransactionType = "admin_adjustment"
	TransactionPurchase        TransactionType = "purchase"
	TransactionRefund          TransactionType = "refund"
)

// CoinTransaction is an append-only ledger entry
type CoinTransaction struct {
	ID           string          `json:"id" db:"id"`
	UserID       string          `json:"userId" db:"user_id"`
	Amount       int64           `json:"amount" db:"amount"`
	BalanceAfter int64           `json:"balanceAfter" db:"balance_after"`
	Type         TransactionType `json:"type" db:"type"`
	ReferenceID  string          `json:"referenceId,omitempty" db:"reference_id"`
	Metadata     Metadata        `json:"metadata,omitempty" db:"metadata"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
}

// AdjustRequest describes a signed balance change
type AdjustRequest struct {
	UserID      string
	Amount      int64
	Type        TransactionType
	ReferenceID string
	Metadata    Metadata
}

// DailyBonusResult is returned by a successful daily claim
type DailyBonusResult struct {
	Coins            int64     `json:"coins"`
	DailyStreak      int       `json:"dailyStreak"`
	LastDailyBonusAt time.Time `json:"lastDailyBonusAt"`
}

// WalletSummary is a user's balance plus recent ledger history
type WalletSummary struct {
	Coins            int64             `json:"coins"`
	DailyStreak      int               `json:"dailyStreak"`
	LastDailyBonusAt *time.Time        `json:"lastDailyBonusAt"`
	Transactions     []CoinTransaction `json:"transactions"`
}

// CoinTransactionEvent is published for every applied ledger entry
type CoinTransactionEvent struct {
	TransactionID string          `json:"transactionId"`
	UserID        string          `json:"userId"`
	Amount        int64           `json:"amount"`
	BalanceAfter  int64           `json:"balanceAfter"`
	Type          TransactionType `json:"type"`
	ReferenceID   string          `json:"referenceId,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}
