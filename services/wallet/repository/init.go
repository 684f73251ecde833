package repository

import (
	"github.com/jmoiron/sqlx"
)

// WalletRepo implements wallet.WalletRepo over Postgres
type WalletRepo struct {
	db *sqlx.DB
}

// NewWalletRepo creates a new wallet repository
func NewWalletRepo(db *sqlx.DB) *WalletRepo {
	return &WalletRepo{db: db}
}
