package repository

import (
	"github.com/jmoiron/sqlx"
)

// AuthRepo implements auth.AuthRepo over Postgres
type AuthRepo struct {
	db *sqlx.DB
}

// NewAuthRepo creates a new auth repository
func NewAuthRepo(db *sqlx.DB) *AuthRepo {
	return &AuthRepo{db: db}
}
