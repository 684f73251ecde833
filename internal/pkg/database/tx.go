package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

//go:generate mockgen -destination=mocks/mock_transactor.go -package=mocks github.com/piresc/quizarena/internal/pkg/database Transactor

// Transactor runs fn inside a transaction carried by ctx
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DBTX is satisfied by both *sqlx.DB and *sqlx.Tx
type DBTX interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type txKey struct{}

// txState is the transaction carried by a context plus its commit hooks
type txState struct {
	tx    *sqlx.Tx
	hooks []func(ctx context.Context)
}

// TxManager opens transactions on a sqlx handle
type TxManager struct {
	db *sqlx.DB
}

// NewTxManager creates a TxManager
func NewTxManager(db *sqlx.DB) *TxManager {
	return &TxManager{db: db}
}

// WithinTx commits when fn returns nil and rolls back otherwise.
// A call made while ctx already carries a transaction joins it.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*txState); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	state := &txState{tx: tx}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", cerr)
			return
		}
		for _, hook := range state.hooks {
			hook(ctx)
		}
	}()

	err = fn(context.WithValue(ctx, txKey{}, state))
	return err
}

// AfterCommit defers hook until the transaction carried by ctx commits.
// The hook receives the context the transaction was opened with, so its
// queries run outside the finished transaction. Without a transaction hook
// runs immediately. Hooks of rolled back transactions are dropped.
func AfterCommit(ctx context.Context, hook func(ctx context.Context)) {
	if state, ok := ctx.Value(txKey{}).(*txState); ok {
		state.hooks = append(state.hooks, hook)
		return
	}
	hook(ctx)
}

// Executor returns the transaction carried by ctx, or db
func Executor(ctx context.Context, db *sqlx.DB) DBTX {
	if state, ok := ctx.Value(txKey{}).(*txState); ok {
		return state.tx
	}
	return db
}

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres unique constraint failure
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
