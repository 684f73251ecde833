package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/quizarena/internal/pkg/apperr"
	"github.com/piresc/quizarena/internal/pkg/database"
	"github.com/piresc/quizarena/internal/pkg/models"
)

// UpsertOTP stores a fresh code for the contact and resets its attempt counter
func (r *AuthRepo) UpsertOTP(ctx context.Context, otp *models.OTP) error {
	query := `
		INSERT INTO otp_tokens (contact, code_hash, expires_at, attempts, created_at, updated_at)
		VALUES (:contact, :code_hash, :expires_at, 0, :created_at, :updated_at)
		ON CONFLICT (contact) DO UPDATE
		SET code_hash = EXCLUDED.code_hash,
			expires_at = EXCLUDED.expires_at,
			attempts = 0,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := sqlx.NamedExecContext(ctx, database.Executor(ctx, r.db), query, otp); err != nil {
		return fmt.Errorf("failed to upsert otp: %w", err)
	}
	return nil
}

// GetOTP retrieves the live code of a contact
func (r *AuthRepo) GetOTP(ctx context.Context, contact string) (*models.OTP, error) {
	query := `
		SELECT contact, code_hash, expires_at, attempts, created_at, updated_at
		FROM otp_tokens
		WHERE contact = $1
	`

	var otp models.OTP
	if err := database.Executor(ctx, r.db).GetContext(ctx, &otp, query, contact); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "OTP not found or expired. Please request a new one.")
		}
		return nil, fmt.Errorf("failed to get otp: %w", err)
	}
	return &otp, nil
}

// IncrementOTPAttempts records a failed verification and returns the new count
func (r *AuthRepo) IncrementOTPAttempts(ctx context.Context, contact string) (int, error) {
	query := `
		UPDATE otp_tokens
		SET attempts = attempts + 1, updated_at = NOW()
		WHERE contact = $1
		RETURNING attempts
	`

	var attempts int
	if err := database.Executor(ctx, r.db).QueryRowxContext(ctx, query, contact).Scan(&attempts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperr.New(apperr.NotFound, "OTP not found or expired. Please request a new one.")
		}
		return 0, fmt.Errorf("failed to increment otp attempts: %w", err)
	}
	return attempts, nil
}

// DeleteOTP removes the code of a contact
func (r *AuthRepo) DeleteOTP(ctx context.Context, contact string) error {
	if _, err := database.Executor(ctx, r.db).ExecContext(ctx, `DELETE FROM otp_tokens WHERE contact = $1`, contact); err != nil {
		return fmt.Errorf("failed to delete otp: %w", err)
	}
	return nil
}

// ConsumeOTP deletes the code only while it is still the one that was verified
func (r *AuthRepo) ConsumeOTP(ctx context.Context, contact, codeHash string) (bool, error) {
	result, err := database.Executor(ctx, r.db).ExecContext(ctx,
		`DELETE FROM otp_tokens WHERE contact = $1 AND code_hash = $2`, contact, codeHash)
	if err != nil {
		return false, fmt.Errorf("failed to consume otp: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return rows == 1, nil
}
