package auth

import (
	"context"

	"github.com/piresc/quizarena/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/quizarena/services/auth AuthRepo

// AuthRepo persists OTP tokens and accounts
type AuthRepo interface {
	UpsertOTP(ctx context.Context, otp *models.OTP) error
	GetOTP(ctx context.Context, contact string) (*models.OTP, error)
	IncrementOTPAttempts(ctx context.Context, contact string) (int, error)
	DeleteOTP(ctx context.Context, contact string) error
	// ConsumeOTP deletes the token only if it still carries codeHash.
	// consumed is false when another request already used it.
	ConsumeOTP(ctx context.Context, contact, codeHash string) (consumed bool, err error)

	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByContact(ctx context.Context, contact string) (*models.User, error)
	ReferralCodeExists(ctx context.Context, code string) (bool, error)
	CreateUser(ctx context.Context, user *models.User) error
}
