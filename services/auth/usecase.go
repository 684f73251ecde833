package auth

import (
	"context"

	"github.com/piresc/quizarena/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/quizarena/services/auth AuthUC

// AuthUC issues one-time passwords and exchanges them for access tokens
type AuthUC interface {
	RequestOTP(ctx context.Context, contact string) (*models.OTPRequestResult, error)
	VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (*models.AuthResponse, error)
	GetMe(ctx context.Context, userID string) (*models.User, error)
}
