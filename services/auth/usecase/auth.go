package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/quizarena/internal/pkg/apperr"
	"github.com/piresc/quizarena/internal/pkg/constants"
	jwtpkg "github.com/piresc/quizarena/internal/pkg/jwt"
	"github.com/piresc/quizarena/internal/pkg/logger"
	"github.com/piresc/quizarena/internal/pkg/models"
	"github.com/piresc/quizarena/internal/utils"
)

// VerifyOTP exchanges a valid code for an access token, registering the contact on first login
func (u *AuthUC) VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (*models.AuthResponse, error) {
	contact, ok := utils.NormalizeContact(req.Contact)
	if !ok {
		return nil, apperr.New(apperr.InvalidArgument, "Provide a valid email or phone number")
	}

	if err := u.checkOTP(ctx, contact, req.Code); err != nil {
		return nil, err
	}

	user, err := u.authRepo.GetUserByContact(ctx, contact)
	switch {
	case err == nil:
	case apperr.Is(err, apperr.NotFound):
		user, err = u.register(ctx, contact, req)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	token, _, err := jwtpkg.GenerateToken(user.ID, user.Role, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{Token: token, User: user}, nil
}

// register creates the account and pays referral rewards in one transaction
func (u *AuthUC) register(ctx context.Context, contact string, req models.VerifyOTPRequest) (*models.User, error) {
	code, err := u.uniqueReferralCode(ctx)
	if err != nil {
		return nil, err
	}

	now := u.now()
	user := &models.User{
		ID:           uuid.New().String(),
		DisplayName:  utils.DisplayNameFor(req.DisplayName, contact),
		Coins:        constants.DefaultCoinBalance,
		ReferralCode: code,
		Role:         constants.RolePlayer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if utils.IsEmailContact(contact) {
		user.Email = &contact
	} else {
		user.Phone = &contact
	}
	referredBy := strings.ToUpper(strings.TrimSpace(req.ReferralCode))
	if referredBy != "" {
		user.ReferredBy = &referredBy
	}

	err = u.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := u.authRepo.CreateUser(ctx, user); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return u.walletUC.ApplyReferralRewards(ctx, user.ID, referredBy)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Registered new user",
		logger.String("user_id", user.ID),
		logger.Bool("referred", referredBy != ""))

	persisted, err := u.authRepo.GetUserByID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return persisted, nil
}

func (u *AuthUC) uniqueReferralCode(ctx context.Context) (string, error) {
	for i := 0; i < constants.ReferralCodeAttempts; i++ {
		code, err := utils.RandomFromAlphabet(constants.ReferralCodeAlphabet, constants.ReferralCodeLength)
		if err != nil {
			return "", fmt.Errorf("failed to generate referral code: %w", err)
		}
		exists, err := u.authRepo.ReferralCodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check referral code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}

	suffix, err := utils.RandomFromAlphabet(constants.ReferralCodeAlphabet, 2)
	if err != nil {
		return "", fmt.Errorf("failed to generate referral code: %w", err)
	}
	return strings.ToUpper(strconv.FormatInt(u.now().UnixMilli(), 36)) + suffix, nil
}

// GetMe returns the profile behind a token
func (u *AuthUC) GetMe(ctx context.Context, userID string) (*models.User, error) {
	user, err := u.authRepo.GetUserByID(ctx, userID)
	if err != nil {
		if apperr.Is(err, apperr.NotFound) {
			return nil, apperr.New(apperr.Unauthorized, "User no longer exists")
		}
		return nil, err
	}
	return user, nil
}
