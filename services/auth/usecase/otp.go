package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/quizarena/internal/pkg/apperr"
	"github.com/piresc/quizarena/internal/pkg/constants"
	"github.com/piresc/quizarena/internal/pkg/logger"
	"github.com/piresc/quizarena/internal/pkg/models"
	"github.com/piresc/quizarena/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// RequestOTP issues a fresh code for contact, replacing any previous one
func (u *AuthUC) RequestOTP(ctx context.Context, contact string) (*models.OTPRequestResult, error) {
	normalized, ok := utils.NormalizeContact(contact)
	if !ok {
		return nil, apperr.New(apperr.InvalidArgument, "Provide a valid email or phone number")
	}

	code, err := u.newCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), u.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash OTP: %w", err)
	}

	now := u.now()
	otp := &models.OTP{
		Contact:   normalized,
		CodeHash:  string(hash),
		ExpiresAt: now.Add(constants.OTPExpiry),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.authRepo.UpsertOTP(ctx, otp); err != nil {
		return nil, fmt.Errorf("failed to store OTP: %w", err)
	}

	logger.Info("Generated OTP", logger.String("contact", utils.MaskContact(normalized)))

	result := &models.OTPRequestResult{
		Contact:   normalized,
		ExpiresAt: otp.ExpiresAt,
	}
	if !u.cfg.App.IsProduction() {
		result.OTP = code
	}
	return result, nil
}

func (u *AuthUC) newCode() (string, error) {
	if u.cfg.App.IsDevelopment() && u.cfg.OTP.DevBypass {
		return constants.OTPDevCode, nil
	}
	return utils.GenerateNumericCode(constants.OTPLength)
}

// checkOTP validates code against the stored token and consumes it on success
func (u *AuthUC) checkOTP(ctx context.Context, contact, code string) error {
	otp, err := u.authRepo.GetOTP(ctx, contact)
	if err != nil {
		return err
	}

	if u.now().After(otp.ExpiresAt) {
		if err := u.authRepo.DeleteOTP(ctx, contact); err != nil {
			return fmt.Errorf("failed to delete expired OTP: %w", err)
		}
		return apperr.New(apperr.Expired, "OTP expired. Please request a new one.")
	}

	if bcrypt.CompareHashAndPassword([]byte(otp.CodeHash), []byte(code)) != nil {
		attempts, err := u.authRepo.IncrementOTPAttempts(ctx, contact)
		if err != nil {
			return fmt.Errorf("failed to record OTP attempt: %w", err)
		}
		if attempts >= constants.OTPMaxAttempts {
			if err := u.authRepo.DeleteOTP(ctx, contact); err != nil {
				return fmt.Errorf("failed to delete locked OTP: %w", err)
			}
			logger.Warn("OTP locked after too many attempts", logger.String("contact", utils.MaskContact(contact)))
			return apperr.New(apperr.InvalidCode, "Too many invalid attempts. Please request a new OTP.")
		}
		return apperr.New(apperr.InvalidCode, "Invalid OTP code.")
	}

	consumed, err := u.authRepo.ConsumeOTP(ctx, contact, otp.CodeHash)
	if err != nil {
		return fmt.Errorf("failed to consume OTP: %w", err)
	}
	if !consumed {
		return apperr.New(apperr.NotFound, "OTP not found or expired. Please request a new one.")
	}
	return nil
}
