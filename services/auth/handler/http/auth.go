package http

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/piresc/quizarena/internal/pkg/constants"
	"github.com/piresc/quizarena/internal/pkg/middleware"
	"github.com/piresc/quizarena/internal/pkg/models"
	"github.com/piresc/quizarena/internal/utils"
	"github.com/piresc/quizarena/services/auth"
)

// AuthHandler handles OTP login requests
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// RegisterRoutes mounts the auth routes. otpLimiter guards code issuance.
func (h *AuthHandler) RegisterRoutes(group *echo.Group, jwtAuth echo.MiddlewareFunc, otpLimiter ...echo.MiddlewareFunc) {
	group.POST("/request-otp", h.RequestOTP, otpLimiter...)
	group.POST("/verify-otp", h.VerifyOTP)
	group.GET("/me", h.GetMe, jwtAuth)
}

// RequestOTP issues a one-time password
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req models.RequestOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.Contact)) < 3 {
		return utils.BadRequestResponse(c, "Provide a valid email or phone number")
	}

	result, err := h.authUC.RequestOTP(c.Request().Context(), req.Contact)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "OTP sent successfully", result)
}

// VerifyOTP exchanges a code for an access token
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if msg := validateVerify(req); msg != "" {
		return utils.BadRequestResponse(c, msg)
	}

	resp, err := h.authUC.VerifyOTP(c.Request().Context(), req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP verified successfully", resp)
}

func validateVerify(req models.VerifyOTPRequest) string {
	if utf8.RuneCountInString(strings.TrimSpace(req.Contact)) < 3 {
		return "Provide a valid email or phone number"
	}
	if len(req.Code) != constants.OTPLength {
		return "OTP must be 6 digits"
	}
	if name := strings.TrimSpace(req.DisplayName); name != "" {
		if n := utf8.RuneCountInString(name); n < 2 || n > 40 {
			return "Display name must be between 2 and 40 characters"
		}
	}
	if code := strings.TrimSpace(req.ReferralCode); code != "" {
		if n := len(code); n < 4 || n > 12 {
			return "Referral code must be between 4 and 12 characters"
		}
	}
	return ""
}

// GetMe returns the authenticated profile
func (h *AuthHandler) GetMe(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.authUC.GetMe(c.Request().Context(), userID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", map[string]interface{}{"user": user})
}
