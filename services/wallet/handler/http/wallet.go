package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/quizarena/internal/pkg/middleware"
	"github.com/piresc/quizarena/internal/utils"
	"github.com/piresc/quizarena/services/wallet"
)

// WalletHandler handles HTTP requests for the coin wallet
type WalletHandler struct {
	walletUC wallet.WalletUC
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUC wallet.WalletUC) *WalletHandler {
	return &WalletHandler{walletUC: walletUC}
}

// RegisterRoutes mounts the wallet routes on an authenticated group
func (h *WalletHandler) RegisterRoutes(users *echo.Group) {
	users.GET("/wallet", h.GetWallet)
	users.POST("/daily-bonus", h.ClaimDailyBonus)
}

// GetWallet returns balance, streak and recent transactions
func (h *WalletHandler) GetWallet(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return utils.BadRequestResponse(c, "limit must be a positive integer")
		}
		limit = n
	}

	summary, err := h.walletUC.GetWalletSummary(c.Request().Context(), userID, limit)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", map[string]interface{}{"wallet": summary})
}

// ClaimDailyBonus pays today's login bonus
func (h *WalletHandler) ClaimDailyBonus(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.walletUC.ClaimDailyBonus(c.Request().Context(), userID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Daily bonus claimed", result)
}
