package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/quizarena/internal/pkg/apperr"
	"github.com/piresc/quizarena/internal/pkg/logger"
)

// Response is the envelope of every API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error envelope with null data
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, Response{
		Success: false,
		Message: errorMessage,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// HandleError renders err with the status of its kind.
// Unclassified failures are logged and collapse to a generic 500.
func HandleError(c echo.Context, err error) error {
	status, message := apperr.Describe(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), "Request failed",
			logger.String("method", c.Request().Method),
			logger.String("path", c.Path()),
			logger.Err(err))
	}
	return ErrorResponseHandler(c, status, message)
}

// HTTPErrorHandler replaces echo's default so framework errors share the envelope
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		message := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok && m != "" {
			message = m
		}
		if he.Code == http.StatusNotFound {
			message = "Route not found"
		}
		_ = ErrorResponseHandler(c, he.Code, message)
		return
	}

	_ = HandleError(c, err)
}
