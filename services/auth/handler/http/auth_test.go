package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/quizarena/internal/pkg/apperr"
	"github.com/piresc/quizarena/internal/pkg/middleware"
	"github.com/piresc/quizarena/internal/pkg/models"
	"github.com/piresc/quizarena/services/auth/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequestOTP(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		mockSetup  func(uc *mocks.MockAuthUC)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "Success",
			body: `{"contact":"ana@example.com"}`,
			mockSetup: func(uc *mocks.MockAuthUC) {
				uc.EXPECT().RequestOTP(gomock.Any(), "ana@example.com").Return(&models.OTPRequestResult{
					Contact: "ana@example.com", ExpiresAt: time.Now().Add(5 * time.Minute), OTP: "000000",
				}, nil)
			},
			wantStatus: http.StatusCreated,
			wantMsg:    "OTP sent successfully",
		},
		{
			name:       "Contact too short",
			body:       `{"contact":"ab"}`,
			mockSetup:  func(uc *mocks.MockAuthUC) {},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Provide a valid email or phone number",
		},
		{
			name:       "Malformed body",
			body:       `{"contact":`,
			mockSetup:  func(uc *mocks.MockAuthUC) {},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request body",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockAuthUC(ctrl)
			tc.mockSetup(uc)

			c, rec := newJSONContext(http.MethodPost, "/api/v1/auth/request-otp", tc.body)
			require.NoError(t, NewAuthHandler(uc).RequestOTP(c))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantMsg, decode(t, rec)["message"])
		})
	}
}

func TestVerifyOTP(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		mockSetup  func(uc *mocks.MockAuthUC)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "Success",
			body: `{"contact":"ana@example.com","code":"123456","displayName":"Ana","referralCode":"ABCD23"}`,
			mockSetup: func(uc *mocks.MockAuthUC) {
				uc.EXPECT().VerifyOTP(gomock.Any(), models.VerifyOTPRequest{
					Contact: "ana@example.com", Code: "123456", DisplayName: "Ana", ReferralCode: "ABCD23",
				}).Return(&models.AuthResponse{Token: "jwt", User: &models.User{ID: "user-1"}}, nil)
			},
			wantStatus: http.StatusOK,
			wantMsg:    "OTP verified successfully",
		},
		{
			name:       "Short code",
			body:       `{"contact":"ana@example.com","code":"123"}`,
			mockSetup:  func(uc *mocks.MockAuthUC) {},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "OTP must be 6 digits",
		},
		{
			name:       "Display name too long",
			body:       `{"contact":"ana@example.com","code":"123456","displayName":"` + strings.Repeat("x", 41) + `"}`,
			mockSetup:  func(uc *mocks.MockAuthUC) {},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Display name must be between 2 and 40 characters",
		},
		{
			name:       "Referral code too short",
			body:       `{"contact":"ana@example.com","code":"123456","referralCode":"AB"}`,
			mockSetup:  func(uc *mocks.MockAuthUC) {},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Referral code must be between 4 and 12 characters",
		},
		{
			name: "Wrong code",
			body: `{"contact":"ana@example.com","code":"654321"}`,
			mockSetup: func(uc *mocks.MockAuthUC) {
				uc.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).Return(nil, apperr.New(apperr.InvalidCode, "Invalid OTP code."))
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid OTP code.",
		},
		{
			name: "No token",
			body: `{"contact":"ana@example.com","code":"654321"}`,
			mockSetup: func(uc *mocks.MockAuthUC) {
				uc.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).Return(nil, apperr.New(apperr.NotFound, "OTP not found or expired. Please request a new one."))
			},
			wantStatus: http.StatusNotFound,
			wantMsg:    "OTP not found or expired. Please request a new one.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockAuthUC(ctrl)
			tc.mockSetup(uc)

			c, rec := newJSONContext(http.MethodPost, "/api/v1/auth/verify-otp", tc.body)
			require.NoError(t, NewAuthHandler(uc).VerifyOTP(c))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantMsg, decode(t, rec)["message"])
		})
	}
}

func TestGetMe(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockAuthUC(ctrl)
		uc.EXPECT().GetMe(gomock.Any(), "user-1").Return(&models.User{ID: "user-1", DisplayName: "ana"}, nil)

		c, rec := newJSONContext(http.MethodGet, "/api/v1/auth/me", "")
		c.Set(middleware.ContextUserID, "user-1")
		require.NoError(t, NewAuthHandler(uc).GetMe(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		user := decode(t, rec)["data"].(map[string]interface{})["user"].(map[string]interface{})
		assert.Equal(t, "ana", user["displayName"])
	})

	t.Run("Unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockAuthUC(ctrl)
		uc.EXPECT().GetMe(gomock.Any(), "ghost").Return(nil, apperr.New(apperr.Unauthorized, "User no longer exists"))

		c, rec := newJSONContext(http.MethodGet, "/api/v1/auth/me", "")
		c.Set(middleware.ContextUserID, "ghost")
		require.NoError(t, NewAuthHandler(uc).GetMe(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
