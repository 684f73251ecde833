package main

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/quizarena/internal/pkg/constants"
	"github.com/piresc/quizarena/internal/pkg/database"
	"github.com/piresc/quizarena/internal/pkg/health"
	"github.com/piresc/quizarena/internal/pkg/middleware"
	"github.com/piresc/quizarena/internal/pkg/models"
	authHTTP "github.com/piresc/quizarena/services/auth/handler/http"
	quizHTTP "github.com/piresc/quizarena/services/quiz/handler/http"
	quizWS "github.com/piresc/quizarena/services/quiz/handler/websocket"
	walletHTTP "github.com/piresc/quizarena/services/wallet/handler/http"
)

type routes struct {
	auth         *authHTTP.AuthHandler
	wallet       *walletHTTP.WalletHandler
	quiz         *quizHTTP.QuizHandler
	quizSocket   *quizWS.Handler
	rateLimitRDB *database.RedisClient
}

// registerRoutes mounts every API route under the configured prefix and the socket at the root
func registerRoutes(e *echo.Echo, configs *models.Config, r routes) {
	jwtAuth := middleware.JWTAuthMiddleware(configs.JWT)
	otpLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		Redis:    r.rateLimitRDB,
		Resource: "request-otp",
		Limit:    configs.RateLimit.OTPPerMinute,
		Period:   time.Minute,
	})

	api := e.Group(configs.Server.APIPrefix)
	api.GET("/health", health.StatusHandler)

	r.auth.RegisterRoutes(api.Group("/auth"), jwtAuth, otpLimiter)

	users := api.Group("/users", jwtAuth)
	r.wallet.RegisterRoutes(users)
	r.quiz.RegisterRoutes(api.Group("/quizzes"), users, jwtAuth)
	r.quiz.RegisterAdminRoutes(api.Group("/admin", jwtAuth, middleware.RequireRole(constants.RoleAdmin)))

	r.quizSocket.RegisterRoutes(e)
}
