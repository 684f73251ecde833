package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/quizarena/internal/pkg/constants"
	"github.com/piresc/quizarena/internal/pkg/database"
	"github.com/piresc/quizarena/internal/pkg/logger"
	"github.com/piresc/quizarena/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Redis    *database.RedisClient
	Resource string
	Limit    int
	Period   time.Duration
}

// RateLimiterMiddleware counts requests per resource and client in a fixed Redis window
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if userID := UserID(c); userID != "" {
				identifier = userID
			}

			key := fmt.Sprintf(constants.KeyRateLimit, config.Resource, identifier)
			count, ttl, err := config.Redis.IncrWithin(c.Request().Context(), key, config.Period)
			if err != nil {
				// fail open
				logger.WarnCtx(c.Request().Context(), "Rate limiter unavailable", logger.Err(err))
				return next(c)
			}

			remaining := config.Limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if int(count) > config.Limit {
				c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			}

			return next(c)
		}
	}
}
