package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/quizarena/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T, limit int) (echo.HandlerFunc, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { client.Close() })

	mw := RateLimiterMiddleware(RateLimiterConfig{
		Redis:    client,
		Resource: "otp",
		Limit:    limit,
		Period:   time.Minute,
	})
	return mw(func(c echo.Context) error { return c.NoContent(http.StatusCreated) }), mr
}

func serve(h echo.HandlerFunc, ip string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/request-otp", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	_ = h(e.NewContext(req, rec))
	return rec
}

func TestRateLimiterMiddleware(t *testing.T) {
	h, mr := newLimiter(t, 2)

	assert.Equal(t, http.StatusCreated, serve(h, "10.0.0.1").Code)
	rec := serve(h, "10.0.0.1")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = serve(h, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// other clients have their own window
	assert.Equal(t, http.StatusCreated, serve(h, "10.0.0.2").Code)

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusCreated, serve(h, "10.0.0.1").Code)
}

func TestRateLimiterMiddleware_FailsOpen(t *testing.T) {
	h, mr := newLimiter(t, 1)
	mr.Close()

	rec := serve(h, "10.0.0.1")
	require.Equal(t, http.StatusCreated, rec.Code)
}
