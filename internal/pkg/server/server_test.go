package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/quizarena/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testLogger() *logger.ZapLogger {
	return logger.NewFromZap(zap.NewNop())
}

func freePort(t *testing.T) int {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestNewGracefulServer_DefaultTimeout(t *testing.T) {
	gs := NewGracefulServer(echo.New(), testLogger(), 8080, 0, nil)
	assert.Equal(t, defaultShutdownTimeout, gs.shutdownTimeout)

	gs = NewGracefulServer(echo.New(), testLogger(), 8080, 3*time.Second, nil)
	assert.Equal(t, 3*time.Second, gs.shutdownTimeout)
}

func TestGracefulServer_RunUntilCancelled(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	var released []string
	components := NewShutdownManager(testLogger())
	components.Register("postgres", func(ctx context.Context) error {
		released = append(released, "postgres")
		return nil
	})
	components.Register("redis", func(ctx context.Context) error {
		released = append(released, "redis")
		return nil
	})

	port := freePort(t)
	gs := NewGracefulServer(e, testLogger(), port, time.Second, components)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:" + strconv.Itoa(port) + "/ping")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Equal(t, []string{"redis", "postgres"}, released)
}

func TestGracefulServer_RunPortInUse(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer l.Close()

	gs := NewGracefulServer(echo.New(), testLogger(), l.Addr().(*net.TCPAddr).Port, time.Second, nil)
	err = gs.Run(context.Background())
	assert.Error(t, err)
}

func TestShutdownManager(t *testing.T) {
	t.Run("runs in reverse order and skips nil", func(t *testing.T) {
		sm := NewShutdownManager(testLogger())
		var order []int
		for i := 0; i < 3; i++ {
			i := i
			sm.Register("component", func(ctx context.Context) error {
				order = append(order, i)
				return nil
			})
		}
		sm.Register("nil", nil)

		require.NoError(t, sm.Shutdown(context.Background()))
		assert.Equal(t, []int{2, 1, 0}, order)
	})

	t.Run("continues after failures and joins errors", func(t *testing.T) {
		sm := NewShutdownManager(testLogger())
		boom := errors.New("boom")
		called := false
		sm.Register("last", func(ctx context.Context) error {
			called = true
			return nil
		})
		sm.Register("nats", func(ctx context.Context) error { return boom })

		err := sm.Shutdown(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "nats")
		assert.True(t, called)
	})
}
