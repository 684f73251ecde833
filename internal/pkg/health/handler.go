package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/quizarena/internal/pkg/logger"
	"github.com/piresc/quizarena/internal/utils"
)

const readinessTimeout = 3 * time.Second

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"gitCommit"`
	ServiceName string    `json:"serviceName"`
	GoVersion   string    `json:"goVersion"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"serverTime"`
}

// Checker pings one dependency
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a plain function to Checker
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// Status is the body of the API health endpoint
type Status struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Readiness reports per-dependency state
type Readiness struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName, version string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	info := BuildInfo{
		Version:     version,
		GitCommit:   "unknown",
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		info.GitCommit = gitCommit
	}

	return func(c echo.Context) error {
		resp := info
		resp.ServerTime = time.Now()
		return c.JSON(http.StatusOK, resp)
	}
}

// StatusHandler answers {status:"ok", timestamp} in the standard envelope
func StatusHandler(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", Status{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}

// ReadyHandler runs every checker and answers 503 when any fails
func ReadyHandler(checkers map[string]Checker) echo.HandlerFunc {
	names := make([]string, 0, len(checkers))
	for name := range checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
		defer cancel()

		resp := Readiness{Status: "ready", Dependencies: make(map[string]string, len(names))}
		for _, name := range names {
			if err := checkers[name].CheckHealth(ctx); err != nil {
				logger.Warn("Readiness check failed",
					logger.String("dependency", name),
					logger.Err(err))
				resp.Dependencies[name] = "unhealthy"
				resp.Status = "unavailable"
				continue
			}
			resp.Dependencies[name] = "healthy"
		}

		if resp.Status != "ready" {
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// RegisterHealthEndpoints registers the root probes used by load balancers and Kubernetes
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, checkers map[string]Checker) {
	e.GET("/ping", NewPingHandler(serviceName, version))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/ready", ReadyHandler(checkers))
}
