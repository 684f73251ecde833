package config

import (
	"testing"
	"time"

	"github.com/piresc/quizarena/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *models.Config {
	return &models.Config{
		App:       models.AppConfig{Name: "quizarena", Environment: "test", ClientURL: "http://localhost:3000"},
		Server:    models.ServerConfig{Port: 5000, APIPrefix: "/api/v1"},
		Database:  models.DatabaseConfig{URL: "postgres://localhost/quizarena"},
		JWT:       models.JWTConfig{Secret: "0123456789abcdef", Expiration: time.Hour, Issuer: "quizarena"},
		RateLimit: models.RateLimitConfig{OTPPerMinute: 5},
	}
}

func TestInitConfig_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("DATABASE_URL", "postgres://quiz:quiz@db:5432/quizarena")
	t.Setenv("JWT_SECRET", "super-secret-value")
	t.Setenv("JWT_EXPIRATION", "2h")
	t.Setenv("CLIENT_URL", "https://play.example.com")
	t.Setenv("OTP_DEV_BYPASS", "true")

	cfg := InitConfig("")

	assert.Equal(t, "test", cfg.App.Environment)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "/api/v1", cfg.Server.APIPrefix)
	assert.Equal(t, "postgres://quiz:quiz@db:5432/quizarena", cfg.Database.URL)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "quizarena", cfg.JWT.Issuer)
	assert.True(t, cfg.OTP.DevBypass)
	assert.Equal(t, 5, cfg.RateLimit.OTPPerMinute)
	assert.Equal(t, "https://play.example.com", cfg.Websocket.AllowedOrigin)
	assert.Empty(t, Validate(cfg))
}

func TestInitConfig_SocketOriginOverride(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("CLIENT_URL", "https://play.example.com")
	t.Setenv("SOCKET_CORS_ORIGIN", "*")

	cfg := InitConfig("")
	assert.Equal(t, "*", cfg.Websocket.AllowedOrigin)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *models.Config)
		want   string
	}{
		{"unknown environment", func(cfg *models.Config) { cfg.App.Environment = "staging" }, "APP_ENV"},
		{"invalid port", func(cfg *models.Config) { cfg.Server.Port = 0 }, "SERVER_PORT"},
		{"prefix without slash", func(cfg *models.Config) { cfg.Server.APIPrefix = "api" }, "API_PREFIX"},
		{"relative client url", func(cfg *models.Config) { cfg.App.ClientURL = "localhost" }, "CLIENT_URL"},
		{"missing database", func(cfg *models.Config) { cfg.Database.URL = "" }, "DATABASE_URL"},
		{"short secret", func(cfg *models.Config) { cfg.JWT.Secret = "short" }, "JWT_SECRET"},
		{"zero expiration", func(cfg *models.Config) { cfg.JWT.Expiration = 0 }, "JWT_EXPIRATION"},
		{"zero rate limit", func(cfg *models.Config) { cfg.RateLimit.OTPPerMinute = 0 }, "RATE_LIMIT_OTP_PER_MINUTE"},
		{"new relic without key", func(cfg *models.Config) { cfg.NewRelic.Enabled = true }, "NEW_RELIC_LICENSE_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			problems := Validate(cfg)
			require.Len(t, problems, 1)
			assert.Contains(t, problems[0].Error(), tt.want)
		})
	}

	assert.Empty(t, Validate(validConfig()))
}
