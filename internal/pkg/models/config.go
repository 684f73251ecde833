package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	OTP       OTPConfig
	Websocket WebsocketConfig
	RateLimit RateLimitConfig
	Logger    LoggerConfig
	NewRelic  NewRelicConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Version     string
	ClientURL   string
}

// IsProduction reports whether the app runs with production semantics.
func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// IsDevelopment reports whether development-only shortcuts may be enabled.
func (a AppConfig) IsDevelopment() bool {
	return a.Environment == "development" || a.Environment == "local"
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int
	APIPrefix       string
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	URL       string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	URL      string
	PoolSize int
}

// NATSConfig contains NATS connection configuration. An empty URL disables publishing.
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

// OTPConfig controls one-time password issuance
type OTPConfig struct {
	DevBypass bool
}

// WebsocketConfig contains realtime gateway configuration
type WebsocketConfig struct {
	AllowedOrigin string
}

// RateLimitConfig contains per-route request limits
type RateLimitConfig struct {
	OTPPerMinute int
}

// LoggerConfig contains zap logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// NewRelicConfig contains APM agent configuration
type NewRelicConfig struct {
	Enabled    bool
	AppName    string
	LicenseKey string
}
