package config

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/piresc/quizarena/internal/pkg/models"
	"github.com/spf13/viper"
)

const minJWTSecretLength = 10

// InitConfig loads the optional .env file for local runs and reads every
// setting from the environment, falling back to config.yaml and defaults.
func InitConfig(envPath string) *models.Config {
	env := strings.ToLower(envOrDefault("APP_ENV", "development"))
	if env == "development" || env == "local" {
		if err := godotenv.Load(envPath); err != nil {
			log.Println("no env file loaded:", err)
		}
	}
	return loadConfig(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Println("error reading config file:", err)
		}
	}
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "quizarena")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_VERSION", "dev")
	v.SetDefault("CLIENT_URL", "http://localhost:3000")

	v.SetDefault("SERVER_PORT", 5000)
	v.SetDefault("API_PREFIX", "/api/v1")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)

	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_IDLE_CONNS", 5)

	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NATS_URL", "")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRATION", "168h")
	v.SetDefault("JWT_ISSUER", "quizarena")

	v.SetDefault("SOCKET_CORS_ORIGIN", "")
	v.SetDefault("OTP_DEV_BYPASS", false)
	v.SetDefault("RATE_LIMIT_OTP_PER_MINUTE", 5)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")

	v.SetDefault("NEW_RELIC_ENABLED", false)
	v.SetDefault("NEW_RELIC_APP_NAME", "quizarena")
	v.SetDefault("NEW_RELIC_LICENSE_KEY", "")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = strings.ToLower(v.GetString("APP_ENV"))
	configs.App.Version = v.GetString("APP_VERSION")
	configs.App.ClientURL = v.GetString("CLIENT_URL")

	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.APIPrefix = v.GetString("API_PREFIX")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	configs.Database.URL = v.GetString("DATABASE_URL")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	configs.Redis.URL = v.GetString("REDIS_URL")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	configs.NATS.URL = v.GetString("NATS_URL")

	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetDuration("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	configs.OTP.DevBypass = v.GetBool("OTP_DEV_BYPASS")

	configs.Websocket.AllowedOrigin = v.GetString("SOCKET_CORS_ORIGIN")
	if configs.Websocket.AllowedOrigin == "" {
		configs.Websocket.AllowedOrigin = configs.App.ClientURL
	}

	configs.RateLimit.OTPPerMinute = v.GetInt("RATE_LIMIT_OTP_PER_MINUTE")

	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")

	return configs
}

// Validate reports every configuration problem found, or nil.
func Validate(cfg *models.Config) []error {
	var problems []error

	switch cfg.App.Environment {
	case "development", "local", "production", "test":
	default:
		problems = append(problems, fmt.Errorf("APP_ENV must be one of development, local, production, test; got %q", cfg.App.Environment))
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		problems = append(problems, fmt.Errorf("SERVER_PORT must be a valid port, got %d", cfg.Server.Port))
	}
	if !strings.HasPrefix(cfg.Server.APIPrefix, "/") {
		problems = append(problems, fmt.Errorf("API_PREFIX must start with '/'"))
	}
	if u, err := url.Parse(cfg.App.ClientURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Errorf("CLIENT_URL must be an absolute URL"))
	}
	if cfg.Database.URL == "" {
		problems = append(problems, fmt.Errorf("DATABASE_URL is required"))
	}
	if len(cfg.JWT.Secret) < minJWTSecretLength {
		problems = append(problems, fmt.Errorf("JWT_SECRET must be at least %d characters", minJWTSecretLength))
	}
	if cfg.JWT.Expiration <= 0 {
		problems = append(problems, fmt.Errorf("JWT_EXPIRATION must be a positive duration"))
	}
	if cfg.RateLimit.OTPPerMinute <= 0 {
		problems = append(problems, fmt.Errorf("RATE_LIMIT_OTP_PER_MINUTE must be positive"))
	}
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey == "" {
		problems = append(problems, fmt.Errorf("NEW_RELIC_LICENSE_KEY is required when NEW_RELIC_ENABLED is true"))
	}
	return problems
}

func envOrDefault(key, defaultValue string) string {
	v := viper.New()
	v.SetDefault(key, defaultValue)
	v.AutomaticEnv()
	return v.GetString(key)
}
