package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Backend   BackendConfig
	Identity  IdentityConfig
	Wizard    WizardConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name           string
	Port           string
	Debug          bool
	LogPath        string
	PublicBaseURL  string
	AllowedOrigins []string
	MigrationsPath string

	// TrustProxyHeaders honours X-Forwarded-For and X-Real-IP. Enable only
	// behind a proxy that overwrites them.
	TrustProxyHeaders bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

type JWTConfig struct {
	Secret string
}

// BackendConfig points at the remote logistics backend that owns orders.
type BackendConfig struct {
	BaseURL string
}

type IdentityConfig struct {
	LoginURL string
}

type WizardConfig struct {
	IdleTTL       time.Duration
	SweepSchedule string
}

type RateLimitConfig struct {
	SubmitPerMinute int
	SubmitBurst     int
}

// LoadConfig reads .env when present and lets real environment variables win.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	viper.SetDefault("APP_NAME", "freight-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("TRUST_PROXY_HEADERS", false)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("BACKEND_URL", "http://localhost:8000")
	viper.SetDefault("IDENTITY_LOGIN_URL", "http://localhost:3000/login")
	viper.SetDefault("WIZARD_IDLE_TTL", "30m")
	viper.SetDefault("WIZARD_SWEEP_SCHEDULE", "@every 1m")
	viper.SetDefault("SUBMIT_RATE_PER_MINUTE", 30)
	viper.SetDefault("SUBMIT_RATE_BURST", 5)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Name:           viper.GetString("APP_NAME"),
			Port:           viper.GetString("PORT"),
			Debug:          viper.GetBool("DEBUG"),
			LogPath:        viper.GetString("LOG_PATH"),
			PublicBaseURL:  strings.TrimSuffix(viper.GetString("PUBLIC_BASE_URL"), "/"),
			AllowedOrigins: splitList(viper.GetString("ALLOWED_ORIGINS")),
			MigrationsPath: viper.GetString("MIGRATIONS_PATH"),

			TrustProxyHeaders: viper.GetBool("TRUST_PROXY_HEADERS"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimSuffix(viper.GetString("BACKEND_URL"), "/"),
		},
		Identity: IdentityConfig{
			LoginURL: viper.GetString("IDENTITY_LOGIN_URL"),
		},
		Wizard: WizardConfig{
			IdleTTL:       viper.GetDuration("WIZARD_IDLE_TTL"),
			SweepSchedule: viper.GetString("WIZARD_SWEEP_SCHEDULE"),
		},
		RateLimit: RateLimitConfig{
			SubmitPerMinute: viper.GetInt("SUBMIT_RATE_PER_MINUTE"),
			SubmitBurst:     viper.GetInt("SUBMIT_RATE_BURST"),
		},
	}

	return config, nil
}

func splitList(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
