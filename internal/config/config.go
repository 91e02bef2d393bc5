package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// MinSecretLength is the shortest JWT_SECRET the API accepts.
const MinSecretLength = 32

var ErrWeakSecret = fmt.Errorf("JWT_SECRET must be set to at least %d bytes", MinSecretLength)

type Config struct {
	App struct {
		Name        string   `envconfig:"APP_NAME" default:"Tempo"`
		Port        int      `envconfig:"PORT" default:"8080"`
		LogLevel    string   `envconfig:"LOG_LEVEL" default:"info"`
		CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"tempo"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		Secret   string        `envconfig:"JWT_SECRET"`
		TokenTTL time.Duration `envconfig:"JWT_TTL" default:"24h"`
	}

	Google struct {
		ClientID     string        `envconfig:"GOOGLE_CLIENT_ID"`
		ClientSecret string        `envconfig:"GOOGLE_CLIENT_SECRET"`
		RedirectURL  string        `envconfig:"GOOGLE_REDIRECT_URL" default:"http://localhost:8080/api/v1/calendar/callback"`
		Scopes       []string      `envconfig:"GOOGLE_SCOPES" default:"https://www.googleapis.com/auth/calendar.events"`
		StateTTL     time.Duration `envconfig:"GOOGLE_STATE_TTL" default:"10m"`
	}

	// Client configures the terminal client.
	Client struct {
		APIURL             string        `envconfig:"TEMPO_API_URL" default:"http://localhost:8080/api/v1"`
		Token              string        `envconfig:"TEMPO_TOKEN"`
		DateFormat         string        `envconfig:"TEMPO_DATE_FORMAT" default:"02 Jan 2006"`
		IntegrationsTarget string        `envconfig:"TEMPO_INTEGRATIONS_TARGET" default:"/settings/integrations"`
		RequestTimeout     time.Duration `envconfig:"TEMPO_REQUEST_TIMEOUT" default:"5s"`
		PollInterval       time.Duration `envconfig:"TEMPO_CONNECT_POLL_INTERVAL" default:"2s"`
		ConnectTimeout     time.Duration `envconfig:"TEMPO_CONNECT_TIMEOUT" default:"2m"`
		LogFile            string        `envconfig:"TEMPO_LOG_FILE" default:"tempo.log"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// ValidateAuth checks the token signing key. Binaries that issue or verify tokens call it
// before using Auth.Secret.
func (c *Config) ValidateAuth() error {
	if len(c.Auth.Secret) < MinSecretLength {
		return ErrWeakSecret
	}

	return nil
}

// SlogLevel maps App.LogLevel onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
