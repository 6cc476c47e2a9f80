package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host string `envconfig:"HTTP_HOST" default:""`
	Port string `envconfig:"HTTP_PORT" default:"8080"`
}

// SMTP configures the order-notification mailer. Leaving Host empty
// disables notifications entirely.
type SMTP struct {
	Host     string `envconfig:"SMTP_HOST"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USER"`
	Password string `envconfig:"SMTP_PASS"`
	From     string `envconfig:"ORDER_EMAIL_FROM" default:"bookmart@example.com"`
	To       string `envconfig:"ORDER_EMAIL_TO"`
}

type Config struct {
	Server HTTPServer
	SMTP   SMTP
	// NotifyTimeout bounds a single notification attempt; after it the
	// attempt is treated as failed.
	NotifyTimeout time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"10s"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"info"`
}

// New reads configuration from environment variables.
func New() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
