package app

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	SecretKey string        `envconfig:"SECRET_KEY" required:"true"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"1h"`

	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	AppDomain       string `envconfig:"APP_DOMAIN" default:"localhost:8080"`

	AnafAPIURL      string        `envconfig:"ANAF_API_URL" required:"true"`
	EmailAPIURL     string        `envconfig:"EMAIL_API_URL" required:"true"`
	SMSAPIURL       string        `envconfig:"SMS_API_URL" required:"true"`
	WhatsAppAPIURL  string        `envconfig:"WHATSAPP_API_URL" required:"true"`
	UpstreamTimeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`

	GotenbergURL string `envconfig:"GOTENBERG_URL" default:"http://127.0.0.1:3000"`
	PDFDir       string `envconfig:"PDF_DIR" default:"."`
}

// LoadConfig reads configuration from environment variables. Missing secrets
// abort startup; the server never runs with an empty signing key.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.SecretKey == "" {
		return nil, errors.New("signing secret must be provided")
	}
	if cfg.StripeSecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
