package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	ProviderMailjet = "mailjet"
	ProviderSMTP    = "smtp"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Sender identity and the business inbox that receives every
	// notification. Missing either one aborts startup.
	FromEmail string `env:"FROM_EMAIL,required"`
	FromName  string `env:"FROM_NAME" envDefault:"Septic Cheetah"`
	ToEmail   string `env:"TO_EMAIL,required"`

	MailProvider string `env:"MAIL_PROVIDER" envDefault:"mailjet"`

	MailjetAPIKey    string `env:"MAILJET_API_KEY"`
	MailjetAPISecret string `env:"MAILJET_API_SECRET"`

	SMTPHost string `env:"SMTP_HOST"`
	SMTPPort int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`

	// Published contact details shown in customer confirmation emails.
	BusinessName  string `env:"BUSINESS_NAME" envDefault:"Septic Cheetah"`
	BusinessPhone string `env:"BUSINESS_PHONE" envDefault:"(512) 969-9655"`
	BusinessEmail string `env:"BUSINESS_EMAIL" envDefault:"office@septiccheetah.com"`

	// Optional extras; empty disables the feature.
	DatabaseURL string `env:"DATABASE_URL"`
	AMQPURL     string `env:"AMQP_URL"`
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}

// Validate enforces the provider-specific credentials at startup, so a
// misconfigured process refuses traffic instead of failing per request.
func (c *Config) Validate() error {
	switch c.MailProvider {
	case ProviderMailjet:
		if c.MailjetAPIKey == "" || c.MailjetAPISecret == "" {
			return fmt.Errorf("MAILJET_API_KEY and MAILJET_API_SECRET are required when MAIL_PROVIDER=mailjet")
		}
	case ProviderSMTP:
		if c.SMTPHost == "" {
			return fmt.Errorf("SMTP_HOST is required when MAIL_PROVIDER=smtp")
		}
	default:
		return fmt.Errorf("unknown MAIL_PROVIDER %q", c.MailProvider)
	}

	return nil
}
