package config

import (
	"os"
	"strconv"
)

const (
	smtpHostEnv      = "SMTP_HOST"
	smtpPortEnv      = "SMTP_PORT"
	smtpUsernameEnv  = "SMTP_USERNAME"
	smtpPasswordEnv  = "SMTP_PASSWORD"
	mailFromEnv      = "MAIL_FROM"
	addressDomainEnv = "MAIL_ADDRESS_DOMAIN"
	adminEmailEnv    = "ADMIN_EMAIL"

	defaultSMTPPort = 587
)

type MailConfig struct {
	Host          string
	Port          int
	Username      string
	Password      string
	From          string
	AddressDomain string
	AdminEmail    string
}

func LoadMailConfig() (*MailConfig, error) {
	port := defaultSMTPPort
	if v := os.Getenv(smtpPortEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return nil, ErrInvalidSMTPPort
		}
		port = parsed
	}

	return &MailConfig{
		Host:          os.Getenv(smtpHostEnv),
		Port:          port,
		Username:      os.Getenv(smtpUsernameEnv),
		Password:      os.Getenv(smtpPasswordEnv),
		From:          os.Getenv(mailFromEnv),
		AddressDomain: os.Getenv(addressDomainEnv),
		AdminEmail:    os.Getenv(adminEmailEnv),
	}, nil
}

// Enabled reports whether an SMTP relay is configured at all.
func (c *MailConfig) Enabled() bool {
	return c.Host != ""
}
