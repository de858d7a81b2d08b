package config

import "errors"

var (
	ErrInvalidSMTPPort      = errors.New("SMTP_PORT must be a positive integer")
	ErrSMTPHostMissing      = errors.New("SMTP_HOST is required when notifications are enabled")
	ErrMailFromMissing      = errors.New("MAIL_FROM is required when notifications are enabled")
	ErrAddressDomainMissing = errors.New("MAIL_ADDRESS_DOMAIN is required when user notifications are enabled")
)
