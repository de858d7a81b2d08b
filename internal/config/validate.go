package config

// ValidateForRun rejects configurations that would only fail midway
// through a check run. Mail settings are required exactly when
// something will be sent: user notifications or an admin report copy.
func ValidateForRun(cfg *Config) error {
	needsMail := cfg.Check.NotifyUsers || cfg.Mail.AdminEmail != ""
	if !needsMail {
		return nil
	}

	if cfg.Mail.Host == "" {
		return ErrSMTPHostMissing
	}
	if cfg.Mail.From == "" {
		return ErrMailFromMissing
	}
	if cfg.Check.NotifyUsers && cfg.Mail.AddressDomain == "" {
		return ErrAddressDomainMissing
	}
	return nil
}
