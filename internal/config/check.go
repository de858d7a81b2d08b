package config

import (
	"os"
	"time"
)

const (
	toleranceOutdatedEnv = "TOLERANCE_OUTDATED"
	toleranceFutureEnv   = "TOLERANCE_FUTURE"
	excludeWeekendsEnv   = "EXCLUDE_WEEKENDS"
	reminderIntervalEnv  = "REMINDER_INTERVAL"
	notifyUsersEnv       = "NOTIFY_USERS"

	defaultToleranceOutdated = 120 * time.Hour // five days
	defaultToleranceFuture   = 24 * time.Hour
	defaultReminderInterval  = 24 * time.Hour
)

type CheckConfig struct {
	ToleranceOutdated time.Duration
	ToleranceFuture   time.Duration
	ExcludeWeekends   bool
	ReminderInterval  time.Duration
	NotifyUsers       bool
}

func LoadCheckConfig() *CheckConfig {
	return &CheckConfig{
		ToleranceOutdated: getEnvDuration(toleranceOutdatedEnv, defaultToleranceOutdated),
		ToleranceFuture:   getEnvDuration(toleranceFutureEnv, defaultToleranceFuture),
		ExcludeWeekends:   getEnvBool(excludeWeekendsEnv, true),
		ReminderInterval:  getEnvDuration(reminderIntervalEnv, defaultReminderInterval),
		NotifyUsers:       getEnvBool(notifyUsersEnv, false),
	}
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}
