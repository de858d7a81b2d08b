package config

import (
	"os"
	"strings"
)

const (
	localHomesGlobEnv    = "LOCAL_HOMES_GLOB"
	localBackupSubdirEnv = "LOCAL_BACKUP_SUBDIR"

	domainHomesGlobEnv    = "DOMAIN_HOMES_GLOB"
	domainBackupSubdirEnv = "DOMAIN_BACKUP_SUBDIR"

	excludeUsersEnv = "EXCLUDE_USERS"

	// Synology DSM home layouts. The local glob skips service homes
	// starting with '@' and hidden entries; domain homes live one
	// level deeper, keyed by the directory service domain.
	defaultLocalHomesGlob    = "/volume1/homes/[^@.]*"
	defaultLocalBackupSubdir = "Drive/Backup"

	defaultDomainHomesGlob    = "/volume1/homes/@DH-D/*/*"
	defaultDomainBackupSubdir = "Drive/Backup"
)

// DetectionRule mirrors collector.Rule so the config package stays free
// of service imports; cmd maps one onto the other.
type DetectionRule struct {
	Name         string
	HomeDirsGlob string
	BackupSubdir string
}

type DetectionConfig struct {
	Rules        []DetectionRule
	ExcludeUsers []string
}

func LoadDetectionConfig() *DetectionConfig {
	cfg := &DetectionConfig{
		Rules: []DetectionRule{
			{
				Name:         "local",
				HomeDirsGlob: getEnvOrDefault(localHomesGlobEnv, defaultLocalHomesGlob),
				BackupSubdir: getEnvOrDefault(localBackupSubdirEnv, defaultLocalBackupSubdir),
			},
			{
				Name:         "domain",
				HomeDirsGlob: getEnvOrDefault(domainHomesGlobEnv, defaultDomainHomesGlob),
				BackupSubdir: getEnvOrDefault(domainBackupSubdirEnv, defaultDomainBackupSubdir),
			},
		},
	}

	if v := os.Getenv(excludeUsersEnv); v != "" {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.ExcludeUsers = append(cfg.ExcludeUsers, name)
			}
		}
	}

	return cfg
}
