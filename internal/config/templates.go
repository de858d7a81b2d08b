package config

const (
	adminReportTemplateEnv  = "ADMIN_REPORT_TEMPLATE"
	mailOutdatedTemplateEnv = "MAIL_OUTDATED_TEMPLATE"
	mailFutureTemplateEnv   = "MAIL_FUTURE_TEMPLATE"
	subjectOutdatedEnv      = "SUBJECT_OUTDATED"
	subjectFutureEnv        = "SUBJECT_FUTURE"
	subjectAdminEnv         = "SUBJECT_ADMIN"
)

const defaultAdminReportTemplate = `Outdated users:
{outdated_users}


Users with future files:
{future_users}


OK users:
{ok_users}


For an explanation of each position see the backup-checker documentation.
`

const defaultMailOutdatedTemplate = `Dear user,

Your backup is outdated.

- Date of last backup:  {date_last_backup}  ({outdated_days} outdated)

Best regards,
backup-checker
`

const defaultMailFutureTemplate = `Dear user,

Your backup contains at least one file whose modification time lies in the future.

- File:  {path}
- Modification Time:  {date}

Because of this file, your backup can not be validated correctly.

Best regards,
backup-checker
`

type TemplateConfig struct {
	AdminReport     string
	MailOutdated    string
	MailFuture      string
	SubjectOutdated string
	SubjectFuture   string
	SubjectAdmin    string
}

func LoadTemplateConfig() *TemplateConfig {
	return &TemplateConfig{
		AdminReport:     getEnvOrDefault(adminReportTemplateEnv, defaultAdminReportTemplate),
		MailOutdated:    getEnvOrDefault(mailOutdatedTemplateEnv, defaultMailOutdatedTemplate),
		MailFuture:      getEnvOrDefault(mailFutureTemplateEnv, defaultMailFutureTemplate),
		SubjectOutdated: getEnvOrDefault(subjectOutdatedEnv, "Outdated backup"),
		SubjectFuture:   getEnvOrDefault(subjectFutureEnv, "Backup contains file with future timestamp"),
		SubjectAdmin:    getEnvOrDefault(subjectAdminEnv, "Backup status report"),
	}
}
