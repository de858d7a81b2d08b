package check

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sylvanite/backup-checker/internal/collector"
	"github.com/sylvanite/backup-checker/internal/config"
	"github.com/sylvanite/backup-checker/internal/domain"
	"github.com/sylvanite/backup-checker/internal/mail"
	"github.com/sylvanite/backup-checker/internal/observability/metrics"
	"github.com/sylvanite/backup-checker/internal/service/remind"
	"github.com/sylvanite/backup-checker/internal/service/status"
)

// Service runs one full audit: collect users, classify, render the
// aggregate report, send due notifications, record the run. Every run
// is independent; nothing is carried over between invocations.
type Service struct {
	collector    *collector.Collector
	mailer       mail.Mailer
	recorder     domain.RunRecorder
	checkMetrics *metrics.CheckMetrics
	cfg          *config.Config
}

func NewService(
	coll *collector.Collector,
	mailer mail.Mailer,
	recorder domain.RunRecorder,
	checkMetrics *metrics.CheckMetrics,
	cfg *config.Config,
) *Service {
	return &Service{
		collector:    coll,
		mailer:       mailer,
		recorder:     recorder,
		checkMetrics: checkMetrics,
		cfg:          cfg,
	}
}

// Run audits all users against referenceDate. It returns ErrNoUsers
// when the collection is empty (the caller maps that to exit code 2)
// and propagates notification failures after reporting how far it got.
func (s *Service) Run(ctx context.Context, referenceDate time.Time) (*Result, error) {
	runID := uuid.NewString()
	start := time.Now()

	slog.InfoContext(ctx, "starting backup check",
		slog.String("run_id", runID),
		slog.Time("reference_date", referenceDate),
		slog.Bool("exclude_weekends", s.cfg.Check.ExcludeWeekends),
	)

	users, warnings, err := s.collector.Collect(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "user collection failed",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	for _, warning := range warnings {
		slog.WarnContext(ctx, warning, slog.String("run_id", runID))
	}
	if len(users) == 0 {
		return nil, domain.ErrNoUsers
	}

	reporter := status.NewReporter(
		users,
		referenceDate,
		s.cfg.Check.ToleranceOutdated,
		s.cfg.Check.ToleranceFuture,
		s.cfg.Check.ExcludeWeekends,
	)

	report, err := reporter.Render(s.cfg.Templates.AdminReport)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:         runID,
		ReferenceDate: referenceDate,
		Report:        report,
		OutdatedCount: len(reporter.OutdatedUsers()),
		FutureCount:   len(reporter.FutureUsers()),
		OkCount:       len(reporter.OkUsers()),
		Warnings:      warnings,
	}

	if s.checkMetrics != nil {
		s.checkMetrics.RecordClassified(ctx, domain.StatusOutdated.String(), result.OutdatedCount)
		s.checkMetrics.RecordClassified(ctx, domain.StatusFuture.String(), result.FutureCount)
		s.checkMetrics.RecordClassified(ctx, domain.StatusOk.String(), result.OkCount)
	}

	if s.cfg.Check.NotifyUsers {
		if err := s.notify(ctx, reporter, result); err != nil {
			result.Duration = time.Since(start)
			return result, err
		}
	}

	if err := s.notifyAdmin(ctx, result); err != nil {
		result.Duration = time.Since(start)
		return result, err
	}

	result.Duration = time.Since(start)
	if s.checkMetrics != nil {
		s.checkMetrics.RecordRunDuration(ctx, result.Duration)
	}

	s.record(ctx, result)

	slog.InfoContext(ctx, "backup check completed",
		slog.String("run_id", runID),
		slog.Int("outdated_count", result.OutdatedCount),
		slog.Int("future_count", result.FutureCount),
		slog.Int("ok_count", result.OkCount),
		slog.Int("outdated_notified", result.OutdatedNotified),
		slog.Int("future_notified", result.FutureNotified),
		slog.Int("warning_count", len(result.Warnings)),
		slog.Duration("duration", result.Duration),
	)

	return result, nil
}

func (s *Service) notify(ctx context.Context, reporter *status.Reporter, result *Result) error {
	scheduler, err := remind.NewScheduler(reporter, s.mailer, s.cfg.Check.ReminderInterval)
	if err != nil {
		return err
	}

	sent, err := scheduler.NotifyOutdatedRecipients(ctx, s.cfg.Templates.SubjectOutdated, s.cfg.Templates.MailOutdated)
	result.OutdatedNotified = sent
	if s.checkMetrics != nil {
		s.checkMetrics.RecordMailsSent(ctx, "outdated", sent)
	}
	if err != nil {
		return err
	}

	sent, err = scheduler.NotifyFutureRecipients(ctx, s.cfg.Templates.SubjectFuture, s.cfg.Templates.MailFuture)
	result.FutureNotified = sent
	if s.checkMetrics != nil {
		s.checkMetrics.RecordMailsSent(ctx, "future", sent)
	}
	return err
}

// notifyAdmin mails the rendered report, warnings appended, to the
// configured admin address. One-shot mode additionally prints the same
// text to stdout; that part lives in cmd.
func (s *Service) notifyAdmin(ctx context.Context, result *Result) error {
	if s.cfg.Mail.AdminEmail == "" || s.mailer == nil {
		return nil
	}
	body := result.ReportWithLog()
	if err := s.mailer.Send(ctx, s.cfg.Mail.AdminEmail, s.cfg.Templates.SubjectAdmin, body); err != nil {
		return fmt.Errorf("send admin report: %w", err)
	}
	return nil
}

func (s *Service) record(ctx context.Context, result *Result) {
	if s.recorder == nil {
		return
	}
	record := domain.RunRecord{
		RunID:            result.RunID,
		ReferenceDate:    result.ReferenceDate,
		OutdatedCount:    result.OutdatedCount,
		FutureCount:      result.FutureCount,
		OkCount:          result.OkCount,
		OutdatedNotified: result.OutdatedNotified,
		FutureNotified:   result.FutureNotified,
		WarningCount:     len(result.Warnings),
		Duration:         result.Duration,
	}
	if err := s.recorder.RecordRun(ctx, record); err != nil {
		slog.WarnContext(ctx, "failed to record run result",
			slog.String("run_id", result.RunID),
			slog.String("error", err.Error()),
		)
	}
}

// ReportWithLog appends the collector warnings to the rendered report
// the way the admin protocol expects them.
func (r *Result) ReportWithLog() string {
	if len(r.Warnings) == 0 {
		return r.Report
	}
	var b strings.Builder
	b.WriteString(r.Report)
	b.WriteString("\n\nLog:\n")
	for _, warning := range r.Warnings {
		b.WriteString("- ")
		b.WriteString(warning)
		b.WriteString("\n")
	}
	return b.String()
}
