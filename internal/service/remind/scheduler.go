package remind

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sylvanite/backup-checker/internal/domain"
	"github.com/sylvanite/backup-checker/internal/mail"
	"github.com/sylvanite/backup-checker/internal/service/clock"
	"github.com/sylvanite/backup-checker/internal/service/status"
)

// Placeholders for the per-user mail templates.
const (
	PlaceholderDateLastBackup = "{date_last_backup}"
	PlaceholderOutdatedDays   = "{outdated_days}"
	PlaceholderPath           = "{path}"
	PlaceholderDate           = "{date}"
)

const day = 24 * time.Hour

// Scheduler decides, without any persisted sent-state, which users are
// due a notification on the reporter's reference date. The decision is
// reconstructed from timestamps alone, so running once per business day
// yields "first reminder on the day the tolerance is exceeded, then
// every interval business days" without a database.
type Scheduler struct {
	reporter *status.Reporter
	mailer   mail.Mailer
	interval time.Duration
}

// NewScheduler validates the reminder interval up front: anything that
// is not a positive whole-day multiple desynchronizes the cadence and
// is rejected as a configuration error.
func NewScheduler(reporter *status.Reporter, mailer mail.Mailer, interval time.Duration) (*Scheduler, error) {
	if interval <= 0 || interval%day != 0 {
		return nil, fmt.Errorf("%w: got %s", domain.ErrIntervalNotWholeDays, interval)
	}
	return &Scheduler{
		reporter: reporter,
		mailer:   mailer,
		interval: interval,
	}, nil
}

// suppressed reports whether this whole run falls on non-business time.
// On weekend reference dates no notification is computed at all.
func (s *Scheduler) suppressed() bool {
	c := s.reporter.Classifier()
	return c.ExcludeWeekends() && clock.IsWeekend(c.ReferenceDate())
}

// FutureRecipients returns every future-dated user; such notices go out
// every day the condition holds.
func (s *Scheduler) FutureRecipients() []domain.User {
	if s.suppressed() {
		return nil
	}
	return s.reporter.FutureUsers()
}

// OutdatedRecipients returns the outdated users whose reminder is due
// on the reference date.
func (s *Scheduler) OutdatedRecipients() []domain.User {
	if s.suppressed() {
		return nil
	}
	var due []domain.User
	for _, u := range s.reporter.OutdatedUsers() {
		if s.isMailDue(u) {
			due = append(due, u)
		}
	}
	return due
}

// isMailDue reconstructs the user's first-reminder day D0 from scratch:
// the first calendar day on which the backup age exceeds the tolerance.
// The reminder is due on D0 itself and every interval of elapsed
// business days after it, forever.
func (s *Scheduler) isMailDue(u domain.User) bool {
	c := s.reporter.Classifier()
	tolerance := c.ToleranceOutdated()
	excl := c.ExcludeWeekends()

	probe := u.NewestDate
	for clock.Diff(u.NewestDate, probe, excl) <= tolerance {
		probe = probe.AddDate(0, 0, 1)
	}
	d0 := truncateToDay(probe)
	ref := truncateToDay(c.ReferenceDate())

	switch {
	case ref.Before(d0):
		return false
	case ref.Equal(d0):
		return true
	default:
		elapsed := clock.Diff(d0, ref, excl)
		return elapsed%s.interval == 0
	}
}

// NotifyOutdatedRecipients renders and sends one reminder per due
// outdated user, in username order. The template must contain the
// last-backup-date and outdated-duration placeholders; a send failure
// aborts immediately and propagates. Returns the number of mails sent.
func (s *Scheduler) NotifyOutdatedRecipients(ctx context.Context, subject, template string) (int, error) {
	if err := requirePlaceholders(template, PlaceholderDateLastBackup, PlaceholderOutdatedDays); err != nil {
		return 0, err
	}

	c := s.reporter.Classifier()
	sent := 0
	for _, u := range s.OutdatedRecipients() {
		outdatedFor := clock.Diff(u.NewestDate, c.ReferenceDate(), c.ExcludeWeekends())
		body := template
		body = strings.ReplaceAll(body, PlaceholderDateLastBackup, u.NewestDate.Format("2006-01-02"))
		body = strings.ReplaceAll(body, PlaceholderOutdatedDays, formatOutdatedDays(outdatedFor, c.ExcludeWeekends()))

		if err := s.send(ctx, u, subject, body); err != nil {
			return sent, fmt.Errorf("notify outdated user %q: %w", u.Username, err)
		}
		sent++
	}
	return sent, nil
}

// NotifyFutureRecipients renders and sends one future-file notice per
// future-dated user, in username order.
func (s *Scheduler) NotifyFutureRecipients(ctx context.Context, subject, template string) (int, error) {
	if err := requirePlaceholders(template, PlaceholderPath, PlaceholderDate); err != nil {
		return 0, err
	}

	sent := 0
	for _, u := range s.FutureRecipients() {
		body := template
		body = strings.ReplaceAll(body, PlaceholderPath, u.NewestPath)
		body = strings.ReplaceAll(body, PlaceholderDate, u.NewestDate.Format("2006-01-02"))

		if err := s.send(ctx, u, subject, body); err != nil {
			return sent, fmt.Errorf("notify future user %q: %w", u.Username, err)
		}
		sent++
	}
	return sent, nil
}

func (s *Scheduler) send(ctx context.Context, u domain.User, subject, body string) error {
	to := s.mailer.Address(u)
	if err := s.mailer.Send(ctx, to, subject, body); err != nil {
		return err
	}
	slog.DebugContext(ctx, "notification sent",
		slog.String("username", u.Username),
		slog.String("subject", subject),
	)
	return nil
}

func formatOutdatedDays(d time.Duration, excludeWeekends bool) string {
	unit := "days"
	if excludeWeekends {
		unit = "weekdays"
	}
	return fmt.Sprintf("%d %s", int(d/day), unit)
}

func requirePlaceholders(template string, placeholders ...string) error {
	for _, placeholder := range placeholders {
		if !strings.Contains(template, placeholder) {
			return fmt.Errorf("%w: %s", domain.ErrMissingPlaceholder, placeholder)
		}
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
