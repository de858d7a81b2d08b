package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const checkMeterName = "backup.check"

type CheckMetrics struct {
	usersClassified metric.Int64Counter
	mailsSent       metric.Int64Counter
	runDuration     metric.Float64Histogram
}

func NewCheckMetrics() (*CheckMetrics, error) {
	meter := otel.Meter(checkMeterName)

	usersClassified, err := meter.Int64Counter(
		"backup_check_users_total",
		metric.WithDescription("Users classified, by status"),
		metric.WithUnit("{user}"),
	)
	if err != nil {
		return nil, err
	}

	mailsSent, err := meter.Int64Counter(
		"backup_check_mails_sent_total",
		metric.WithDescription("Reminder mails sent, by kind"),
		metric.WithUnit("{mail}"),
	)
	if err != nil {
		return nil, err
	}

	runDuration, err := meter.Float64Histogram(
		"backup_check_run_duration_seconds",
		metric.WithDescription("Duration of one full check run"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120,
		),
	)
	if err != nil {
		return nil, err
	}

	return &CheckMetrics{
		usersClassified: usersClassified,
		mailsSent:       mailsSent,
		runDuration:     runDuration,
	}, nil
}

func (m *CheckMetrics) RecordClassified(ctx context.Context, status string, count int) {
	m.usersClassified.Add(ctx, int64(count),
		metric.WithAttributes(attribute.String("status", status)),
	)
}

func (m *CheckMetrics) RecordMailsSent(ctx context.Context, kind string, count int) {
	m.mailsSent.Add(ctx, int64(count),
		metric.WithAttributes(attribute.String("kind", kind)),
	)
}

func (m *CheckMetrics) RecordRunDuration(ctx context.Context, d time.Duration) {
	m.runDuration.Record(ctx, d.Seconds())
}
