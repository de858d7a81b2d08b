package runrecorder

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/sylvanite/backup-checker/internal/domain"
)

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

// NewRecorder returns an InfluxDB-backed run recorder, or the noop
// recorder when recording is disabled or not fully configured.
func NewRecorder(ctx context.Context, cfg *Config) (domain.RunRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "run result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, run result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "run result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

func (r *influxDBRecorder) RecordRun(ctx context.Context, record domain.RunRecord) error {
	runID := record.RunID
	if runID == "" {
		runID = "default"
	}

	point := influxdb2.NewPoint(
		"backup_check_run",
		map[string]string{
			"run_id": runID,
		},
		map[string]any{
			"reference_date_unix": record.ReferenceDate.Unix(),
			"outdated_count":      record.OutdatedCount,
			"future_count":        record.FutureCount,
			"ok_count":            record.OkCount,
			"outdated_notified":   record.OutdatedNotified,
			"future_notified":     record.FutureNotified,
			"warning_count":       record.WarningCount,
			"duration_ms":         record.Duration.Milliseconds(),
		},
		time.Now(),
	)

	if err := r.writeAPI.WritePoint(ctx, point); err != nil {
		slog.WarnContext(ctx, "failed to write run result to InfluxDB",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
