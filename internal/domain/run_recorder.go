package domain

import (
	"context"
	"time"
)

// RunRecord is the write-only telemetry of one completed check run.
// It is never read back: the scheduling engine reconstructs all of its
// decisions from timestamps alone.
type RunRecord struct {
	RunID            string
	ReferenceDate    time.Time
	OutdatedCount    int
	FutureCount      int
	OkCount          int
	OutdatedNotified int
	FutureNotified   int
	WarningCount     int
	Duration         time.Duration
}

type RunRecorder interface {
	RecordRun(ctx context.Context, record RunRecord) error
	Close() error
}
