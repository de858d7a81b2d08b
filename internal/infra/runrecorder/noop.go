package runrecorder

import (
	"context"

	"github.com/sylvanite/backup-checker/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.RunRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordRun(_ context.Context, _ domain.RunRecord) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
