package check

import "time"

// Result summarizes one completed check run.
type Result struct {
	RunID            string        `json:"run_id"`
	ReferenceDate    time.Time     `json:"reference_date"`
	Report           string        `json:"-"`
	OutdatedCount    int           `json:"outdated_count"`
	FutureCount      int           `json:"future_count"`
	OkCount          int           `json:"ok_count"`
	OutdatedNotified int           `json:"outdated_notified"`
	FutureNotified   int           `json:"future_notified"`
	Warnings         []string      `json:"warnings,omitempty"`
	Duration         time.Duration `json:"-"`
}
