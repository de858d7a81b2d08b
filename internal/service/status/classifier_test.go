package status

import (
	"testing"
	"time"

	"github.com/sylvanite/backup-checker/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestClassifier_Classify(t *testing.T) {
	day := 24 * time.Hour
	referenceDate := date(2023, time.August, 10)

	tests := []struct {
		name            string
		newestDate      time.Time
		tolOutdated     time.Duration
		tolFuture       time.Duration
		excludeWeekends bool
		want            domain.Status
	}{
		{
			name:        "fresh backup is ok",
			newestDate:  date(2023, time.August, 9),
			tolOutdated: 5 * day,
			tolFuture:   day,
			want:        domain.StatusOk,
		},
		{
			name:        "backup exactly at tolerance is still ok",
			newestDate:  date(2023, time.August, 5),
			tolOutdated: 5 * day,
			tolFuture:   day,
			want:        domain.StatusOk,
		},
		{
			name:        "one second past tolerance is outdated",
			newestDate:  date(2023, time.August, 5).Add(-time.Second),
			tolOutdated: 5 * day,
			tolFuture:   day,
			want:        domain.StatusOutdated,
		},
		{
			name:            "five business days across a weekend are exactly at tolerance",
			newestDate:      date(2023, time.August, 3), // Thu; Aug 10 is the following Thu
			tolOutdated:     5 * day,
			tolFuture:       day,
			excludeWeekends: true,
			want:            domain.StatusOk,
		},
		{
			name:            "six business days exceed the tolerance",
			newestDate:      date(2023, time.August, 2),
			tolOutdated:     5 * day,
			tolFuture:       day,
			excludeWeekends: true,
			want:            domain.StatusOutdated,
		},
		{
			name:        "timestamp exactly at future tolerance is ok",
			newestDate:  date(2023, time.August, 11),
			tolOutdated: 5 * day,
			tolFuture:   day,
			want:        domain.StatusOk,
		},
		{
			name:        "timestamp beyond future tolerance is future",
			newestDate:  date(2023, time.August, 12),
			tolOutdated: 5 * day,
			tolFuture:   day,
			want:        domain.StatusFuture,
		},
		{
			name:        "far future timestamp",
			newestDate:  date(2030, time.January, 1),
			tolOutdated: 5 * day,
			tolFuture:   day,
			want:        domain.StatusFuture,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(referenceDate, tt.tolOutdated, tt.tolFuture, tt.excludeWeekends)
			u := domain.User{Username: "u", NewestPath: "/u", NewestDate: tt.newestDate}

			if got := c.Classify(u); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

// With negative tolerances both predicates can hold for one timestamp.
// The documented contract is that Future wins in that case.
func TestClassifier_FuturePrecedence(t *testing.T) {
	referenceDate := date(2023, time.August, 10)
	c := NewClassifier(referenceDate, -time.Hour, -time.Hour, false)
	u := domain.User{Username: "u", NewestPath: "/u", NewestDate: referenceDate}

	if !c.IsOutdated(u) || !c.IsInFuture(u) {
		t.Fatalf("expected both predicates to hold, IsOutdated=%v IsInFuture=%v", c.IsOutdated(u), c.IsInFuture(u))
	}
	if got := c.Classify(u); got != domain.StatusFuture {
		t.Errorf("Classify() = %v, want %v", got, domain.StatusFuture)
	}
}
