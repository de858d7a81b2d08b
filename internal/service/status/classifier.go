package status

import (
	"time"

	"github.com/sylvanite/backup-checker/internal/domain"
	"github.com/sylvanite/backup-checker/internal/service/clock"
)

// Classifier decides the freshness status of a user relative to a fixed
// reference date. It holds no mutable state; every predicate is a pure
// function of the user's newest timestamp.
type Classifier struct {
	referenceDate     time.Time
	toleranceOutdated time.Duration
	toleranceFuture   time.Duration
	excludeWeekends   bool
}

func NewClassifier(referenceDate time.Time, toleranceOutdated, toleranceFuture time.Duration, excludeWeekends bool) *Classifier {
	return &Classifier{
		referenceDate:     referenceDate,
		toleranceOutdated: toleranceOutdated,
		toleranceFuture:   toleranceFuture,
		excludeWeekends:   excludeWeekends,
	}
}

// IsOutdated reports whether the user's newest backup activity is older
// than the tolerance. Strictly greater-than: a backup exactly at the
// tolerance boundary is still fresh.
func (c *Classifier) IsOutdated(u domain.User) bool {
	return clock.Diff(u.NewestDate, c.referenceDate, c.excludeWeekends) > c.toleranceOutdated
}

// IsInFuture reports whether the user's newest timestamp lies beyond
// the reference date plus tolerance, typically a clock-skew symptom.
func (c *Classifier) IsInFuture(u domain.User) bool {
	return clock.Diff(c.referenceDate, u.NewestDate, c.excludeWeekends) > c.toleranceFuture
}

// Classify assigns exactly one status. Future takes precedence over
// Outdated when both predicates hold for the same timestamp; Ok means
// member of neither set.
func (c *Classifier) Classify(u domain.User) domain.Status {
	switch {
	case c.IsInFuture(u):
		return domain.StatusFuture
	case c.IsOutdated(u):
		return domain.StatusOutdated
	default:
		return domain.StatusOk
	}
}

func (c *Classifier) ReferenceDate() time.Time {
	return c.referenceDate
}

func (c *Classifier) ToleranceOutdated() time.Duration {
	return c.toleranceOutdated
}

func (c *Classifier) ExcludeWeekends() bool {
	return c.excludeWeekends
}
