package domain

// Status is the backup-freshness classification of a user relative to a
// reference date. Exactly one status holds per user and run.
type Status string

const (
	StatusOk       Status = "ok"
	StatusOutdated Status = "outdated"
	StatusFuture   Status = "future"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsOk() bool {
	return s == StatusOk
}

func (s Status) IsOutdated() bool {
	return s == StatusOutdated
}

func (s Status) IsFuture() bool {
	return s == StatusFuture
}
