package domain

import "time"

// User is one account discovered on the file server, together with the
// most recently modified file found under its backup root.
type User struct {
	Username   string
	NewestPath string
	NewestDate time.Time
}

// HasBackup reports whether a newest file was found at all. A user
// without one must never reach classification; the collector excludes
// such users and surfaces a warning instead.
func (u User) HasBackup() bool {
	return !u.NewestDate.IsZero()
}
