package domain

import "errors"

var (
	// ErrNoUsers is returned when a check run discovers no users at
	// all; the process maps it to exit code 2.
	ErrNoUsers = errors.New("no users found")

	// ErrDuplicateUsername is returned when two distinct home
	// directories resolve to the same username. Ambiguous identities
	// are never merged.
	ErrDuplicateUsername = errors.New("duplicate username")

	// ErrMissingPlaceholder is returned when a report or mail template
	// lacks one of its required placeholders.
	ErrMissingPlaceholder = errors.New("template is missing required placeholder")

	// ErrIntervalNotWholeDays is returned at scheduler construction
	// when the reminder interval is not a positive whole-day multiple.
	ErrIntervalNotWholeDays = errors.New("reminder interval must be a positive whole-day multiple")
)
