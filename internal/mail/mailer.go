package mail

import (
	"context"

	"github.com/sylvanite/backup-checker/internal/domain"
)

//go:generate mockgen -source=mailer.go -destination=mock.go -package=mail

// Mailer is the notification sink. Send failures are not retried here;
// the stateless reminder math makes the next business day retry them
// naturally.
type Mailer interface {
	// Address resolves the delivery address for a user.
	Address(user domain.User) string
	// Send delivers one fully rendered message.
	Send(ctx context.Context, to, subject, body string) error
	// Ping verifies the transport is reachable.
	Ping(ctx context.Context) error
}
