package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/sylvanite/backup-checker/internal/domain"
)

type SMTPConfig struct {
	Host          string
	Port          int
	Username      string
	Password      string
	From          string
	AddressDomain string
}

// SMTPMailer delivers mail through the configured SMTP relay. User
// addresses are derived as <username>@<address domain>.
type SMTPMailer struct {
	client        *gomail.Client
	from          string
	addressDomain string
}

func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &SMTPMailer{
		client:        client,
		from:          cfg.From,
		addressDomain: cfg.AddressDomain,
	}, nil
}

func (m *SMTPMailer) Address(user domain.User) string {
	return user.Username + "@" + m.addressDomain
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set sender %q: %w", m.from, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set recipient %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail to %q: %w", to, err)
	}
	return nil
}

func (m *SMTPMailer) Ping(ctx context.Context) error {
	if err := m.client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("dial smtp: %w", err)
	}
	return m.client.Close()
}
