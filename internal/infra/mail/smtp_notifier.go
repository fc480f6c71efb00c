// Package mail delivers outbound notifications over SMTP.
package mail

import (
	"context"
	"crypto/tls"
	"log/slog"

	gomail "github.com/go-mail/mail"
	"go.uber.org/fx"

	"directorio/config"
	"directorio/internal/domain/service"
	"directorio/internal/errors"
)

// Params defines the parameters required for the notifier
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// dialer is the part of *gomail.Dialer the notifier uses.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// smtpNotifier sends plain text mails through a single SMTP account.
type smtpNotifier struct {
	from   string
	dialer dialer
	logger *slog.Logger
}

// noopNotifier logs instead of sending when mail is disabled.
type noopNotifier struct {
	logger *slog.Logger
}

// New returns an SMTP notifier, or a logging no-op when mail.enabled is false.
func New(params Params) service.Notifier {
	cfg := params.Config.Mail
	if cfg == nil || !cfg.Enabled {
		return &noopNotifier{logger: params.Logger}
	}

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	d.TLSConfig = &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}
	d.SSL = cfg.SSL

	from := cfg.From
	if from == "" {
		from = cfg.User
	}

	return &smtpNotifier{
		from:   from,
		dialer: d,
		logger: params.Logger,
	}
}

func (n *smtpNotifier) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		return errors.Wrapf(err, "smtp send to %s", to)
	}

	n.logger.DebugContext(ctx, "Mail sent", slog.String("to", to), slog.String("subject", subject))

	return nil
}

func (n *noopNotifier) Send(ctx context.Context, to, subject, _ string) error {
	n.logger.DebugContext(ctx, "Mail disabled, skipping", slog.String("to", to), slog.String("subject", subject))

	return nil
}
