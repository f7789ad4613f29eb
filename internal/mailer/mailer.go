package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/lens-order-service/internal/config"
	"github.com/SergeyBogomolovv/lens-order-service/internal/notify"

	"github.com/wneessen/go-mail"
)

type smtpMailer struct {
	client   *mail.Client
	from     string
	fromName string
}

// New returns an SMTP mailer, or a mailer that only logs when no host is configured.
func New(logger *slog.Logger, cfg config.SMTP) (notify.Mailer, error) {
	if cfg.Host == "" {
		logger.Warn("SMTP_HOST is not set, emails will only be logged")
		return NewLogMailer(logger), nil
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &smtpMailer{
		client:   client,
		from:     cfg.From,
		fromName: cfg.FromName,
	}, nil
}

func (m *smtpMailer) Send(ctx context.Context, msg notify.Message) error {
	message, err := m.build(msg)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", msg.To, err)
	}
	return nil
}

func (m *smtpMailer) build(msg notify.Message) (*mail.Msg, error) {
	message := mail.NewMsg()

	if err := message.FromFormat(m.fromName, m.from); err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}
	if err := message.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	message.Subject(msg.Subject)
	message.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		message.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}
	return message, nil
}

type logMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *logMailer {
	return &logMailer{logger: logger.With(slog.String("component", "mailer"))}
}

func (m *logMailer) Send(_ context.Context, msg notify.Message) error {
	m.logger.Info("email",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	return nil
}
