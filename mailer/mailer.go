package mailer

import (
	"context"
	"log/slog"
)

// Message is one transactional email rendered from a template.
type Message struct {
	To         string
	Subject    string
	TemplateID int
	Params     map[string]string
}

type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

type logMailer struct{}

// NewLogMailer returns a Mailer that only logs. Used when no
// transactional email provider is configured.
func NewLogMailer() Mailer {
	return &logMailer{}
}

func (m *logMailer) Send(ctx context.Context, msg *Message) error {
	slog.Info("mail send skipped, no provider configured",
		"to", msg.To,
		"subject", msg.Subject,
		"template_id", msg.TemplateID,
	)
	return nil
}
