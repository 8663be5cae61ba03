package finance_mock

import (
	"context"
	"sync"

	"github.com/sandoapp/finance_service/mailer"
)

// RecorderMailer captures outgoing messages instead of sending them.
type RecorderMailer struct {
	mu       sync.Mutex
	Messages []*mailer.Message
}

func (r *RecorderMailer) Send(ctx context.Context, msg *mailer.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, msg)
	return nil
}

func (r *RecorderMailer) Last() *mailer.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Messages) == 0 {
		return nil
	}
	return r.Messages[len(r.Messages)-1]
}
