package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sandoapp/finance_service/configs"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

type brevoMailer struct {
	apiKey      string
	senderName  string
	senderEmail string
	endpoint    string
	client      *http.Client
}

func NewBrevoMailer(cfg *configs.MailConfig) Mailer {
	return &brevoMailer{
		apiKey:      cfg.BrevoAPIKey,
		senderName:  cfg.SenderName,
		senderEmail: cfg.SenderEmail,
		endpoint:    brevoEndpoint,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type brevoRecipient struct {
	Email string `json:"email"`
}

type brevoSender struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type brevoPayload struct {
	Sender     brevoSender       `json:"sender"`
	To         []brevoRecipient  `json:"to"`
	Subject    string            `json:"subject"`
	TemplateID int               `json:"templateId"`
	Params     map[string]string `json:"params,omitempty"`
}

func (m *brevoMailer) Send(ctx context.Context, msg *Message) error {
	payload := brevoPayload{
		Sender: brevoSender{
			Name:  m.senderName,
			Email: m.senderEmail,
		},
		To:         []brevoRecipient{{Email: msg.To}},
		Subject:    msg.Subject,
		TemplateID: msg.TemplateID,
		Params:     msg.Params,
	}

	body, err := json.Marshal(&payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("brevo send failed with status %d: %s", resp.StatusCode, string(detail))
	}

	return nil
}
