// Package mail relays contact submissions to the portfolio owner.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"os"
	"strings"

	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/ports"
)

const defaultSendGridEndpoint = "https://api.sendgrid.com/v3/mail/send"

// SendGridMailer posts messages to the SendGrid v3 mail API.
type SendGridMailer struct {
	endpoint   string
	apiKey     string
	from       string
	httpClient *http.Client
}

// New returns the mailer described by settings, or a no-op mailer when the
// relay is disabled or its credentials are absent.
func New(settings domain.MailSettings, client *http.Client) ports.Mailer {
	if !strings.EqualFold(settings.Provider, "sendgrid") {
		return NoopMailer{}
	}
	apiKey := os.Getenv(settings.APIKeyEnv)
	from := os.Getenv(settings.FromEnv)
	if apiKey == "" || from == "" {
		return NoopMailer{}
	}
	if client == nil {
		client = &http.Client{Timeout: domain.DefaultHTTPClientTimeout}
	}
	endpoint := settings.Endpoint
	if endpoint == "" {
		endpoint = defaultSendGridEndpoint
	}
	return &SendGridMailer{endpoint: endpoint, apiKey: apiKey, from: from, httpClient: client}
}

func (m *SendGridMailer) Enabled() bool { return true }

// From returns the verified sender address.
func (m *SendGridMailer) From() string { return m.from }

func (m *SendGridMailer) Send(ctx context.Context, msg domain.MailMessage) error {
	from := msg.From
	if from == "" {
		from = m.from
	}
	payload := sendGridRequest{
		Personalizations: []sendGridPersonalization{{To: []sendGridAddress{{Email: msg.To}}}},
		From:             sendGridAddress{Email: from},
		Subject:          msg.Subject,
	}
	if msg.ReplyTo != "" {
		payload.ReplyTo = &sendGridAddress{Email: msg.ReplyTo}
	}
	if msg.Text != "" {
		payload.Content = append(payload.Content, sendGridContent{Type: "text/plain", Value: msg.Text})
	}
	if msg.HTML != "" {
		payload.Content = append(payload.Content, sendGridContent{Type: "text/html", Value: msg.HTML})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("content-type", "application/json")
	req.Header.Set("authorization", "Bearer "+m.apiKey)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: %s", resp.Status)
	}
	return nil
}

type sendGridRequest struct {
	Personalizations []sendGridPersonalization `json:"personalizations"`
	From             sendGridAddress           `json:"from"`
	ReplyTo          *sendGridAddress          `json:"reply_to,omitempty"`
	Subject          string                    `json:"subject"`
	Content          []sendGridContent         `json:"content"`
}

type sendGridPersonalization struct {
	To []sendGridAddress `json:"to"`
}

type sendGridAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// NoopMailer drops every message.
type NoopMailer struct{}

func (NoopMailer) Enabled() bool { return false }

func (NoopMailer) Send(context.Context, domain.MailMessage) error { return nil }

// ContactMessage builds the owner notification for a submission.
func ContactMessage(to string, req domain.ContactRequest) domain.MailMessage {
	name := html.EscapeString(req.Name)
	email := html.EscapeString(req.Email)
	message := strings.ReplaceAll(html.EscapeString(req.Message), "\n", "<br>")
	return domain.MailMessage{
		To:      to,
		ReplyTo: req.Email,
		Subject: "Portfolio Contact: " + req.Name,
		Text:    fmt.Sprintf("New Contact Form Submission\n\nName: %s\nEmail: %s\n\nMessage:\n%s\n", req.Name, req.Email, req.Message),
		HTML: fmt.Sprintf(`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`, name, email, message),
	}
}

var (
	_ ports.Mailer = (*SendGridMailer)(nil)
	_ ports.Mailer = NoopMailer{}
)
