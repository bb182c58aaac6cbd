package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tifan9/termfolio/internal/domain"
)

func TestNewReturnsNoopWithoutCredentials(t *testing.T) {
	t.Setenv("TEST_SG_KEY", "")
	mailer := New(domain.MailSettings{Provider: "sendgrid", APIKeyEnv: "TEST_SG_KEY", FromEnv: "TEST_SG_FROM"}, nil)
	assert.False(t, mailer.Enabled())

	mailer = New(domain.MailSettings{Provider: "none"}, nil)
	assert.False(t, mailer.Enabled())
}

func TestSendGridMailerSend(t *testing.T) {
	var captured sendGridRequest
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	t.Setenv("TEST_SG_KEY", "SG.key")
	t.Setenv("TEST_SG_FROM", "noreply@example.com")
	mailer := New(domain.MailSettings{
		Provider:  "sendgrid",
		Endpoint:  server.URL,
		APIKeyEnv: "TEST_SG_KEY",
		FromEnv:   "TEST_SG_FROM",
	}, server.Client())
	require.True(t, mailer.Enabled())

	msg := ContactMessage("owner@example.com", domain.ContactRequest{Name: "Ana", Email: "ana@example.com", Message: "Hi <there>"})
	require.NoError(t, mailer.Send(context.Background(), msg))

	assert.Equal(t, "Bearer SG.key", auth)
	assert.Equal(t, "Portfolio Contact: Ana", captured.Subject)
	assert.Equal(t, "noreply@example.com", captured.From.Email)
	require.NotNil(t, captured.ReplyTo)
	assert.Equal(t, "ana@example.com", captured.ReplyTo.Email)
	assert.Equal(t, "owner@example.com", captured.Personalizations[0].To[0].Email)
	require.Len(t, captured.Content, 2)
	assert.True(t, strings.Contains(captured.Content[1].Value, "Hi &lt;there&gt;"))
}

func TestSendGridMailerErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	mailer := &SendGridMailer{endpoint: server.URL, apiKey: "k", from: "f@example.com", httpClient: server.Client()}
	err := mailer.Send(context.Background(), domain.MailMessage{To: "x@example.com", Subject: "s", Text: "t"})
	assert.ErrorContains(t, err, "401")
}

func TestContactMessageBodiesCarrySameHeader(t *testing.T) {
	msg := ContactMessage("owner@example.com", domain.ContactRequest{Name: "Ana", Email: "ana@example.com", Message: "Hi <there>"})

	for _, body := range []string{msg.Text, msg.HTML} {
		assert.Contains(t, body, "New Contact Form Submission")
		assert.Contains(t, body, "Message:")
		assert.Contains(t, body, "ana@example.com")
	}
	assert.True(t, strings.HasPrefix(msg.Text, "New Contact Form Submission\n\nName: Ana\n"))
	assert.Contains(t, msg.Text, "Hi <there>")
}
