package terminal

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tifan9/termfolio/internal/domain"
)

func openContact(t *testing.T, api *stubAPI) (*Dispatcher, *Session) {
	t.Helper()
	d, s := newTestDispatcher(api)
	require.Nil(t, d.Execute(s, "/contact"))
	require.Equal(t, ContactOpen, s.Contact.State())
	require.Equal(t, Captcha{A: 3, B: 7}, s.Contact.Challenge())
	assert.Contains(t, s.Scrollback()[1].Content, "Opening contact form...")
	s.Contact.Form = ContactForm{Name: "Ada", Email: "ada@example.com", Message: "Hello"}
	return d, s
}

func TestContactWrongCaptchaSkipsNetwork(t *testing.T) {
	api := &stubAPI{}
	d, s := openContact(t, api)
	s.Contact.Form.Captcha = "9"

	effect, err := d.SubmitContact(s)
	assert.Nil(t, effect)
	assert.ErrorIs(t, err, ErrIncorrectCaptcha)
	assert.Zero(t, api.calls)

	assert.Equal(t, ContactOpen, s.Contact.State())
	assert.Equal(t, ContactForm{Name: "Ada", Email: "ada@example.com", Message: "Hello"}, s.Contact.Form)
	assert.Equal(t, "Incorrect CAPTCHA answer", s.Contact.Err())
	assert.Equal(t, Captcha{A: 3, B: 7}, s.Contact.Challenge())
}

func TestContactNonNumericCaptcha(t *testing.T) {
	d, s := openContact(t, &stubAPI{})
	s.Contact.Form.Captcha = "ten"
	_, err := d.SubmitContact(s)
	assert.ErrorIs(t, err, ErrIncorrectCaptcha)
}

func TestContactCorrectCaptchaSubmits(t *testing.T) {
	api := &stubAPI{}
	d, s := openContact(t, api)
	s.Contact.Form.Captcha = " 10 "

	effect, err := d.SubmitContact(s)
	require.NoError(t, err)
	require.NotNil(t, effect)
	assert.Equal(t, ContactSubmitting, s.Contact.State())

	before := s.Len()
	Apply(context.Background(), s, effect)

	require.Len(t, api.contacts, 1)
	assert.Equal(t, domain.ContactRequest{Name: "Ada", Email: "ada@example.com", Message: "Hello"}, api.contacts[0])
	assert.Equal(t, ContactClosed, s.Contact.State())
	assert.Equal(t, ContactForm{}, s.Contact.Form)
	require.Equal(t, before+1, s.Len())
	assert.Contains(t, s.Scrollback()[before].Content, "Message sent successfully!")
}

func TestContactFailureKeepsChallenge(t *testing.T) {
	api := &stubAPI{err: errors.New("unavailable")}
	d, s := openContact(t, api)
	s.Contact.Form.Captcha = "10"

	effect, err := d.SubmitContact(s)
	require.NoError(t, err)
	before := s.Len()
	Apply(context.Background(), s, effect)

	assert.Equal(t, before, s.Len())
	assert.Equal(t, ContactOpen, s.Contact.State())
	assert.Equal(t, "Failed to send message", s.Contact.Err())
	assert.Equal(t, Captcha{A: 3, B: 7}, s.Contact.Challenge())
	assert.Equal(t, "Ada", s.Contact.Form.Name)
}

func TestContactRequiresOpenForm(t *testing.T) {
	d, s := newTestDispatcher(&stubAPI{})
	_, err := d.SubmitContact(s)
	assert.ErrorIs(t, err, ErrContactNotOpen)
}

func TestContactReopenDrawsFreshChallenge(t *testing.T) {
	flow := NewContactFlow(fixedOperands(3, 7, 1, 10))
	assert.Equal(t, Captcha{A: 3, B: 7}, flow.Open())
	flow.Close()
	assert.Equal(t, ContactClosed, flow.State())
	c := flow.Open()
	assert.Equal(t, Captcha{A: 1, B: 10}, c)
	assert.Equal(t, "1 + 10", c.Question())
}

func TestContactOperandsInRange(t *testing.T) {
	flow := NewContactFlow(nil)
	for i := 0; i < 200; i++ {
		c := flow.Open()
		require.True(t, c.A >= 1 && c.A <= 10 && c.B >= 1 && c.B <= 10, "operands out of range: %+v", c)
	}
}
