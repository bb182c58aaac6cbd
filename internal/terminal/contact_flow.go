package terminal

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/tifan9/termfolio/internal/domain"
)

// ContactState is the position of the contact form in its lifecycle.
type ContactState int

const (
	ContactClosed ContactState = iota
	ContactOpen
	ContactSubmitting
)

func (s ContactState) String() string {
	switch s {
	case ContactOpen:
		return "open"
	case ContactSubmitting:
		return "submitting"
	default:
		return "closed"
	}
}

// ErrIncorrectCaptcha rejects a submission before any network call.
var ErrIncorrectCaptcha = domain.ValidationError{Field: "captcha", Message: "Incorrect CAPTCHA answer"}

// ErrContactNotOpen is returned when submitting outside the open state.
var ErrContactNotOpen = errors.New("contact form is not open")

// Captcha is an addition challenge.
type Captcha struct {
	A int
	B int
}

// Sum is the expected answer.
func (c Captcha) Sum() int { return c.A + c.B }

// Question renders the challenge as "A + B".
func (c Captcha) Question() string { return fmt.Sprintf("%d + %d", c.A, c.B) }

// ContactForm holds the draft field values.
type ContactForm struct {
	Name    string
	Email   string
	Message string
	Captcha string
}

// ContactFlow tracks the contact form: Closed, Open with a challenge,
// Submitting, then back to Closed on success or Open with an error on
// failure.
type ContactFlow struct {
	Form ContactForm

	state     ContactState
	challenge Captcha
	err       string
	intN      func(n int) int
}

// NewContactFlow returns a closed flow. intN returns a value in [0,n); nil
// uses math/rand.
func NewContactFlow(intN func(n int) int) *ContactFlow {
	if intN == nil {
		intN = rand.IntN
	}
	return &ContactFlow{intN: intN}
}

// Open draws a fresh challenge with both operands in [1,10] and shows the form.
func (f *ContactFlow) Open() Captcha {
	f.challenge = Captcha{A: f.intN(10) + 1, B: f.intN(10) + 1}
	f.state = ContactOpen
	f.err = ""
	return f.challenge
}

// Close hides the form without submitting.
func (f *ContactFlow) Close() {
	f.state = ContactClosed
	f.err = ""
}

// Submit checks the captcha and moves to Submitting. A wrong answer clears
// only the captcha field and keeps the form open.
func (f *ContactFlow) Submit() (domain.ContactRequest, error) {
	if f.state != ContactOpen {
		return domain.ContactRequest{}, ErrContactNotOpen
	}
	answer, err := strconv.Atoi(strings.TrimSpace(f.Form.Captcha))
	if err != nil || answer != f.challenge.Sum() {
		f.Form.Captcha = ""
		f.err = ErrIncorrectCaptcha.Message
		return domain.ContactRequest{}, ErrIncorrectCaptcha
	}
	f.state = ContactSubmitting
	f.err = ""
	return domain.ContactRequest{
		Name:    f.Form.Name,
		Email:   f.Form.Email,
		Message: f.Form.Message,
	}, nil
}

// Resolve finishes a submission. Success clears the form and closes it;
// failure reopens it with message and the same challenge.
func (f *ContactFlow) Resolve(err error, message string) {
	if f.state != ContactSubmitting {
		return
	}
	if err != nil {
		f.state = ContactOpen
		f.err = message
		return
	}
	f.Form = ContactForm{}
	f.state = ContactClosed
	f.err = ""
}

// State returns the current state.
func (f *ContactFlow) State() ContactState { return f.state }

// Challenge returns the active captcha.
func (f *ContactFlow) Challenge() Captcha { return f.challenge }

// Err returns the message shown inside the form, if any.
func (f *ContactFlow) Err() string { return f.err }
