package domain

import (
	"net/mail"
	"strings"
	"time"
)

// ContactRequest is the body of POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Normalize trims surrounding whitespace from every field.
func (r ContactRequest) Normalize() ContactRequest {
	return ContactRequest{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Message: strings.TrimSpace(r.Message),
	}
}

// Validate reports every missing or malformed field.
func (r ContactRequest) Validate() error {
	var errs ValidationErrors
	if r.Name == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "Required"})
	}
	if r.Email == "" {
		errs = append(errs, ValidationError{Field: "email", Message: "Required"})
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		errs = append(errs, ValidationError{Field: "email", Message: "Invalid email"})
	}
	if r.Message == "" {
		errs = append(errs, ValidationError{Field: "message", Message: "Required"})
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Contact is a stored contact-form submission.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactReceipt is the success body of POST /api/contact.
type ContactReceipt struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// MailMessage is what the relay sends for a new contact.
type MailMessage struct {
	To      string
	From    string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}
