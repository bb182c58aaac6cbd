// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). Following the Ports and Adapters (Hexagonal) pattern,
// these interfaces allow the application to remain independent of specific
// implementations like databases, HTTP clients, mail relays or language models.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., Answerer, PortfolioRepository)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/tifan9/termfolio/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.termfolio/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// PortfolioRepository serves the static biographical data.
type PortfolioRepository interface {
	CV(context.Context) (domain.CV, error)
	Journal(context.Context) ([]domain.JournalEntry, error)
	Profiles(context.Context) (domain.ProfileSet, error)
}

// PortfolioSeeder replaces the stored portfolio wholesale.
type PortfolioSeeder interface {
	Seed(context.Context, domain.Portfolio) error
	Reset(context.Context) error
}

// AnswerRuleRepository serves the keyword rules seeded with the portfolio.
type AnswerRuleRepository interface {
	AnswerRules(context.Context) (domain.AnswerRules, error)
}

// ContactRepository persists contact-form submissions.
type ContactRepository interface {
	SaveContact(context.Context, domain.ContactRequest) (domain.Contact, error)
	Contacts(ctx context.Context, limit int) ([]domain.Contact, error)
}

// ProviderFactory builds remote model providers from model definitions.
type ProviderFactory interface {
	ForModel(domain.ModelDefinition) (Provider, error)
}

// Provider wraps one remote language model API.
type Provider interface {
	Name() string
	Model() domain.ModelDefinition
	Generate(context.Context, ProviderRequest) (ProviderResponse, error)
}

// ProviderRequest contains the question and the persona the model should adopt.
type ProviderRequest struct {
	Question string
	Persona  domain.CV
}

// ProviderResponse contains the model's reply text.
type ProviderResponse struct {
	Reply string
}

// Answerer answers free-text questions about the portfolio owner.
// Remote-model-backed and rule-backed variants both satisfy it.
type Answerer interface {
	Name() string
	Answer(ctx context.Context, question string) (domain.Answer, error)
}

// AnswerCache stores model answers keyed by normalized question.
type AnswerCache interface {
	Get(key string) (domain.CachedAnswer, bool, error)
	Set(domain.CachedAnswer) error
}

// Mailer relays a contact submission by email.
type Mailer interface {
	Enabled() bool
	Send(context.Context, domain.MailMessage) error
}

// PortfolioAPI is the client side of the HTTP surface consumed by the terminal.
type PortfolioAPI interface {
	CV(context.Context) (domain.CV, error)
	Journal(context.Context) ([]domain.JournalEntry, error)
	Profiles(context.Context) (domain.ProfileSet, error)
	Ask(ctx context.Context, question string) (string, error)
	SubmitContact(context.Context, domain.ContactRequest) (domain.ContactReceipt, error)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
