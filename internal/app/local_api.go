package app

import (
	"context"

	"github.com/tifan9/termfolio/internal/application/ask"
	"github.com/tifan9/termfolio/internal/application/contact"
	"github.com/tifan9/termfolio/internal/application/portfolio"
	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/ports"
)

// LocalAPI implements ports.PortfolioAPI over in-process services, so the
// terminal can run without a server.
type LocalAPI struct {
	Portfolio *portfolio.Service
	Contacts  *contact.Service
	Asker     *ask.Service
}

func (l *LocalAPI) CV(ctx context.Context) (domain.CV, error) {
	return l.Portfolio.CV(ctx)
}

func (l *LocalAPI) Journal(ctx context.Context) ([]domain.JournalEntry, error) {
	return l.Portfolio.Journal(ctx)
}

func (l *LocalAPI) Profiles(ctx context.Context) (domain.ProfileSet, error) {
	return l.Portfolio.Profiles(ctx)
}

func (l *LocalAPI) Ask(ctx context.Context, question string) (string, error) {
	answer, err := l.Asker.Ask(ctx, question)
	if err != nil {
		return "", err
	}
	return answer.Text, nil
}

func (l *LocalAPI) SubmitContact(ctx context.Context, req domain.ContactRequest) (domain.ContactReceipt, error) {
	return l.Contacts.Submit(ctx, req)
}

var _ ports.PortfolioAPI = (*LocalAPI)(nil)
