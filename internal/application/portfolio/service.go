// Package portfolio serves and maintains the owner's CV, journal and profile links.
package portfolio

import (
	"context"
	"errors"
	"fmt"

	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/ports"
)

// Service reads the portfolio and replaces it from a seed.
type Service struct {
	Repository ports.PortfolioRepository
	Seeder     ports.PortfolioSeeder
	Logger     ports.Logger
}

func (s *Service) CV(ctx context.Context) (domain.CV, error) {
	return s.Repository.CV(ctx)
}

func (s *Service) Journal(ctx context.Context) ([]domain.JournalEntry, error) {
	return s.Repository.Journal(ctx)
}

func (s *Service) Profiles(ctx context.Context) (domain.ProfileSet, error) {
	return s.Repository.Profiles(ctx)
}

// Seed replaces CV, journal and profiles with the given portfolio.
func (s *Service) Seed(ctx context.Context, portfolio domain.Portfolio) error {
	if s.Seeder == nil {
		return errors.New("portfolio.Service: no seeder configured")
	}
	if err := s.Seeder.Seed(ctx, portfolio); err != nil {
		return fmt.Errorf("seed portfolio: %w", err)
	}
	s.log("portfolio seeded", map[string]interface{}{
		"journal_entries": len(portfolio.Journal),
		"profiles":        len(portfolio.Profiles),
	})
	return nil
}

// Reset wipes all stored data, contacts included, then reseeds.
func (s *Service) Reset(ctx context.Context, portfolio domain.Portfolio) error {
	if s.Seeder == nil {
		return errors.New("portfolio.Service: no seeder configured")
	}
	if err := s.Seeder.Reset(ctx); err != nil {
		return fmt.Errorf("reset storage: %w", err)
	}
	return s.Seed(ctx, portfolio)
}

// EnsureSeeded seeds only when no CV is stored yet.
func (s *Service) EnsureSeeded(ctx context.Context, portfolio domain.Portfolio) (bool, error) {
	_, err := s.Repository.CV(ctx)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, domain.ErrNotFound):
		return true, s.Seed(ctx, portfolio)
	default:
		return false, err
	}
}

func (s *Service) log(msg string, fields map[string]interface{}) {
	if s.Logger != nil {
		s.Logger.Info(msg, fields)
	}
}
