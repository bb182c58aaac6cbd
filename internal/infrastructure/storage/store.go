// Package storage persists the portfolio and contact submissions.
package storage

import (
	"github.com/tifan9/termfolio/internal/ports"
)

// Store is the full persistence surface used by the server.
type Store interface {
	ports.PortfolioRepository
	ports.PortfolioSeeder
	ports.AnswerRuleRepository
	ports.ContactRepository
	Path() string
	Close() error
}

// Open returns a SQLite-backed store, falling back to memory when the
// database cannot be opened. The returned error explains the fallback.
func Open(path string) (Store, error) {
	store, err := NewSQLiteStore(path)
	if err != nil {
		return NewMemoryStore(), err
	}
	return store, nil
}
