package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tifan9/termfolio/internal/domain"
)

// MemoryStore keeps everything in process memory. Used when the database is unavailable.
type MemoryStore struct {
	mu       sync.RWMutex
	cv       *domain.CV
	journal  []domain.JournalEntry
	profiles domain.ProfileSet
	answers  domain.AnswerRules
	contacts []domain.Contact
	now      func() time.Time
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (s *MemoryStore) Seed(_ context.Context, portfolio domain.Portfolio) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cv := portfolio.CV
	s.cv = &cv
	s.journal = append([]domain.JournalEntry(nil), portfolio.Journal...)
	s.profiles = append(domain.ProfileSet(nil), portfolio.Profiles...)
	s.answers = domain.AnswerRules{
		Rules:    append([]domain.AnswerRule(nil), portfolio.Answers.Rules...),
		Fallback: portfolio.Answers.Fallback,
	}
	return nil
}

func (s *MemoryStore) Reset(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cv = nil
	s.journal = nil
	s.profiles = nil
	s.answers = domain.AnswerRules{}
	s.contacts = nil
	return nil
}

func (s *MemoryStore) CV(context.Context) (domain.CV, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cv == nil {
		return domain.CV{}, domain.ErrNotFound
	}
	return *s.cv, nil
}

func (s *MemoryStore) Journal(context.Context) ([]domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.JournalEntry{}, s.journal...), nil
}

func (s *MemoryStore) Profiles(context.Context) (domain.ProfileSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(domain.ProfileSet{}, s.profiles...), nil
}

func (s *MemoryStore) AnswerRules(context.Context) (domain.AnswerRules, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.answers.Empty() {
		return domain.AnswerRules{}, domain.ErrNotFound
	}
	return s.answers, nil
}

func (s *MemoryStore) SaveContact(_ context.Context, req domain.ContactRequest) (domain.Contact, error) {
	contact := domain.Contact{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: s.now().UTC(),
	}
	s.mu.Lock()
	s.contacts = append(s.contacts, contact)
	s.mu.Unlock()
	return contact, nil
}

func (s *MemoryStore) Contacts(_ context.Context, limit int) ([]domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Contact, 0, len(s.contacts))
	for i := len(s.contacts) - 1; i >= 0; i-- {
		out = append(out, s.contacts[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *MemoryStore) Path() string { return ":memory:" }

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
