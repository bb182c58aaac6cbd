package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/tifan9/termfolio/internal/domain"
)

// contactTimeLayout sorts lexically in chronological order.
const contactTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const schema = `
CREATE TABLE IF NOT EXISTS cv_data (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	data TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS journal_entries (
	position INTEGER PRIMARY KEY,
	id TEXT NOT NULL,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	date TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS profiles (
	position INTEGER PRIMARY KEY,
	label TEXT NOT NULL,
	url TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS answer_rules (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	data TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS contacts (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	message TEXT NOT NULL,
	created_at TEXT NOT NULL
);`

// SQLiteStore persists the portfolio in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewSQLiteStore creates (or opens) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	store := &SQLiteStore{db: db, path: path, now: time.Now}
	if err := store.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) init() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Seed replaces the CV, journal, profiles and answer rules. Contacts are left untouched.
func (s *SQLiteStore) Seed(ctx context.Context, portfolio domain.Portfolio) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cv, err := json.Marshal(portfolio.CV)
	if err != nil {
		return err
	}
	answers, err := json.Marshal(portfolio.Answers)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{"DELETE FROM cv_data", "DELETE FROM journal_entries", "DELETE FROM profiles", "DELETE FROM answer_rules"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	now := s.now().UTC()
	if _, err := tx.ExecContext(ctx, `INSERT INTO cv_data (id, data, updated_at) VALUES (1, ?, ?)`,
		string(cv), now.Format(time.RFC3339)); err != nil {
		return err
	}
	if !portfolio.Answers.Empty() {
		if _, err := tx.ExecContext(ctx, `INSERT INTO answer_rules (id, data) VALUES (1, ?)`, string(answers)); err != nil {
			return err
		}
	}
	for i, entry := range portfolio.Journal {
		created := entry.CreatedAt
		if created.IsZero() {
			created = now
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO journal_entries
			(position, id, title, content, date, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
			i, entry.ID, entry.Title, entry.Content, entry.Date, created.UTC().Format(time.RFC3339)); err != nil {
			return err
		}
	}
	for i, profile := range portfolio.Profiles {
		if _, err := tx.ExecContext(ctx, `INSERT INTO profiles (position, label, url) VALUES (?, ?, ?)`,
			i, profile.Label, profile.URL); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Reset wipes every table, contacts included.
func (s *SQLiteStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, table := range []string{"cv_data", "journal_entries", "profiles", "answer_rules", "contacts"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}

// CV returns the stored CV or domain.ErrNotFound.
func (s *SQLiteStore) CV(ctx context.Context) (domain.CV, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM cv_data WHERE id = 1`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CV{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.CV{}, err
	}
	var cv domain.CV
	if err := json.Unmarshal([]byte(raw), &cv); err != nil {
		return domain.CV{}, fmt.Errorf("decode cv: %w", err)
	}
	return cv, nil
}

// AnswerRules returns the seeded keyword rules or domain.ErrNotFound.
func (s *SQLiteStore) AnswerRules(ctx context.Context) (domain.AnswerRules, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM answer_rules WHERE id = 1`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.AnswerRules{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.AnswerRules{}, err
	}
	var rules domain.AnswerRules
	if err := json.Unmarshal([]byte(raw), &rules); err != nil {
		return domain.AnswerRules{}, fmt.Errorf("decode answer rules: %w", err)
	}
	return rules, nil
}

// Journal returns entries in stored order.
func (s *SQLiteStore) Journal(ctx context.Context) ([]domain.JournalEntry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, content, date, created_at
		FROM journal_entries ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		var entry domain.JournalEntry
		var created string
		if err := rows.Scan(&entry.ID, &entry.Title, &entry.Content, &entry.Date, &created); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			entry.CreatedAt = t
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Profiles returns the profile links in stored order.
func (s *SQLiteStore) Profiles(ctx context.Context) (domain.ProfileSet, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT label, url FROM profiles ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := domain.ProfileSet{}
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.Label, &p.URL); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// SaveContact inserts a new submission.
func (s *SQLiteStore) SaveContact(ctx context.Context, req domain.ContactRequest) (domain.Contact, error) {
	contact := domain.Contact{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: s.now().UTC(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `INSERT INTO contacts (id, name, email, message, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		contact.ID, contact.Name, contact.Email, contact.Message, contact.CreatedAt.Format(contactTimeLayout))
	if err != nil {
		return domain.Contact{}, err
	}
	return contact, nil
}

// Contacts returns submissions newest first. limit <= 0 returns all.
func (s *SQLiteStore) Contacts(ctx context.Context, limit int) ([]domain.Contact, error) {
	query := `SELECT id, name, email, message, created_at FROM contacts ORDER BY created_at DESC, rowid DESC`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		var c domain.Contact
		var created string
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &created); err != nil {
			return nil, err
		}
		if t, err := time.Parse(contactTimeLayout, created); err == nil {
			c.CreatedAt = t
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ Store = (*SQLiteStore)(nil)
