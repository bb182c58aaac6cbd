package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tifan9/termfolio/internal/domain"
)

func samplePortfolio() domain.Portfolio {
	return domain.Portfolio{
		CV: domain.CV{
			Name:    "Sophie Uwase",
			Contact: domain.CVContact{Email: "owner@example.com"},
			Experience: []domain.Experience{
				{Role: "Field Support Officer", Organization: "IOM", Achievements: []string{"Coordinated logistics"}},
			},
		},
		Journal: []domain.JournalEntry{
			{ID: "2", Title: "Second", Content: "b", Date: "2024-02-10", CreatedAt: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)},
			{ID: "1", Title: "First", Content: "a", Date: "2024-01-15", CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		},
		Profiles: domain.ProfileSet{
			{Label: "Kaggle", URL: "https://kaggle.com/x"},
			{Label: "GitHub", URL: "https://github.com/x"},
		},
	}
}

type storeFactory func(t *testing.T) Store

func factories() map[string]storeFactory {
	return map[string]storeFactory{
		"sqlite": func(t *testing.T) Store {
			store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "db", "portfolio.db"))
			require.NoError(t, err)
			t.Cleanup(func() { _ = store.Close() })
			return store
		},
		"memory": func(t *testing.T) Store {
			return NewMemoryStore()
		},
	}
}

func TestStoreSeedAndRead(t *testing.T) {
	for name, factory := range factories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := factory(t)
			portfolio := samplePortfolio()

			_, err := store.CV(ctx)
			assert.ErrorIs(t, err, domain.ErrNotFound)

			require.NoError(t, store.Seed(ctx, portfolio))

			cv, err := store.CV(ctx)
			require.NoError(t, err)
			if diff := cmp.Diff(portfolio.CV, cv, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("cv mismatch (-want +got):\n%s", diff)
			}

			journal, err := store.Journal(ctx)
			require.NoError(t, err)
			if diff := cmp.Diff(portfolio.Journal, journal); diff != "" {
				t.Fatalf("journal mismatch (-want +got):\n%s", diff)
			}

			profiles, err := store.Profiles(ctx)
			require.NoError(t, err)
			assert.Equal(t, portfolio.Profiles, profiles)
		})
	}
}

func TestStoreSeedReplacesPreviousData(t *testing.T) {
	for name, factory := range factories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := factory(t)
			require.NoError(t, store.Seed(ctx, samplePortfolio()))

			next := samplePortfolio()
			next.Profiles = domain.ProfileSet{{Label: "LinkedIn", URL: "https://linkedin.com/in/x"}}
			next.Journal = nil
			require.NoError(t, store.Seed(ctx, next))

			profiles, err := store.Profiles(ctx)
			require.NoError(t, err)
			assert.Equal(t, next.Profiles, profiles)

			journal, err := store.Journal(ctx)
			require.NoError(t, err)
			assert.Empty(t, journal)
		})
	}
}

func TestStoreContactsNewestFirst(t *testing.T) {
	for name, factory := range factories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := factory(t)
			for _, n := range []string{"Ana", "Ben", "Cleo"} {
				saved, err := store.SaveContact(ctx, domain.ContactRequest{Name: n, Email: n + "@example.com", Message: "hi"})
				require.NoError(t, err)
				assert.NotEmpty(t, saved.ID)
			}

			contacts, err := store.Contacts(ctx, 2)
			require.NoError(t, err)
			require.Len(t, contacts, 2)
			assert.Equal(t, "Cleo", contacts[0].Name)
			assert.Equal(t, "Ben", contacts[1].Name)

			all, err := store.Contacts(ctx, 0)
			require.NoError(t, err)
			assert.Len(t, all, 3)
		})
	}
}

func TestStoreResetWipesEverything(t *testing.T) {
	for name, factory := range factories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := factory(t)
			require.NoError(t, store.Seed(ctx, samplePortfolio()))
			_, err := store.SaveContact(ctx, domain.ContactRequest{Name: "a", Email: "a@example.com", Message: "m"})
			require.NoError(t, err)

			require.NoError(t, store.Reset(ctx))

			_, err = store.CV(ctx)
			assert.ErrorIs(t, err, domain.ErrNotFound)
			contacts, err := store.Contacts(ctx, 0)
			require.NoError(t, err)
			assert.Empty(t, contacts)
		})
	}
}

func TestOpenFallsBackToMemory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	store, err := Open(filepath.Join(blocker, "portfolio.db"))
	assert.Error(t, err)
	assert.Equal(t, ":memory:", store.Path())
}

func TestStoreAnswerRulesFollowSeed(t *testing.T) {
	for name, factory := range factories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := factory(t)

			_, err := store.AnswerRules(ctx)
			assert.ErrorIs(t, err, domain.ErrNotFound)

			portfolio := samplePortfolio()
			portfolio.Answers = domain.AnswerRules{
				Rules:    []domain.AnswerRule{{Topic: "experience", Keywords: []string{"experience"}, Response: "Alex custom answer"}},
				Fallback: "Ask Alex",
			}
			require.NoError(t, store.Seed(ctx, portfolio))

			rules, err := store.AnswerRules(ctx)
			require.NoError(t, err)
			if diff := cmp.Diff(portfolio.Answers, rules); diff != "" {
				t.Fatalf("answer rules mismatch (-want +got):\n%s", diff)
			}

			require.NoError(t, store.Seed(ctx, samplePortfolio()))
			_, err = store.AnswerRules(ctx)
			assert.ErrorIs(t, err, domain.ErrNotFound, "a seed without rules clears the previous ones")

			require.NoError(t, store.Seed(ctx, portfolio))
			require.NoError(t, store.Reset(ctx))
			_, err = store.AnswerRules(ctx)
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}
