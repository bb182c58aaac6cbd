package app

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/infrastructure/config"
	"github.com/tifan9/termfolio/internal/infrastructure/httpapi"
	"github.com/tifan9/termfolio/internal/terminal"
)

func buildTestContainer(t *testing.T) *Container {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	raw := "assistant:\n  default_model: \"\"\nmail:\n  provider: none\nstorage:\n  path: " + filepath.Join(dir, "portfolio.db") + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(raw), 0o600))
	t.Setenv("TERMFOLIO_DB", "")

	c, err := BuildContainer(context.Background(), Options{ConfigPath: cfgPath})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.PortfolioService.Seed(context.Background(), config.DefaultPortfolio()))
	return c
}

func TestBuildContainerUsesRulesWithoutModel(t *testing.T) {
	c := buildTestContainer(t)
	assert.Equal(t, "rules", c.Answerer.Name())
	assert.False(t, c.Mailer.Enabled())
	assert.True(t, strings.HasSuffix(c.Store.Path(), "portfolio.db"))
}

func TestLocalTerminalSession(t *testing.T) {
	c := buildTestContainer(t)
	d := terminal.NewDispatcher(nil, c.LocalAPI(), terminal.HTMLRenderer{}, c.Logger)
	s := terminal.NewSession(c.Config.Terminal.SessionLabel, nil)
	ctx := context.Background()

	d.ExecuteNow(ctx, s, "/ask experience")
	d.ExecuteNow(ctx, s, "/cv")

	out := s.Scrollback()
	require.Len(t, out, 4)
	assert.Contains(t, out[1].Content, "Field Support Officer")
	assert.Contains(t, out[3].Content, "Sophie Uwase - CV")
}

func TestRemoteTerminalSession(t *testing.T) {
	c := buildTestContainer(t)
	srv := httpapi.NewServer(c.Config.Server, c.PortfolioService, c.ContactService, c.AskService, c.Logger)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	d := terminal.NewDispatcher(nil, c.RemoteAPI(ts.URL), terminal.HTMLRenderer{}, c.Logger)
	s := terminal.NewSession(domain.DefaultSessionLabel, terminal.NewContactFlow(func(int) int { return 4 }))
	ctx := context.Background()

	d.ExecuteNow(ctx, s, "/profiles")
	d.ExecuteNow(ctx, s, "/contact")
	s.Contact.Form = terminal.ContactForm{Name: "Ada", Email: "ada@example.com", Message: "Hello there", Captcha: "10"}
	effect, err := d.SubmitContact(s)
	require.NoError(t, err)
	terminal.Apply(ctx, s, effect)

	out := s.Scrollback()
	require.Len(t, out, 5)
	assert.Contains(t, out[1].Content, "GitHub")
	assert.Contains(t, out[4].Content, "Message sent successfully!")

	contacts, err := c.ContactService.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Ada", contacts[0].Name)
}

func TestSeededAnswerRulesDriveAsk(t *testing.T) {
	c := buildTestContainer(t)
	ctx := context.Background()

	portfolio := config.DefaultPortfolio()
	portfolio.Answers = domain.AnswerRules{
		Rules:    []domain.AnswerRule{{Topic: "experience", Keywords: []string{"experience"}, Response: "Alex custom answer"}},
		Fallback: "Ask Alex anything.",
	}
	require.NoError(t, c.PortfolioService.Seed(ctx, portfolio))

	answer, err := c.LocalAPI().Ask(ctx, "experience")
	require.NoError(t, err)
	assert.Equal(t, "Alex custom answer", answer)

	answer, err = c.LocalAPI().Ask(ctx, "favourite food")
	require.NoError(t, err)
	assert.Equal(t, "Ask Alex anything.", answer)
}
