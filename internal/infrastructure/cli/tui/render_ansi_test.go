package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/terminal"
)

func TestANSIRendererCV(t *testing.T) {
	r := NewANSIRenderer(80, "notty")
	block := r.CV(domain.CV{
		Name:    "Sophie Uwase",
		Contact: domain.CVContact{Email: "s@example.com", Phone: "123"},
		Experience: []domain.Experience{{
			Role: "Field Support Officer", Organization: "IOM", Location: "Kigali", Period: "2023",
			Achievements: []string{"Deployed networks"},
		}},
		Skills: domain.Skills{Technical: []string{"Go", "SQL"}},
	})

	for _, want := range []string{"Sophie Uwase - CV", "s@example.com | 123", "Field Support Officer - IOM", "• Deployed networks", "Technical: Go, SQL"} {
		assert.Contains(t, block.Content, want)
	}
	assert.Less(t, strings.Index(block.Content, "Experience:"), strings.Index(block.Content, "Skills:"))
}

func TestANSIRendererErrorWithHint(t *testing.T) {
	block := NewANSIRenderer(80, "notty").Error("Command not found: /xyz", "Type /help to see available commands.")
	lines := strings.Split(block.Content, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "/xyz")
	assert.Contains(t, lines[1], "/help")
}

func TestANSIRendererAnswerRendersMarkdown(t *testing.T) {
	block := NewANSIRenderer(80, "notty").Answer("I build **web apps**.")
	assert.Contains(t, block.Content, "AI Assistant:")
	assert.Contains(t, block.Content, "web apps")
}

func TestFormatScrollbackSpacing(t *testing.T) {
	out := FormatScrollback([]terminal.OutputEntry{
		{Content: "prompt", Class: classPrompt},
		{Content: "body", Class: classBlock},
	})
	assert.Equal(t, "prompt\nbody\n\n", out)
}

func TestANSIRendererStripsEscapesFromData(t *testing.T) {
	r := NewANSIRenderer(80, "notty")
	block := r.CV(domain.CV{
		Name:    "Eve\x1b]0;pwned\x07",
		Contact: domain.CVContact{Email: "\x1b[2Je@example.com", Phone: "1\r2"},
		Skills:  domain.Skills{Technical: []string{"Go\x1b[31m"}},
	})
	assert.NotContains(t, block.Content, "\x1b]0;")
	assert.NotContains(t, block.Content, "\x07")
	assert.NotContains(t, block.Content, "\x1b[2J")
	assert.NotContains(t, block.Content, "\r")
	assert.Contains(t, block.Content, "Eve - CV")
	assert.Contains(t, block.Content, "e@example.com | 12")
	assert.Contains(t, block.Content, "Technical: Go")

	profiles := r.Profiles(domain.ProfileSet{{Label: "Git\x1b[8mHub", URL: "https://example.com\x1b]8;;evil\x07"}})
	assert.Contains(t, profiles.Content, "GitHub")
	assert.NotContains(t, profiles.Content, "evil")

	errBlock := r.Error("Command not found: \x1b[2J/x", "")
	assert.NotContains(t, errBlock.Content, "\x1b[2J")
}
