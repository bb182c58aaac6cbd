package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"

	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/terminal"
)

const (
	classPrompt = "prompt"
	classBlock  = "block"
)

// ANSIRenderer formats scrollback for a real terminal. Answers and journal
// bodies go through glamour so markdown in them renders.
type ANSIRenderer struct {
	styles   Styles
	markdown *glamour.TermRenderer
}

// NewANSIRenderer builds a renderer wrapping markdown at width. style is a
// glamour standard style name; "auto" picks one from the terminal.
func NewANSIRenderer(width int, style string) *ANSIRenderer {
	if width <= 0 {
		width = 80
	}
	styleOpt := glamour.WithStandardStyle(style)
	if style == "" || style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}
	md, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		md = nil
	}
	return &ANSIRenderer{styles: DefaultStyles(), markdown: md}
}

func (r *ANSIRenderer) Prompt(label, line string) terminal.Block {
	return terminal.Block{Content: r.styles.Prompt.Render(clean(label)+"$") + " " + clean(line), Class: classPrompt}
}

func (r *ANSIRenderer) Help(commands []terminal.Command) terminal.Block {
	lines := []string{r.styles.Title.Render("Available Commands:")}
	for _, cmd := range commands {
		lines = append(lines, r.styles.Label.Render(cmd.Token)+" - "+cmd.Description)
	}
	return r.block(lines...)
}

func (r *ANSIRenderer) CV(cv domain.CV) terminal.Block {
	lines := []string{
		r.styles.Title.Render(clean(cv.Name) + " - CV"),
		r.styles.Label.Render("Contact:") + fmt.Sprintf(" %s | %s", clean(cv.Contact.Email), clean(cv.Contact.Phone)),
		"",
		r.styles.Section.Render("Experience:"),
	}
	for _, exp := range cv.Experience {
		lines = append(lines,
			r.styles.Indent.Render(r.styles.Heading.Render(clean(exp.Role)+" - "+clean(exp.Organization))),
			r.styles.Indent.Render(r.styles.Muted.Render(clean(exp.Location)+" | "+clean(exp.Period))),
		)
		for _, achievement := range exp.Achievements {
			lines = append(lines, r.styles.Indent.Render("• "+clean(achievement)))
		}
		lines = append(lines, "")
	}
	lines = append(lines,
		r.styles.Section.Render("Skills:"),
		r.styles.Indent.Render(r.styles.Label.Render("Technical:")+" "+cleanJoin(cv.Skills.Technical)),
		r.styles.Indent.Render(r.styles.Label.Render("Soft Skills:")+" "+cleanJoin(cv.Skills.Soft)),
		r.styles.Indent.Render(r.styles.Label.Render("Languages:")+" "+cleanJoin(cv.Skills.Languages)),
	)
	return r.block(lines...)
}

func (r *ANSIRenderer) Journal(entries []domain.JournalEntry) terminal.Block {
	lines := []string{r.styles.Title.Render("Recent Journal Entries:")}
	for _, entry := range entries {
		lines = append(lines,
			r.styles.Indent.Render(r.styles.Heading.Render(clean(entry.Title))),
			r.styles.Indent.Render(r.styles.Muted.Render(clean(entry.Date))),
			r.renderMarkdown(clean(entry.Content)),
		)
	}
	return r.block(lines...)
}

func (r *ANSIRenderer) Profiles(profiles domain.ProfileSet) terminal.Block {
	lines := []string{r.styles.Title.Render("Social Media Profiles:")}
	for _, p := range profiles {
		lines = append(lines, "• "+r.styles.Label.Render(clean(p.Label))+" "+r.styles.Muted.Render(clean(p.URL)))
	}
	return r.block(lines...)
}

func (r *ANSIRenderer) Answer(text string) terminal.Block {
	return r.block(r.styles.Title.Render("AI Assistant:"), r.renderMarkdown(clean(text)))
}

func (r *ANSIRenderer) Notice(text string) terminal.Block {
	return r.block(r.styles.Title.Render(clean(text)))
}

func (r *ANSIRenderer) Success(text string) terminal.Block {
	return r.block(r.styles.Success.Render(clean(text)))
}

func (r *ANSIRenderer) Error(message, hint string) terminal.Block {
	lines := []string{r.styles.Error.Render(clean(message))}
	if hint != "" {
		lines = append(lines, r.styles.Muted.Render(hint))
	}
	return r.block(lines...)
}

func (r *ANSIRenderer) block(lines ...string) terminal.Block {
	return terminal.Block{Content: strings.Join(lines, "\n"), Class: classBlock}
}

func (r *ANSIRenderer) renderMarkdown(text string) string {
	if r.markdown == nil {
		return r.styles.Indent.Render(text)
	}
	out, err := r.markdown.Render(text)
	if err != nil {
		return r.styles.Indent.Render(text)
	}
	return strings.Trim(out, "\n")
}

// clean drops escape sequences and control characters from data that did not
// originate here, keeping newlines and tabs.
func clean(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0) {
			return -1
		}
		return r
	}, ansi.Strip(s))
}

func cleanJoin(items []string) string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = clean(item)
	}
	return strings.Join(out, ", ")
}

// FormatScrollback joins entries for printing, leaving a blank line after
// each block.
func FormatScrollback(entries []terminal.OutputEntry) string {
	var b strings.Builder
	for _, entry := range entries {
		b.WriteString(entry.Content)
		b.WriteByte('\n')
		if entry.Class == classBlock {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

var _ terminal.Renderer = (*ANSIRenderer)(nil)
