// Package tui is the interactive terminal client built on bubbletea.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/terminal"
)

// Options configure the model.
type Options struct {
	Welcome         string
	TypewriterDelay time.Duration
}

type effectMsg struct {
	done terminal.Completion
}

type typeTickMsg struct{}

// Model is the bubbletea model for one terminal session.
type Model struct {
	ctx         context.Context
	dispatcher  *terminal.Dispatcher
	session     *terminal.Session
	suggestions *terminal.Suggestions
	welcome     *terminal.Typewriter
	delay       time.Duration
	styles      Styles

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	form     contactForm

	pending int
	width   int
	height  int
	ready   bool
}

// NewModel wires a model around an existing dispatcher and session.
func NewModel(ctx context.Context, dispatcher *terminal.Dispatcher, session *terminal.Session, opts Options) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Type a command..."
	ti.CharLimit = 1024
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(colorBlue)

	delay := opts.TypewriterDelay
	if delay <= 0 {
		delay = domain.DefaultTypewriterDelay
	}

	return &Model{
		ctx:         ctx,
		dispatcher:  dispatcher,
		session:     session,
		suggestions: terminal.NewSuggestions(dispatcher.Registry()),
		welcome:     terminal.NewTypewriter(opts.Welcome, nil),
		delay:       delay,
		styles:      DefaultStyles(),
		input:       ti,
		viewport:    viewport.New(80, 20),
		spinner:     sp,
		form:        newContactForm(),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.typeTick())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case typeTickMsg:
		if m.welcome.Tick() {
			m.refresh()
		}
		if m.welcome.Done() {
			return m, nil
		}
		return m, m.typeTick()

	case effectMsg:
		if m.pending > 0 {
			m.pending--
		}
		if msg.done != nil {
			msg.done(m.session)
		}
		m.syncForm()
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.session.Contact.State() != terminal.ContactClosed {
			return m, m.updateContactForm(msg)
		}
		if m.session.IntroOpen {
			if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
				m.session.CloseIntro()
			}
			return m, nil
		}
		return m, m.updatePrompt(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		if line, ok := m.suggestions.Accept(); ok {
			m.setInput(line)
			return nil
		}
		line := m.input.Value()
		m.input.Reset()
		m.suggestions.Close()
		effect := m.dispatcher.Execute(m.session, line)
		if m.session.Contact.State() == terminal.ContactOpen {
			m.form.setFocus(fieldName)
		}
		m.syncForm()
		m.refresh()
		return m.run(effect)

	case tea.KeyTab:
		if line, ok := m.suggestions.Accept(); ok {
			m.setInput(line)
			return nil
		}
		if line, ok := m.suggestions.Complete(m.input.Value()); ok {
			m.setInput(line)
		}
		return nil

	case tea.KeyUp:
		if m.suggestions.Open() {
			m.suggestions.Prev()
			return nil
		}
		if line, ok := m.session.History.Older(); ok {
			m.setInput(line)
		}
		return nil

	case tea.KeyDown:
		if m.suggestions.Open() {
			m.suggestions.Next()
			return nil
		}
		if line, ok := m.session.History.Newer(); ok {
			m.setInput(line)
		}
		return nil

	case tea.KeyEsc:
		m.suggestions.Close()
		return nil

	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.suggestions.Update(m.input.Value())
	return cmd
}

func (m *Model) run(effect terminal.Effect) tea.Cmd {
	if effect == nil {
		return nil
	}
	m.pending++
	ctx := m.ctx
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return effectMsg{done: effect(ctx)}
	})
}

func (m *Model) setInput(line string) {
	m.input.SetValue(line)
	m.input.CursorEnd()
	m.suggestions.Close()
}

func (m *Model) typeTick() tea.Cmd {
	if m.welcome.Done() {
		return nil
	}
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return typeTickMsg{} })
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.viewport.Width = width
	m.viewport.Height = max(height-4, 3)
	m.input.Width = max(width-len(m.session.Label)-3, 10)
	m.ready = true
	m.refresh()
}

// refresh re-renders the scrollback into the viewport and follows the tail.
func (m *Model) refresh() {
	m.viewport.SetContent(m.scrollbackView())
	m.viewport.GotoBottom()
}

func (m *Model) scrollbackView() string {
	var b strings.Builder
	b.WriteString(m.styles.Prompt.Render("╭─ Welcome to Sophie Uwase's Portfolio Terminal ─╮"))
	b.WriteByte('\n')
	b.WriteString(m.styles.Title.Render(m.welcome.Text()))
	if !m.welcome.Done() {
		b.WriteString(m.styles.Title.Render("|"))
	}
	b.WriteByte('\n')
	b.WriteString(m.styles.Prompt.Render("╰─────────────────────────────────────────────────╯"))
	b.WriteByte('\n')
	b.WriteString(m.styles.Muted.Render("Type /help to see available commands, or start typing to see suggestions."))
	b.WriteString("\n\n")
	b.WriteString(FormatScrollback(m.session.Scrollback()))
	return b.String()
}

func (m *Model) View() string {
	if m.session.Contact.State() != terminal.ContactClosed {
		return m.form.View(m.styles, m.session.Contact)
	}
	if m.session.IntroOpen {
		return m.introView()
	}

	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteByte('\n')
	if m.suggestions.Open() {
		for i, cmd := range m.suggestions.Items() {
			token := m.styles.Label.Render(cmd.Token)
			if i == m.suggestions.Highlighted() {
				token = m.styles.Active.Render("> " + cmd.Token)
			}
			b.WriteString(token + " " + m.styles.Muted.Render(cmd.Description))
			b.WriteByte('\n')
		}
	}
	status := ""
	if m.pending > 0 {
		status = " " + m.spinner.View()
	}
	b.WriteString(m.styles.Prompt.Render(m.session.Label+"$") + " " + m.input.View() + status)
	return b.String()
}

func (m *Model) introView() string {
	body := strings.Join([]string{
		m.styles.Title.Render("Introduction Video"),
		"",
		"Video placeholder",
		m.styles.Muted.Render("Press Esc to return to the terminal."),
	}, "\n")
	return m.styles.Panel.Render(body)
}

// syncForm copies the contact flow's field values into the form inputs after
// the dispatcher or a completion changed them.
func (m *Model) syncForm() {
	m.form.load(m.session.Contact.Form)
}

// Session exposes the session for callers that inspect it after the program exits.
func (m *Model) Session() *terminal.Session { return m.session }
