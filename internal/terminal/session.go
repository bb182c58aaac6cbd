package terminal

import "github.com/google/uuid"

// Block is rendered output plus a style class.
type Block struct {
	Content string
	Class   string
}

// OutputEntry is one immutable scrollback item.
type OutputEntry struct {
	ID      string
	Content string
	Class   string
}

// Session is the state of one terminal: scrollback, history, the contact
// form and the intro panel flag. It is owned by a single goroutine; effects
// hand their results back as completions applied on that goroutine.
type Session struct {
	Label     string
	History   *History
	Contact   *ContactFlow
	IntroOpen bool

	scrollback []OutputEntry
	newID      func() string
}

// NewSession builds an empty session. A nil contact flow gets one with a
// random captcha source.
func NewSession(label string, contact *ContactFlow) *Session {
	if contact == nil {
		contact = NewContactFlow(nil)
	}
	return &Session{
		Label:   label,
		History: NewHistory(),
		Contact: contact,
		newID:   uuid.NewString,
	}
}

// Append adds a block to the scrollback.
func (s *Session) Append(b Block) OutputEntry {
	entry := OutputEntry{ID: s.newID(), Content: b.Content, Class: b.Class}
	s.scrollback = append(s.scrollback, entry)
	return entry
}

// Clear drops the whole scrollback.
func (s *Session) Clear() {
	s.scrollback = nil
}

// Scrollback returns a copy of the output entries, oldest first.
func (s *Session) Scrollback() []OutputEntry {
	out := make([]OutputEntry, len(s.scrollback))
	copy(out, s.scrollback)
	return out
}

// Len returns the number of scrollback entries.
func (s *Session) Len() int { return len(s.scrollback) }

// CloseIntro hides the intro panel.
func (s *Session) CloseIntro() { s.IntroOpen = false }
