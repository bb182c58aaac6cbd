package terminal

// Suggestions drives the completion dropdown for the draft line.
type Suggestions struct {
	registry  *Registry
	items     []Command
	open      bool
	highlight int
}

// NewSuggestions binds a dropdown to registry.
func NewSuggestions(registry *Registry) *Suggestions {
	return &Suggestions{registry: registry, highlight: -1}
}

// Update recomputes matches for the draft. The dropdown opens whenever
// something matches, with nothing highlighted.
func (s *Suggestions) Update(draft string) {
	s.items = s.registry.Match(draft)
	s.open = len(s.items) > 0
	s.highlight = -1
}

// Next moves the highlight down, wrapping to the first item.
func (s *Suggestions) Next() {
	if !s.open {
		return
	}
	s.highlight = (s.highlight + 1) % len(s.items)
}

// Prev moves the highlight up, wrapping to the last item.
func (s *Suggestions) Prev() {
	if !s.open {
		return
	}
	if s.highlight <= 0 {
		s.highlight = len(s.items) - 1
		return
	}
	s.highlight--
}

// Highlighted returns the highlighted index, or -1.
func (s *Suggestions) Highlighted() int { return s.highlight }

// Accept selects the highlighted item.
func (s *Suggestions) Accept() (string, bool) {
	return s.Select(s.highlight)
}

// Complete handles the tab key. It returns the completed line only when
// exactly one command matches; otherwise the draft stays as is and the
// dropdown keeps its state.
func (s *Suggestions) Complete(draft string) (string, bool) {
	matches := s.registry.Match(draft)
	if len(matches) != 1 {
		s.items = matches
		s.open = len(matches) > 0
		s.highlight = -1
		return draft, false
	}
	s.Close()
	return matches[0].Token, true
}

// Select picks the i-th visible item, replacing the draft and closing the
// dropdown.
func (s *Suggestions) Select(i int) (string, bool) {
	if !s.open || i < 0 || i >= len(s.items) {
		return "", false
	}
	token := s.items[i].Token
	s.Close()
	return token, true
}

// Close hides the dropdown.
func (s *Suggestions) Close() {
	s.open = false
	s.items = nil
	s.highlight = -1
}

// Open reports whether the dropdown is visible.
func (s *Suggestions) Open() bool { return s.open }

// Items returns the visible matches.
func (s *Suggestions) Items() []Command {
	out := make([]Command, len(s.items))
	copy(out, s.items)
	return out
}
