package terminal

// History keeps submitted lines, most recent first, with a recall cursor.
// A cursor of -1 means the draft line is live.
type History struct {
	entries []string
	cursor  int
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{cursor: -1}
}

// Record pushes line to the front and stops navigating.
func (h *History) Record(line string) {
	h.entries = append([]string{line}, h.entries...)
	h.cursor = -1
}

// Older moves one step back in time. It reports false when there is no
// older entry, leaving the cursor unchanged.
func (h *History) Older() (string, bool) {
	if h.cursor >= len(h.entries)-1 {
		return "", false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// Newer moves one step forward. Stepping past the newest entry returns ""
// and goes back to the draft line; with no navigation in progress it
// reports false.
func (h *History) Newer() (string, bool) {
	switch {
	case h.cursor > 0:
		h.cursor--
		return h.entries[h.cursor], true
	case h.cursor == 0:
		h.cursor = -1
		return "", true
	default:
		return "", false
	}
}

// Cursor returns the current recall position.
func (h *History) Cursor() int { return h.cursor }

// Len returns the number of recorded lines.
func (h *History) Len() int { return len(h.entries) }

// Entries returns a copy of the history, most recent first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
