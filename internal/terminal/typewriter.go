package terminal

// Typewriter reveals a target string one rune per tick. The caller owns the
// clock; it is not safe for concurrent use.
type Typewriter struct {
	target     []rune
	shown      int
	done       bool
	onComplete func()
}

// NewTypewriter prepares a reveal of text. onComplete may be nil.
func NewTypewriter(text string, onComplete func()) *Typewriter {
	t := &Typewriter{onComplete: onComplete}
	t.Reset(text)
	return t
}

// Reset starts over with a new target.
func (t *Typewriter) Reset(text string) {
	t.target = []rune(text)
	t.shown = 0
	t.done = false
}

// Tick reveals the next rune and reports whether the visible text changed.
// The tick that reaches the end fires the completion callback; ticks after
// that are no-ops.
func (t *Typewriter) Tick() bool {
	if t.done {
		return false
	}
	changed := false
	if t.shown < len(t.target) {
		t.shown++
		changed = true
	}
	if t.shown == len(t.target) {
		t.done = true
		if t.onComplete != nil {
			t.onComplete()
		}
	}
	return changed
}

// Text returns the revealed prefix.
func (t *Typewriter) Text() string { return string(t.target[:t.shown]) }

// Target returns the full string being revealed.
func (t *Typewriter) Target() string { return string(t.target) }

// Done reports whether the whole target is visible.
func (t *Typewriter) Done() bool { return t.done }
