package terminal

import "testing"

func TestTypewriterTicks(t *testing.T) {
	completions := 0
	tw := NewTypewriter("hi", func() { completions++ })

	if tw.Text() != "" {
		t.Fatalf("expected empty text before ticking, got %q", tw.Text())
	}
	if !tw.Tick() || tw.Text() != "h" || completions != 0 {
		t.Fatalf("after tick 1: text=%q completions=%d", tw.Text(), completions)
	}
	if !tw.Tick() || tw.Text() != "hi" || completions != 1 || !tw.Done() {
		t.Fatalf("after tick 2: text=%q completions=%d done=%v", tw.Text(), completions, tw.Done())
	}
	if tw.Tick() || tw.Text() != "hi" || completions != 1 {
		t.Fatalf("after tick 3: text=%q completions=%d", tw.Text(), completions)
	}
}

func TestTypewriterReset(t *testing.T) {
	completions := 0
	tw := NewTypewriter("ab", func() { completions++ })
	tw.Tick()
	tw.Reset("héllo")
	if tw.Text() != "" || tw.Done() {
		t.Fatalf("reset should clear progress, text=%q done=%v", tw.Text(), tw.Done())
	}
	for i := 0; i < 5; i++ {
		tw.Tick()
	}
	if tw.Text() != "héllo" || completions != 1 {
		t.Fatalf("text=%q completions=%d", tw.Text(), completions)
	}
	tw.Reset("x")
	tw.Tick()
	if completions != 2 {
		t.Fatalf("restarted reveal should complete again, completions=%d", completions)
	}
}

func TestTypewriterEmptyTarget(t *testing.T) {
	completions := 0
	tw := NewTypewriter("", func() { completions++ })
	if tw.Tick() {
		t.Fatal("empty target should never change")
	}
	tw.Tick()
	if completions != 1 || !tw.Done() {
		t.Fatalf("completions=%d done=%v", completions, tw.Done())
	}
}
