package terminal

import "testing"

func TestHistoryRecall(t *testing.T) {
	h := NewHistory()
	h.Record("/cv")
	h.Record("/help")

	steps := []struct {
		name   string
		call   func() (string, bool)
		want   string
		wantOK bool
		cursor int
	}{
		{"older", h.Older, "/help", true, 0},
		{"older", h.Older, "/cv", true, 1},
		{"older at end", h.Older, "", false, 1},
		{"newer", h.Newer, "/help", true, 0},
		{"newer to draft", h.Newer, "", true, -1},
		{"newer idle", h.Newer, "", false, -1},
	}
	for i, step := range steps {
		got, ok := step.call()
		if got != step.want || ok != step.wantOK {
			t.Fatalf("step %d (%s): got %q ok=%v, want %q ok=%v", i, step.name, got, ok, step.want, step.wantOK)
		}
		if h.Cursor() != step.cursor {
			t.Fatalf("step %d (%s): cursor %d, want %d", i, step.name, h.Cursor(), step.cursor)
		}
	}
}

func TestHistoryRecordResetsCursor(t *testing.T) {
	h := NewHistory()
	h.Record("/cv")
	h.Record("/cv")
	if _, ok := h.Older(); !ok {
		t.Fatal("expected older entry")
	}
	h.Record("/journal")
	if h.Cursor() != -1 {
		t.Fatalf("cursor should reset, got %d", h.Cursor())
	}
	if got := h.Entries(); len(got) != 3 || got[0] != "/journal" || got[1] != "/cv" {
		t.Fatalf("unexpected entries %v", got)
	}
}

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Older(); ok {
		t.Fatal("older on empty history should report false")
	}
	if _, ok := h.Newer(); ok {
		t.Fatal("newer on empty history should report false")
	}
	if h.Cursor() != -1 || h.Len() != 0 {
		t.Fatalf("unexpected state cursor=%d len=%d", h.Cursor(), h.Len())
	}
}
