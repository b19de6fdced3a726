package widgets

import (
	"errors"
	"strings"
	"testing"
)

// scriptKeys is a KeyReader that replays a fixed key sequence.
type scriptKeys struct {
	events []KeyEvent
	reads  int
}

func (s *scriptKeys) ReadKey() (KeyEvent, error) {
	if s.reads >= len(s.events) {
		return KeyEvent{}, errors.New("script exhausted")
	}
	ev := s.events[s.reads]
	s.reads++
	return ev, nil
}

// captureRenderer records everything a widget draws.
type captureRenderer struct {
	blocks []string
	clears int
}

func (c *captureRenderer) Clear() { c.clears++ }

func (c *captureRenderer) Print(block string) {
	c.blocks = append(c.blocks, block)
}

func (c *captureRenderer) last() string {
	if len(c.blocks) == 0 {
		return ""
	}
	return c.blocks[len(c.blocks)-1]
}

func keys(ks ...Key) *scriptKeys {
	events := make([]KeyEvent, len(ks))
	for i, k := range ks {
		events[i] = KeyEvent{Key: k}
	}
	return &scriptKeys{events: events}
}

func projectItems() []Item {
	return []Item{
		{Label: "Alpha", Value: "/a"},
		{Label: "Beta", Value: "/b"},
		{Label: "Gamma", Value: "/c"},
	}
}

func TestListSelectorEmptyList(t *testing.T) {
	out := &captureRenderer{}
	in := keys(KeyEnter) // must never be read

	item, ok, err := NewListSelector("Select project", nil, out, in).Select()
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if ok {
		t.Errorf("Select() on empty list returned %+v, want no selection", item)
	}
	if in.reads != 0 {
		t.Errorf("Select() on empty list read %d keys, want 0", in.reads)
	}
	if len(out.blocks) != 0 {
		t.Errorf("Select() on empty list rendered %d blocks, want 0", len(out.blocks))
	}
}

func TestListSelectorNavigation(t *testing.T) {
	tests := []struct {
		name      string
		input     []Key
		wantLabel string
		wantValue string
	}{
		{
			name:      "enter at start selects first item",
			input:     []Key{KeyEnter},
			wantLabel: "Alpha",
			wantValue: "/a",
		},
		{
			name:      "down down enter selects third item",
			input:     []Key{KeyDown, KeyDown, KeyEnter},
			wantLabel: "Gamma",
			wantValue: "/c",
		},
		{
			name:      "down up up enter clamps at first item",
			input:     []Key{KeyDown, KeyUp, KeyUp, KeyEnter},
			wantLabel: "Alpha",
			wantValue: "/a",
		},
		{
			name:      "down past end clamps at last item",
			input:     []Key{KeyDown, KeyDown, KeyDown, KeyDown, KeyEnter},
			wantLabel: "Gamma",
			wantValue: "/c",
		},
		{
			name:      "up at start stays on first item",
			input:     []Key{KeyUp, KeyUp, KeyUp, KeyEnter},
			wantLabel: "Alpha",
			wantValue: "/a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok, err := NewListSelector("Select project", projectItems(), &captureRenderer{}, keys(tt.input...)).Select()
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			if !ok {
				t.Fatal("Select() returned no selection, want one")
			}
			if item.Label != tt.wantLabel || item.Value != tt.wantValue {
				t.Errorf("Select() = (%q, %q), want (%q, %q)", item.Label, item.Value, tt.wantLabel, tt.wantValue)
			}
		})
	}
}

func TestListSelectorCancel(t *testing.T) {
	tests := []struct {
		name  string
		input []Key
	}{
		{name: "interrupt immediately", input: []Key{KeyInterrupt}},
		{name: "interrupt after movement", input: []Key{KeyDown, KeyDown, KeyInterrupt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok, err := NewListSelector("Select project", projectItems(), &captureRenderer{}, keys(tt.input...)).Select()
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			if ok {
				t.Errorf("Select() = %+v, want cancelled", item)
			}
		})
	}
}

func TestListSelectorIgnoresUnrelatedInput(t *testing.T) {
	in := &scriptKeys{events: []KeyEvent{
		{Key: KeyDown},
		{Key: KeyRune, Rune: 'x'},
		{Key: KeySpace},
		{Key: KeyNone},
		{Key: KeyEnter},
	}}

	item, ok, err := NewListSelector("Select project", projectItems(), &captureRenderer{}, in).Select()
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if !ok {
		t.Fatal("Select() returned no selection, want one")
	}
	// Unrecognized keys must not move the cursor.
	if item.Label != "Beta" {
		t.Errorf("Select() = %q, want %q", item.Label, "Beta")
	}
}

func TestListSelectorReadErrorPropagates(t *testing.T) {
	in := &scriptKeys{} // empty script: first read fails

	_, ok, err := NewListSelector("Select project", projectItems(), &captureRenderer{}, in).Select()
	if err == nil {
		t.Fatal("Select() error = nil, want read error")
	}
	if ok {
		t.Error("Select() reported a selection alongside an error")
	}
}

func TestListSelectorRerendersEachKey(t *testing.T) {
	out := &captureRenderer{}
	in := keys(KeyDown, KeyDown, KeyEnter)

	if _, _, err := NewListSelector("Select project", projectItems(), out, in).Select(); err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	// One render per loop iteration, each preceded by a clear.
	if len(out.blocks) != 3 {
		t.Errorf("rendered %d blocks, want 3", len(out.blocks))
	}
	if out.clears != len(out.blocks) {
		t.Errorf("cleared %d times for %d renders", out.clears, len(out.blocks))
	}
}

func TestListSelectorRenderMarksCursor(t *testing.T) {
	out := &captureRenderer{}
	in := keys(KeyDown, KeyEnter)

	if _, _, err := NewListSelector("Select project", projectItems(), out, in).Select(); err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	last := out.last()
	if !strings.Contains(last, "> Beta (/b)") {
		t.Errorf("final render should highlight %q, got:\n%s", "> Beta (/b)", last)
	}
	if !strings.Contains(last, "  Alpha (/a)") {
		t.Errorf("final render should show unselected %q, got:\n%s", "  Alpha (/a)", last)
	}
	if !strings.Contains(last, "Enter to select") {
		t.Errorf("final render missing usage hint, got:\n%s", last)
	}
}
