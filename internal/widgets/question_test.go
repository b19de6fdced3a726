package widgets

import (
	"strings"
	"testing"
)

func TestQuestionSelector(t *testing.T) {
	tests := []struct {
		name   string
		input  []KeyEvent
		want   bool
		wantOK bool
	}{
		{
			name:   "enter confirms default yes",
			input:  []KeyEvent{{Key: KeyEnter}},
			want:   true,
			wantOK: true,
		},
		{
			name:   "right then enter picks no",
			input:  []KeyEvent{{Key: KeyRight}, {Key: KeyEnter}},
			want:   false,
			wantOK: true,
		},
		{
			name:   "down behaves like right",
			input:  []KeyEvent{{Key: KeyDown}, {Key: KeyEnter}},
			want:   false,
			wantOK: true,
		},
		{
			name:   "left moves back to yes",
			input:  []KeyEvent{{Key: KeyRight}, {Key: KeyLeft}, {Key: KeyEnter}},
			want:   true,
			wantOK: true,
		},
		{
			name:   "y resolves directly",
			input:  []KeyEvent{{Key: KeyRight}, {Key: KeyRune, Rune: 'y'}},
			want:   true,
			wantOK: true,
		},
		{
			name:   "n resolves directly",
			input:  []KeyEvent{{Key: KeyRune, Rune: 'N'}},
			want:   false,
			wantOK: true,
		},
		{
			name:   "ctrl-c cancels",
			input:  []KeyEvent{{Key: KeyInterrupt}},
			wantOK: false,
		},
		{
			name:   "unrelated rune ignored",
			input:  []KeyEvent{{Key: KeyRune, Rune: 'x'}, {Key: KeyEnter}},
			want:   true,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &scriptKeys{events: tt.input}
			got, ok, err := NewQuestionSelector("Recreate environment?", &captureRenderer{}, in).Select()
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			if ok != tt.wantOK {
				t.Fatalf("Select() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Select() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuestionSelectorRendersWarning(t *testing.T) {
	out := &captureRenderer{}
	in := keys(KeyEnter)

	sel := NewQuestionSelector("Drop database?", out, in).
		WithAnswers("drop", "keep").
		WithWarning("This cannot be undone")
	if _, _, err := sel.Select(); err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	last := out.last()
	for _, want := range []string{"This cannot be undone", "Drop database?", "drop", "keep"} {
		if !strings.Contains(last, want) {
			t.Errorf("render missing %q, got:\n%s", want, last)
		}
	}
}
