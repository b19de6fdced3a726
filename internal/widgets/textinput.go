package widgets

import (
	"strings"

	"github.com/muurk/djanbee/internal/ui"
)

// Field is one named input in a TextInput form, with an optional
// default value.
type Field struct {
	Name    string
	Default string
}

// TextInput is a small form of text fields followed by confirm/cancel
// buttons. Tab and ↑↓ move focus, ←→ move the cursor within the active
// field, Enter on a field advances focus and Enter on a button
// resolves the form.
type TextInput struct {
	title       string
	fields      []Field
	confirmText string
	cancelText  string

	active  int // 0..len(fields)-1 are fields, then confirm, then cancel
	values  []string
	cursors []int

	out  ui.Renderer
	keys KeyReader
}

// NewTextInput creates a form with the given fields. Buttons default to
// "Confirm" and "Cancel".
func NewTextInput(title string, fields []Field, out ui.Renderer, keys KeyReader) *TextInput {
	values := make([]string, len(fields))
	cursors := make([]int, len(fields))
	for i, f := range fields {
		values[i] = f.Default
		cursors[i] = len(f.Default)
	}
	return &TextInput{
		title:       title,
		fields:      fields,
		confirmText: "Confirm",
		cancelText:  "Cancel",
		values:      values,
		cursors:     cursors,
		out:         out,
		keys:        keys,
	}
}

// WithButtons overrides the button labels.
func (s *TextInput) WithButtons(confirm, cancel string) *TextInput {
	s.confirmText = confirm
	s.cancelText = cancel
	return s
}

func (s *TextInput) confirmIndex() int { return len(s.fields) }
func (s *TextInput) cancelIndex() int  { return len(s.fields) + 1 }

// Run runs the form. It returns the field values keyed by field name
// and true on confirm, or nil and false on cancel or Ctrl+C.
func (s *TextInput) Run() (map[string]string, bool, error) {
	for {
		s.render()

		ev, err := s.keys.ReadKey()
		if err != nil {
			return nil, false, err
		}

		switch ev.Key {
		case KeyTab, KeyDown:
			if s.active < s.cancelIndex() {
				s.active++
			}
		case KeyUp:
			if s.active > 0 {
				s.active--
			}
		case KeyLeft:
			if s.onField() && s.cursors[s.active] > 0 {
				s.cursors[s.active]--
			}
		case KeyRight:
			if s.onField() && s.cursors[s.active] < len(s.values[s.active]) {
				s.cursors[s.active]++
			}
		case KeyBackspace:
			if s.onField() && s.cursors[s.active] > 0 {
				v := s.values[s.active]
				p := s.cursors[s.active]
				s.values[s.active] = v[:p-1] + v[p:]
				s.cursors[s.active]--
			}
		case KeyRune:
			if s.onField() {
				v := s.values[s.active]
				p := s.cursors[s.active]
				s.values[s.active] = v[:p] + string(ev.Rune) + v[p:]
				s.cursors[s.active]++
			}
		case KeyEnter:
			switch s.active {
			case s.confirmIndex():
				return s.collect(), true, nil
			case s.cancelIndex():
				return nil, false, nil
			default:
				s.active++
			}
		case KeyInterrupt:
			return nil, false, nil
		}
	}
}

func (s *TextInput) onField() bool {
	return s.active < len(s.fields)
}

func (s *TextInput) collect() map[string]string {
	values := make(map[string]string, len(s.fields))
	for i, f := range s.fields {
		values[f.Name] = s.values[i]
	}
	return values
}

func (s *TextInput) render() {
	var b strings.Builder

	b.WriteString(ui.PanelTitleStyle.Render("✏️ " + s.title))
	b.WriteString("\n\n")

	for i, f := range s.fields {
		b.WriteString(ui.LabelStyle.Render(f.Name + ": "))
		if i == s.active {
			v := s.values[i]
			p := s.cursors[i]
			b.WriteString(v[:p] + "█" + v[p:])
		} else {
			b.WriteString(s.values[i])
		}
		b.WriteString("\n\n")
	}

	confirm := "[ " + s.confirmText + " ]"
	cancel := "[ " + s.cancelText + " ]"
	switch s.active {
	case s.confirmIndex():
		confirm = ui.SelectedItemStyle.Render(confirm)
	case s.cancelIndex():
		cancel = ui.SelectedItemStyle.Render(cancel)
	}
	b.WriteString(confirm)
	b.WriteString("    ")
	b.WriteString(cancel)

	b.WriteString("\n\n")
	b.WriteString(ui.HintStyle.Render("Tab/↑↓ to move, Enter to advance or confirm, Ctrl+C to cancel"))

	panel := ui.PanelStyle(panelWidth()).Render(b.String())

	s.out.Clear()
	s.out.Print(panel)
}
