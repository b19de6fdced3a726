package widgets

import (
	"strings"

	"github.com/muurk/djanbee/internal/ui"
)

// CheckboxSelector is a multi-select list. Space toggles the option
// under the cursor, Enter confirms the checked set (which may be
// empty), Ctrl+C cancels. Cursor movement clamps at both ends like
// the single-choice selector.
type CheckboxSelector struct {
	message string
	options []string
	cursor  int
	checked map[int]bool
	out     ui.Renderer
	keys    KeyReader
}

// NewCheckboxSelector creates a multi-select over the given options.
func NewCheckboxSelector(message string, options []string, out ui.Renderer, keys KeyReader) *CheckboxSelector {
	return &CheckboxSelector{
		message: message,
		options: options,
		checked: make(map[int]bool),
		out:     out,
		keys:    keys,
	}
}

// Preselect marks options as checked before the prompt runs.
func (s *CheckboxSelector) Preselect(indices ...int) *CheckboxSelector {
	for _, i := range indices {
		if i >= 0 && i < len(s.options) {
			s.checked[i] = true
		}
	}
	return s
}

// Select runs the prompt. It returns the checked option labels in list
// order and true, or nil and false on Ctrl+C.
func (s *CheckboxSelector) Select() ([]string, bool, error) {
	if len(s.options) == 0 {
		return nil, false, nil
	}

	for {
		s.render()

		ev, err := s.keys.ReadKey()
		if err != nil {
			return nil, false, err
		}

		switch ev.Key {
		case KeyUp:
			if s.cursor > 0 {
				s.cursor--
			}
		case KeyDown:
			if s.cursor < len(s.options)-1 {
				s.cursor++
			}
		case KeySpace:
			s.checked[s.cursor] = !s.checked[s.cursor]
		case KeyEnter:
			var selected []string
			for i, opt := range s.options {
				if s.checked[i] {
					selected = append(selected, opt)
				}
			}
			return selected, true, nil
		case KeyInterrupt:
			return nil, false, nil
		}
	}
}

func (s *CheckboxSelector) render() {
	var b strings.Builder

	b.WriteString(ui.PanelTitleStyle.Render("✓ " + s.message))
	b.WriteString("\n\n")

	for i, opt := range s.options {
		box := "☐"
		if s.checked[i] {
			box = "☑"
		}
		line := box + " " + opt
		if i == s.cursor {
			b.WriteString(ui.SelectedItemStyle.Render("→ " + line))
		} else {
			b.WriteString(ui.ItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.HintStyle.Render("Use ↑↓ to navigate, Space to toggle, Enter to confirm, Ctrl+C to cancel"))

	panel := ui.PanelStyle(panelWidth()).Render(b.String())

	s.out.Clear()
	s.out.Print(panel)
}
