package widgets

import (
	"fmt"
	"strings"

	"github.com/muurk/djanbee/internal/ui"
)

// Item is one selectable (label, value) pair shown in a list selector.
// The value is opaque to the widget; callers typically store a path.
type Item struct {
	Label string
	Value string
}

// ListSelector is a one-shot interactive menu. It renders its items in
// a bordered panel with the current row highlighted, moves the cursor
// with the arrow keys, and resolves on Enter or Ctrl+C.
type ListSelector struct {
	title  string
	items  []Item
	cursor int
	out    ui.Renderer
	keys   KeyReader
}

// NewListSelector creates a selector over the given items. The item
// list is not validated; an empty list makes Select return immediately
// with no selection.
func NewListSelector(title string, items []Item, out ui.Renderer, keys KeyReader) *ListSelector {
	return &ListSelector{
		title: title,
		items: items,
		out:   out,
		keys:  keys,
	}
}

// Select runs the interactive loop. It returns the chosen item and
// true, or a zero item and false when the user cancels with Ctrl+C.
// A read error propagates to the caller with the terminal already
// restored.
func (s *ListSelector) Select() (Item, bool, error) {
	if len(s.items) == 0 {
		return Item{}, false, nil
	}

	for {
		s.render()

		ev, err := s.keys.ReadKey()
		if err != nil {
			return Item{}, false, err
		}

		switch ev.Key {
		case KeyUp:
			if s.cursor > 0 {
				s.cursor--
			}
		case KeyDown:
			if s.cursor < len(s.items)-1 {
				s.cursor++
			}
		case KeyEnter:
			return s.items[s.cursor], true, nil
		case KeyInterrupt:
			return Item{}, false, nil
		}
		// Anything else: no state change, re-render and keep reading.
	}
}

func (s *ListSelector) render() {
	var b strings.Builder

	b.WriteString(ui.PanelTitleStyle.Render("📋 " + s.title))
	b.WriteString("\n\n")

	for i, item := range s.items {
		line := fmt.Sprintf("%s (%s)", item.Label, item.Value)
		if i == s.cursor {
			b.WriteString(ui.SelectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(ui.ItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.HintStyle.Render("Use ↑↓ to navigate, Enter to select, Ctrl+C to cancel"))

	panel := ui.PanelStyle(panelWidth()).Render(b.String())

	s.out.Clear()
	s.out.Print(panel)
}

func panelWidth() int {
	w := ui.GetTerminalWidth()
	if w > 80 {
		w = 80
	}
	return w
}
