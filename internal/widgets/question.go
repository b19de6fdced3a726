package widgets

import (
	"strings"

	"github.com/muurk/djanbee/internal/ui"
)

// QuestionSelector is a horizontal yes/no prompt. The two answers are
// rendered side by side with the current one highlighted; `y` and `n`
// resolve directly without moving the cursor.
type QuestionSelector struct {
	message  string
	positive string
	negative string
	warning  string
	cursor   int // 0 = positive, 1 = negative
	out      ui.Renderer
	keys     KeyReader
}

// NewQuestionSelector creates a yes/no prompt with default answer labels.
func NewQuestionSelector(message string, out ui.Renderer, keys KeyReader) *QuestionSelector {
	return &QuestionSelector{
		message:  message,
		positive: "yes",
		negative: "no",
		out:      out,
		keys:     keys,
	}
}

// WithAnswers overrides the answer labels.
func (s *QuestionSelector) WithAnswers(positive, negative string) *QuestionSelector {
	s.positive = positive
	s.negative = negative
	return s
}

// WithWarning adds a warning line above the question.
func (s *QuestionSelector) WithWarning(warning string) *QuestionSelector {
	s.warning = warning
	return s
}

// Select runs the prompt. It returns (answer, true) when the user
// confirms and (false, false) on Ctrl+C.
func (s *QuestionSelector) Select() (bool, bool, error) {
	for {
		s.render()

		ev, err := s.keys.ReadKey()
		if err != nil {
			return false, false, err
		}

		switch ev.Key {
		case KeyLeft, KeyUp:
			s.cursor = 0
		case KeyRight, KeyDown:
			s.cursor = 1
		case KeyEnter:
			return s.cursor == 0, true, nil
		case KeyInterrupt:
			return false, false, nil
		case KeyRune:
			switch ev.Rune {
			case 'y', 'Y':
				return true, true, nil
			case 'n', 'N':
				return false, true, nil
			}
		}
	}
}

func (s *QuestionSelector) render() {
	var b strings.Builder

	if s.warning != "" {
		b.WriteString(ui.WarningTextStyle.Render("!!! " + s.warning))
		b.WriteString("\n\n")
	}

	b.WriteString(ui.PanelTitleStyle.Render("❓ " + s.message))
	b.WriteString("\n\n")

	yes := "  " + s.positive + "  "
	no := "  " + s.negative + "  "
	if s.cursor == 0 {
		yes = ui.SelectedItemStyle.Render("→ " + s.positive + " ←")
	} else {
		no = ui.SelectedItemStyle.Render("→ " + s.negative + " ←")
	}
	b.WriteString(yes)
	b.WriteString("    ")
	b.WriteString(no)

	b.WriteString("\n\n")
	b.WriteString(ui.HintStyle.Render("Use ←→ or ↑↓ to navigate, Enter to select, Y/N for direct choice, Ctrl+C to cancel"))

	panel := ui.PanelStyle(panelWidth()).Render(b.String())

	s.out.Clear()
	s.out.Print(panel)
}
