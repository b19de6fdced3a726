package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CommandOutput represents a box for displaying captured output from an
// external command (pip, systemctl, psql). Used in verbose mode to show
// exactly what the tool ran and what came back.
type CommandOutput struct {
	Title    string   // e.g., "pip output"
	Content  string   // The raw command output
	Lines    []string // Parsed output lines (for filtering)
	Width    int      // Terminal width
	MaxLines int      // Maximum lines to display (0 = unlimited)
}

// NewCommandOutput creates a new command output box
func NewCommandOutput(title, content string) *CommandOutput {
	return &CommandOutput{
		Title:   title,
		Content: content,
		Lines:   strings.Split(strings.TrimRight(content, "\n"), "\n"),
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (o *CommandOutput) SetWidth(width int) *CommandOutput {
	o.Width = width
	return o
}

// SetMaxLines limits the number of lines displayed. When the output is
// longer, only the last MaxLines lines are shown with an elision marker.
func (o *CommandOutput) SetMaxLines(max int) *CommandOutput {
	o.MaxLines = max
	return o
}

// FilterLines filters the output to only show lines containing any of the
// given patterns. Useful for pulling errors out of noisy pip output.
func (o *CommandOutput) FilterLines(patterns ...string) *CommandOutput {
	var filtered []string
	for _, line := range o.Lines {
		for _, pattern := range patterns {
			if strings.Contains(line, pattern) {
				filtered = append(filtered, line)
				break
			}
		}
	}
	o.Lines = filtered
	o.Content = strings.Join(filtered, "\n")
	return o
}

// Render returns the styled output box as a string
func (o *CommandOutput) Render() string {
	width := o.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	lines := o.Lines
	elided := false
	if o.MaxLines > 0 && len(lines) > o.MaxLines {
		lines = lines[len(lines)-o.MaxLines:]
		elided = true
	}

	var body []string
	if elided {
		body = append(body, OutputContentStyle.Render("…"))
	}
	for _, line := range lines {
		body = append(body, OutputContentStyle.Render(line))
	}

	titleStyled := OutputTitleStyle.Render(o.Title)
	inner := lipgloss.JoinVertical(lipgloss.Left, titleStyled, "", strings.Join(body, "\n"))

	return OutputBoxStyle(width).
		MarginLeft(2).
		Render(inner)
}

// String implements fmt.Stringer
func (o *CommandOutput) String() string {
	return o.Render()
}

// RenderCommandOutput renders an output box with the given title and content
func RenderCommandOutput(title, content string) string {
	return NewCommandOutput(title, content).Render()
}
