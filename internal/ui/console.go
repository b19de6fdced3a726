package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer is the output port used by interactive widgets. Print writes a
// styled block to the terminal; Clear removes the block written by the
// previous Print so the widget can redraw in place.
type Renderer interface {
	Clear()
	Print(block string)
}

// Console renders styled blocks and status messages to a terminal.
// It implements Renderer by tracking how many lines the last block
// occupied and rewinding the cursor over them with ANSI escapes.
type Console struct {
	out       io.Writer
	lastLines int
}

// NewConsole creates a console writing to stdout.
func NewConsole() *Console {
	return &Console{out: os.Stdout}
}

// NewConsoleWriter creates a console writing to the given writer.
// Used by tests to capture output.
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{out: w}
}

// Print writes a block and remembers its height for the next Clear.
func (c *Console) Print(block string) {
	if !strings.HasSuffix(block, "\n") {
		block += "\n"
	}
	fmt.Fprint(c.out, block)
	c.lastLines = strings.Count(block, "\n")
}

// Clear rewinds the cursor over the previously printed block and erases
// to the end of the screen. No-op if nothing was printed.
func (c *Console) Clear() {
	if c.lastLines == 0 {
		return
	}
	fmt.Fprintf(c.out, "\033[%dA\033[J", c.lastLines)
	c.lastLines = 0
}

// Line writes a single line without affecting Clear tracking. Status
// messages printed between widget sessions go through this path.
func (c *Console) Line(s string) {
	fmt.Fprintln(c.out, s)
	c.lastLines = 0
}

// Success prints a green double-bordered panel.
func (c *Console) Success(text string) {
	msg := lipgloss.NewStyle().Foreground(SuccessColor).Bold(true).Render(text)
	c.Line(MessagePanelStyle(SuccessColor, GetTerminalWidth()).Render(msg))
}

// WarningCritical prints a red double-bordered panel.
func (c *Console) WarningCritical(text string) {
	msg := lipgloss.NewStyle().Foreground(ErrorColor).Bold(true).Render(text)
	c.Line(MessagePanelStyle(ErrorColor, GetTerminalWidth()).Render(msg))
}

// Error prints a plain red error line.
func (c *Console) Error(text string) {
	c.Line(ErrorMessageStyle.Render("Error: " + text))
}

// Lookup prints a search status line.
func (c *Console) Lookup(text string) {
	c.Line("🔍 " + lipgloss.NewStyle().Foreground(AccentColor).Render(text))
}

// Progress prints a work-in-progress status line.
func (c *Console) Progress(text string) {
	c.Line("🔨 " + lipgloss.NewStyle().Foreground(AccentColor).Render(text))
}

// Input prints a prompt-context line shown before input forms.
func (c *Console) Input(text string) {
	c.Line("📝 " + lipgloss.NewStyle().Foreground(AccentColor).Render(text))
}

// StepSuccess prints a completed step line.
func (c *Console) StepSuccess(step, text string) {
	c.Line("✅ " + StepCompleteStyle.Render(step+": "+text))
}

// StepFailure prints a failed step line.
func (c *Console) StepFailure(step, text string) {
	c.Line("❌ " + ErrorMessageStyle.Render(step+": "+text))
}
