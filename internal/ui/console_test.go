package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsolePrintAppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf)

	c.Print("hello")
	if got := buf.String(); got != "hello\n" {
		t.Errorf("Print() wrote %q, want %q", got, "hello\n")
	}
}

func TestConsoleClearRewindsLastBlock(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf)

	c.Print("line one\nline two\nline three")
	buf.Reset()

	c.Clear()
	if got := buf.String(); got != "\033[3A\033[J" {
		t.Errorf("Clear() wrote %q, want cursor-up 3 and erase", got)
	}
}

func TestConsoleClearWithoutPrintIsNoop(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf)

	c.Clear()
	if buf.Len() != 0 {
		t.Errorf("Clear() before any Print wrote %q", buf.String())
	}
}

func TestConsoleClearIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf)

	c.Print("block")
	c.Clear()
	buf.Reset()

	c.Clear()
	if buf.Len() != 0 {
		t.Errorf("second Clear() wrote %q", buf.String())
	}
}

func TestConsoleLineResetsClearTracking(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf)

	c.Print("block")
	c.Line("status")
	buf.Reset()

	// The status line must not be erased by a later Clear.
	c.Clear()
	if buf.Len() != 0 {
		t.Errorf("Clear() after Line() wrote %q", buf.String())
	}
}

func TestConsolePrintClearPrintRedrawsInPlace(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf)

	c.Print("a\nb")
	c.Clear()
	c.Print("c\nd")

	out := buf.String()
	if !strings.Contains(out, "\033[2A\033[J") {
		t.Errorf("redraw output %q missing rewind sequence", out)
	}
	if !strings.HasSuffix(out, "c\nd\n") {
		t.Errorf("redraw output %q should end with the new block", out)
	}
}
