// Package widgets provides the interactive terminal prompts used by
// djanbee commands: a single-choice list selector, a yes/no question,
// a multi-select checkbox list, and a small text input form.
//
// All widgets follow the same synchronous model: render the current
// state, block on one key event, update state, repeat. Rendering goes
// through the ui.Renderer port and key events come from a KeyReader,
// so tests can drive a widget with a scripted key sequence and capture
// everything it draws.
package widgets

import (
	"os"

	"golang.org/x/term"
)

// Key identifies a decoded keyboard event.
type Key int

const (
	KeyNone Key = iota // unrecognized input, ignored by widgets
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyInterrupt // Ctrl+C
	KeySpace
	KeyTab
	KeyBackspace
	KeyRune // printable character, see KeyEvent.Rune
)

// KeyEvent is one decoded keypress.
type KeyEvent struct {
	Key  Key
	Rune rune
}

// KeyReader delivers one key event per call, blocking until input is
// available.
type KeyReader interface {
	ReadKey() (KeyEvent, error)
}

// terminalKeys reads key events from a terminal. Each call puts the
// input stream into raw mode for the duration of a single read and
// restores the previous mode unconditionally, so an error during the
// read never leaves the terminal raw.
type terminalKeys struct {
	in *os.File
}

// NewTerminalKeys returns a KeyReader over stdin.
func NewTerminalKeys() KeyReader {
	return &terminalKeys{in: os.Stdin}
}

func (t *terminalKeys) ReadKey() (KeyEvent, error) {
	fd := int(t.in.Fd())

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return KeyEvent{}, err
	}
	defer term.Restore(fd, oldState)

	// A single read is enough to decode arrow keys: the terminal
	// delivers the whole ESC [ A/B sequence at once, while a bare
	// Escape press arrives as one byte and decodes to KeyNone. This
	// avoids issuing follow-up blocking reads after a lone ESC.
	buf := make([]byte, 3)
	n, err := t.in.Read(buf)
	if err != nil {
		return KeyEvent{}, err
	}

	return decodeKey(buf[:n]), nil
}

// decodeKey maps raw input bytes to a key event.
func decodeKey(b []byte) KeyEvent {
	if len(b) == 3 && b[0] == 0x1b && b[1] == '[' {
		switch b[2] {
		case 'A':
			return KeyEvent{Key: KeyUp}
		case 'B':
			return KeyEvent{Key: KeyDown}
		case 'C':
			return KeyEvent{Key: KeyRight}
		case 'D':
			return KeyEvent{Key: KeyLeft}
		}
		return KeyEvent{Key: KeyNone}
	}

	if len(b) != 1 {
		return KeyEvent{Key: KeyNone}
	}

	switch b[0] {
	case '\r', '\n':
		return KeyEvent{Key: KeyEnter}
	case 0x03:
		return KeyEvent{Key: KeyInterrupt}
	case ' ':
		return KeyEvent{Key: KeySpace}
	case '\t':
		return KeyEvent{Key: KeyTab}
	case 0x7f, 0x08:
		return KeyEvent{Key: KeyBackspace}
	}

	if b[0] >= 0x20 && b[0] < 0x7f {
		return KeyEvent{Key: KeyRune, Rune: rune(b[0])}
	}

	return KeyEvent{Key: KeyNone}
}
