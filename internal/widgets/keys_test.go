package widgets

import "testing"

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		want     Key
		wantRune rune
	}{
		{name: "arrow up", input: []byte{0x1b, '[', 'A'}, want: KeyUp},
		{name: "arrow down", input: []byte{0x1b, '[', 'B'}, want: KeyDown},
		{name: "arrow right", input: []byte{0x1b, '[', 'C'}, want: KeyRight},
		{name: "arrow left", input: []byte{0x1b, '[', 'D'}, want: KeyLeft},
		{name: "unknown escape sequence", input: []byte{0x1b, '[', 'Z'}, want: KeyNone},
		{name: "carriage return", input: []byte{'\r'}, want: KeyEnter},
		{name: "newline", input: []byte{'\n'}, want: KeyEnter},
		{name: "ctrl-c", input: []byte{0x03}, want: KeyInterrupt},
		{name: "space", input: []byte{' '}, want: KeySpace},
		{name: "tab", input: []byte{'\t'}, want: KeyTab},
		{name: "del backspace", input: []byte{0x7f}, want: KeyBackspace},
		{name: "bs backspace", input: []byte{0x08}, want: KeyBackspace},
		{name: "printable rune", input: []byte{'q'}, want: KeyRune, wantRune: 'q'},
		{name: "digit rune", input: []byte{'3'}, want: KeyRune, wantRune: '3'},
		{name: "lone escape", input: []byte{0x1b}, want: KeyNone},
		{name: "control byte", input: []byte{0x01}, want: KeyNone},
		{name: "partial escape sequence", input: []byte{0x1b, '['}, want: KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeKey(tt.input)
			if got.Key != tt.want {
				t.Errorf("decodeKey(%v).Key = %v, want %v", tt.input, got.Key, tt.want)
			}
			if tt.want == KeyRune && got.Rune != tt.wantRune {
				t.Errorf("decodeKey(%v).Rune = %q, want %q", tt.input, got.Rune, tt.wantRune)
			}
		})
	}
}
