package widgets

import (
	"reflect"
	"testing"
)

func TestCheckboxSelector(t *testing.T) {
	options := []string{"Secret key", "Allowed hosts", "Static files"}

	tests := []struct {
		name   string
		input  []Key
		want   []string
		wantOK bool
	}{
		{
			name:   "enter with nothing checked returns empty set",
			input:  []Key{KeyEnter},
			want:   nil,
			wantOK: true,
		},
		{
			name:   "toggle first option",
			input:  []Key{KeySpace, KeyEnter},
			want:   []string{"Secret key"},
			wantOK: true,
		},
		{
			name:   "toggle twice unchecks",
			input:  []Key{KeySpace, KeySpace, KeyEnter},
			want:   nil,
			wantOK: true,
		},
		{
			name:   "check first and last",
			input:  []Key{KeySpace, KeyDown, KeyDown, KeySpace, KeyEnter},
			want:   []string{"Secret key", "Static files"},
			wantOK: true,
		},
		{
			name:   "cursor clamps at bottom",
			input:  []Key{KeyDown, KeyDown, KeyDown, KeyDown, KeySpace, KeyEnter},
			want:   []string{"Static files"},
			wantOK: true,
		},
		{
			name:   "cursor clamps at top",
			input:  []Key{KeyDown, KeyUp, KeyUp, KeySpace, KeyEnter},
			want:   []string{"Secret key"},
			wantOK: true,
		},
		{
			name:   "ctrl-c cancels",
			input:  []Key{KeySpace, KeyInterrupt},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := NewCheckboxSelector("Configure", options, &captureRenderer{}, keys(tt.input...)).Select()
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			if ok != tt.wantOK {
				t.Fatalf("Select() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Select() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckboxSelectorEmptyOptions(t *testing.T) {
	in := keys(KeyEnter)
	got, ok, err := NewCheckboxSelector("Configure", nil, &captureRenderer{}, in).Select()
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if ok || got != nil {
		t.Errorf("Select() = (%v, %v), want no selection", got, ok)
	}
	if in.reads != 0 {
		t.Errorf("Select() read %d keys on empty options, want 0", in.reads)
	}
}

func TestCheckboxSelectorPreselect(t *testing.T) {
	options := []string{"whitenoise", "gunicorn"}
	sel := NewCheckboxSelector("Keep installed", options, &captureRenderer{}, keys(KeyEnter)).
		Preselect(1)

	got, ok, err := sel.Select()
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if !ok || !reflect.DeepEqual(got, []string{"gunicorn"}) {
		t.Errorf("Select() = (%v, %v), want ([gunicorn], true)", got, ok)
	}
}
