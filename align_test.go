package textblock

import (
	"errors"
	"testing"
)

func TestParseAlign(t *testing.T) {
	tests := []struct {
		input   string
		want    Align
		wantErr bool
	}{
		{"", AlignLeft, false},
		{"left", AlignLeft, false},
		{"LEFT", AlignLeft, false},
		{" right ", AlignRight, false},
		{"Right", AlignRight, false},
		{"center", AlignLeft, true},
		{"centre", AlignLeft, true},
		{"justify", AlignLeft, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAlign(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedAlign) {
					t.Errorf("ParseAlign(%q) error = %v, want ErrUnsupportedAlign", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAlign(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAlign(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAlignString(t *testing.T) {
	tests := []struct {
		align Align
		want  string
	}{
		{AlignLeft, "left"},
		{AlignRight, "right"},
		{Align(7), "Align(0x07)"},
	}

	for _, tt := range tests {
		if got := tt.align.String(); got != tt.want {
			t.Errorf("Align(%d).String() = %q, want %q", uint8(tt.align), got, tt.want)
		}
	}

	// String and ParseAlign round trip for the supported values.
	for _, a := range []Align{AlignLeft, AlignRight} {
		got, err := ParseAlign(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAlign(%q) = %v, %v", a.String(), got, err)
		}
	}
}
