package wrap

import (
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		width int
		want  string
	}{
		{"empty", "", 10, ""},
		{"only whitespace", " \t  ", 10, ""},
		{"fits", "hello world", 20, "hello world"},
		{"exact fit", "aa bb cc dd", 5, "aa bb\ncc dd"},
		{"one short of fit", "aa bb cc dd", 4, "aa\nbb\ncc\ndd"},
		{"collapses whitespace", "aa   bb\t\tcc", 20, "aa bb cc"},
		{"leading and trailing space", "   aa bb   ", 20, "aa bb"},
		{"long word alone", "a verylongword b", 5, "a\nverylongword\nb"},
		{"long first word", "verylongword b", 5, "verylongword\nb"},
		{"single long word", "verylongword", 3, "verylongword"},
		{"zero width", "aa bb", 0, "aa\nbb"},
		{"negative width", "aa bb cc", -3, "aa\nbb\ncc"},
		{"width one", "a b c", 1, "a\nb\nc"},
		{"greedy", "the quick brown fox", 10, "the quick\nbrown fox"},
		{"wide runes", "日本 語", 4, "日本\n語"},
		{"wide runes fit", "日本 語", 7, "日本 語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.line, tt.width)
			if got != tt.want {
				t.Errorf("Wrap(%q, %d) = %q, want %q", tt.line, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapWidthBound(t *testing.T) {
	text := "Lorem ipsum dolor sit amet, consectetur adipiscing elit. " +
		"Vivamus non vehicula mi, a volutpat felis. Nunc vel venenatis magna, " +
		"ut fermentum ipsum. Ut varius enim. Pneumonoultramicroscopicsilicovolcanoconiosis."

	for width := 1; width <= 60; width++ {
		for _, line := range Lines(text, width) {
			if Width(line) <= width {
				continue
			}
			if strings.ContainsRune(line, ' ') {
				t.Fatalf("width %d: line %q is %d wide and holds more than one word", width, line, Width(line))
			}
		}
	}
}

func TestWrapPreservesWords(t *testing.T) {
	text := "one two  three\tfour five six seven eight nine ten"
	want := strings.Fields(text)

	for width := 1; width <= 20; width++ {
		got := strings.Fields(Wrap(text, width))
		if strings.Join(got, " ") != strings.Join(want, " ") {
			t.Fatalf("width %d: words = %v, want %v", width, got, want)
		}
	}
}

func TestWrapIdempotent(t *testing.T) {
	text := "Cras fringilla, elit ut facilisis semper, tortor odio aliquet ex, in tempor ligula tellus ut neque."

	for width := 1; width <= 40; width++ {
		once := Lines(text, width)
		for _, line := range once {
			again := Wrap(line, width)
			if again != line {
				t.Fatalf("width %d: rewrapping %q gave %q", width, line, again)
			}
		}
	}
}

func TestLines(t *testing.T) {
	if got := Lines("", 10); got != nil {
		t.Errorf("Lines(\"\") = %v, want nil", got)
	}

	got := Lines("aa bb cc dd", 5)
	want := []string{"aa bb", "cc dd"}
	if len(got) != len(want) {
		t.Fatalf("Lines() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Lines()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFill(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		width int
		right bool
		want  string
	}{
		{"left", "ab", 5, false, "ab   "},
		{"right", "ab", 5, true, "   ab"},
		{"exact", "abcde", 5, false, "abcde"},
		{"empty", "", 3, false, "   "},
		{"wide rune left", "日", 4, false, "日  "},
		{"wide rune right", "日", 4, true, "  日"},
		{"too wide unchanged", "abcdef", 3, false, "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fill(tt.s, tt.width, tt.right)
			if got != tt.want {
				t.Errorf("Fill(%q, %d, %v) = %q, want %q", tt.s, tt.width, tt.right, got, tt.want)
			}
		})
	}
}

func TestClip(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		width int
		want  string
	}{
		{"shorter", "abc", 5, "abc"},
		{"longer", "abcdefgh", 5, "abcde"},
		{"zero", "abc", 0, ""},
		{"negative", "abc", -1, ""},
		{"wide rune straddles", "日本語", 5, "日本"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clip(tt.s, tt.width)
			if got != tt.want {
				t.Errorf("Clip(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
			}
		})
	}
}

func TestBlank(t *testing.T) {
	if got := Blank(3); got != "   " {
		t.Errorf("Blank(3) = %q", got)
	}
	if got := Blank(0); got != "" {
		t.Errorf("Blank(0) = %q", got)
	}
	if got := Blank(-2); got != "" {
		t.Errorf("Blank(-2) = %q", got)
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		width int
		right bool
		want  string
	}{
		{"exact", "abc", 3, false, "abc"},
		{"fill right", "ab", 4, false, "ab  "},
		{"fill left", "ab", 4, true, "  ab"},
		{"clip", "abcdef", 4, false, "abcd"},
		{"clip ignores alignment", "abcdef", 4, true, "abcd"},
		{"blank clipped", "      ", 2, false, "  "},
		{"zero width", "abc", 0, false, ""},
		{"negative width", "abc", -2, false, ""},
		{"wide rune split", "日本", 3, false, "日 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fit(tt.s, tt.width, tt.right)
			if got != tt.want {
				t.Errorf("Fit(%q, %d, %v) = %q, want %q", tt.s, tt.width, tt.right, got, tt.want)
			}
		})
	}
}
