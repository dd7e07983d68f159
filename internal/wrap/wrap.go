// Package wrap implements greedy word wrapping and column-width helpers
// for rendering text blocks.
//
// All widths are terminal display columns as reported by go-runewidth, so
// East Asian wide runes count as two columns and combining marks as zero.
// For plain ASCII text a width equals the byte length of the string.
package wrap

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap breaks line into sub-lines no wider than width and joins them with
// '\n'.
//
// Words are separated by runs of whitespace, so repeated spaces and tabs
// collapse into a single separator. A word is placed on the current line
// when the line plus the word fits in width; the trailing separator is not
// counted against the limit. A word wider than width is never split: it
// occupies a sub-line of its own that exceeds width.
//
// An empty or all-whitespace line yields "". A width <= 0 places every word
// on its own sub-line.
func Wrap(line string, width int) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return ""
	}

	buf := acquireBuffer(len(line))
	defer func() { releaseBuffer(buf) }()

	lineWidth := 0
	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)

		switch {
		case lineWidth == 0:
		case lineWidth+1+wordWidth > width:
			buf = append(buf, '\n')
			lineWidth = 0
		default:
			buf = append(buf, ' ')
			lineWidth++
		}

		buf = append(buf, word...)
		lineWidth += wordWidth
	}

	return string(buf)
}

// Lines is Wrap split into its sub-lines. It returns nil for blank input.
func Lines(line string, width int) []string {
	wrapped := Wrap(line, width)
	if wrapped == "" {
		return nil
	}
	return strings.Split(wrapped, "\n")
}

// Width returns the display width of s in terminal columns.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Fill pads s with spaces to exactly width columns. When right is true the
// spaces are prepended so the text hugs the right edge; otherwise they are
// appended. Strings already at or beyond width are returned unchanged.
func Fill(s string, width int, right bool) string {
	if right {
		return runewidth.FillLeft(s, width)
	}
	return runewidth.FillRight(s, width)
}

// Fit makes s exactly width columns wide, clipping it when it is wider and
// filling it as Fill does when it is narrower.
func Fit(s string, width int, right bool) string {
	if width <= 0 {
		return ""
	}
	w := runewidth.StringWidth(s)
	if w == width {
		return s
	}
	if w > width {
		s = runewidth.Truncate(s, width, "")
	}
	return Fill(s, width, right)
}

// Clip truncates s to at most width columns. A wide rune that would
// straddle the limit is dropped, so the result may be one column short.
func Clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "")
}

// Blank returns a row of width spaces, or "" when width <= 0.
func Blank(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(" ", width)
}
