package textblock

import (
	"fmt"
	"strings"
)

// Align is the horizontal alignment of content lines inside a block.
//
// Only left and right alignment exist. Center alignment is not supported and
// is rejected by ParseAlign rather than falling back to left.
type Align uint8

const (
	// AlignLeft hugs content to the left edge and pads on the right (default).
	AlignLeft Align = iota
	// AlignRight hugs content to the right edge and pads on the left.
	AlignRight
)

// ParseAlign converts an alignment name to an Align. Names are matched
// case-insensitively; the empty string means AlignLeft.
func ParseAlign(name string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	case "center", "centre":
		return AlignLeft, fmt.Errorf("%w: center alignment is not implemented", ErrUnsupportedAlign)
	default:
		return AlignLeft, fmt.Errorf("%w: %q", ErrUnsupportedAlign, name)
	}
}

// String returns "left" or "right", or a hex value for out-of-range values.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Align(0x%02X)", uint8(a))
	}
}

func (a Align) valid() bool {
	return a == AlignLeft || a == AlignRight
}
