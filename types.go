package textblock

import (
	"errors"
	"fmt"

	"github.com/ryanlewis/textblock/internal/parser"
)

// Common errors returned by the textblock package
var (
	// ErrOverflow is returned when rendered content is taller than the block
	// height and truncation is disabled.
	ErrOverflow = errors.New("content height exceeds block height")

	// ErrConfiguration is returned when a layout has more than one fluid
	// width child.
	ErrConfiguration = errors.New("only one block may be fluid width")

	// ErrInvalidOption is returned for negative sizes, paddings or margins.
	ErrInvalidOption = errors.New("invalid option")

	// ErrUnsupportedAlign is returned for alignments other than left and right.
	ErrUnsupportedAlign = errors.New("unsupported text alignment")

	// ErrBadDocument is returned when a layout document is malformed.
	ErrBadDocument = parser.ErrBadDocument
)

// Padding is the blank inset around a block's content, in columns for Left
// and Right and in rows for Top and Bottom.
type Padding struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

func (p Padding) validate() error {
	if p.Left < 0 || p.Right < 0 || p.Top < 0 || p.Bottom < 0 {
		return fmt.Errorf("%w: negative padding %+v", ErrInvalidOption, p)
	}
	return nil
}

// Size holds a block's optional fixed width and height.
// The zero value has neither set, which makes the block fluid and uncapped.
type Size struct {
	width     int
	height    int
	hasWidth  bool
	hasHeight bool
}

// NewSize returns a Size with both dimensions fixed.
func NewSize(width, height int) Size {
	return Size{width: width, height: height, hasWidth: true, hasHeight: true}
}

// Width returns the fixed width and whether it is set.
func (s Size) Width() (int, bool) {
	return s.width, s.hasWidth
}

// Height returns the height cap and whether it is set.
func (s Size) Height() (int, bool) {
	return s.height, s.hasHeight
}

// Fluid reports whether the width is unset, so a parent layout may assign
// the remaining width to it.
func (s Size) Fluid() bool {
	return !s.hasWidth
}

// Option configures a Block or Columns at construction time.
type Option func(*options) error

type options struct {
	frame
	margin    int
	marginSet bool
}

// WithWidth fixes the total block width, padding included. A fixed width
// always wins over the width offered by the caller or a parent layout.
func WithWidth(width int) Option {
	return func(o *options) error {
		if width < 0 {
			return fmt.Errorf("%w: negative width %d", ErrInvalidOption, width)
		}
		o.size.width = width
		o.size.hasWidth = true
		return nil
	}
}

// WithHeight caps the total block height, padding included. Rows beyond the
// cap are dropped or rejected depending on WithTruncate at render time.
//
// A height of 0 is a real cap: the block renders no rows at all. Leave the
// height unset for an uncapped block.
func WithHeight(height int) Option {
	return func(o *options) error {
		if height < 0 {
			return fmt.Errorf("%w: negative height %d", ErrInvalidOption, height)
		}
		o.size.height = height
		o.size.hasHeight = true
		return nil
	}
}

// WithPadding sets all four paddings at once.
func WithPadding(p Padding) Option {
	return func(o *options) error {
		if err := p.validate(); err != nil {
			return err
		}
		o.padding = p
		return nil
	}
}

// WithPaddingLeft sets the number of blank columns before the content.
func WithPaddingLeft(n int) Option {
	return paddingOption("left", n, func(p *Padding) { p.Left = n })
}

// WithPaddingRight sets the number of blank columns after the content.
func WithPaddingRight(n int) Option {
	return paddingOption("right", n, func(p *Padding) { p.Right = n })
}

// WithPaddingTop sets the number of blank rows above the content.
func WithPaddingTop(n int) Option {
	return paddingOption("top", n, func(p *Padding) { p.Top = n })
}

// WithPaddingBottom sets the number of blank rows below the content.
func WithPaddingBottom(n int) Option {
	return paddingOption("bottom", n, func(p *Padding) { p.Bottom = n })
}

func paddingOption(side string, n int, set func(*Padding)) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("%w: negative %s padding %d", ErrInvalidOption, side, n)
		}
		set(&o.padding)
		return nil
	}
}

// WithAlign sets the horizontal alignment of each content line.
func WithAlign(a Align) Option {
	return func(o *options) error {
		if !a.valid() {
			return fmt.Errorf("%w: %s", ErrUnsupportedAlign, a)
		}
		o.align = a
		return nil
	}
}

// WithMargin sets the number of blank columns between adjacent columns of
// a layout. It is rejected by NewBlock.
func WithMargin(margin int) Option {
	return func(o *options) error {
		if margin < 0 {
			return fmt.Errorf("%w: negative margin %d", ErrInvalidOption, margin)
		}
		o.margin = margin
		o.marginSet = true
		return nil
	}
}

func applyOptions(opts []Option) (*options, error) {
	o := &options{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}
