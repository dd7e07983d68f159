package textblock

import (
	"fmt"
	"strings"

	"github.com/ryanlewis/textblock/internal/debug"
	"github.com/ryanlewis/textblock/internal/wrap"
)

// Block is a rectangle of wrapped, aligned and padded text.
//
// A Block is immutable once created and safe for concurrent use.
type Block struct {
	frame
	content string
}

// NewBlock creates a block holding content. Content may contain newlines;
// each line is wrapped independently at render time.
func NewBlock(content string, opts ...Option) (*Block, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	if o.marginSet {
		return nil, fmt.Errorf("%w: margin applies only to columns", ErrInvalidOption)
	}
	return &Block{frame: o.frame, content: content}, nil
}

// Content returns the raw text of the block.
func (b *Block) Content() string {
	return b.content
}

// Render lays the block out in width columns. A fixed block width replaces
// width. Every returned row has the same display width.
//
// Example:
//
//	b, _ := textblock.NewBlock("aa bb cc dd", textblock.WithPaddingLeft(2))
//	rows, _ := b.Render(7)
//	// rows == []string{"  aa bb", "  cc dd"}
func (b *Block) Render(width int, opts ...RenderOption) ([]string, error) {
	return render(b, width, opts)
}

func (b *Block) kind() string { return "block" }

// renderContent wraps and aligns the content into lines exactly width
// columns wide. A width <= 0 leaves no room for text and yields no lines.
//
// A word wider than width stays on a line of its own and is clipped to
// width so the block remains rectangular.
func (b *Block) renderContent(width int, tr trace) ([]string, error) {
	if width <= 0 {
		return nil, nil
	}

	right := b.align == AlignRight
	source := strings.Split(strings.TrimSpace(b.content), "\n")
	lines := make([]string, 0, len(source))

	for i, line := range source {
		line = strings.ReplaceAll(strings.TrimSuffix(line, "\r"), "\t", " ")

		lineWidth := wrap.Width(line)
		if lineWidth <= width {
			lines = append(lines, wrap.Fill(line, width, right))
			continue
		}

		wrapped := strings.Split(wrap.Wrap(line, width), "\n")
		clipped := 0
		for _, sub := range wrapped {
			if wrap.Width(sub) > width {
				sub = wrap.Clip(sub, width)
				clipped++
			}
			lines = append(lines, wrap.Fill(sub, width, right))
		}

		tr.emit("block", "Wrap", debug.WrapData{
			Line:         i,
			LineWidth:    lineWidth,
			ContentWidth: width,
			Lines:        len(wrapped),
			Clipped:      clipped,
		})
	}

	return lines, nil
}
