package textblock

import (
	"fmt"
	"strings"

	"github.com/ryanlewis/textblock/internal/debug"
	"github.com/ryanlewis/textblock/internal/wrap"
)

// Columns places child blocks side by side, separated by a fixed margin.
//
// Children with a fixed width keep it. At most one child may be fluid; it
// receives whatever width the fixed children and margins leave over. Shorter
// columns are padded with blank rows so that every column has the same
// height. The combined rows are then padded and height-capped like a Block.
//
// Columns never modifies its children, so one value may be rendered
// concurrently at different widths.
type Columns struct {
	frame
	children []Renderable
	margin   int
}

// NewColumns creates a multi-column layout. Children may themselves be
// Columns. It fails with ErrConfiguration when more than one child is fluid.
func NewColumns(children []Renderable, opts ...Option) (*Columns, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	for i, child := range children {
		if isNil(child) {
			return nil, fmt.Errorf("%w: column %d is nil", ErrInvalidOption, i)
		}
	}
	if _, err := allocate(children, 0, o.margin); err != nil {
		return nil, err
	}

	return &Columns{
		frame:    o.frame,
		children: append([]Renderable(nil), children...),
		margin:   o.margin,
	}, nil
}

// Children returns a copy of the child list.
func (c *Columns) Children() []Renderable {
	return append([]Renderable(nil), c.children...)
}

// Margin returns the gap between adjacent columns.
func (c *Columns) Margin() int {
	return c.margin
}

// Render lays the columns out in width columns. A fixed layout width
// replaces width.
func (c *Columns) Render(width int, opts ...RenderOption) ([]string, error) {
	return render(c, width, opts)
}

// Widths returns the width each child is rendered at when the layout is
// offered width columns. The fluid child's entry may be negative when the
// fixed children and margins do not fit.
func (c *Columns) Widths(width int) ([]int, error) {
	a, err := allocate(c.children, c.contentWidth(width), c.margin)
	if err != nil {
		return nil, err
	}
	return a.widths, nil
}

func (c *Columns) kind() string { return "columns" }

// allocation is the result of dividing a layout's width among its children.
type allocation struct {
	widths    []int
	fixed     int
	fluid     int
	remaining int
}

// allocate resolves the width of every child. Fixed children keep their
// width; margins sit only between columns; the single fluid child, if any,
// takes what remains.
func allocate(children []Renderable, width, margin int) (allocation, error) {
	a := allocation{widths: make([]int, len(children))}
	fluidIdx := -1
	available := width

	for i, child := range children {
		if w, ok := child.base().size.Width(); ok {
			a.widths[i] = w
			a.fixed++
			available -= w
			continue
		}
		if fluidIdx >= 0 {
			return allocation{}, fmt.Errorf("%w: columns %d and %d are both fluid", ErrConfiguration, fluidIdx, i)
		}
		fluidIdx = i
	}

	if len(children) > 1 {
		available -= margin * (len(children) - 1)
	}

	if fluidIdx >= 0 {
		a.widths[fluidIdx] = available
		a.fluid = 1
		available = 0
	}
	a.remaining = available

	return a, nil
}

// renderContent renders every child at its allocated width, equalises their
// heights and joins them row by row. Each child's rows are made exactly as
// wide as its allocation so that the columns line up.
func (c *Columns) renderContent(width int, tr trace) ([]string, error) {
	a, err := allocate(c.children, width, c.margin)
	if err != nil {
		return nil, err
	}
	tr.emit("columns", "Allocate", debug.AllocateData{
		Width:     width,
		Margin:    c.margin,
		Columns:   len(c.children),
		Fixed:     a.fixed,
		Fluid:     a.fluid,
		Resolved:  a.widths,
		Remaining: a.remaining,
	})

	if len(c.children) == 0 {
		return nil, nil
	}

	rendered := make([][]string, len(c.children))
	heights := make([]int, len(c.children))
	rows := 0
	for i, child := range c.children {
		lines, err := renderWith(child, a.widths[i], defaultRenderOptions(), tr.column(i))
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		rendered[i] = lines
		heights[i] = len(lines)
		if len(lines) > rows {
			rows = len(lines)
		}
	}
	tr.emit("columns", "Reconcile", debug.ReconcileData{Heights: heights, Rows: rows})

	for i, lines := range rendered {
		w := max(a.widths[i], 0)
		for j, line := range lines {
			lines[j] = wrap.Fit(line, w, false)
		}
		blank := wrap.Blank(w)
		for len(lines) < rows {
			lines = append(lines, blank)
		}
		rendered[i] = lines
	}

	gap := wrap.Blank(c.margin)
	combined := make([]string, rows)
	fragments := make([]string, len(rendered))
	for row := 0; row < rows; row++ {
		for i := range rendered {
			fragments[i] = rendered[i][row]
		}
		combined[row] = strings.Join(fragments, gap)
	}

	// A fixed-width layout occupies exactly its width whatever its children add
	// up to.
	if _, fixed := c.size.Width(); fixed {
		right := c.align == AlignRight
		for i, row := range combined {
			combined[i] = wrap.Fit(row, max(width, 0), right)
		}
	}

	return combined, nil
}

// isNil reports whether r is a nil interface or a typed nil pointer.
func isNil(r Renderable) bool {
	switch v := r.(type) {
	case nil:
		return true
	case *Block:
		return v == nil
	case *Columns:
		return v == nil
	}
	return false
}
