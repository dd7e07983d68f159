package textblock

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ryanlewis/textblock/internal/debug"
	"github.com/ryanlewis/textblock/internal/wrap"
)

// Renderable is implemented by Block and Columns. It renders to a rectangle
// of rows that all have the same display width.
type Renderable interface {
	// Render lays the value out in width columns and returns its rows from
	// top to bottom.
	Render(width int, opts ...RenderOption) ([]string, error)

	base() *frame
	renderContent(width int, tr trace) ([]string, error)
	kind() string
}

// frame holds the settings shared by every Renderable: the padding around
// the content, the optional fixed size and the content alignment.
type frame struct {
	padding Padding
	size    Size
	align   Align
}

// Padding returns the block padding.
func (f *frame) Padding() Padding { return f.padding }

// Size returns the block's fixed width and height settings.
func (f *frame) Size() Size { return f.size }

// Align returns the content alignment.
func (f *frame) Align() Align { return f.align }

func (f *frame) base() *frame { return f }

// resolveWidth returns the width the block occupies when offered available
// columns.
func (f *frame) resolveWidth(available int) int {
	if w, ok := f.size.Width(); ok {
		return w
	}
	return available
}

// contentWidth returns the columns left for content inside width.
func (f *frame) contentWidth(width int) int {
	return f.resolveWidth(width) - f.padding.Left - f.padding.Right
}

// heightLimit returns the row cap for a render, or -1 when uncapped. The
// block's own height wins over the caller's.
func (f *frame) heightLimit(ro *renderOptions) int {
	if h, ok := f.size.Height(); ok {
		return h
	}
	if ro.height >= 0 {
		return ro.height
	}
	return -1
}

// pad surrounds content with blank rows and columns. Blank rows are as wide
// as the widest content line.
func (f *frame) pad(content []string) []string {
	longest := 0
	for _, line := range content {
		if w := wrap.Width(line); w > longest {
			longest = w
		}
	}

	p := f.padding
	blank := wrap.Blank(longest)
	left := wrap.Blank(p.Left)
	right := wrap.Blank(p.Right)

	rows := make([]string, 0, p.Top+len(content)+p.Bottom)
	for i := 0; i < p.Top; i++ {
		rows = append(rows, left+blank+right)
	}
	for _, line := range content {
		rows = append(rows, left+line+right)
	}
	for i := 0; i < p.Bottom; i++ {
		rows = append(rows, left+blank+right)
	}
	return rows
}

// RenderOption configures a single render call.
type RenderOption func(*renderOptions)

type renderOptions struct {
	height   int
	truncate bool
	tracer   Tracer
}

func defaultRenderOptions() *renderOptions {
	return &renderOptions{height: -1, truncate: true}
}

// WithAvailableHeight caps the rendered rows at height unless the block has
// its own fixed height, which takes precedence. A negative height means no
// cap.
func WithAvailableHeight(height int) RenderOption {
	return func(ro *renderOptions) {
		if height < 0 {
			height = -1
		}
		ro.height = height
	}
}

// WithTruncate controls what happens when the rendered rows exceed the
// height cap. When true (the default) the extra rows are dropped silently.
// When false the render fails with ErrOverflow.
func WithTruncate(truncate bool) RenderOption {
	return func(ro *renderOptions) {
		ro.truncate = truncate
	}
}

// WithTracer attaches a Tracer that receives render events. A nil tracer
// disables tracing.
func WithTracer(t Tracer) RenderOption {
	return func(ro *renderOptions) {
		ro.tracer = t
	}
}

// Tracer receives the events of a render for debugging. Scope is the column
// path of the renderable that emitted the event, such as "0/2", and is empty
// for the top-level value. Data is one of the event structs of the debug
// trace and is meant for printing or JSON encoding.
type Tracer interface {
	Trace(scope, phase, event string, data interface{})
}

// trace is a Tracer bound to the scope of one renderable.
type trace struct {
	tracer Tracer
	scope  string
}

func (t trace) on() bool { return t.tracer != nil }

func (t trace) emit(phase, event string, data interface{}) {
	if t.tracer != nil {
		t.tracer.Trace(t.scope, phase, event, data)
	}
}

// column returns the trace for child i.
func (t trace) column(i int) trace {
	if t.tracer == nil {
		return t
	}
	if t.scope == "" {
		return trace{tracer: t.tracer, scope: strconv.Itoa(i)}
	}
	return trace{tracer: t.tracer, scope: t.scope + "/" + strconv.Itoa(i)}
}

// render is the pipeline shared by Block and Columns: resolve the width,
// render the content, pad it, then enforce the height cap.
func render(r Renderable, width int, opts []RenderOption) ([]string, error) {
	ro := defaultRenderOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(ro)
		}
	}
	return renderWith(r, width, ro, trace{tracer: ro.tracer})
}

func renderWith(r Renderable, width int, ro *renderOptions, tr trace) ([]string, error) {
	f := r.base()
	limit := f.heightLimit(ro)

	var start time.Time
	if tr.on() {
		start = time.Now()
		_, fixed := f.size.Width()
		tr.emit(r.kind(), "Start", debug.RenderStartData{
			Kind:           r.kind(),
			AvailableWidth: width,
			EffectiveWidth: f.resolveWidth(width),
			ContentWidth:   f.contentWidth(width),
			FixedWidth:     fixed,
			Height:         limit,
			Truncate:       ro.truncate,
			Align:          f.align.String(),
			PaddingLeft:    f.padding.Left,
			PaddingRight:   f.padding.Right,
			PaddingTop:     f.padding.Top,
			PaddingBottom:  f.padding.Bottom,
		})
	}

	cw := f.contentWidth(width)
	content, err := r.renderContent(cw, tr)
	if err != nil {
		tr.emit(r.kind(), "Error", debug.ErrorData{Type: "content", Message: err.Error()})
		return nil, err
	}

	rows := f.pad(content)
	if tr.on() {
		rowWidth := 0
		if len(content) > 0 {
			rowWidth = wrap.Width(content[0])
		}
		tr.emit(r.kind(), "Pad", debug.PadData{
			ContentRows: len(content),
			RowWidth:    rowWidth,
			Top:         f.padding.Top,
			Bottom:      f.padding.Bottom,
			Left:        f.padding.Left,
			Right:       f.padding.Right,
		})
	}

	// Padding wider than the block leaves no room for content; the padding
	// rows are cut back to the block width.
	if cw < 0 {
		rowWidth := max(f.resolveWidth(width), 0)
		for i, row := range rows {
			rows[i] = wrap.Fit(row, rowWidth, false)
		}
		tr.emit(r.kind(), "Clip", debug.ClipData{
			ContentWidth: cw,
			RowWidth:     rowWidth,
			Rows:         len(rows),
		})
	}

	outcome := debug.ClassifyHeight(len(rows), limit, ro.truncate)
	tr.emit(r.kind(), "Height", debug.HeightData{
		Rows:     len(rows),
		Limit:    limit,
		Truncate: ro.truncate,
		Outcome:  outcome,
	})

	switch outcome {
	case debug.OutcomeTruncated:
		rows = rows[:limit]
	case debug.OutcomeOverflow:
		err := fmt.Errorf("%w: %d rows, limit %d", ErrOverflow, len(rows), limit)
		tr.emit(r.kind(), "Error", debug.ErrorData{Type: "overflow", Message: err.Error()})
		return nil, err
	}

	if tr.on() {
		rowWidth := 0
		if len(rows) > 0 {
			rowWidth = wrap.Width(rows[0])
		}
		tr.emit(r.kind(), "End", debug.RenderEndData{
			Rows:      len(rows),
			RowWidth:  rowWidth,
			ElapsedUs: time.Since(start).Microseconds(),
		})
	}

	return rows, nil
}

// RenderString renders r and joins the rows with newlines.
func RenderString(r Renderable, width int, opts ...RenderOption) (string, error) {
	rows, err := r.Render(width, opts...)
	if err != nil {
		return "", err
	}
	return strings.Join(rows, "\n"), nil
}

// RenderTo renders r and writes each row to w followed by a newline.
// Nothing is written when rendering fails.
func RenderTo(w io.Writer, r Renderable, width int, opts ...RenderOption) error {
	rows, err := r.Render(width, opts...)
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}
