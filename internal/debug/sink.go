package debug

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Sink is the interface for debug output destinations.
type Sink interface {
	Write(event Event) error
	Flush() error
	Close() error
}

// JSONSink writes events in JSON Lines format.
type JSONSink struct {
	w       *bufio.Writer
	encoder *json.Encoder
}

// NewJSONSink creates a new JSON Lines sink writing to w.
func NewJSONSink(w io.Writer) *JSONSink {
	bw := bufio.NewWriter(w)
	return &JSONSink{
		w:       bw,
		encoder: json.NewEncoder(bw),
	}
}

// Write encodes and writes an event as a JSON line.
func (s *JSONSink) Write(event Event) error {
	return s.encoder.Encode(event)
}

// Flush writes any buffered data to the underlying writer.
func (s *JSONSink) Flush() error {
	return s.w.Flush()
}

// Close flushes the buffer.
func (s *JSONSink) Close() error {
	return s.Flush()
}

// PrettySink writes events in human-readable format.
type PrettySink struct {
	w *bufio.Writer
}

// NewPrettySink creates a new pretty-format sink writing to w.
func NewPrettySink(w io.Writer) *PrettySink {
	return &PrettySink{
		w: bufio.NewWriter(w),
	}
}

// Write formats and writes an event in human-readable format.
func (s *PrettySink) Write(event Event) error {
	scope := event.Scope
	if scope == "" {
		scope = "root"
	}
	// Format: [timestamp] [phase/event] scope=0/1 session=abcd1234
	fmt.Fprintf(s.w, "[%s] [%s/%s] scope=%s session=%s\n",
		event.Timestamp, event.Phase, event.Event, scope, event.SessionID)

	switch d := event.Data.(type) {
	case RenderStartData:
		s.writeRenderStart(d)
	case WrapData:
		s.writeWrap(d)
	case AllocateData:
		s.writeAllocate(d)
	case ReconcileData:
		fmt.Fprintf(s.w, "  heights: %v -> rows: %d\n", d.Heights, d.Rows)
	case PadData:
		s.writePad(d)
	case HeightData:
		fmt.Fprintf(s.w, "  rows: %d, limit: %d, truncate: %v -> %s\n", d.Rows, d.Limit, d.Truncate, d.Outcome)
	case ClipData:
		fmt.Fprintf(s.w, "  content_width: %d -> %d rows clipped to %d\n", d.ContentWidth, d.Rows, d.RowWidth)
	case RenderEndData:
		fmt.Fprintf(s.w, "  rows: %d, row_width: %d, elapsed_us: %d\n", d.Rows, d.RowWidth, d.ElapsedUs)
	case ErrorData:
		fmt.Fprintf(s.w, "  %s: %s\n", d.Type, d.Message)
		s.writeMap(d.Context)
	case map[string]interface{}:
		s.writeMap(d)
	case map[string]int64:
		for _, k := range sortedKeys(d) {
			fmt.Fprintf(s.w, "  %s: %d\n", k, d[k])
		}
	default:
		fmt.Fprintf(s.w, "  data: %+v\n", d)
	}

	return nil
}

func (s *PrettySink) writeRenderStart(d RenderStartData) {
	height := "none"
	if d.Height >= 0 {
		height = fmt.Sprint(d.Height)
	}
	fixed := "fluid"
	if d.FixedWidth {
		fixed = "fixed"
	}
	fmt.Fprintf(s.w, "  kind: %s, align: %s\n", d.Kind, d.Align)
	fmt.Fprintf(s.w, "  width: available=%d effective=%d (%s) content=%d\n",
		d.AvailableWidth, d.EffectiveWidth, fixed, d.ContentWidth)
	fmt.Fprintf(s.w, "  padding: left=%d right=%d top=%d bottom=%d\n",
		d.PaddingLeft, d.PaddingRight, d.PaddingTop, d.PaddingBottom)
	fmt.Fprintf(s.w, "  height: %s, truncate: %v\n", height, d.Truncate)
}

func (s *PrettySink) writeWrap(d WrapData) {
	fmt.Fprintf(s.w, "  line: %d, width: %d > %d -> %d lines\n", d.Line, d.LineWidth, d.ContentWidth, d.Lines)
	if d.Clipped > 0 {
		fmt.Fprintf(s.w, "  clipped: %d\n", d.Clipped)
	}
}

func (s *PrettySink) writeAllocate(d AllocateData) {
	fmt.Fprintf(s.w, "  width: %d, margin: %d, columns: %d (fixed %d, fluid %d)\n",
		d.Width, d.Margin, d.Columns, d.Fixed, d.Fluid)
	fmt.Fprintf(s.w, "  resolved: %v, remaining: %d\n", d.Resolved, d.Remaining)
}

func (s *PrettySink) writePad(d PadData) {
	fmt.Fprintf(s.w, "  content_rows: %d, row_width: %d\n", d.ContentRows, d.RowWidth)
	fmt.Fprintf(s.w, "  top: %d, bottom: %d, left: %d, right: %d\n", d.Top, d.Bottom, d.Left, d.Right)
}

func (s *PrettySink) writeMap(d map[string]interface{}) {
	for _, k := range sortedKeys(d) {
		fmt.Fprintf(s.w, "  %s: %v\n", k, d[k])
	}
}

// Flush writes any buffered data to the underlying writer.
func (s *PrettySink) Flush() error {
	return s.w.Flush()
}

// Close flushes the buffer.
func (s *PrettySink) Close() error {
	return s.Flush()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
