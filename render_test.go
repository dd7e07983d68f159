package textblock

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/ryanlewis/textblock/internal/debug"
)

func TestRenderString(t *testing.T) {
	b := mustBlock(t, "aa bb cc dd")
	got, err := RenderString(b, 5)
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}
	if want := "aa bb\ncc dd"; got != want {
		t.Errorf("RenderString() = %q, want %q", got, want)
	}

	if _, err := RenderString(mustBlock(t, "a b", WithHeight(1)), 1, WithTruncate(false)); !errors.Is(err, ErrOverflow) {
		t.Errorf("RenderString() error = %v, want ErrOverflow", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderTo(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTo(&buf, mustBlock(t, "aa bb cc dd", WithPaddingLeft(1)), 6); err != nil {
		t.Fatalf("RenderTo() error = %v", err)
	}
	if want := " aa bb\n cc dd\n"; buf.String() != want {
		t.Errorf("RenderTo() wrote %q, want %q", buf.String(), want)
	}

	buf.Reset()
	err := RenderTo(&buf, mustBlock(t, "a b c", WithHeight(2)), 1, WithTruncate(false))
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("RenderTo() error = %v, want ErrOverflow", err)
	}
	if buf.Len() != 0 {
		t.Errorf("RenderTo() wrote %q on error", buf.String())
	}

	if err := RenderTo(failingWriter{}, mustBlock(t, "x"), 3); err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("RenderTo() error = %v, want write error", err)
	}
}

func TestRenderNilOption(t *testing.T) {
	rows, err := mustBlock(t, "a b").Render(1, nil, WithAvailableHeight(1), nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(rows) != 1 || rows[0] != "a" {
		t.Errorf("Render() = %q, want [\"a\"]", rows)
	}
}

// captureSink records events in memory.
type captureSink struct {
	events []debug.Event
}

func (s *captureSink) Write(e debug.Event) error {
	s.events = append(s.events, e)
	return nil
}
func (s *captureSink) Flush() error { return nil }
func (s *captureSink) Close() error { return nil }

func (s *captureSink) find(scope, phase, event string) *debug.Event {
	for i := range s.events {
		e := &s.events[i]
		if e.Scope == scope && e.Phase == phase && e.Event == event {
			return e
		}
	}
	return nil
}

func withDebugEnabled(t *testing.T) {
	t.Helper()
	prev := debug.Enabled()
	debug.SetEnabled(true)
	t.Cleanup(func() { debug.SetEnabled(prev) })
}

func TestRenderDebugEvents(t *testing.T) {
	withDebugEnabled(t)

	sink := &captureSink{}
	session := debug.NewSession(sink)
	if session == nil {
		t.Fatal("NewSession() returned nil with debug enabled")
	}

	c := mustColumns(t, []Renderable{
		mustBlock(t, "ab cd ef", WithWidth(4)),
		mustBlock(t, "ghijkl"),
	}, WithMargin(2), WithHeight(2))

	rows, err := c.Render(12, WithTracer(session))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if err := session.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	alloc := sink.find("", "columns", "Allocate")
	if alloc == nil {
		t.Fatal("missing columns/Allocate event")
	}
	data, ok := alloc.Data.(debug.AllocateData)
	if !ok {
		t.Fatalf("Allocate data has type %T", alloc.Data)
	}
	if data.Fixed != 1 || data.Fluid != 1 || len(data.Resolved) != 2 || data.Resolved[1] != 6 {
		t.Errorf("Allocate data = %+v, want one fixed, one fluid of width 6", data)
	}

	if sink.find("0", "block", "Wrap") == nil {
		t.Error("missing block/Wrap event for column 0")
	}
	if sink.find("1", "block", "Start") == nil {
		t.Error("missing block/Start event for column 1")
	}
	if sink.find("", "columns", "Reconcile") == nil {
		t.Error("missing columns/Reconcile event")
	}

	height := sink.find("", "columns", "Height")
	if height == nil {
		t.Fatal("missing columns/Height event")
	}
	if hd := height.Data.(debug.HeightData); hd.Outcome != debug.OutcomeTruncated || hd.Rows != 3 || hd.Limit != 2 {
		t.Errorf("Height data = %+v, want 3 rows truncated to 2", hd)
	}

	if sink.find("", "session", "End") == nil {
		t.Error("missing session/End event")
	}
	for _, e := range sink.events {
		if e.SessionID != session.SessionID() {
			t.Errorf("event %s/%s has session %q, want %q", e.Phase, e.Event, e.SessionID, session.SessionID())
		}
	}
}

func TestRenderDebugOverflowEvent(t *testing.T) {
	withDebugEnabled(t)

	sink := &captureSink{}
	session := debug.NewSession(sink)

	_, err := mustBlock(t, "a b c", WithHeight(1)).Render(1, WithTracer(session), WithTruncate(false))
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("Render() error = %v, want ErrOverflow", err)
	}

	e := sink.find("", "block", "Error")
	if e == nil {
		t.Fatal("missing block/Error event")
	}
	if ed := e.Data.(debug.ErrorData); ed.Type != "overflow" {
		t.Errorf("Error type = %q, want overflow", ed.Type)
	}
	if sink.find("", "block", "End") != nil {
		t.Error("End emitted after overflow")
	}
}

func TestRenderDebugJSON(t *testing.T) {
	withDebugEnabled(t)

	var buf bytes.Buffer
	session := debug.NewSession(debug.NewJSONSink(&buf))
	if _, err := mustBlock(t, "hello world", WithPaddingTop(1)).Render(5, WithTracer(session)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if err := session.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	var phases []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var e struct {
			Phase string `json:"phase"`
			Event string `json:"event"`
		}
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		phases = append(phases, e.Phase+"/"+e.Event)
	}

	want := []string{"session/Start", "block/Start", "block/Wrap", "block/Pad", "block/Height", "block/End", "session/End"}
	if strings.Join(phases, " ") != strings.Join(want, " ") {
		t.Errorf("events = %v, want %v", phases, want)
	}
}

type recordingTracer struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingTracer) Trace(scope, phase, event string, _ interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, scope+":"+phase+"/"+event)
}

func (r *recordingTracer) has(want string) bool {
	for _, e := range r.events {
		if e == want {
			return true
		}
	}
	return false
}

func TestRenderTracer(t *testing.T) {
	inner := mustColumns(t, []Renderable{
		mustBlock(t, "ab", WithWidth(2)),
		mustBlock(t, "cd"),
	}, WithMargin(1))
	c := mustColumns(t, []Renderable{
		mustBlock(t, "x", WithWidth(1)),
		inner,
	}, WithMargin(1))

	tr := &recordingTracer{}
	if _, err := c.Render(10, WithTracer(tr)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{
		":columns/Start",
		":columns/Allocate",
		"0:block/Start",
		"1:columns/Allocate",
		"1/0:block/Start",
		"1/1:block/End",
		":columns/End",
	} {
		if !tr.has(want) {
			t.Errorf("missing event %s in %v", want, tr.events)
		}
	}
}

func TestRenderTracerNil(t *testing.T) {
	rows, err := mustBlock(t, "hello").Render(5, WithTracer(nil))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(rows) != 1 || rows[0] != "hello" {
		t.Errorf("rows = %q, want [hello]", rows)
	}
}

func TestRenderPaddingWiderThanBlock(t *testing.T) {
	tests := []struct {
		name  string
		block *Block
		width int
		want  []string
	}{
		{
			name:  "fixed width narrower than padding",
			block: mustBlock(t, "x", WithWidth(2), WithPadding(Padding{Top: 1, Left: 2, Right: 2})),
			width: 10,
			want:  []string{"  "},
		},
		{
			name:  "fluid width narrower than padding",
			block: mustBlock(t, "x", WithPadding(Padding{Top: 2, Left: 3, Right: 1})),
			width: 3,
			want:  []string{"   ", "   "},
		},
		{
			name:  "zero width",
			block: mustBlock(t, "x", WithPadding(Padding{Top: 1, Left: 1})),
			width: 0,
			want:  []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &recordingTracer{}
			got, err := tt.block.Render(tt.width, WithTracer(tr))
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
			if !tr.has(":block/Clip") {
				t.Errorf("missing block/Clip event in %v", tr.events)
			}
		})
	}
}
