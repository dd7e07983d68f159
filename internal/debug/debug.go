// Package debug provides tracing for the block rendering pipeline.
//
// The debug system follows these principles:
//   - Single switch: TEXTBLOCK_DEBUG=1 or --debug enables everything
//   - Zero overhead: a nil *Session is valid and every method on it is a no-op
//   - Session scoped: each top-level render gets a unique session ID, and
//     nested column renders share it under their own scope path
//   - Machine parsable: JSON Lines by default, pretty format optional
package debug

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"strconv"
	"sync/atomic"
	"time"
)

// enabled is the global debug flag, set once at startup.
var enabled atomic.Bool

// SetEnabled configures debug mode globally.
func SetEnabled(on bool) {
	enabled.Store(on)
}

// Enabled reports whether debug mode is active.
func Enabled() bool {
	return enabled.Load()
}

// InitFromEnv initialises debug settings from environment variables.
// Recognised variables:
//   - TEXTBLOCK_DEBUG=1: Enable debug mode
//   - TEXTBLOCK_DEBUG_PRETTY=1: Use pretty output format (read by the CLI)
func InitFromEnv() {
	if os.Getenv("TEXTBLOCK_DEBUG") == "1" {
		SetEnabled(true)
	}
}

// Session represents a debug session for a single render call, including
// the nested renders of every column inside a layout. A session must not be
// shared across concurrent renders.
type Session struct {
	sessionID string
	scope     string
	sink      Sink
	startTime time.Time
}

// NewSession creates a new debug session writing to sink.
// Returns nil if debug mode is not enabled or sink is nil.
func NewSession(sink Sink) *Session {
	if !Enabled() || sink == nil {
		return nil
	}

	s := &Session{
		sessionID: generateSessionID(),
		sink:      sink,
		startTime: time.Now(),
	}

	s.Emit("session", "Start", map[string]interface{}{
		"version": "1.0",
	})

	return s
}

// SessionID returns the unique identifier for this session.
func (s *Session) SessionID() string {
	if s == nil {
		return ""
	}
	return s.sessionID
}

// Scope returns the column path events are currently tagged with.
// The top-level block has the empty scope.
func (s *Session) Scope() string {
	if s == nil {
		return ""
	}
	return s.scope
}

// Column returns a view of the session scoped to the column at index i of
// the current scope. Events emitted through it carry a path such as "0/2".
// The returned value shares the sink and must not be closed.
func (s *Session) Column(i int) *Session {
	if s == nil {
		return nil
	}
	child := *s
	child.scope = s.join(strconv.Itoa(i))
	return &child
}

func (s *Session) join(scope string) string {
	switch {
	case scope == "":
		return s.scope
	case s.scope == "":
		return scope
	default:
		return s.scope + "/" + scope
	}
}

// Emit sends an event to the sink.
// This is a no-op if the session is nil.
func (s *Session) Emit(phase, event string, data interface{}) {
	if s == nil {
		return
	}
	s.emit(s.scope, phase, event, data)
}

// Trace sends an event tagged with scope, a column path relative to the
// session's own scope. It lets a Session receive events from a renderer.
func (s *Session) Trace(scope, phase, event string, data interface{}) {
	if s == nil {
		return
	}
	s.emit(s.join(scope), phase, event, data)
}

func (s *Session) emit(scope, phase, event string, data interface{}) {
	evt := Event{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		SessionID: s.sessionID,
		Scope:     scope,
		Phase:     phase,
		Event:     event,
		Data:      data,
	}

	//nolint:errcheck // a broken debug sink must not fail the render
	s.sink.Write(evt)
}

// Close emits the session end event and flushes the sink.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}

	s.Emit("session", "End", map[string]int64{
		"elapsed_ms": time.Since(s.startTime).Milliseconds(),
	})

	return s.sink.Close()
}

// generateSessionID creates a short random session identifier.
func generateSessionID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return strconv.FormatInt(time.Now().UnixNano()&0xffffffff, 16)
	}
	return hex.EncodeToString(b)
}

// Event is the envelope for all debug events.
type Event struct {
	Timestamp string      `json:"ts"`
	SessionID string      `json:"session_id"`
	Scope     string      `json:"scope,omitempty"`
	Phase     string      `json:"phase"`
	Event     string      `json:"event"`
	Data      interface{} `json:"data"`
}
