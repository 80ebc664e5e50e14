// Package debug provides tracing for dotgrid's layout, encoding and
// transmission pipeline.
//
// The debug system follows these principles:
//   - Single switch: DOTGRID_DEBUG=1 or --debug enables everything
//   - Zero overhead: a nil *Session makes every call a no-op
//   - Session scoped: each encode or render gets its own session ID
//   - Machine parsable: JSON Lines by default, pretty format optional
//   - Observational only: tracing never changes the bytes produced
package debug

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// enabled is the global debug flag - set once at startup.
var enabled uint32

// SetEnabled configures debug mode globally.
// This should be called once at program startup.
func SetEnabled(on bool) {
	if on {
		atomic.StoreUint32(&enabled, 1)
	} else {
		atomic.StoreUint32(&enabled, 0)
	}
}

// Enabled returns true if debug mode is active.
func Enabled() bool {
	return atomic.LoadUint32(&enabled) == 1
}

// InitFromEnv initialises debug settings from environment variables.
// Recognised variables:
//   - DOTGRID_DEBUG=1: Enable debug mode
func InitFromEnv() {
	if os.Getenv("DOTGRID_DEBUG") == "1" {
		SetEnabled(true)
	}
}

// PrettyFromEnv reports whether DOTGRID_DEBUG_PRETTY=1 is set.
func PrettyFromEnv() bool {
	return os.Getenv("DOTGRID_DEBUG_PRETTY") == "1"
}

// Session represents a debug session for one operation.
//
// Frozen documents may be encoded from several goroutines at once, so Emit
// serialises writes to the sink.
type Session struct {
	sessionID string
	sink      Sink
	startTime time.Time

	mu sync.Mutex
}

// NewSession creates a new debug session with the provided sink.
// Returns nil if debug mode is not enabled.
func NewSession(sink Sink) *Session {
	if !Enabled() {
		return nil
	}
	if sink == nil {
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

// Emit sends an event to the sink.
// This is a no-op if the session is nil (fast-path for disabled debug).
func (s *Session) Emit(phase, event string, data interface{}) {
	if s == nil {
		return
	}
	evt := Event{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		SessionID: s.sessionID,
		Phase:     phase,
		Event:     event,
		Data:      data,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// Debug sink failures must not break normal operation.
	//nolint:errcheck // Debug sink errors are non-critical
	s.sink.Write(evt)
}

// Close flushes and closes the debug session.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}
	elapsed := time.Since(s.startTime).Milliseconds()
	s.Emit("session", "End", map[string]int64{
		"elapsed_ms": elapsed,
	})
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sink.Close()
}

// generateSessionID creates a unique session identifier.
func generateSessionID() string {
	b := make([]byte, 4)
	_, err := rand.Read(b)
	if err != nil {
		now := time.Now().UnixNano()
		return hex.EncodeToString([]byte{
			byte(now >> 24),
			byte(now >> 16),
			byte(now >> 8),
			byte(now),
		})
	}
	return hex.EncodeToString(b)
}

// Event is the base envelope for all debug events.
type Event struct {
	Timestamp string      `json:"ts"`
	SessionID string      `json:"session_id"`
	Phase     string      `json:"phase"`
	Event     string      `json:"event"`
	Data      interface{} `json:"data"`
}
