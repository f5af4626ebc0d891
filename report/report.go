// Package report carries user-facing, leveled messages out of the manifest
// operations. Operations receive a Reporter instead of printing, so the CLI
// can render with pterm, emit JSON lines, or stay silent in tests.
//
// Implementations include:
//   - CLIReporter: colored terminal output using pterm
//   - JSONReporter: one JSON event per line for machine consumption
//   - Nop: discards everything
//   - Recorder: keeps entries in memory for assertions
package report

import (
	"fmt"
	"strings"
	"sync"
)

// Level identifies how a message is presented
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelDry   Level = "DRY"
	LevelOK    Level = "OK"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Reporter emits leveled messages.
type Reporter interface {
	// Info reports progress or counts
	Info(format string, args ...interface{})
	// Dry reports an action that dry-run mode skipped
	Dry(format string, args ...interface{})
	// OK confirms a completed write or operation
	OK(format string, args ...interface{})
	// Warn reports a recoverable problem
	Warn(format string, args ...interface{})
	// Error reports a failure
	Error(format string, args ...interface{})
}

// Nop discards all messages
type Nop struct{}

func (Nop) Info(string, ...interface{})  {}
func (Nop) Dry(string, ...interface{})   {}
func (Nop) OK(string, ...interface{})    {}
func (Nop) Warn(string, ...interface{})  {}
func (Nop) Error(string, ...interface{}) {}

// Entry is one recorded message
type Entry struct {
	Level   Level
	Message string
}

// Recorder keeps every message in memory.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(level Level, format string, args []interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (r *Recorder) Info(format string, args ...interface{})  { r.record(LevelInfo, format, args) }
func (r *Recorder) Dry(format string, args ...interface{})   { r.record(LevelDry, format, args) }
func (r *Recorder) OK(format string, args ...interface{})    { r.record(LevelOK, format, args) }
func (r *Recorder) Warn(format string, args ...interface{})  { r.record(LevelWarn, format, args) }
func (r *Recorder) Error(format string, args ...interface{}) { r.record(LevelError, format, args) }

// Entries returns a copy of everything recorded so far
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Messages returns the messages recorded at level, in order
func (r *Recorder) Messages(level Level) []string {
	var out []string
	for _, e := range r.Entries() {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

// Contains reports whether any message at level contains substr
func (r *Recorder) Contains(level Level, substr string) bool {
	for _, msg := range r.Messages(level) {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}
