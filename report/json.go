package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/teranos/brickxml/errors"
)

// Event is one JSON line emitted by JSONReporter
type Event struct {
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	RunID     string    `json:"run_id,omitempty"`
	Hints     []string  `json:"hints,omitempty"`
}

// JSONReporter writes one Event per line
type JSONReporter struct {
	mu      sync.Mutex
	encoder *json.Encoder
	runID   string
	now     func() time.Time
}

// NewJSONReporter creates a JSON reporter on stdout tagged with runID
func NewJSONReporter(runID string) *JSONReporter {
	return NewJSONReporterTo(os.Stdout, runID)
}

// NewJSONReporterTo creates a JSON reporter writing to w
func NewJSONReporterTo(w io.Writer, runID string) *JSONReporter {
	return &JSONReporter{
		encoder: json.NewEncoder(w),
		runID:   runID,
		now:     time.Now,
	}
}

func (r *JSONReporter) write(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	event.Timestamp = r.now()
	event.RunID = r.runID
	_ = r.encoder.Encode(event)
}

func (r *JSONReporter) emit(level Level, format string, args []interface{}) {
	r.write(Event{Level: level, Message: fmt.Sprintf(format, args...)})
}

// Fail emits err as an ERROR event carrying its hints
func (r *JSONReporter) Fail(err error) {
	r.write(Event{Level: LevelError, Message: err.Error(), Hints: errors.GetAllHints(err)})
}

func (r *JSONReporter) Info(format string, args ...interface{})  { r.emit(LevelInfo, format, args) }
func (r *JSONReporter) Dry(format string, args ...interface{})   { r.emit(LevelDry, format, args) }
func (r *JSONReporter) OK(format string, args ...interface{})    { r.emit(LevelOK, format, args) }
func (r *JSONReporter) Warn(format string, args ...interface{})  { r.emit(LevelWarn, format, args) }
func (r *JSONReporter) Error(format string, args ...interface{}) { r.emit(LevelError, format, args) }
