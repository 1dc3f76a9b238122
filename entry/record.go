package entry

import (
	"time"

	"github.com/daryltucker/console-kit/paint"
)

// Record is the persisted form of an emitted entry.
type Record struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level,omitempty"`
	Message   string    `json:"message"`
}

// Recorder stores emitted entries, e.g. to a file.
type Recorder interface {
	Write(Record) error
}

// NewRecord builds a Record from e with escape sequences removed.
func NewRecord(e Entry, now time.Time) Record {
	return Record{
		Timestamp: now.UTC(),
		Level:     e.Level,
		Message:   paint.StripANSI(e.Message),
	}
}
