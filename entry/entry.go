/*
PURPOSE:
  Line formatter for console-kit.
  Joins an optional timestamp, optional level tag and the message into one
  output line and writes it to one of two sinks.

REQUIREMENTS:
  User-specified:
  - "log" sink: line-buffered, newline appended.
  - "stdout" sink: raw write, no implicit newline.
  - Timestamp is ISO-8601 UTC with millisecond precision.

  Implementation-discovered:
  - Emitted lines are also handed to an optional Recorder with escapes
    stripped, so a log file stays readable.

ERROR HANDLING:
  - ErrUnknownOutput when parsing a sink name.
  - Write errors are returned to the caller.

USAGE:
  w := entry.NewWriter(os.Stdout, entry.OutputLog)
  err := w.Write(entry.Entry{Message: "hello", Tag: tag})
*/

package entry

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Output selects how a formatted line is written.
type Output string

const (
	// OutputLog writes whole lines through a buffer and appends a newline.
	OutputLog Output = "log"
	// OutputStdout writes the line as-is with no newline.
	OutputStdout Output = "stdout"
)

// TimeFormat is the timestamp layout used when Datetime is set.
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// ErrUnknownOutput is returned by ParseOutput for unknown sink names.
var ErrUnknownOutput = errors.New("unknown output")

// ParseOutput validates a sink name.
func ParseOutput(s string) (Output, error) {
	switch Output(s) {
	case OutputLog, OutputStdout:
		return Output(s), nil
	}
	return "", fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownOutput, s, OutputLog, OutputStdout)
}

// Entry is a single line to emit.
type Entry struct {
	Message  string
	Tag      string // already colored display tag, may be empty
	Level    string // level name, recorded but not printed
	Datetime bool
}

// Format joins the parts of e with single spaces.
func Format(e Entry, now time.Time) string {
	parts := make([]string, 0, 3)
	if e.Datetime {
		parts = append(parts, now.UTC().Format(TimeFormat))
	}
	if e.Tag != "" {
		parts = append(parts, e.Tag)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, " ")
}

// Writer emits formatted entries to a destination.
type Writer struct {
	mu       sync.Mutex
	out      io.Writer
	buf      *bufio.Writer
	output   Output
	now      func() time.Time
	recorder Recorder
	err      error
}

// NewWriter creates a Writer for out using the given sink.
func NewWriter(out io.Writer, output Output) *Writer {
	return &Writer{
		out:    out,
		buf:    bufio.NewWriter(out),
		output: output,
		now:    time.Now,
	}
}

// SetClock replaces the time source used for timestamps.
func (w *Writer) SetClock(now func() time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.now = now
}

// SetRecorder attaches a Recorder that receives every written entry.
func (w *Writer) SetRecorder(r Recorder) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.recorder = r
}

// Output returns the sink this writer uses.
func (w *Writer) Output() Output {
	return w.output
}

// Err returns the first error Write reported, if any.
func (w *Writer) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// Write formats e and emits it.
func (w *Writer) Write(e Entry) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	err := w.write(e)
	if err != nil && w.err == nil {
		w.err = err
	}
	return err
}

func (w *Writer) write(e Entry) error {
	now := w.now()
	line := Format(e, now)

	switch w.output {
	case OutputStdout:
		if _, err := io.WriteString(w.out, line); err != nil {
			return err
		}
	default:
		if _, err := w.buf.WriteString(line); err != nil {
			return err
		}
		if err := w.buf.WriteByte('\n'); err != nil {
			return err
		}
		if err := w.buf.Flush(); err != nil {
			return err
		}
	}

	if w.recorder != nil {
		return w.recorder.Write(NewRecord(e, now))
	}
	return nil
}
