/*
PURPOSE:
  Records emitted console lines to a CSV file.
  Ensures data integrity by flushing writes immediately.

REQUIREMENTS:
  Implementation-discovered:
  - Overwrites an existing file; a recording covers one run.

ARCHITECTURE INTEGRATION:
  - Called by: entry.Writer through the entry.Recorder interface
  - Consumes: entry.Record

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write (critical for crash resilience).
  - Mutex guards the writer; spinner and logger may share a recorder.

USAGE:
  w, err := output.NewCSVWriter("lines.csv")
  w.Write(record)
  w.Close()

MAINTENANCE:
  - Update Write() mapping when entry.Record changes.
*/

package output

import (
	"encoding/csv"
	"os"
	"sync"
	"time"

	"github.com/daryltucker/console-kit/entry"
)

// CSVWriter handles writing records to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter creates a new CSVWriter.
// It overwrites the file if it exists.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)

	header := []string{"timestamp", "level", "message"}
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write writes a single record to the CSV file.
// It is thread-safe.
func (cw *CSVWriter) Write(r entry.Record) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	record := []string{
		r.Timestamp.Format(time.RFC3339Nano),
		r.Level,
		r.Message,
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.file.Close()
}
