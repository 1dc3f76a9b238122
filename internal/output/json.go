/*
PURPOSE:
  Appends every emitted console line to a JSON Lines file, one object
  per line, so a run's output can be replayed or grepped later.

REQUIREMENTS:
  Implementation-discovered:
  - The logger's line writer and a spinner may record concurrently.
  - Each line is complete on disk as soon as Write returns.

ARCHITECTURE INTEGRATION:
  - Called by: entry.Writer through the entry.Recorder interface
  - Built by: NewRecorder for ".jsonl" and ".json" paths

USAGE:
  w, err := output.NewJSONWriter("lines.jsonl")
  w.Write(record)
  w.Close()
*/

package output

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/daryltucker/console-kit/entry"
)

// JSONWriter records entries as JSON Lines.
type JSONWriter struct {
	mu   sync.Mutex
	file *os.File
	enc  *json.Encoder
}

// NewJSONWriter truncates or creates path.
func NewJSONWriter(path string) (*JSONWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &JSONWriter{file: f, enc: json.NewEncoder(f)}, nil
}

// Write appends r as one line. Encoder output goes straight to the file.
func (jw *JSONWriter) Write(r entry.Record) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()
	return jw.enc.Encode(r)
}

// Close syncs and closes the file.
func (jw *JSONWriter) Close() error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	serr := jw.file.Sync()
	if err := jw.file.Close(); err != nil {
		return err
	}
	return serr
}
