package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/daryltucker/console-kit/entry"
)

// RecordCloser is a Recorder backed by a file.
type RecordCloser interface {
	entry.Recorder
	Close() error
}

// NewRecorder opens a recorder for path, choosing the format from the
// extension: .csv for CSV, .jsonl or .json for JSON Lines.
func NewRecorder(path string) (RecordCloser, error) {
	var (
		rc  RecordCloser
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rc, err = NewCSVWriter(path)
	case ".jsonl", ".json":
		rc, err = NewJSONWriter(path)
	default:
		return nil, fmt.Errorf("unsupported record format %q (want .jsonl or .csv)", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open recorder at %s: %w", path, err)
	}
	return rc, nil
}
