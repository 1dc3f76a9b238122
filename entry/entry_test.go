package entry

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

var fixed = time.Date(2024, 3, 9, 14, 5, 7, 123_000_000, time.FixedZone("CET", 3600))

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		e    Entry
		want string
	}{
		{"message only", Entry{Message: "hello"}, "hello"},
		{"with tag", Entry{Message: "hello", Tag: "info -"}, "info - hello"},
		{"with datetime", Entry{Message: "hello", Datetime: true}, "2024-03-09T13:05:07.123Z hello"},
		{"all parts", Entry{Message: "hello", Tag: "warn -", Datetime: true}, "2024-03-09T13:05:07.123Z warn - hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.e, fixed); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseOutput(t *testing.T) {
	for _, s := range []string{"log", "stdout"} {
		if _, err := ParseOutput(s); err != nil {
			t.Errorf("ParseOutput(%q): %v", s, err)
		}
	}
	if _, err := ParseOutput("stderr"); !errors.Is(err, ErrUnknownOutput) {
		t.Errorf("expected ErrUnknownOutput, got %v", err)
	}
}

func TestWriterSinks(t *testing.T) {
	var logBuf, rawBuf bytes.Buffer

	lw := NewWriter(&logBuf, OutputLog)
	rw := NewWriter(&rawBuf, OutputStdout)

	for _, w := range []*Writer{lw, rw} {
		if err := w.Write(Entry{Message: "one"}); err != nil {
			t.Fatalf("write: %v", err)
		}
		if err := w.Write(Entry{Message: "two"}); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	if got := logBuf.String(); got != "one\ntwo\n" {
		t.Errorf("log sink wrote %q", got)
	}
	if got := rawBuf.String(); got != "onetwo" {
		t.Errorf("stdout sink wrote %q", got)
	}
}

type memRecorder struct {
	records []Record
}

func (m *memRecorder) Write(r Record) error {
	m.records = append(m.records, r)
	return nil
}

func TestWriterRecorder(t *testing.T) {
	var buf bytes.Buffer
	rec := &memRecorder{}

	w := NewWriter(&buf, OutputLog)
	w.SetClock(func() time.Time { return fixed })
	w.SetRecorder(rec)

	if err := w.Write(Entry{Message: "\x1b[37mdisk full\x1b[39m", Level: "error"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	if len(rec.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(rec.records))
	}
	r := rec.records[0]
	if r.Message != "disk full" || r.Level != "error" {
		t.Errorf("unexpected record %+v", r)
	}
	if !r.Timestamp.Equal(fixed) || r.Timestamp.Location() != time.UTC {
		t.Errorf("expected UTC timestamp equal to clock, got %v", r.Timestamp)
	}
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, errors.New("write " + string(rune('0'+w.n)))
}

func TestWriterKeepsFirstError(t *testing.T) {
	w := NewWriter(&failWriter{}, OutputStdout)
	if w.Err() != nil {
		t.Fatal("unexpected error before any write")
	}
	_ = w.Write(Entry{Message: "a"})
	if err := w.Write(Entry{Message: "b"}); err == nil || err.Error() != "write 2" {
		t.Fatalf("second Write = %v, want write 2", err)
	}
	if err := w.Err(); err == nil || err.Error() != "write 1" {
		t.Errorf("Err() = %v, want write 1", err)
	}
}
