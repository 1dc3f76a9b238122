package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/daryltucker/console-kit/entry"
	"github.com/daryltucker/console-kit/level"
	"github.com/daryltucker/console-kit/paint"
)

var fixed = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

func newTest(opts ...Option) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	opts = append([]Option{WithWriter(&buf), WithClock(func() time.Time { return fixed })}, opts...)
	return New(opts...), &buf
}

func TestErrorRawStdout(t *testing.T) {
	log, buf := newTest(WithOutput(entry.OutputStdout))
	log.Error("disk full")

	got := buf.String()
	if strings.HasSuffix(got, "\n") {
		t.Errorf("stdout sink should not append a newline: %q", got)
	}
	if !strings.Contains(got, "\x1b[31merror") {
		t.Errorf("expected red error tag in %q", got)
	}
	if !strings.Contains(got, "\x1b[37mdisk full") {
		t.Errorf("expected white message in %q", got)
	}
	if want := "error           - disk full"; paint.StripANSI(got) != want {
		t.Errorf("visible line = %q, want %q", paint.StripANSI(got), want)
	}
}

func TestEveryLevelMethod(t *testing.T) {
	log, buf := newTest(WithPalette(paint.New(false)))

	calls := []struct {
		fn   func(string)
		want string
	}{
		{log.Log, "msg"},
		{log.Info, "info            - msg"},
		{log.Debug, "debug           - msg"},
		{log.Wait, "wait            - msg"},
		{log.Event, "event           - msg"},
		{log.Ready, "ready           - msg"},
		{log.Warn, "warn            - msg"},
		{log.Off, "off             - msg"},
		{log.Error, "error           - msg"},
		{log.Fatal, "2025-01-02T03:04:05.000Z fatal           - msg"},
	}

	for _, c := range calls {
		buf.Reset()
		c.fn("msg")
		if got := buf.String(); got != c.want+"\n" {
			t.Errorf("got %q, want %q", got, c.want+"\n")
		}
	}
}

func TestDatetimeOption(t *testing.T) {
	log, buf := newTest(WithPalette(paint.New(false)), WithDatetime(true))
	log.Info("up")
	if got, want := buf.String(), "2025-01-02T03:04:05.000Z info            - up\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWithPrefixSuffix(t *testing.T) {
	log, buf := newTest()
	log.With("db", "retry 2").Warn("connection lost")

	got := buf.String()
	if want := "warn            - (db) connection lost (retry 2)\n"; paint.StripANSI(got) != want {
		t.Errorf("visible line = %q, want %q", paint.StripANSI(got), want)
	}
	if !strings.Contains(got, "\x1b[90m(db)") {
		t.Errorf("expected gray prefix in %q", got)
	}

	buf.Reset()
	log.With("", "only suffix").Log("x")
	if want := "x (only suffix)\n"; paint.StripANSI(buf.String()) != want {
		t.Errorf("got %q, want %q", paint.StripANSI(buf.String()), want)
	}
}

func TestPrintUnknownLevel(t *testing.T) {
	log, buf := newTest()
	if err := log.Print(level.Level(42), "x"); !errors.Is(err, level.ErrUnknownLevel) {
		t.Errorf("expected ErrUnknownLevel, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written, got %q", buf.String())
	}
}

type memRecorder struct {
	records []entry.Record
}

func (m *memRecorder) Write(r entry.Record) error {
	m.records = append(m.records, r)
	return nil
}

func TestRecorder(t *testing.T) {
	rec := &memRecorder{}
	log, _ := newTest(WithRecorder(rec))
	log.Ready("compiled")
	log.Log("plain")

	if len(rec.records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(rec.records))
	}
	if rec.records[0].Level != "ready" || rec.records[0].Message != "compiled" {
		t.Errorf("unexpected record %+v", rec.records[0])
	}
	if rec.records[1].Level != "log" {
		t.Errorf("unexpected level %q", rec.records[1].Level)
	}
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() should return the same Logger")
	}
	if Default().Output() != entry.OutputLog {
		t.Errorf("default output = %q", Default().Output())
	}
}

type brokenWriter struct{ calls int }

func (w *brokenWriter) Write(p []byte) (int, error) {
	w.calls++
	return 0, errors.New("broken pipe")
}

func TestLevelMethodsKeepFirstError(t *testing.T) {
	out := &brokenWriter{}
	log := New(WithWriter(out), WithOutput(entry.OutputStdout))

	if log.Err() != nil {
		t.Fatalf("fresh logger has error %v", log.Err())
	}
	log.Info("one")
	log.With("db", "").Warn("two")

	if out.calls != 2 {
		t.Errorf("writer called %d times, want 2", out.calls)
	}
	if err := log.Err(); err == nil || err.Error() != "broken pipe" {
		t.Errorf("Err() = %v, want broken pipe", err)
	}
}
