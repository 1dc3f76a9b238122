/*
PURPOSE:
  Leveled console logger.
  One method per level; decorates the message with an optional prefix and
  suffix and hands it to the line formatter with the level's tag.

REQUIREMENTS:
  User-specified:
  - Levels: log, info, debug, wait, event, ready, warn, off, error, fatal.
  - Message body painted white; "(prefix)" and "(suffix)" painted gray.
  - "log" carries no tag.
  - Fatal always includes the timestamp. It never exits the process.
  - The per-level methods return nothing; the first write error is kept
    and reported by Err. Print returns errors directly.

  Implementation-discovered:
  - Callers construct their own Logger; Default() exists for programs
    that want one shared instance and is built on first use.

ARCHITECTURE INTEGRATION:
  - Used by: stamp, internal/cli
  - Dependencies: entry, level, paint

USAGE:
  log := logger.New(logger.WithOutput(entry.OutputStdout))
  log.Error("disk full")
  log.With("db", "retrying").Warn("connection lost")
*/

package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/daryltucker/console-kit/entry"
	"github.com/daryltucker/console-kit/level"
	"github.com/daryltucker/console-kit/paint"
)

// Logger writes leveled lines. A Logger is safe for concurrent use.
type Logger struct {
	w        *entry.Writer
	palette  *paint.Palette
	datetime bool
	prefix   string
	suffix   string
}

type options struct {
	output   entry.Output
	datetime bool
	out      io.Writer
	palette  *paint.Palette
	clock    func() time.Time
	recorder entry.Recorder
}

// Option configures a Logger.
type Option func(*options)

// WithOutput selects the sink. The default is entry.OutputLog.
func WithOutput(o entry.Output) Option {
	return func(opts *options) { opts.output = o }
}

// WithDatetime prefixes every line with a timestamp.
func WithDatetime(on bool) Option {
	return func(opts *options) { opts.datetime = on }
}

// WithWriter sets the destination. The default is os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(opts *options) { opts.out = w }
}

// WithPalette sets the palette. The default forces color on.
func WithPalette(p *paint.Palette) Option {
	return func(opts *options) { opts.palette = p }
}

// WithClock sets the time source for timestamps.
func WithClock(now func() time.Time) Option {
	return func(opts *options) { opts.clock = now }
}

// WithRecorder copies every emitted entry to r.
func WithRecorder(r entry.Recorder) Option {
	return func(opts *options) { opts.recorder = r }
}

// New creates a Logger.
func New(opts ...Option) *Logger {
	o := options{
		output: entry.OutputLog,
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.palette == nil {
		o.palette = paint.New(true)
	}

	w := entry.NewWriter(o.out, o.output)
	if o.clock != nil {
		w.SetClock(o.clock)
	}
	if o.recorder != nil {
		w.SetRecorder(o.recorder)
	}

	return &Logger{
		w:        w,
		palette:  o.palette,
		datetime: o.datetime,
	}
}

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns a shared Logger writing lines to stdout without
// timestamps. It is created on first call.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New()
	})
	return defaultLogger
}

// With returns a Logger that decorates messages with prefix and suffix.
// Empty values leave that side undecorated.
func (l *Logger) With(prefix, suffix string) *Logger {
	c := *l
	c.prefix = prefix
	c.suffix = suffix
	return &c
}

// Output returns the sink the Logger writes to.
func (l *Logger) Output() entry.Output {
	return l.w.Output()
}

// Err returns the first write error seen by this Logger or any Logger
// derived from it with With.
func (l *Logger) Err() error {
	return l.w.Err()
}

// Print emits message at lv. It fails for levels outside the registry
// and on write errors.
func (l *Logger) Print(lv level.Level, message string) error {
	tag, err := level.Tag(lv, l.palette)
	if err != nil {
		return err
	}
	return l.w.Write(entry.Entry{
		Message:  l.decorate(message),
		Tag:      tag,
		Level:    lv.String(),
		Datetime: l.datetime || lv == level.Fatal,
	})
}

func (l *Logger) decorate(message string) string {
	message = l.palette.Paint(paint.White, message)
	if l.prefix != "" {
		message = l.palette.Paint(paint.Gray, "("+l.prefix+")") + " " + message
	}
	if l.suffix != "" {
		message = message + " " + l.palette.Paint(paint.Gray, "("+l.suffix+")")
	}
	return message
}

// Log writes an untagged line.
func (l *Logger) Log(message string) { _ = l.Print(level.Log, message) }

// Info writes a line tagged "info".
func (l *Logger) Info(message string) { _ = l.Print(level.Info, message) }

// Debug writes a line tagged "debug".
func (l *Logger) Debug(message string) { _ = l.Print(level.Debug, message) }

// Wait writes a line tagged "wait".
func (l *Logger) Wait(message string) { _ = l.Print(level.Wait, message) }

// Event writes a line tagged "event".
func (l *Logger) Event(message string) { _ = l.Print(level.Event, message) }

// Ready writes a line tagged "ready".
func (l *Logger) Ready(message string) { _ = l.Print(level.Ready, message) }

// Warn writes a line tagged "warn".
func (l *Logger) Warn(message string) { _ = l.Print(level.Warn, message) }

// Off writes a line tagged "off".
func (l *Logger) Off(message string) { _ = l.Print(level.Off, message) }

// Error writes a line tagged "error".
func (l *Logger) Error(message string) { _ = l.Print(level.Error, message) }

// Fatal writes a timestamped line tagged "fatal".
func (l *Logger) Fatal(message string) { _ = l.Print(level.Fatal, message) }
