/*
PURPOSE:
  Animated single-line status indicator.
  Redraws "<tag> (prefix) message (suffix)<frame>" in place on a fixed
  interval until stopped.

REQUIREMENTS:
  User-specified:
  - States: idle -> running -> stopped.
  - Frame index advances circularly on every tick and is reset by Stop.
  - Stop leaves a final line without the animation frame.
  - Update replaces message and display fields, falling back to the
    construction-time defaults, and can force an immediate redraw.

  Implementation-discovered:
  - The animation runs in one goroutine owned by the Spinner. Stop
    cancels it and waits for it, so nothing is drawn after the final line.
  - A forced redraw while running resets the ticker instead of starting a
    second loop. Start while running only updates the fields.

ARCHITECTURE INTEGRATION:
  - Dependencies: level, paint, entry, liveline
  - Frame presets: github.com/briandowns/spinner CharSets

USAGE:
  s := spinner.New(spinner.WithCharSet(14))
  s.Start("installing", "deps", "")
  s.Update("linking", true, nil)
  s.Stop()
*/

package spinner

import (
	"context"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	charsets "github.com/briandowns/spinner"

	"github.com/daryltucker/console-kit/entry"
	"github.com/daryltucker/console-kit/level"
	"github.com/daryltucker/console-kit/liveline"
	"github.com/daryltucker/console-kit/paint"
)

// DefaultInterval is the delay between frames.
const DefaultInterval = 250 * time.Millisecond

// DefaultFrames is the animation used when no frames are configured.
var DefaultFrames = []string{".  ", ".. ", "...", " ..", "  .", "   "}

// State is the lifecycle state of a Spinner.
type State int

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Display holds the decorations drawn around the message. A zero Level
// (level.Log) draws no tag.
type Display struct {
	Level  level.Level
	Prefix string
	Suffix string
}

// Spinner animates one status line. Its methods are safe for concurrent
// use.
type Spinner struct {
	mu sync.Mutex

	frames   []string
	interval time.Duration
	palette  *paint.Palette
	line     *liveline.Writer

	state    State
	index    int
	message  string
	display  Display
	defaults Display
	untagged bool
	err      error

	cancel context.CancelFunc
	done   chan struct{}
	kick   chan struct{}
}

// Option configures a Spinner.
type Option func(*Spinner)

// WithFrames sets the animation frames. An empty list is ignored.
func WithFrames(frames ...string) Option {
	return func(s *Spinner) {
		if len(frames) > 0 {
			s.frames = slices.Clone(frames)
		}
	}
}

// WithCharSet uses one of the numbered frame sets shipped with
// github.com/briandowns/spinner. Unknown numbers are ignored.
func WithCharSet(n int) Option {
	return func(s *Spinner) {
		if set, ok := charsets.CharSets[n]; ok && len(set) > 0 {
			s.frames = slices.Clone(set)
		}
	}
}

// WithInterval sets the delay between frames.
func WithInterval(d time.Duration) Option {
	return func(s *Spinner) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithDefaults sets the construction-time display. Start and Update
// fall back to these values. A zero Level keeps the wait tag; use
// WithUntagged for a line without one.
func WithDefaults(d Display) Option {
	return func(s *Spinner) {
		if d.Level == level.Log {
			d.Level = level.Wait
		}
		s.defaults = d
	}
}

// WithUntagged drops the level tag from the default display.
func WithUntagged() Option {
	return func(s *Spinner) {
		s.untagged = true
	}
}

// WithWriter sets the destination. The default is os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(s *Spinner) {
		s.line = liveline.New(w)
	}
}

// WithPalette sets the palette. The default forces color on.
func WithPalette(p *paint.Palette) Option {
	return func(s *Spinner) {
		s.palette = p
	}
}

// New creates an idle Spinner.
func New(opts ...Option) *Spinner {
	s := &Spinner{
		frames:   slices.Clone(DefaultFrames),
		interval: DefaultInterval,
		defaults: Display{Level: level.Wait},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.palette == nil {
		s.palette = paint.New(true)
	}
	if s.line == nil {
		s.line = liveline.New(os.Stdout)
	}
	if s.untagged {
		s.defaults.Level = level.Log
	}
	s.display = s.defaults
	return s
}

// Start begins the animation. Empty prefix or suffix fall back to the
// defaults. Calling Start on a running Spinner only updates the fields.
func (s *Spinner) Start(message, prefix, suffix string) *Spinner {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.message = message
	s.display.Prefix = fallback(prefix, s.defaults.Prefix)
	s.display.Suffix = fallback(suffix, s.defaults.Suffix)

	if s.state == Running {
		s.render(false)
		return s
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.state = Running
	s.cancel = cancel
	s.done = make(chan struct{})
	s.kick = make(chan struct{}, 1)

	s.render(false)
	go s.run(ctx, s.done, s.kick)

	return s
}

func (s *Spinner) run(ctx context.Context, done chan<- struct{}, kick <-chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-kick:
			ticker.Reset(s.interval)
		case <-ticker.C:
			s.mu.Lock()
			if s.state == Running && ctx.Err() == nil {
				s.index = (s.index + 1) % len(s.frames)
				s.render(false)
			}
			s.mu.Unlock()
		}
	}
}

// Spin redraws the line once. It is a no-op unless the Spinner is running.
func (s *Spinner) Spin(removeFrame bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.render(removeFrame)
}

// Stop draws the final line without a frame, halts the animation and
// moves output past the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	s.render(true)
	s.state = Stopped
	s.index = 0
	cancel, done := s.cancel, s.done
	s.cancel, s.done, s.kick = nil, nil, nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}

	if err := s.line.Done(); err != nil {
		s.mu.Lock()
		s.setErr(err)
		s.mu.Unlock()
	}
}

// Update replaces the message (when non-empty) and the display fields.
// Fields missing from d fall back to the construction-time defaults, not
// to the current values. With force set, a running Spinner redraws now
// and restarts its interval.
func (s *Spinner) Update(message string, force bool, d *Display) *Spinner {
	s.mu.Lock()
	defer s.mu.Unlock()

	if message != "" {
		s.message = message
	}

	var next Display
	if d != nil {
		next = *d
	}
	s.display.Level = s.defaults.Level
	if next.Level != level.Log {
		s.display.Level = next.Level
	}
	s.display.Prefix = fallback(next.Prefix, s.defaults.Prefix)
	s.display.Suffix = fallback(next.Suffix, s.defaults.Suffix)

	if force && s.state == Running {
		s.render(false)
		select {
		case s.kick <- struct{}{}:
		default:
		}
	}

	return s
}

// State returns the current lifecycle state.
func (s *Spinner) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Frame returns the index of the frame drawn next.
func (s *Spinner) Frame() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Frames returns a copy of the animation frames.
func (s *Spinner) Frames() []string {
	return slices.Clone(s.frames)
}

// Err returns the first write error, if any.
func (s *Spinner) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Line returns the text the Spinner would currently draw.
func (s *Spinner) Line(removeFrame bool) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.compose(removeFrame)
}

// render must be called with mu held.
func (s *Spinner) render(removeFrame bool) {
	if s.state != Running {
		return
	}
	if err := s.line.Render(s.compose(removeFrame)); err != nil {
		s.setErr(err)
	}
}

func (s *Spinner) compose(removeFrame bool) string {
	parts := make([]string, 0, 4)

	if tag, err := level.Tag(s.display.Level, s.palette); err == nil && tag != "" {
		parts = append(parts, tag)
	}
	if s.display.Prefix != "" {
		parts = append(parts, s.palette.Dim("("+s.display.Prefix+")"))
	}
	parts = append(parts, s.message)
	if s.display.Suffix != "" {
		parts = append(parts, s.palette.Dim("("+s.display.Suffix+")"))
	}

	frame := ""
	if !removeFrame {
		frame = s.frames[s.index]
	}

	return entry.Format(entry.Entry{Message: strings.Join(parts, " ") + frame}, time.Time{})
}

func (s *Spinner) setErr(err error) {
	if s.err == nil {
		s.err = err
	}
}

func fallback(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
