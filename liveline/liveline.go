// Package liveline redraws a block of terminal output in place.
//
// Each Render erases the block written by the previous Render and writes
// the new content without a trailing newline. Done leaves the last block
// on screen and moves the cursor to a fresh line.
//
// Lines wider than the terminal wrap onto several rows, so the Writer
// counts rows by visible width when it knows the column count.
package liveline

import (
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/daryltucker/console-kit/paint"
)

const (
	eraseLine = "\x1b[2K"
	cursorUp  = "\x1b[1A"
)

// Writer tracks the block it last rendered.
type Writer struct {
	mu      sync.Mutex
	out     io.Writer
	columns int
	lines   int
}

// Option configures a Writer.
type Option func(*Writer)

// WithColumns sets the terminal width used to count wrapped rows.
// Zero or less counts one row per line.
func WithColumns(n int) Option {
	return func(w *Writer) {
		w.columns = n
	}
}

// New returns a Writer that draws to out. When out is a terminal its
// width is read once here.
func New(out io.Writer, opts ...Option) *Writer {
	w := &Writer{out: out, columns: columnsOf(out)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func columnsOf(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return cols
}

// rows returns how many terminal rows s occupies.
func (w *Writer) rows(s string) int {
	lines := strings.Split(s, "\n")
	if w.columns <= 0 {
		return len(lines)
	}
	n := 0
	for _, line := range lines {
		width := paint.VisibleWidth(line)
		if width <= w.columns {
			n++
			continue
		}
		n += (width + w.columns - 1) / w.columns
	}
	return n
}

// Render replaces the previously rendered block with s.
func (w *Writer) Render(s string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var b strings.Builder
	b.WriteString(erase(w.lines))
	b.WriteString(s)

	if _, err := io.WriteString(w.out, b.String()); err != nil {
		return err
	}
	w.lines = w.rows(s)
	return nil
}

// Done keeps the current block and starts a new line. It is a no-op when
// nothing has been rendered since the last Done.
func (w *Writer) Done() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.lines == 0 {
		return nil
	}
	w.lines = 0
	_, err := io.WriteString(w.out, "\n")
	return err
}

// Clear erases the current block and forgets it.
func (w *Writer) Clear() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.lines == 0 {
		return nil
	}
	_, err := io.WriteString(w.out, erase(w.lines))
	w.lines = 0
	return err
}

// erase returns the sequence that clears n lines ending at the cursor and
// leaves the cursor at the start of the first one.
func erase(n int) string {
	if n == 0 {
		return "\r"
	}
	var b strings.Builder
	b.WriteString("\r" + eraseLine)
	for i := 1; i < n; i++ {
		b.WriteString(cursorUp + eraseLine)
	}
	return b.String()
}
