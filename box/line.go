/*
PURPOSE:
  Box line renderer.
  Produces fixed-width bordered lines: top, bottom, separator, gutter,
  and word-wrapped content rows.

REQUIREMENTS:
  User-specified:
  - Default style "round", width 56, padding 4/4.
  - Content rows wrap greedily on spaces and never split a word.
  - Optional marker glyph on the first row of instruction content.

  Implementation-discovered:
  - Text may already carry color escapes; padding is computed from the
    visible column count so the right border stays aligned.
  - Box glyphs and the marker are multi-byte, so byte length is never
    used for layout.

ARCHITECTURE INTEGRATION:
  - Used by: stamp
  - Dependencies: paint

USAGE:
  l := box.New(box.MustLookup(box.Round), 56)
  fmt.Println(l.Top())
  fmt.Println(l.Content("hello world", false))
  fmt.Println(l.Bottom())
*/

package box

import (
	"strings"

	"github.com/daryltucker/console-kit/paint"
)

const (
	DefaultWidth        = 56
	DefaultPaddingLeft  = 4
	DefaultPaddingRight = 4
)

// Marker is prefixed to the first row of instruction content.
const Marker = "❯ "

// MarkerWidth is the number of columns Marker occupies.
const MarkerWidth = 2

// Line renders the rows of a single box.
type Line struct {
	style    Style
	width    int
	padLeft  int
	padRight int
	palette  *paint.Palette
}

// Option configures a Line.
type Option func(*Line)

// WithPadding sets the blank columns between the borders and the content.
func WithPadding(left, right int) Option {
	return func(l *Line) {
		l.padLeft = max(left, 0)
		l.padRight = max(right, 0)
	}
}

// WithPalette sets the palette used for borders and marker content.
func WithPalette(p *paint.Palette) Option {
	return func(l *Line) {
		l.palette = p
	}
}

// New creates a Line of the given total width in columns. A width of zero
// or less selects DefaultWidth.
func New(style Style, width int, opts ...Option) *Line {
	if width <= 0 {
		width = DefaultWidth
	}
	l := &Line{
		style:    style,
		width:    width,
		padLeft:  DefaultPaddingLeft,
		padRight: DefaultPaddingRight,
		palette:  paint.New(true),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// MustLookup is like Lookup but panics on unknown names.
func MustLookup(name string) Style {
	s, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Width returns the total width of every rendered row.
func (l *Line) Width() int {
	return l.width
}

// Top renders the top border.
func (l *Line) Top() string {
	return l.border(l.style.TopLeft, l.style.Top, l.style.TopRight)
}

// Bottom renders the bottom border.
func (l *Line) Bottom() string {
	return l.border(l.style.BottomLeft, l.style.Bottom, l.style.BottomRight)
}

// Rule renders a horizontal separator between the side borders.
func (l *Line) Rule() string {
	return l.border(l.style.Left, l.style.Bottom, l.style.Right)
}

// Gutter renders an empty row.
func (l *Line) Gutter() string {
	return l.palette.Dim(l.style.Left) + spaces(l.width-2) + l.palette.Dim(l.style.Right)
}

func (l *Line) border(left, fill, right string) string {
	d := l.palette.Dim
	return d(left) + repeat(d(fill), l.width-2) + d(right)
}

// Usable returns the number of content columns per row.
func (l *Line) Usable(marker bool) int {
	n := l.width - l.padLeft - l.padRight - 2
	if marker {
		n -= MarkerWidth
	}
	return max(n, 1)
}

// Content wraps text into bordered rows joined by newlines. With marker
// set, the first row is prefixed with Marker and content is painted cyan.
func (l *Line) Content(text string, marker bool) string {
	usable := l.Usable(marker)
	leftSide := l.palette.Dim(l.style.Left) + spaces(l.padLeft)
	rightSide := spaces(l.padRight) + l.palette.Dim(l.style.Right)

	chunks := Wrap(text, usable)
	rows := make([]string, len(chunks))

	for i, chunk := range chunks {
		fill := max(usable-paint.VisibleWidth(chunk), 0)

		if marker && i == 0 {
			content := chunk + spaces(fill)
			prefix := Marker
			if strings.TrimSpace(paint.StripANSI(content)) == "" {
				prefix = spaces(MarkerWidth)
			}
			rows[i] = leftSide + prefix + l.palette.Paint(paint.Cyan, content) + rightSide
			continue
		}

		// Continuation rows reclaim the marker columns.
		content := chunk
		if marker {
			content = l.palette.Paint(paint.Cyan, chunk+spaces(fill+MarkerWidth))
		} else {
			content += spaces(fill)
		}
		rows[i] = leftSide + content + rightSide
	}

	return strings.Join(rows, "\n")
}

// Wrap splits text on whitespace into lines of at most size visible
// columns. Words are never split; a word wider than size gets a line of
// its own. Blank text yields a single empty line.
func Wrap(text string, size int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines   []string
		current strings.Builder
		width   int
		started bool
	)

	for _, word := range words {
		w := paint.VisibleWidth(word)
		switch {
		case !started:
			started = true
		case width+1+w <= size:
			current.WriteByte(' ')
			width++
		default:
			lines = append(lines, current.String())
			current.Reset()
			width = 0
		}
		current.WriteString(word)
		width += w
	}

	return append(lines, current.String())
}

func spaces(n int) string {
	return repeat(" ", n)
}

func repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}
