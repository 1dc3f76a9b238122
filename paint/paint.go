/*
PURPOSE:
  Color provider for console-kit.
  Maps a named color to a painter that wraps text in ANSI styling and
  measures the visible width of painted text.

REQUIREMENTS:
  User-specified:
  - Fixed palette: white, gray, dim, cyan, blue, magenta, green, yellow, red.
  - "dim" is the faint attribute, not gray.

  Implementation-discovered:
  - Box rendering needs the visible column count of strings that carry
    escape sequences, so stripping lives next to painting.
  - Output must be deterministic in tests, so color can be forced on.

ARCHITECTURE INTEGRATION:
  - Used by: level, box, stamp, spinner, logger
  - Dependencies: github.com/fatih/color, github.com/mattn/go-runewidth,
    golang.org/x/term

ERROR HANDLING:
  - None. Unknown color names paint nothing.

USAGE:
  p := paint.New(true)
  s := p.Paint(paint.Blue, "info")
  w := paint.VisibleWidth(s) // 4
*/

package paint

import (
	"os"
	"regexp"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Name identifies a palette entry.
type Name string

const (
	White   Name = "white"
	Gray    Name = "gray"
	Dim     Name = "dim"
	Cyan    Name = "cyan"
	Blue    Name = "blue"
	Magenta Name = "magenta"
	Green   Name = "green"
	Yellow  Name = "yellow"
	Red     Name = "red"
)

var attributes = map[Name]color.Attribute{
	White:   color.FgWhite,
	Gray:    color.FgHiBlack,
	Dim:     color.Faint,
	Cyan:    color.FgCyan,
	Blue:    color.FgBlue,
	Magenta: color.FgMagenta,
	Green:   color.FgGreen,
	Yellow:  color.FgYellow,
	Red:     color.FgRed,
}

// Palette paints text with a fixed set of named colors.
type Palette struct {
	enabled bool
	colors  map[Name]*color.Color
}

// New returns a Palette with color forced on or off, regardless of
// whether the destination is a terminal.
func New(enabled bool) *Palette {
	p := &Palette{
		enabled: enabled,
		colors:  make(map[Name]*color.Color, len(attributes)),
	}
	for name, attr := range attributes {
		c := color.New(attr)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		p.colors[name] = c
	}
	return p
}

// Auto returns a Palette that paints only when fd is a terminal and
// NO_COLOR is not set.
func Auto(fd uintptr) *Palette {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return New(false)
	}
	return New(term.IsTerminal(int(fd)))
}

// Enabled reports whether the palette emits escape sequences.
func (p *Palette) Enabled() bool {
	return p.enabled
}

// Paint wraps text in the styling for name. Unknown names return text
// unchanged.
func (p *Palette) Paint(name Name, text string) string {
	c, ok := p.colors[name]
	if !ok {
		return text
	}
	return c.Sprint(text)
}

// Func returns a painter bound to name.
func (p *Palette) Func(name Name) func(string) string {
	return func(text string) string {
		return p.Paint(name, text)
	}
}

// Dim is shorthand for Paint(Dim, text).
func (p *Palette) Dim(text string) string {
	return p.Paint(Dim, text)
}

// Known reports whether name is part of the palette.
func Known(name Name) bool {
	_, ok := attributes[name]
	return ok
}

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*[mGKH]")

// Box glyphs are East Asian ambiguous; measure them as narrow so layout
// does not depend on the locale.
var widthCondition = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// StripANSI removes SGR and cursor escape sequences from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// ANSILen returns the number of bytes in s taken by escape sequences.
func ANSILen(s string) int {
	n := 0
	for _, m := range ansiPattern.FindAllStringIndex(s, -1) {
		n += m[1] - m[0]
	}
	return n
}

// VisibleWidth returns the number of terminal columns s occupies once
// escape sequences are removed.
func VisibleWidth(s string) int {
	return widthCondition.StringWidth(StripANSI(s))
}
