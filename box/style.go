package box

import (
	"errors"
	"fmt"
	"sort"
)

// Style is a set of border glyphs.
type Style struct {
	TopLeft     string
	Top         string
	TopRight    string
	Right       string
	BottomRight string
	Bottom      string
	BottomLeft  string
	Left        string
}

// Style names.
const (
	Single  = "single"
	Double  = "double"
	Round   = "round"
	Bold    = "bold"
	Classic = "classic"
)

// ErrUnknownStyle is returned by Lookup for unregistered style names.
var ErrUnknownStyle = errors.New("unknown box style")

var styles = map[string]Style{
	Single: {
		TopLeft: "┌", Top: "─", TopRight: "┐", Right: "│",
		BottomRight: "┘", Bottom: "─", BottomLeft: "└", Left: "│",
	},
	Double: {
		TopLeft: "╔", Top: "═", TopRight: "╗", Right: "║",
		BottomRight: "╝", Bottom: "═", BottomLeft: "╚", Left: "║",
	},
	Round: {
		TopLeft: "╭", Top: "─", TopRight: "╮", Right: "│",
		BottomRight: "╯", Bottom: "─", BottomLeft: "╰", Left: "│",
	},
	Bold: {
		TopLeft: "┏", Top: "━", TopRight: "┓", Right: "┃",
		BottomRight: "┛", Bottom: "━", BottomLeft: "┗", Left: "┃",
	},
	Classic: {
		TopLeft: "+", Top: "-", TopRight: "+", Right: "|",
		BottomRight: "+", Bottom: "-", BottomLeft: "+", Left: "|",
	},
}

// Lookup returns the style registered under name.
func Lookup(name string) (Style, error) {
	s, ok := styles[name]
	if !ok {
		return Style{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return s, nil
}

// Names returns the registered style names, sorted.
func Names() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
