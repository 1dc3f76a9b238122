/*
PURPOSE:
  Level registry for console-kit.
  Fixed table of severity levels with integer ranks, names, and display
  colors; bidirectional lookup between rank and name.

REQUIREMENTS:
  User-specified:
  - Ranks 0-90 in steps of 10, strict bijection with names.
  - Column-aligned colored tag per level ("info            -").

  Implementation-discovered:
  - "log" has rank 0 and must resolve like every other name.
  - "log" carries no tag; it is the untagged default level.

ERROR HANDLING:
  - ErrUnknownLevel for names or ranks outside the table.

USAGE:
  l, err := level.Parse("warn")
  tag, err := level.Tag(l, paint.New(true))
*/

package level

import (
	"errors"
	"fmt"
	"strings"

	"github.com/daryltucker/console-kit/paint"
)

// Level is a severity rank.
type Level int

const (
	Log   Level = 0
	Info  Level = 10
	Debug Level = 20
	Wait  Level = 30
	Event Level = 40
	Ready Level = 50
	Warn  Level = 60
	Off   Level = 70
	Error Level = 80
	Fatal Level = 90
)

// TagWidth is the column width the level name is padded to in a tag.
const TagWidth = 15

// ErrUnknownLevel is returned for names or ranks outside the table.
var ErrUnknownLevel = errors.New("unknown log level")

type entry struct {
	level Level
	name  string
	color paint.Name
}

// table is ordered by rank.
var table = []entry{
	{Log, "log", ""},
	{Info, "info", paint.Blue},
	{Debug, "debug", paint.Cyan},
	{Wait, "wait", paint.Magenta},
	{Event, "event", paint.Green},
	{Ready, "ready", paint.Green},
	{Warn, "warn", paint.Yellow},
	{Off, "off", paint.Gray},
	{Error, "error", paint.Red},
	{Fatal, "fatal", paint.Red},
}

var (
	byName = make(map[string]entry, len(table))
	byRank = make(map[Level]entry, len(table))
)

func init() {
	for _, e := range table {
		byName[e.name] = e
		byRank[e.level] = e
	}
}

// Parse returns the level registered under name.
func Parse(name string) (Level, error) {
	e, ok := byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	return e.level, nil
}

// Name returns the registered name of l.
func (l Level) Name() (string, error) {
	e, ok := byRank[l]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownLevel, int(l))
	}
	return e.name, nil
}

func (l Level) String() string {
	if e, ok := byRank[l]; ok {
		return e.name
	}
	return fmt.Sprintf("unknown(%d)", int(l))
}

// Color returns the display color of l, or "" for untagged levels.
func (l Level) Color() paint.Name {
	return byRank[l].color
}

// Tag renders the column-aligned display tag of l. The log level has no
// tag and renders as the empty string.
func Tag(l Level, p *paint.Palette) (string, error) {
	e, ok := byRank[l]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownLevel, int(l))
	}
	if e.color == "" {
		return "", nil
	}
	padded := e.name + strings.Repeat(" ", TagWidth-len(e.name))
	return p.Paint(e.color, padded) + " -", nil
}

// All returns every level in rank order.
func All() []Level {
	out := make([]Level, len(table))
	for i, e := range table {
		out[i] = e.level
	}
	return out
}

// Names returns every level name in rank order.
func Names() []string {
	out := make([]string, len(table))
	for i, e := range table {
		out[i] = e.name
	}
	return out
}
