/*
PURPOSE:
  Stamp: a bordered text box built up with chained setters and emitted
  as one block through a Logger.

REQUIREMENTS:
  User-specified:
  - Setters: box type, instruction mode, heading, messages (appended).
  - Fixed width of 56 columns.
  - Layout: top, [dim heading, rule], gutter, messages, gutter, bottom.

ERROR HANDLING:
  - Unknown box style names surface from Render/Build as
    box.ErrUnknownStyle.
  - An empty message list still renders the frame.

USAGE:
  err := stamp.New(nil).
      SetHeading("Next steps").
      SetInstruction(true).
      AddMessage("cd my-app").
      AddMessage("go run .").
      Render()
*/

package stamp

import (
	"strings"

	"github.com/daryltucker/console-kit/box"
	"github.com/daryltucker/console-kit/level"
	"github.com/daryltucker/console-kit/logger"
	"github.com/daryltucker/console-kit/paint"
)

// Width is the total width of a rendered stamp.
const Width = 56

// Stamp accumulates a heading and messages for a single box.
type Stamp struct {
	boxType     string
	heading     string
	messages    []string
	instruction bool

	logger  *logger.Logger
	palette *paint.Palette
}

// New creates a Stamp that emits through log. A nil log uses
// logger.Default().
func New(log *logger.Logger) *Stamp {
	return &Stamp{
		boxType: box.Round,
		logger:  log,
		palette: paint.New(true),
	}
}

// SetBoxType selects the border style by name.
func (s *Stamp) SetBoxType(name string) *Stamp {
	s.boxType = name
	return s
}

// SetInstruction toggles the marker on message rows.
func (s *Stamp) SetInstruction(on bool) *Stamp {
	s.instruction = on
	return s
}

// SetHeading sets the heading shown above a separator.
func (s *Stamp) SetHeading(heading string) *Stamp {
	s.heading = heading
	return s
}

// AddMessage appends a message row.
func (s *Stamp) AddMessage(message string) *Stamp {
	s.messages = append(s.messages, message)
	return s
}

// SetPalette replaces the palette used for borders and headings.
func (s *Stamp) SetPalette(p *paint.Palette) *Stamp {
	s.palette = p
	return s
}

// Build renders the box without emitting it.
func (s *Stamp) Build() (string, error) {
	style, err := box.Lookup(s.boxType)
	if err != nil {
		return "", err
	}
	line := box.New(style, Width, box.WithPalette(s.palette))

	out := []string{line.Top()}
	if s.heading != "" {
		out = append(out, line.Content(s.dimWords(s.heading), false), line.Rule())
	}
	out = append(out, line.Gutter())
	for _, m := range s.messages {
		out = append(out, line.Content(m, s.instruction))
	}
	out = append(out, line.Gutter(), line.Bottom())

	return strings.Join(out, "\n"), nil
}

// dimWords dims each word separately so the border resets on wrapped
// rows do not cancel the styling.
func (s *Stamp) dimWords(text string) string {
	words := strings.Fields(text)
	for i, w := range words {
		words[i] = s.palette.Dim(w)
	}
	return strings.Join(words, " ")
}

// Render emits the box as a single untagged log entry followed by a
// blank line.
func (s *Stamp) Render() error {
	text, err := s.Build()
	if err != nil {
		return err
	}
	log := s.logger
	if log == nil {
		log = logger.Default()
	}
	return log.Print(level.Log, text+"\n")
}
