// Package icon holds the status glyphs used in console output, with a
// plain fallback for legacy Windows consoles.
package icon

import (
	"os"
	"runtime"
)

// Set is a group of status glyphs.
type Set struct {
	Tick    string
	Cross   string
	Bullet  string
	Info    string
	Warning string
}

var (
	// Unicode is used on terminals that render the full glyph range.
	Unicode = Set{
		Tick:    "✔",
		Cross:   "✖",
		Bullet:  "●",
		Info:    "ℹ",
		Warning: "⚠",
	}

	// Legacy is used by the classic Windows console host.
	Legacy = Set{
		Tick:    "√",
		Cross:   "×",
		Bullet:  "*",
		Info:    "i",
		Warning: "‼",
	}
)

// Default is the set chosen for the current platform.
var Default = Select(runtime.GOOS, os.Getenv("WT_SESSION"))

// Select returns Legacy for Windows outside Windows Terminal and
// Unicode everywhere else.
func Select(goos, wtSession string) Set {
	if goos == "windows" && wtSession == "" {
		return Legacy
	}
	return Unicode
}
