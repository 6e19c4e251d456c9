package display

import (
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

const (
	DefaultWidth = 80
	ListIndent   = 2
)

// Wrapper word-wraps output to a fixed width.
type Wrapper struct {
	width int
}

// NewWrapper returns a Wrapper for width columns. Non-positive widths use DefaultWidth.
func NewWrapper(width int) *Wrapper {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Wrapper{width: width}
}

func (w *Wrapper) Width() int {
	return w.width
}

// Wrap word-wraps text, preserving ANSI escape sequences and existing newlines.
func (w *Wrapper) Wrap(text string) string {
	return wordwrap.String(text, w.width)
}

// List renders one entry per line, indented by ListIndent spaces.
func List(entries []string) string {
	return indent.String(strings.Join(entries, "\n"), ListIndent)
}
