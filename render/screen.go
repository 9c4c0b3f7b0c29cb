package render

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
)

// Version is shown on the banner row of an empty viewer.
const Version = "0.0.1"

// Screen control sequences.
const (
	ClearScreen = "\033[2J"
	CursorHome  = "\033[H"
	CursorHide  = "\033[?25l"
	CursorShow  = "\033[?25h"
	EraseLine   = "\033[K"
)

// Frame describes one repaint: the loaded row, if any, and where the
// cursor lands once the rows are drawn.
type Frame struct {
	Row     []byte // first line of the opened file; nil when empty
	CursorX int    // zero-based column
	CursorY int    // zero-based row
}

// Screen renders frames for a fixed-size viewport.
type Screen struct {
	out  io.Writer
	rows int
	cols int
	buf  Buffer
}

// NewScreen creates a renderer for a rows×cols viewport writing to out.
func NewScreen(out io.Writer, rows, cols int) *Screen {
	return &Screen{out: out, rows: rows, cols: cols}
}

// Refresh repaints the whole viewport. The cursor is hidden while the
// frame is composed and shown again only at its final position, and
// the frame reaches the terminal as one write; together these keep
// the repaint free of flicker and cursor races.
func (s *Screen) Refresh(f Frame) error {
	s.buf.AppendString(CursorHide)
	s.buf.AppendString(CursorHome)
	s.drawRows(f.Row)
	// Terminal cursor coordinates are 1-based on the wire.
	s.buf.AppendString(fmt.Sprintf("\033[%d;%dH", f.CursorY+1, f.CursorX+1))
	s.buf.AppendString(CursorShow)
	return s.buf.Flush(s.out)
}

// drawRows paints every viewport row: the loaded row on the first
// line, the version banner on the middle line of an empty viewer, a
// bare tilde everywhere else. Erasing to end of line per row makes a
// full-screen clear per frame unnecessary.
func (s *Screen) drawRows(row []byte) {
	for y := 0; y < s.rows; y++ {
		switch {
		case row != nil && y == 0:
			line := row
			if len(line) > s.cols {
				line = line[:s.cols]
			}
			s.buf.Append(line)
		case row == nil && y == s.rows/2:
			s.drawBanner()
		default:
			s.buf.AppendString("~")
		}
		s.buf.AppendString(EraseLine)
		if y < s.rows-1 {
			s.buf.AppendString("\r\n")
		}
	}
}

// drawBanner centers the version banner, truncated to the viewport
// width. Width is measured in terminal cells, not bytes, so a narrow
// viewport never overflows.
func (s *Screen) drawBanner() {
	banner := runewidth.Truncate("Memori editor -- version "+Version, s.cols, "")
	pad := (s.cols - runewidth.StringWidth(banner)) / 2
	if pad > 0 {
		s.buf.AppendString("~")
		pad--
	}
	for ; pad > 0; pad-- {
		s.buf.AppendString(" ")
	}
	s.buf.AppendString(banner)
}
