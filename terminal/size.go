package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// WindowSize reports the terminal dimensions in rows and columns. The
// winsize ioctl is the primary path; a terminal that fails it or
// reports zero columns is measured by parking the cursor at the
// bottom-right corner and asking where it ended up. The fallback
// reads the reply from the input stream, so raw mode must already be
// enabled when it runs.
func (t *Terminal) WindowSize(out *os.File) (rows, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(int(out.Fd()), unix.TIOCGWINSZ)
	if err == nil && ws.Col != 0 {
		return int(ws.Row), int(ws.Col), nil
	}
	return t.cursorPositionFallback(out)
}

// cursorPositionFallback pushes the cursor as far right and down as
// the terminal allows (the motions clamp at the edges), then issues a
// cursor position query and parses the report.
func (t *Terminal) cursorPositionFallback(out *os.File) (rows, cols int, err error) {
	if _, err := out.WriteString("\x1b[999C\x1b[999B"); err != nil {
		return 0, 0, fmt.Errorf("positioning cursor: %w", err)
	}
	if _, err := out.WriteString("\x1b[6n"); err != nil {
		return 0, 0, fmt.Errorf("querying cursor position: %w", err)
	}

	var report [32]byte
	n := 0
	for n < len(report) {
		b, ok, readErr := readByte(t.in)
		if readErr != nil {
			return 0, 0, fmt.Errorf("reading cursor report: %w", readErr)
		}
		if !ok || b == 'R' {
			break
		}
		report[n] = b
		n++
	}
	return parseCursorReport(report[:n])
}

// parseCursorReport decodes the terminal's answer to a cursor
// position query, "ESC [ <rows> ; <cols>", with the terminating 'R'
// already consumed.
func parseCursorReport(report []byte) (rows, cols int, err error) {
	if len(report) < 2 || report[0] != byte(Esc) || report[1] != '[' {
		return 0, 0, fmt.Errorf("malformed cursor report %q", report)
	}
	if _, err := fmt.Sscanf(string(report[2:]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("parsing cursor report %q: %w", report, err)
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, fmt.Errorf("unusable cursor report %q", report)
	}
	return rows, cols, nil
}
