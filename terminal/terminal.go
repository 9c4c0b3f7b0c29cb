// Package terminal gives direct control over the controlling terminal:
// raw-mode switching, key decoding and window size probing, all built
// on VT100 escape sequences rather than curses.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Terminal owns the saved terminal attributes and switches the
// controlling terminal between cooked and raw modes.
type Terminal struct {
	in       *os.File
	fd       int
	original unix.Termios
}

// New captures the current attributes of the given terminal file,
// before any mutation. The snapshot is what Restore reapplies.
func New(f *os.File) (*Terminal, error) {
	fd := int(f.Fd())
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("getting terminal attributes: %w", err)
	}
	return &Terminal{in: f, fd: fd, original: *termios}, nil
}

// EnterRawMode puts the terminal into raw mode for direct character
// input. Pair with a deferred Restore so the shell gets its terminal
// back on every exit path.
func (t *Terminal) EnterRawMode() error {
	raw := rawSettings(t.original)
	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	return nil
}

// Restore reapplies the attributes captured by New.
func (t *Terminal) Restore() error {
	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, &t.original); err != nil {
		return fmt.Errorf("restoring terminal attributes: %w", err)
	}
	return nil
}

// rawSettings derives the raw-mode configuration from a cooked
// snapshot: no echo, no line buffering, no signal or flow-control
// keys, no input translation, no output post-processing, 8-bit
// characters. VMIN=0 with VTIME=1 makes every read a bounded poll
// that returns after at most a tenth of a second even when no byte
// arrived.
func rawSettings(orig unix.Termios) unix.Termios {
	raw := orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	return raw
}
