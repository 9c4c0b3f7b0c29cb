// Package editor holds the viewer state and drives the
// refresh/read/dispatch cycle.
package editor

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/SadS4ndWiCh/memori/render"
	"github.com/SadS4ndWiCh/memori/terminal"
)

// Editor is the single explicitly-owned state value behind the main
// loop: cursor position, viewport dimensions and the loaded row. The
// cursor is clamped to the viewport, not to the row length, so it may
// rest past the end of a short line.
type Editor struct {
	keys   *terminal.Decoder
	screen *render.Screen

	cx, cy int
	rows   int
	cols   int
	row    []byte
}

// New creates an editor for a rows×cols viewport.
func New(keys *terminal.Decoder, screen *render.Screen, rows, cols int) *Editor {
	return &Editor{keys: keys, screen: screen, rows: rows, cols: cols}
}

// Cursor returns the current cursor position as zero-based column and
// row coordinates.
func (e *Editor) Cursor() (x, y int) {
	return e.cx, e.cy
}

// Row returns the loaded row, or nil when no file was opened.
func (e *Editor) Row() []byte {
	return e.row
}

// Open loads the first line of the named file as the single viewer
// row, with the trailing line ending stripped. An empty file leaves
// the viewer empty.
func (e *Editor) Open(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if len(line) == 0 {
		return nil
	}
	e.row = bytes.TrimRight(line, "\r\n")
	return nil
}

// Run drives the refresh → read-key → dispatch cycle until the user
// quits or input fails.
func (e *Editor) Run() error {
	for {
		if err := e.refresh(); err != nil {
			return fmt.Errorf("refreshing screen: %w", err)
		}
		k, err := e.keys.ReadKey()
		if err != nil {
			return err
		}
		if quit := e.processKey(k); quit {
			return nil
		}
	}
}

func (e *Editor) refresh() error {
	return e.screen.Refresh(render.Frame{Row: e.row, CursorX: e.cx, CursorY: e.cy})
}

// processKey dispatches one key event. The returned flag is true when
// the user asked to quit. Unmapped keys are ignored.
func (e *Editor) processKey(k terminal.Key) bool {
	switch k {
	case terminal.Ctrl('q'):
		return true

	case terminal.KeyPageUp, terminal.KeyPageDown:
		dir := terminal.KeyUp
		if k == terminal.KeyPageDown {
			dir = terminal.KeyDown
		}
		for i := 0; i < e.rows; i++ {
			e.moveCursor(dir)
		}

	case terminal.KeyHome:
		e.cx = 0
	case terminal.KeyEnd:
		e.cx = e.cols - 1

	case terminal.KeyUp, terminal.KeyDown, terminal.KeyLeft, terminal.KeyRight,
		terminal.Key('w'), terminal.Key('a'), terminal.Key('s'), terminal.Key('d'):
		e.moveCursor(k)
	}
	return false
}

// moveCursor shifts the cursor one step, clamped to the viewport.
// Moving past an edge is a no-op.
func (e *Editor) moveCursor(k terminal.Key) {
	switch k {
	case terminal.KeyUp, terminal.Key('w'):
		if e.cy > 0 {
			e.cy--
		}
	case terminal.KeyLeft, terminal.Key('a'):
		if e.cx > 0 {
			e.cx--
		}
	case terminal.KeyDown, terminal.Key('s'):
		if e.cy < e.rows-1 {
			e.cy++
		}
	case terminal.KeyRight, terminal.Key('d'):
		if e.cx < e.cols-1 {
			e.cx++
		}
	}
}
