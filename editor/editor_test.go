package editor

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SadS4ndWiCh/memori/render"
	"github.com/SadS4ndWiCh/memori/terminal"
)

func TestMoveCursorClamped(t *testing.T) {
	e := New(nil, nil, 24, 80)

	for i := 0; i < 100; i++ {
		e.moveCursor(terminal.KeyUp)
		e.moveCursor(terminal.KeyLeft)
	}
	if x, y := e.Cursor(); x != 0 || y != 0 {
		t.Errorf("expected cursor at (0,0), got (%d,%d)", x, y)
	}

	for i := 0; i < 100; i++ {
		e.moveCursor(terminal.KeyDown)
		e.moveCursor(terminal.KeyRight)
	}
	if x, y := e.Cursor(); x != 79 || y != 23 {
		t.Errorf("expected cursor at (79,23), got (%d,%d)", x, y)
	}
}

func TestMnemonicAliases(t *testing.T) {
	e := New(nil, nil, 24, 80)

	e.processKey(terminal.Key('s'))
	e.processKey(terminal.Key('d'))
	if x, y := e.Cursor(); x != 1 || y != 1 {
		t.Errorf("expected cursor at (1,1), got (%d,%d)", x, y)
	}

	e.processKey(terminal.Key('w'))
	e.processKey(terminal.Key('a'))
	if x, y := e.Cursor(); x != 0 || y != 0 {
		t.Errorf("expected cursor at (0,0), got (%d,%d)", x, y)
	}
}

func TestPageDownClampsToBottom(t *testing.T) {
	e := New(nil, nil, 24, 80)
	e.processKey(terminal.KeyPageDown)
	if _, y := e.Cursor(); y != 23 {
		t.Errorf("expected cursor on last row 23, got %d", y)
	}
	e.processKey(terminal.KeyPageUp)
	if _, y := e.Cursor(); y != 0 {
		t.Errorf("expected cursor back on row 0, got %d", y)
	}
}

func TestHomeEnd(t *testing.T) {
	e := New(nil, nil, 24, 80)
	e.processKey(terminal.KeyEnd)
	if x, _ := e.Cursor(); x != 79 {
		t.Errorf("expected column 79, got %d", x)
	}
	e.processKey(terminal.KeyHome)
	if x, _ := e.Cursor(); x != 0 {
		t.Errorf("expected column 0, got %d", x)
	}
}

func TestQuitKey(t *testing.T) {
	e := New(nil, nil, 24, 80)
	if !e.processKey(terminal.Ctrl('q')) {
		t.Error("expected ctrl-q to quit")
	}
	if e.processKey(terminal.Key('x')) {
		t.Error("expected 'x' not to quit")
	}
	if e.processKey(terminal.Esc) {
		t.Error("expected lone escape not to quit")
	}
}

func TestOpenStripsLineEnding(t *testing.T) {
	cases := []struct {
		content string
		want    string
	}{
		{"hello\n", "hello"},
		{"hello\r\n", "hello"},
		{"hello\nworld\n", "hello"},
		{"no newline", "no newline"},
	}
	for _, c := range cases {
		path := filepath.Join(t.TempDir(), "line.txt")
		if err := os.WriteFile(path, []byte(c.content), 0o644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		e := New(nil, nil, 24, 80)
		if err := e.Open(path); err != nil {
			t.Fatalf("Open(%q): %v", c.content, err)
		}
		if string(e.Row()) != c.want {
			t.Errorf("Open(%q): expected row %q, got %q", c.content, c.want, e.Row())
		}
	}
}

func TestOpenEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	e := New(nil, nil, 24, 80)
	if err := e.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if e.Row() != nil {
		t.Errorf("expected no row for empty file, got %q", e.Row())
	}
}

func TestOpenMissingFile(t *testing.T) {
	e := New(nil, nil, 24, 80)
	if err := e.Open(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error opening a nonexistent path")
	}
}

func TestRunPageDownThenQuit(t *testing.T) {
	// Scripted session: page-down moves the cursor to the last row
	// of a 24-row viewport, then ctrl-q ends the loop cleanly.
	var out bytes.Buffer
	keys := terminal.NewDecoder(strings.NewReader("\x1b[6~\x11"))
	screen := render.NewScreen(&out, 24, 80)

	e := New(keys, screen, 24, 80)
	if err := e.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, y := e.Cursor(); y != 23 {
		t.Errorf("expected cursor on row 23 after page-down, got %d", y)
	}
	if !strings.Contains(out.String(), render.CursorHide) {
		t.Error("expected at least one frame to be rendered")
	}
}
