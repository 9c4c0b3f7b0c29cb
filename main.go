// Memori is a terminal-resident single-line viewer that talks VT100
// escape sequences directly, without depending on curses.
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/SadS4ndWiCh/memori/editor"
	"github.com/SadS4ndWiCh/memori/render"
	"github.com/SadS4ndWiCh/memori/terminal"
)

func main() {
	path := ""

	for _, arg := range os.Args[1:] {
		switch arg {
		case "-h", "--help":
			printUsage()
			return
		default:
			if path == "" {
				path = arg
			}
		}
	}

	if err := run(path); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Memori - Terminal Line Viewer

Usage: memori [file]

Opens the first line of [file] in a raw-mode viewer; with no argument,
shows an empty viewer with the version banner.

Keys:
  arrows, w/a/s/d   move the cursor
  Home / End        jump to the first / last column
  PgUp / PgDn       jump to the first / last row
  ctrl-q            quit`)
}

func run(path string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("memori needs a terminal on stdin and stdout")
	}

	tty, err := terminal.New(os.Stdin)
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	if err := tty.EnterRawMode(); err != nil {
		return err
	}
	defer tty.Restore()

	// Leave a clean screen behind on every exit path, quit and fatal
	// alike. Runs before the raw-mode restore above.
	defer os.Stdout.WriteString(render.ClearScreen + render.CursorHome)

	// Probe only after raw mode is on: the fallback path reads the
	// cursor report from unechoed input.
	rows, cols, err := tty.WindowSize(os.Stdout)
	if err != nil {
		return fmt.Errorf("detecting terminal size: %w", err)
	}

	screen := render.NewScreen(os.Stdout, rows, cols)
	ed := editor.New(terminal.NewDecoder(os.Stdin), screen, rows, cols)
	if path != "" {
		if err := ed.Open(path); err != nil {
			return err
		}
	}

	return ed.Run()
}
