package terminal

import (
	"fmt"
	"io"
)

// Key is a decoded input event. Plain bytes map to their own values;
// keys that arrive as multi-byte escape sequences use codes above the
// byte range so the two can never collide.
type Key int

// Esc is the escape byte. It is also what a sequence degrades to when
// its tail cannot be decoded, or when ESC is pressed on its own.
const Esc Key = 0x1b

// Navigation keys decoded from escape sequences.
const (
	KeyUp Key = 0x100 + iota
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
)

// Ctrl returns the key produced by holding ctrl together with the
// given letter.
func Ctrl(b byte) Key {
	return Key(b & 0x1f)
}

// Decoder resolves raw terminal input into Key events. It expects the
// VMIN=0/VTIME=1 semantics set up by EnterRawMode: a read yielding no
// byte means no key arrived within the poll interval, never failure.
type Decoder struct {
	in io.Reader
}

// NewDecoder creates a decoder reading raw bytes from in.
func NewDecoder(in io.Reader) *Decoder {
	return &Decoder{in: in}
}

// readByte reads a single byte from r. ok is false when the poll
// timed out without input; a zero-byte read on a raw tty surfaces as
// (0, nil) or io.EOF and both mean the same thing here.
func readByte(r io.Reader) (b byte, ok bool, err error) {
	var buf [1]byte
	n, err := r.Read(buf[:])
	if n == 1 {
		return buf[0], true, nil
	}
	if err == nil || err == io.EOF {
		return 0, false, nil
	}
	return 0, false, err
}

// ReadKey blocks until a key arrives and returns it as a single
// event. Escape sequences collapse into one symbolic Key, decoded
// from at most two tail bytes (three for numeric CSI sequences) with
// no backtracking. A lone ESC, or a tail that matches nothing, comes
// back as the literal Esc key.
func (d *Decoder) ReadKey() (Key, error) {
	var c byte
	for {
		b, ok, err := readByte(d.in)
		if err != nil {
			return 0, fmt.Errorf("reading key: %w", err)
		}
		if ok {
			c = b
			break
		}
	}
	if Key(c) != Esc {
		return Key(c), nil
	}

	// A real escape sequence delivers its tail within the same poll
	// window; when it doesn't, the user pressed ESC by itself.
	seq0, ok, err := readByte(d.in)
	if err != nil {
		return 0, fmt.Errorf("reading key: %w", err)
	}
	if !ok {
		return Esc, nil
	}
	seq1, ok, err := readByte(d.in)
	if err != nil {
		return 0, fmt.Errorf("reading key: %w", err)
	}
	if !ok {
		return Esc, nil
	}

	switch seq0 {
	case '[':
		if seq1 >= '0' && seq1 <= '9' {
			return d.readNumericSequence(seq1)
		}
		switch seq1 {
		case 'A':
			return KeyUp, nil
		case 'B':
			return KeyDown, nil
		case 'C':
			return KeyRight, nil
		case 'D':
			return KeyLeft, nil
		case 'H':
			return KeyHome, nil
		case 'F':
			return KeyEnd, nil
		}
	case 'O':
		switch seq1 {
		case 'H':
			return KeyHome, nil
		case 'F':
			return KeyEnd, nil
		}
	}
	return Esc, nil
}

// readNumericSequence finishes an "ESC [ <digit> ~" sequence whose
// digit has already been consumed.
func (d *Decoder) readNumericSequence(digit byte) (Key, error) {
	seq2, ok, err := readByte(d.in)
	if err != nil {
		return 0, fmt.Errorf("reading key: %w", err)
	}
	if !ok || seq2 != '~' {
		return Esc, nil
	}
	switch digit {
	case '1', '7':
		return KeyHome, nil
	case '3':
		return KeyDelete, nil
	case '4', '8':
		return KeyEnd, nil
	case '5':
		return KeyPageUp, nil
	case '6':
		return KeyPageDown, nil
	}
	return Esc, nil
}
