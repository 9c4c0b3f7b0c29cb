// Package render composes whole terminal frames and delivers each one
// to the terminal in a single write.
package render

import "io"

// Buffer batches the bytes of one frame so the terminal sees exactly
// one write per repaint. Appends preserve order; allocation is
// treated as infallible (a failed append panics the process rather
// than dropping data). Flush empties the buffer for the next frame.
type Buffer struct {
	data []byte
}

// Append adds raw bytes to the end of the frame.
func (b *Buffer) Append(p []byte) {
	b.data = append(b.data, p...)
}

// AppendString adds a string to the end of the frame.
func (b *Buffer) AppendString(s string) {
	b.data = append(b.data, s...)
}

// Len reports the number of bytes accumulated so far.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Bytes exposes the accumulated frame. The slice is only valid until
// the next Append or Flush.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Flush writes the whole frame in one call and resets the length to
// zero, keeping the underlying array for the next frame.
func (b *Buffer) Flush(w io.Writer) error {
	if len(b.data) == 0 {
		return nil
	}
	_, err := w.Write(b.data)
	b.data = b.data[:0]
	return err
}
