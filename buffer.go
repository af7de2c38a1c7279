// SPDX-License-Identifier: Apache-2.0

package bumpheap

import (
	"io"
)

const growThreshold = 256

// Buffer is a bytes.Buffer-like writer whose storage comes from a Heap.
// Growth allocates a larger slice from the heap and abandons the old one
// to the arena; once the heap cannot satisfy a grow, writes fail with
// ErrExhausted. It implements io.Writer, io.Reader, io.WriterTo and
// io.ReaderFrom.
type Buffer struct {
	heap *Heap
	buf  []byte // written bytes; spare capacity belongs to the buffer
	off  int    // read offset into buf
}

// NewHeapBuffer creates a Buffer backed by the given heap.
func NewHeapBuffer(h *Heap) *Buffer {
	return &Buffer{heap: h}
}

// grow ensures room for n more bytes, reallocating from the heap when
// the current slice is too small.
func (b *Buffer) grow(n int) error {
	need := len(b.buf) + n
	if need <= cap(b.buf) {
		return nil
	}
	newCap := cap(b.buf)
	if newCap == 0 {
		newCap = n
	}
	for need > newCap {
		if newCap < growThreshold {
			newCap *= 2
		} else {
			newCap += newCap / 4
		}
	}
	s, err := AllocSlice[byte](b.heap, newCap)
	if err != nil {
		return err
	}
	copy(s, b.buf)
	b.buf = s[:len(b.buf)]
	return nil
}

// Write implements io.Writer. It appends p to the buffer, growing from
// the heap as needed, and fails with ErrExhausted once the heap cannot
// hold the contents.
func (b *Buffer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := b.grow(len(p)); err != nil {
		return 0, err
	}
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteString appends s to the buffer.
func (b *Buffer) WriteString(s string) (int, error) {
	if len(s) == 0 {
		return 0, nil
	}
	if err := b.grow(len(s)); err != nil {
		return 0, err
	}
	b.buf = append(b.buf, s...)
	return len(s), nil
}

// WriteByte appends a single byte to the buffer.
func (b *Buffer) WriteByte(c byte) error {
	if err := b.grow(1); err != nil {
		return err
	}
	b.buf = append(b.buf, c)
	return nil
}

// Read reads up to len(p) bytes from the unread portion of the buffer.
func (b *Buffer) Read(p []byte) (int, error) {
	if b.off >= len(b.buf) {
		return 0, io.EOF
	}
	n := copy(p, b.buf[b.off:])
	b.off += n
	return n, nil
}

// ReadByte reads and returns the next unread byte.
func (b *Buffer) ReadByte() (byte, error) {
	if b.off >= len(b.buf) {
		return 0, io.EOF
	}
	c := b.buf[b.off]
	b.off++
	return c, nil
}

// WriteTo implements io.WriterTo, draining the unread portion into w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	if b.off >= len(b.buf) {
		return 0, nil
	}
	n, err := w.Write(b.buf[b.off:])
	b.off += n
	return int64(n), err
}

// ReadFrom implements io.ReaderFrom. It reads from r until EOF or
// error, appending directly into the buffer's spare capacity.
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	const minRead = 512
	var total int64
	for {
		if err := b.grow(minRead); err != nil {
			return total, err
		}
		n, err := r.Read(b.buf[len(b.buf):cap(b.buf)])
		b.buf = b.buf[:len(b.buf)+n]
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// Bytes returns the unread portion of the buffer. The slice is valid
// only until the next modification.
func (b *Buffer) Bytes() []byte {
	return b.buf[b.off:]
}

// String returns the unread portion of the buffer as a string.
func (b *Buffer) String() string {
	return string(b.buf[b.off:])
}

// Len returns the number of unread bytes.
func (b *Buffer) Len() int {
	return len(b.buf) - b.off
}

// Cap returns the capacity of the buffer's current slice.
func (b *Buffer) Cap() int {
	return cap(b.buf)
}

// Reset empties the buffer, keeping its current slice. The heap itself
// is untouched; bytes already consumed by earlier growth stay consumed.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.off = 0
}

// Truncate discards all but the first n unread bytes. It panics if n is
// negative or greater than Len.
func (b *Buffer) Truncate(n int) {
	if n < 0 || n > b.Len() {
		panic("bumpheap: truncation out of range")
	}
	b.buf = b.buf[:b.off+n]
}
