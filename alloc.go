// SPDX-License-Identifier: Apache-2.0

package bumpheap

import (
	"errors"
	"unsafe"
)

// ErrExhausted is returned when the remaining capacity cannot satisfy a
// request. A heap that failed a request stays exhausted for any request
// of that size or larger; smaller requests may still succeed until the
// residual bytes are gone too.
var ErrExhausted = errors.New("bumpheap: heap exhausted")

// Layout describes a requested memory region. Align must be a power of
// two.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// LayoutOf returns the layout of a value of type T.
func LayoutOf[T any]() Layout {
	var x T
	return Layout{Size: unsafe.Sizeof(x), Align: unsafe.Alignof(x)}
}

// Allocate reserves a region described by l and returns it as a byte
// slice of length l.Size. Zero-size requests succeed without touching
// the backing region, even on an exhausted heap. The slice contents are
// not zeroed.
func (h *Heap) Allocate(l Layout) ([]byte, error) {
	if l.Size == 0 {
		return []byte{}, nil
	}
	ptr := h.Alloc(l.Size, l.Align)
	if ptr == nil {
		return nil, ErrExhausted
	}
	return unsafe.Slice((*byte)(ptr), l.Size), nil
}

// Deallocate is a no-op, mirroring Free.
func (h *Heap) Deallocate(b []byte, l Layout) {}

// Alloc returns a pointer to a zeroed T allocated from h.
func Alloc[T any](h *Heap) (*T, error) {
	var x T
	size := unsafe.Sizeof(x)
	if size == 0 {
		return new(T), nil
	}
	ptr := h.Alloc(size, unsafe.Alignof(x))
	if ptr == nil {
		return nil, ErrExhausted
	}
	clear(unsafe.Slice((*byte)(ptr), size))
	return (*T)(ptr), nil
}

// AllocSlice returns a zeroed slice of n elements of type T allocated
// from h. n <= 0 yields a nil slice and no error.
func AllocSlice[T any](h *Heap, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var x T
	total := unsafe.Sizeof(x) * uintptr(n)
	ptr := h.Alloc(total, unsafe.Alignof(x))
	if ptr == nil {
		return nil, ErrExhausted
	}
	clear(unsafe.Slice((*byte)(ptr), total))
	return unsafe.Slice((*T)(ptr), n), nil
}
