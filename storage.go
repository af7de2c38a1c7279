// SPDX-License-Identifier: Apache-2.0

package bumpheap

import (
	"unsafe"
)

// Storage supplies the raw byte region managed by a Heap.
type Storage interface {
	// Base returns the base address of the managed region.
	// Implementations must return the identical address on every call;
	// the underlying bytes must never move or be reallocated once the
	// address has been observed. Allocated addresses are aligned
	// relative to the base, so the region itself should start at the
	// strictest alignment callers will request.
	Base() unsafe.Pointer
}

// FixedStorage is a Storage whose capacity is known from the type alone,
// so a Heap over it needs no size argument. The zero value of a
// FixedStorage must be ready to use, which lets such a Heap be declared
// as a package-level variable with no runtime setup.
type FixedStorage interface {
	Storage
	Size() uintptr
}

// Inline is a fixed-size buffer embedded by value. T is the array type
// holding the bytes, e.g. Inline[[256]byte]. The zero value is ready to
// use.
type Inline[T any] struct {
	buf T
}

// Base satisfies the Storage interface.
func (s *Inline[T]) Base() unsafe.Pointer { return unsafe.Pointer(&s.buf) }

// Size satisfies the FixedStorage interface.
func (s *Inline[T]) Size() uintptr { return unsafe.Sizeof(s.buf) }

// Pointer holds an externally supplied base address. It starts empty and
// is written exactly once, by Heap.Init.
type Pointer struct {
	ptr unsafe.Pointer
}

// Base satisfies the Storage interface.
func (s *Pointer) Base() unsafe.Pointer { return s.ptr }

// Slice owns a byte region obtained from the Go allocator at
// construction. The region stays alive as long as the owning Heap does
// and becomes collectable when the Heap is released or dropped.
type Slice struct {
	buf []byte
}

// NewSlice obtains a size-byte region from the Go allocator.
func NewSlice(size int) *Slice {
	return &Slice{buf: make([]byte, size)}
}

// Base satisfies the Storage interface.
func (s *Slice) Base() unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(s.buf))
}

// Size satisfies the FixedStorage interface.
func (s *Slice) Size() uintptr { return uintptr(len(s.buf)) }

func (s *Slice) release() error {
	s.buf = nil
	return nil
}
