// SPDX-License-Identifier: Apache-2.0

package bumpheap

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestInlineStorage(t *testing.T) {
	var s Inline[[256]byte]
	require.Equal(t, uintptr(256), s.Size())

	// The base address is the buffer's own address and never changes.
	base := s.Base()
	require.NotNil(t, base)
	require.Equal(t, unsafe.Pointer(&s), base)
	require.Equal(t, base, s.Base())
}

func TestSliceStorage(t *testing.T) {
	s := NewSlice(512)
	require.Equal(t, uintptr(512), s.Size())

	base := s.Base()
	require.NotNil(t, base)
	require.Equal(t, base, s.Base())
}

func TestPointerStorage(t *testing.T) {
	var s Pointer
	require.Nil(t, s.Base())

	var mem [64]byte
	s.ptr = unsafe.Pointer(&mem[0])
	require.Equal(t, unsafe.Pointer(&mem[0]), s.Base())
	require.Equal(t, s.Base(), s.Base())
}

// arrayStorage is a caller-defined backend, checking that the Storage
// contract is enough to drive a Heap.
type arrayStorage struct {
	mem [80]byte
}

func (s *arrayStorage) Base() unsafe.Pointer { return unsafe.Pointer(&s.mem) }

func TestCustomStorage(t *testing.T) {
	s := &arrayStorage{}
	h := NewWithStorage(s, uintptr(len(s.mem)))
	require.Equal(t, uintptr(80), h.Remained())

	p := h.Alloc(8, 8)
	require.NotNil(t, p)
	require.Equal(t, uintptr(unsafe.Pointer(&s.mem))+72, uintptr(p))
}

func TestHeapCachesBase(t *testing.T) {
	s := NewSlice(64)
	h := New(s)
	require.Equal(t, s.Base(), h.base)

	// Allocation uses the cached address, never a moved one.
	p := h.Alloc(8, 8)
	require.Equal(t, uintptr(s.Base())+56, uintptr(p))
}
