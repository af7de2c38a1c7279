// SPDX-License-Identifier: Apache-2.0

//go:build unix

package bumpheap

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Mmap owns an anonymous private mapping obtained from the OS. The
// mapping is returned to the OS by Heap.Release.
type Mmap struct {
	buf []byte
}

// NewMmapStorage maps size bytes of anonymous memory.
func NewMmapStorage(size int) (*Mmap, error) {
	buf, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return &Mmap{buf: buf}, nil
}

// Base satisfies the Storage interface.
func (s *Mmap) Base() unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(s.buf))
}

// Size satisfies the FixedStorage interface.
func (s *Mmap) Size() uintptr { return uintptr(len(s.buf)) }

func (s *Mmap) release() error {
	buf := s.buf
	s.buf = nil
	return unix.Munmap(buf)
}

// NewMmap builds a Heap over a size-byte anonymous mapping. Call
// Release to return the mapping to the OS.
func NewMmap(size int) (*Heap, error) {
	s, err := NewMmapStorage(size)
	if err != nil {
		return nil, err
	}
	return New(s), nil
}
