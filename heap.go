// SPDX-License-Identifier: Apache-2.0

package bumpheap

import (
	"sync/atomic"
	"unsafe"
)

// Heap is a monotonic bump allocator over a fixed byte region supplied
// by a Storage. Allocation carves naturally aligned regions from the
// tail of the unused space with an atomic compare-and-swap, so a Heap
// may be used concurrently from any number of goroutines without
// locking. Individual allocations are never reclaimed.
type Heap struct {
	storage  Storage
	base     unsafe.Pointer
	size     uintptr
	remained atomic.Uintptr
	inited   bool // raw-address heaps only: Init already called
}

// NewWithStorage builds a Heap over an explicit storage instance
// managing size bytes.
func NewWithStorage(s Storage, size uintptr) *Heap {
	h := &Heap{storage: s, base: s.Base(), size: size}
	h.remained.Store(size)
	return h
}

// New builds a Heap over a storage whose capacity is known from its
// type, such as Inline or Slice.
func New(s FixedStorage) *Heap {
	return NewWithStorage(s, s.Size())
}

// NewBuffered builds a Heap over a size-byte region obtained from the
// Go allocator.
func NewBuffered(size int) *Heap {
	return New(NewSlice(size))
}

// NewEmpty builds a Heap with zero capacity and no backing region.
// Init must be called exactly once before any allocation.
func NewEmpty() *Heap {
	return &Heap{storage: &Pointer{}}
}

// Init supplies the backing region of a Heap built with NewEmpty. addr
// must point to at least size bytes that outlive the Heap and are used
// by nothing else. Init must complete before any concurrent Alloc; that
// ordering is the caller's obligation and is not checked. Calling Init
// twice, or on a Heap that owns its own storage, panics.
func (h *Heap) Init(addr unsafe.Pointer, size uintptr) {
	p, ok := h.storage.(*Pointer)
	if !ok {
		panic("bumpheap: Init on a heap that owns its storage")
	}
	if h.inited {
		panic("bumpheap: Init called twice")
	}
	h.inited = true
	p.ptr = addr
	h.base = addr
	h.size = size
	h.remained.Store(size)
}

// Alloc carves a size-byte region aligned to alignment out of the
// unused tail and returns its address, or nil once the remaining
// capacity cannot satisfy the request. alignment must be a power of
// two; that is the caller's contract and is not checked. The returned
// memory is not zeroed.
//
// Alloc never blocks: a lost compare-and-swap is retried until it wins
// or observes exhaustion, with no backoff and no retry bound.
func (h *Heap) Alloc(size, alignment uintptr) unsafe.Pointer {
	mask := ^(alignment - 1)
	old := h.remained.Load()
	for {
		if size > old {
			return nil
		}
		// Rounding the new remainder down to the alignment boundary may
		// consume extra bytes beyond size; those are never handed out
		// and never come back.
		next := (old - size) & mask
		if h.remained.CompareAndSwap(old, next) {
			return unsafe.Add(h.base, next)
		}
		old = h.remained.Load()
	}
}

// Free is a no-op: the arena reclaims nothing. It exists to complete
// the allocate/deallocate pair a global-allocator hook expects.
func (h *Heap) Free(ptr unsafe.Pointer, size, alignment uintptr) {}

// Remained reports the unused bytes left in the region.
func (h *Heap) Remained() uintptr { return h.remained.Load() }

// Size reports the total capacity fixed at construction.
func (h *Heap) Size() uintptr { return h.size }

type releaser interface {
	release() error
}

// Release drops the backing region: an OS mapping is unmapped, a
// Go-allocated buffer becomes collectable. The Heap is permanently
// exhausted afterward and every pointer previously returned by Alloc is
// invalid. Release must not run concurrently with Alloc, and has no
// effect on inline or externally owned memory beyond exhausting the
// Heap.
func (h *Heap) Release() error {
	var err error
	if r, ok := h.storage.(releaser); ok {
		err = r.release()
	}
	h.storage = nil
	h.base = nil
	h.size = 0
	h.remained.Store(0)
	return err
}
