// SPDX-License-Identifier: Apache-2.0

// Package bumpheap implements a lock-free monotonic bump allocator over a
// single fixed-capacity byte region.
//
// A Heap hands out naturally aligned regions by atomically retreating a
// cursor through its backing storage. Individual allocations are never
// reclaimed; exhaustion is the only failure mode, and capacity comes back
// only by releasing the whole Heap. Allocation never blocks and takes no
// locks, so a Heap may be shared freely between goroutines.
//
// The backing region is pluggable through the Storage interface: an array
// embedded in the Heap value (Inline), an externally supplied raw address
// (NewEmpty plus Init), a buffer from the Go allocator (NewBuffered), or
// an anonymous OS mapping (NewMmap).
package bumpheap
