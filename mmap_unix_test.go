// SPDX-License-Identifier: Apache-2.0

//go:build unix

package bumpheap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMmapHeap(t *testing.T) {
	h, err := NewMmap(1 << 16)
	require.NoError(t, err)
	require.Equal(t, uintptr(1<<16), h.Size())

	p := h.Alloc(64, 8)
	require.NotNil(t, p)
	require.Zero(t, uintptr(p)%8)

	// Mapped memory is writable through the returned pointer.
	b, err := h.Allocate(Layout{Size: 16, Align: 8})
	require.NoError(t, err)
	copy(b, "mapped")
	require.Equal(t, "mapped", string(b[:6]))

	require.NoError(t, h.Release())
	require.Equal(t, uintptr(0), h.Remained())
	require.Nil(t, h.Alloc(1, 1))
}

func TestMmapMatchesBuffered(t *testing.T) {
	const regionSize = 4096

	mh, err := NewMmap(regionSize)
	require.NoError(t, err)
	defer func() { require.NoError(t, mh.Release()) }()
	bh := NewBuffered(regionSize)

	for _, r := range []struct{ size, alignment uintptr }{
		{8, 8}, {100, 16}, {1, 1}, {4096, 1}, {33, 4},
	} {
		mp := mh.Alloc(r.size, r.alignment)
		bp := bh.Alloc(r.size, r.alignment)
		require.Equal(t, bp == nil, mp == nil)
		require.Equal(t, bh.Remained(), mh.Remained())
	}
}
