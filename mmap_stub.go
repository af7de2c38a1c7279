// SPDX-License-Identifier: Apache-2.0

//go:build !unix

package bumpheap

import (
	"errors"
)

// NewMmap is unsupported on this platform; use NewBuffered instead.
func NewMmap(size int) (*Heap, error) {
	return nil, errors.New("bumpheap: mmap storage requires a unix platform")
}
