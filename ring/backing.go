// File: ring/backing.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Heap and caller-owned backing stores.

package ring

import "github.com/momentics/bytering/api"

// heapBacking owns a plain heap slice.
type heapBacking struct {
	data []byte
}

func newHeapBacking(size uint32) *heapBacking {
	return &heapBacking{data: make([]byte, size)}
}

func (b *heapBacking) Bytes() []byte { return b.data }

func (b *heapBacking) Release() error {
	b.data = nil
	return nil
}

// fixedBacking wraps a caller-supplied slice. The caller retains ownership
// of the memory; Release only drops the reference.
type fixedBacking struct {
	data []byte
}

// Fixed adapts a caller-owned byte slice into a Backing, the analogue of a
// statically sized store fixed at build time.
func Fixed(p []byte) api.Backing {
	return &fixedBacking{data: p}
}

func (b *fixedBacking) Bytes() []byte { return b.data }

func (b *fixedBacking) Release() error {
	b.data = nil
	return nil
}
