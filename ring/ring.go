// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Core SPSC byte ring: free-running uint32 cursors, power-of-two capacity,
// masked physical offsets, wraparound-safe two-part copies.

package ring

import (
	"fmt"
	"sync/atomic"

	"github.com/momentics/bytering/api"
	"github.com/momentics/bytering/internal/normalize"
)

// Ensure compile-time interface compliance.
var _ api.ByteRing = (*Ring)(nil)

// Ring is a fixed-capacity single-producer/single-consumer byte FIFO.
//
// Exactly one goroutine may call Write and exactly one may call Read/Peek.
// The producer publishes bytes before advancing in; the consumer drains
// bytes before advancing out. Both cursors are free-running and wrap at
// the uint32 width; occupancy is always their unsigned difference.
type Ring struct {
	data    []byte
	size    uint32 // byte capacity, power of two; zero once closed
	mask    uint32
	esize   uint32
	backing api.Backing

	in  atomic.Uint32
	_   [64]byte // Padding to keep producer and consumer cursors apart
	out atomic.Uint32
	_   [64]byte
}

// New creates a ring with heap backing. The byte capacity is
// count*esize rounded up to the next power of two.
func New(count, esize uint32) (*Ring, error) {
	size, err := normalize.Capacity(count, esize)
	if err != nil {
		return nil, err
	}
	return newRing(newHeapBacking(size), size, esize), nil
}

// NewMapped creates a ring whose backing is acquired from the OS via mmap.
// Returns ErrAllocationFailure when the mapping cannot be established and
// ErrNotSupported on platforms without an mmap backing.
func NewMapped(count, esize uint32) (*Ring, error) {
	size, err := normalize.Capacity(count, esize)
	if err != nil {
		return nil, err
	}
	b, err := newMmapBacking(size)
	if err != nil {
		return nil, err
	}
	return newRing(b, size, esize), nil
}

// NewWithBacking creates a ring over a caller-supplied fixed backing store.
// The byte capacity is the quotient of the backing length and esize and
// must come out a nonzero power of two; otherwise the configuration is
// rejected.
func NewWithBacking(b api.Backing, esize uint32) (*Ring, error) {
	if b == nil || esize == 0 {
		return nil, fmt.Errorf("ring backing: %w", api.ErrInvalidArgument)
	}
	size := uint32(len(b.Bytes())) / esize
	if !normalize.IsPow2(size) {
		return nil, fmt.Errorf("backing of %d bytes with element size %d yields capacity %d: %w",
			len(b.Bytes()), esize, size, api.ErrInvalidConfiguration)
	}
	return newRing(b, size, esize), nil
}

func newRing(b api.Backing, size, esize uint32) *Ring {
	return &Ring{
		data:    b.Bytes()[:size],
		size:    size,
		mask:    size - 1,
		esize:   esize,
		backing: b,
	}
}

// Write copies up to len(p) bytes into the ring and returns the count
// admitted. Returns 0 when the ring is full. Only the producer cursor is
// advanced; a short count is flow control, not an error.
func (r *Ring) Write(p []byte) int {
	in := r.in.Load()
	out := r.out.Load()
	free := r.size - (in - out)

	var n uint32
	if uint64(len(p)) > uint64(free) {
		n = free
	} else {
		n = uint32(len(p))
	}
	if n == 0 {
		return 0
	}

	ofs := in & r.mask
	l := r.size - ofs
	if l > n {
		l = n
	}
	copy(r.data[ofs:], p[:l])
	copy(r.data, p[l:n])

	// Payload must be visible before the cursor moves.
	r.in.Store(in + n)
	return int(n)
}

// Read removes up to len(p) bytes from the ring into p and returns the
// count transferred. Returns 0 when the ring is empty.
func (r *Ring) Read(p []byte) int {
	in := r.in.Load()
	out := r.out.Load()
	n := r.drain(p, in, out)
	if n == 0 {
		return 0
	}
	// Bytes are drained before the space is republished.
	r.out.Store(out + n)
	return int(n)
}

// Peek copies up to len(p) bytes into p without consuming them. The
// consumer cursor never moves, so repeated peeks observe identical bytes.
func (r *Ring) Peek(p []byte) int {
	in := r.in.Load()
	out := r.out.Load()
	return int(r.drain(p, in, out))
}

// drain copies up to len(p) buffered bytes starting at out into p,
// splitting the copy at the physical wrap boundary.
func (r *Ring) drain(p []byte, in, out uint32) uint32 {
	avail := in - out

	var n uint32
	if uint64(len(p)) > uint64(avail) {
		n = avail
	} else {
		n = uint32(len(p))
	}
	if n == 0 {
		return 0
	}

	ofs := out & r.mask
	l := r.size - ofs
	if l > n {
		l = n
	}
	copy(p[:l], r.data[ofs:])
	copy(p[l:n], r.data)
	return n
}

// Capacity returns the fixed byte capacity.
func (r *Ring) Capacity() uint32 { return r.size }

// ElementSize returns the element size the ring was configured with.
func (r *Ring) ElementSize() uint32 { return r.esize }

// Available returns the number of occupied bytes.
func (r *Ring) Available() uint32 {
	return r.in.Load() - r.out.Load()
}

// Unused returns the number of free bytes.
func (r *Ring) Unused() uint32 {
	return r.size - r.Available()
}

// IsEmpty reports whether the ring holds no bytes.
func (r *Ring) IsEmpty() bool {
	return r.in.Load() == r.out.Load()
}

// IsFull reports whether the ring has no free space. Expressed through the
// mask; equivalent to Available() == Capacity() while the occupancy
// invariant holds.
func (r *Ring) IsFull() bool {
	return r.Available() > r.mask
}

// Close releases the backing store and resets the cursors. Idempotent and
// safe on an already-closed ring. Close must not race with Write or Read;
// both sides are expected to have quiesced.
func (r *Ring) Close() error {
	if r.data == nil && r.backing == nil {
		return nil
	}
	r.in.Store(0)
	r.out.Store(0)
	r.data = nil
	r.size = 0
	r.mask = 0
	b := r.backing
	r.backing = nil
	if b != nil {
		return b.Release()
	}
	return nil
}
