// File: pool/bytepool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"
	"sync/atomic"
)

// BytePool hands out fixed-size scratch buffers. Buffers returned through
// Put are reused; buffers of the wrong size are dropped on the floor and
// left to the GC.
type BytePool struct {
	size  int
	pool  sync.Pool
	gets  atomic.Uint64
	makes atomic.Uint64
}

// NewBytePool creates a pool of `size`-byte buffers.
func NewBytePool(size int) *BytePool {
	bp := &BytePool{size: size}
	bp.pool.New = func() any {
		bp.makes.Add(1)
		b := make([]byte, size)
		return &b
	}
	return bp
}

// Get returns a buffer of exactly the pool's size.
func (bp *BytePool) Get() []byte {
	bp.gets.Add(1)
	return *bp.pool.Get().(*[]byte)
}

// Put returns a buffer to the pool.
func (bp *BytePool) Put(p []byte) {
	if cap(p) != bp.size {
		return
	}
	p = p[:bp.size]
	bp.pool.Put(&p)
}

// Size returns the buffer size handed out by this pool.
func (bp *BytePool) Size() int { return bp.size }

// Stats reports total Get calls and how many of them had to allocate.
func (bp *BytePool) Stats() (gets, allocs uint64) {
	return bp.gets.Load(), bp.makes.Load()
}
