// File: api/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Byte-oriented single-producer/single-consumer ring buffer contract.

package api

// ByteRing is a fixed-capacity circular byte FIFO.
//
// The contract is strictly one producer goroutine calling Write and one
// consumer goroutine calling Read/Peek. Occupancy queries are safe from
// either side. No operation blocks: Write and Read transfer as many bytes
// as currently possible, including zero, and return immediately.
type ByteRing interface {
	// Write copies up to len(p) bytes into the ring and returns the number
	// of bytes admitted. A short count means the ring ran out of free
	// space; the caller retries with the remainder.
	Write(p []byte) int

	// Read removes up to len(p) bytes from the ring into p and returns the
	// number of bytes transferred. A short count means not enough data yet.
	Read(p []byte) int

	// Peek copies up to len(p) bytes into p without consuming them.
	// Repeated calls with the same arguments return identical bytes.
	Peek(p []byte) int

	// Capacity returns the fixed byte capacity (always a power of two).
	Capacity() uint32

	// Available returns the number of occupied bytes.
	Available() uint32

	// Unused returns the number of free bytes.
	Unused() uint32

	// IsEmpty reports whether no bytes are buffered.
	IsEmpty() bool

	// IsFull reports whether no free space remains.
	IsFull() bool

	// Close releases the backing store and resets the ring. Idempotent.
	Close() error
}

// Backing is a contiguous byte range owned by a ring buffer.
//
// Implementations cover heap slices, caller-supplied fixed arrays and
// mmap-acquired regions; the ring treats them uniformly.
type Backing interface {
	// Bytes returns the writable byte range. After Release the returned
	// slice must not be used.
	Bytes() []byte

	// Release returns the range to its origin (a no-op for heap and
	// caller-owned backings). Idempotent.
	Release() error
}
