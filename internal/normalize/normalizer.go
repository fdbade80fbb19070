// File: internal/normalize/normalizer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Capacity normalization for ring buffer construction.
// All constructors validate their element count and element size here so
// that every backing mode derives its byte capacity the same way.

package normalize

import (
	"fmt"
	"math/bits"

	"github.com/momentics/bytering/api"
)

// MaxCapacity bounds a single ring's byte capacity. Cursors are uint32 and
// free-running, so the capacity must stay well below the cursor period.
const MaxCapacity = 1 << 31

// logNormalize reports normalization events (can be replaced with a
// structured logger).
var logNormalize = func(msg string, args ...any) {
	fmt.Printf("[normalize] "+msg+"\n", args...)
}

// SetLogFunc installs a logging hook for normalization events.
func SetLogFunc(fn func(msg string, args ...any)) {
	if fn != nil {
		logNormalize = fn
	}
}

// IsPow2 reports whether v is a nonzero power of two.
func IsPow2(v uint32) bool {
	return v != 0 && v&(v-1) == 0
}

// RoundPow2 returns the smallest power of two >= v. v must be in
// (0, MaxCapacity]; larger inputs overflow uint32 and are rejected by
// Capacity before reaching here.
func RoundPow2(v uint32) uint32 {
	if IsPow2(v) {
		return v
	}
	return 1 << bits.Len32(v)
}

// Capacity derives the byte capacity for a dynamic-backing ring from the
// requested element count and element size: count*esize rounded up to the
// next power of two.
//   - count == 0 or esize == 0 -> ErrInvalidArgument
//   - request beyond MaxCapacity -> ErrAllocationFailure
func Capacity(count, esize uint32) (uint32, error) {
	if count == 0 || esize == 0 {
		return 0, fmt.Errorf("capacity request %dx%d: %w", count, esize, api.ErrInvalidArgument)
	}
	raw := uint64(count) * uint64(esize)
	if raw > MaxCapacity {
		return 0, fmt.Errorf("capacity request of %d bytes exceeds %d: %w", raw, uint64(MaxCapacity), api.ErrAllocationFailure)
	}
	size := RoundPow2(uint32(raw))
	if uint64(size) != raw {
		logNormalize("capacity request %d rounded up to %d", raw, size)
	}
	return size, nil
}
