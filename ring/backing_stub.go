// File: ring/backing_stub.go
//go:build !linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"fmt"

	"github.com/momentics/bytering/api"
)

func newMmapBacking(size uint32) (api.Backing, error) {
	return nil, fmt.Errorf("mmap backing on this platform: %w", api.ErrNotSupported)
}
