// File: ring/backing_linux.go
//go:build linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// mmap-acquired backing store. Tries hugepages first for large rings and
// falls back to a regular anonymous mapping.

package ring

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/momentics/bytering/api"
)

const hugePageSize = 2 << 20

// mmapBacking owns an anonymous memory mapping.
type mmapBacking struct {
	data   []byte
	mapped []byte // full mapping, possibly hugepage-rounded
}

func newMmapBacking(size uint32) (api.Backing, error) {
	prot := unix.PROT_READ | unix.PROT_WRITE

	if size >= hugePageSize {
		length := ((int(size) + hugePageSize - 1) / hugePageSize) * hugePageSize
		data, err := unix.Mmap(-1, 0, length, prot,
			unix.MAP_ANONYMOUS|unix.MAP_PRIVATE|unix.MAP_HUGETLB)
		if err == nil {
			return &mmapBacking{data: data[:size], mapped: data}, nil
		}
	}

	data, err := unix.Mmap(-1, 0, int(size), prot,
		unix.MAP_ANONYMOUS|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap of %d bytes: %w", size, api.ErrAllocationFailure)
	}
	return &mmapBacking{data: data, mapped: data}, nil
}

func (b *mmapBacking) Bytes() []byte { return b.data }

func (b *mmapBacking) Release() error {
	if b.mapped == nil {
		return nil
	}
	err := unix.Munmap(b.mapped)
	b.mapped = nil
	b.data = nil
	return err
}
