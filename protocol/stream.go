// File: protocol/stream.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Frame pumps over a ByteRing: the producer side retries partial writes
// until a frame is fully admitted, the consumer side peeks for the sync
// marker, discards garbage and polls until a whole frame is buffered.
// Backoff on full/empty is plain sleeping; the ring itself never blocks.

package protocol

import (
	"context"
	"time"

	"github.com/momentics/bytering/api"
	"github.com/momentics/bytering/control"
	"github.com/momentics/bytering/pool"
)

// DefaultBackoff is the poll interval while the ring is full or empty.
const DefaultBackoff = 500 * time.Microsecond

var scratchPool = pool.NewBytePool(HeaderSize + MaxFramePayload)

// FrameWriter pushes whole frames into a ByteRing.
type FrameWriter struct {
	ring    api.ByteRing
	backoff time.Duration

	frames *control.Counter
	bytes  *control.Counter
	stalls *control.Counter
}

// NewFrameWriter wraps ring. Metrics land in mr under tx_* names; a nil
// registry gets a private one.
func NewFrameWriter(ring api.ByteRing, mr *control.MetricsRegistry) *FrameWriter {
	if mr == nil {
		mr = control.NewMetricsRegistry()
	}
	return &FrameWriter{
		ring:    ring,
		backoff: DefaultBackoff,
		frames:  mr.Counter("tx_frames"),
		bytes:   mr.Counter("tx_bytes"),
		stalls:  mr.Counter("tx_stalls"),
	}
}

// SetBackoff overrides the full-ring poll interval.
func (fw *FrameWriter) SetBackoff(d time.Duration) {
	if d > 0 {
		fw.backoff = d
	}
}

// WriteFrame frames payload and writes it to the ring, retrying partial
// writes until the whole frame is admitted or ctx is done.
func (fw *FrameWriter) WriteFrame(ctx context.Context, payload []byte) error {
	scratch := scratchPool.Get()
	defer scratchPool.Put(scratch)

	frame, err := AppendFrame(scratch[:0], payload)
	if err != nil {
		return err
	}

	ofs := 0
	for ofs < len(frame) {
		n := fw.ring.Write(frame[ofs:])
		ofs += n
		if n == 0 {
			fw.stalls.Add(1)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(fw.backoff):
			}
		}
	}
	fw.frames.Add(1)
	fw.bytes.Add(int64(len(payload)))
	return nil
}

// FrameReader extracts frames from a ByteRing.
type FrameReader struct {
	ring    api.ByteRing
	backoff time.Duration

	frames    *control.Counter
	bytes     *control.Counter
	discarded *control.Counter
	crcErrors *control.Counter
}

// NewFrameReader wraps ring. Metrics land in mr under rx_* names; a nil
// registry gets a private one.
func NewFrameReader(ring api.ByteRing, mr *control.MetricsRegistry) *FrameReader {
	if mr == nil {
		mr = control.NewMetricsRegistry()
	}
	return &FrameReader{
		ring:      ring,
		backoff:   DefaultBackoff,
		frames:    mr.Counter("rx_frames"),
		bytes:     mr.Counter("rx_bytes"),
		discarded: mr.Counter("rx_discarded_bytes"),
		crcErrors: mr.Counter("rx_checksum_errors"),
	}
}

// SetBackoff overrides the empty-ring poll interval.
func (fr *FrameReader) SetBackoff(d time.Duration) {
	if d > 0 {
		fr.backoff = d
	}
}

// ReadFrame returns the next verified payload. Garbage before the sync
// marker is discarded; a frame whose checksum fails is consumed and
// reported as ErrBadChecksum.
func (fr *FrameReader) ReadFrame(ctx context.Context) ([]byte, error) {
	scratch := scratchPool.Get()
	defer scratchPool.Put(scratch)

	for {
		if err := fr.waitAvailable(ctx, HeaderSize); err != nil {
			return nil, err
		}
		if err := fr.resync(ctx, scratch); err != nil {
			return nil, err
		}

		if err := fr.waitAvailable(ctx, HeaderSize); err != nil {
			return nil, err
		}
		n := fr.ring.Read(scratch[:HeaderSize])
		if n != HeaderSize {
			// Consumer is the only reader, so a short header read cannot
			// happen once HeaderSize bytes were observed.
			fr.discarded.Add(int64(n))
			continue
		}
		h, err := DecodeHeader(scratch[:HeaderSize])
		if err != nil {
			// Marker was valid at resync time; treat a bad header as
			// garbage and hunt for the next marker.
			fr.discarded.Add(HeaderSize)
			continue
		}

		if err := fr.waitAvailable(ctx, uint32(h.Len)); err != nil {
			return nil, err
		}
		payload := make([]byte, int(h.Len))
		fr.ring.Read(payload)

		if Checksum(payload) != h.CRC {
			fr.crcErrors.Add(1)
			return nil, ErrBadChecksum
		}
		fr.frames.Add(1)
		fr.bytes.Add(int64(len(payload)))
		return payload, nil
	}
}

// resync drops stream bytes until the sync marker sits at the read
// position. The scan is non-destructive: only bytes known to precede the
// marker (or a window with no marker at all) are consumed.
func (fr *FrameReader) resync(ctx context.Context, scratch []byte) error {
	for {
		avail := fr.ring.Peek(scratch)
		i := 0
		for ; i < avail-1; i++ {
			if scratch[i] == 0x55 && scratch[i+1] == 0xaa {
				break
			}
		}
		if i == avail-1 {
			// No marker in the window: discard it wholesale.
			fr.ring.Read(scratch[:avail])
			fr.discarded.Add(int64(avail))
			if err := fr.waitAvailable(ctx, HeaderSize); err != nil {
				return err
			}
			continue
		}
		if i > 0 {
			fr.ring.Read(scratch[:i])
			fr.discarded.Add(int64(i))
		}
		return nil
	}
}

// waitAvailable polls until the ring holds at least n bytes.
func (fr *FrameReader) waitAvailable(ctx context.Context, n uint32) error {
	for fr.ring.Available() < n {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(fr.backoff):
		}
	}
	return nil
}
