// File: protocol/frame.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package protocol

// SyncMarker delimits frames in the byte stream. Serialized little-endian,
// so the stream bytes are 0x55 then 0xaa.
const SyncMarker uint16 = 0xaa55

// HeaderSize is the serialized header length in bytes.
const HeaderSize = 8

// MaxFramePayload caps a single frame's payload. The limit keeps a
// corrupted length field from stalling the reader on bytes that will
// never arrive.
const MaxFramePayload = 1 << 12

// Header precedes every frame payload on the stream.
type Header struct {
	Sync uint16
	Len  uint16
	CRC  uint32
}

// Checksum returns the additive byte sum used as the frame CRC.
func Checksum(p []byte) uint32 {
	var sum uint32
	for _, b := range p {
		sum += uint32(b)
	}
	return sum
}
