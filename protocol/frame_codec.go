// File: protocol/frame_codec.go
// Package protocol implements the frame codec with payload size enforcement.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package protocol

import (
	"encoding/binary"
	"errors"
)

var (
	// ErrShortFrame means the input holds fewer bytes than a header or
	// the header's declared payload.
	ErrShortFrame = errors.New("frame too short")
	// ErrFrameTooLarge means the payload exceeds MaxFramePayload.
	ErrFrameTooLarge = errors.New("frame payload exceeds maximum allowed size")
	// ErrNoSync means the bytes do not start with the sync marker.
	ErrNoSync = errors.New("sync marker not found")
	// ErrBadChecksum means the payload does not match the header CRC.
	ErrBadChecksum = errors.New("frame checksum mismatch")
)

// AppendFrame serializes payload as a frame and appends it to dst.
func AppendFrame(dst, payload []byte) ([]byte, error) {
	if len(payload) > MaxFramePayload {
		return nil, ErrFrameTooLarge
	}
	var hdr [HeaderSize]byte
	binary.LittleEndian.PutUint16(hdr[0:], SyncMarker)
	binary.LittleEndian.PutUint16(hdr[2:], uint16(len(payload)))
	binary.LittleEndian.PutUint32(hdr[4:], Checksum(payload))
	dst = append(dst, hdr[:]...)
	return append(dst, payload...), nil
}

// EncodeFrame serializes payload as a standalone frame.
func EncodeFrame(payload []byte) ([]byte, error) {
	return AppendFrame(make([]byte, 0, HeaderSize+len(payload)), payload)
}

// DecodeHeader parses a frame header, validating the sync marker and the
// declared payload size.
func DecodeHeader(raw []byte) (Header, error) {
	if len(raw) < HeaderSize {
		return Header{}, ErrShortFrame
	}
	h := Header{
		Sync: binary.LittleEndian.Uint16(raw[0:]),
		Len:  binary.LittleEndian.Uint16(raw[2:]),
		CRC:  binary.LittleEndian.Uint32(raw[4:]),
	}
	if h.Sync != SyncMarker {
		return Header{}, ErrNoSync
	}
	if int(h.Len) > MaxFramePayload {
		return Header{}, ErrFrameTooLarge
	}
	return h, nil
}

// DecodeFrame parses one complete frame and returns its payload and the
// number of bytes consumed. The payload aliases raw.
func DecodeFrame(raw []byte) ([]byte, int, error) {
	h, err := DecodeHeader(raw)
	if err != nil {
		return nil, 0, err
	}
	end := HeaderSize + int(h.Len)
	if len(raw) < end {
		return nil, 0, ErrShortFrame
	}
	payload := raw[HeaderSize:end]
	if Checksum(payload) != h.CRC {
		return nil, end, ErrBadChecksum
	}
	return payload, end, nil
}
