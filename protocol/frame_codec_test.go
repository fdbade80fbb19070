// File: protocol/frame_codec_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package protocol_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/momentics/bytering/protocol"
)

func TestEncodeDecodeFrame(t *testing.T) {
	payload := []byte("hello")
	data, err := protocol.EncodeFrame(payload)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != protocol.HeaderSize+len(payload) {
		t.Fatalf("frame length %d, want %d", len(data), protocol.HeaderSize+len(payload))
	}
	// Little-endian sync marker on the wire.
	if data[0] != 0x55 || data[1] != 0xaa {
		t.Fatalf("sync bytes %#x %#x, want 0x55 0xaa", data[0], data[1])
	}

	got, consumed, err := protocol.DecodeFrame(data)
	if err != nil {
		t.Fatal(err)
	}
	if consumed != len(data) {
		t.Errorf("consumed %d, want %d", consumed, len(data))
	}
	if !bytes.Equal(got, payload) {
		t.Error("payload mismatch")
	}
}

func TestDecodeFrameDetectsCorruption(t *testing.T) {
	data, err := protocol.EncodeFrame([]byte{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	data[protocol.HeaderSize] ^= 0xff

	_, _, err = protocol.DecodeFrame(data)
	if !errors.Is(err, protocol.ErrBadChecksum) {
		t.Fatalf("got %v, want ErrBadChecksum", err)
	}
}

func TestDecodeHeaderRejectsGarbage(t *testing.T) {
	if _, err := protocol.DecodeHeader([]byte{0x55}); !errors.Is(err, protocol.ErrShortFrame) {
		t.Errorf("short input: got %v, want ErrShortFrame", err)
	}
	raw := make([]byte, protocol.HeaderSize)
	if _, err := protocol.DecodeHeader(raw); !errors.Is(err, protocol.ErrNoSync) {
		t.Errorf("missing marker: got %v, want ErrNoSync", err)
	}
}

func TestEncodeFrameEnforcesPayloadLimit(t *testing.T) {
	_, err := protocol.EncodeFrame(make([]byte, protocol.MaxFramePayload+1))
	if !errors.Is(err, protocol.ErrFrameTooLarge) {
		t.Fatalf("got %v, want ErrFrameTooLarge", err)
	}
}

func TestDecodeFrameTruncatedPayload(t *testing.T) {
	data, err := protocol.EncodeFrame([]byte("truncate me"))
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = protocol.DecodeFrame(data[:len(data)-3])
	if !errors.Is(err, protocol.ErrShortFrame) {
		t.Fatalf("got %v, want ErrShortFrame", err)
	}
}

func TestChecksum(t *testing.T) {
	if got := protocol.Checksum(nil); got != 0 {
		t.Errorf("Checksum(nil) = %d, want 0", got)
	}
	if got := protocol.Checksum([]byte{1, 2, 3, 0xff}); got != 261 {
		t.Errorf("Checksum = %d, want 261", got)
	}
}
