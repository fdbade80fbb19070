// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for bytering components.

package benchmarks

import (
	"context"
	"testing"

	"github.com/momentics/bytering/protocol"
	"github.com/momentics/bytering/ring"
)

// BenchmarkRingWriteRead measures single-goroutine transfer through the ring.
func BenchmarkRingWriteRead(b *testing.B) {
	r, err := ring.New(64*1024, 1)
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()

	src := make([]byte, 4096)
	dst := make([]byte, 4096)

	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if n := r.Write(src); n != len(src) {
			b.Fatalf("short write: %d", n)
		}
		if n := r.Read(dst); n != len(dst) {
			b.Fatalf("short read: %d", n)
		}
	}
}

// BenchmarkRingSPSC measures throughput with a concurrent producer and
// consumer across the ring seam.
func BenchmarkRingSPSC(b *testing.B) {
	r, err := ring.New(16*1024, 1)
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()

	const chunk = 512
	src := make([]byte, chunk)

	b.SetBytes(chunk)
	b.ResetTimer()

	done := make(chan struct{})
	go func() {
		defer close(done)
		dst := make([]byte, chunk)
		total := b.N * chunk
		read := 0
		for read < total {
			read += r.Read(dst)
		}
	}()

	for i := 0; i < b.N; i++ {
		ofs := 0
		for ofs < chunk {
			ofs += r.Write(src[ofs:])
		}
	}
	<-done
}

// BenchmarkRingPeek measures the non-destructive read path.
func BenchmarkRingPeek(b *testing.B) {
	r, err := ring.New(4096, 1)
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()
	r.Write(make([]byte, 2048))

	dst := make([]byte, 2048)
	b.SetBytes(int64(len(dst)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if n := r.Peek(dst); n != len(dst) {
			b.Fatalf("short peek: %d", n)
		}
	}
}

// BenchmarkFrameCodec measures encode+decode of a mid-size frame.
func BenchmarkFrameCodec(b *testing.B) {
	payload := make([]byte, 1024)
	for i := range payload {
		payload[i] = byte(i)
	}

	b.SetBytes(int64(len(payload)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		frame, err := protocol.EncodeFrame(payload)
		if err != nil {
			b.Fatal(err)
		}
		if _, _, err := protocol.DecodeFrame(frame); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFramePump measures the full writer/reader path over a ring.
func BenchmarkFramePump(b *testing.B) {
	r, err := ring.New(64*1024, 1)
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()

	fw := protocol.NewFrameWriter(r, nil)
	fr := protocol.NewFrameReader(r, nil)
	payload := make([]byte, 512)
	ctx := context.Background()

	b.SetBytes(int64(len(payload)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := fw.WriteFrame(ctx, payload); err != nil {
			b.Fatal(err)
		}
		if _, err := fr.ReadFrame(ctx); err != nil {
			b.Fatal(err)
		}
	}
}
