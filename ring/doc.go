// Package ring
// Author: momentics <momentics@gmail.com>
//
// Lock-free single-producer/single-consumer byte ring buffer.
//
// The ring owns a power-of-two byte store and two free-running uint32
// cursors. Physical offsets are derived by masking, never by reducing the
// cursors, so the cursors may wrap at the integer width without affecting
// correctness. Write touches only the producer cursor, Read only the
// consumer cursor; under the one-writer/one-reader contract no locking is
// required.
package ring
