// Package protocol
// Author: momentics <momentics@gmail.com>
//
// Checksum-framed message protocol layered over a raw ByteRing stream.
//
// Frames carry a sync marker, a payload length and an additive checksum.
// The ring itself knows nothing about frames; this package is the
// collaborator that turns the byte FIFO into a message channel, including
// resynchronization when the stream contains garbage between frames.
package protocol
