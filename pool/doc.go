// Package pool
// Author: momentics <momentics@gmail.com>
//
// Scratch buffer pooling for the frame protocol layer.
// Keeps encode/decode staging buffers out of the steady-state allocation
// path so the producer and consumer loops stay allocation-free.
package pool
