// Package io provides the message channels that connect duet instances.
// A Queue is the unbounded FIFO that cross-wires two instances; a Tape
// reads and writes values as decimal text on external streams.
package io

// Channel defines the interface for all value channels.
// Each channel has exactly one producer and one consumer.
type Channel interface {
	// Rewind resets the channel to its initial, empty state.
	Rewind()
	// Send appends a value to the channel.
	Send(value int64) error
	// Receive removes and returns the oldest value, if any.
	Receive() (value int64, ok bool)
	// Len returns the number of values immediately available.
	Len() int
}
