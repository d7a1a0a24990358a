package io

import (
	"iter"
)

// QUEUE_COMPACT_LIMIT is the number of consumed slots a Queue tolerates
// before it moves the pending values to the front of its buffer.
const QUEUE_COMPACT_LIMIT = 1024

// Queue is an unbounded FIFO of values.
type Queue struct {
	ReadIndex int
	Data      []int64
}

var _ Channel = (*Queue)(nil)

// Rewind drops all pending values.
func (q *Queue) Rewind() {
	q.ReadIndex = 0
	q.Data = q.Data[:0]
}

// Send appends a value to the tail of the queue. It never fails.
func (q *Queue) Send(value int64) (err error) {
	q.Data = append(q.Data, value)
	return
}

// Receive pops the value at the head of the queue.
func (q *Queue) Receive() (value int64, ok bool) {
	if q.ReadIndex >= len(q.Data) {
		return
	}

	value = q.Data[q.ReadIndex]
	ok = true
	q.ReadIndex++

	switch {
	case q.ReadIndex == len(q.Data):
		q.ReadIndex = 0
		q.Data = q.Data[:0]
	case q.ReadIndex >= QUEUE_COMPACT_LIMIT:
		n := copy(q.Data, q.Data[q.ReadIndex:])
		q.Data = q.Data[:n]
		q.ReadIndex = 0
	}

	return
}

// Len returns the number of pending values.
func (q *Queue) Len() int {
	return len(q.Data) - q.ReadIndex
}

// Values iterates the pending values, oldest first, without consuming them.
func (q *Queue) Values() iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		for _, value := range q.Data[q.ReadIndex:] {
			if !yield(value) {
				return
			}
		}
	}
}
