// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package msq

import "unsafe"

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs. The
// queue stores a copy of the pointed-to value, so the original can be
// modified after Enqueue returns.
//
// This is the same shape as the bounded queues in this ecosystem; for
// the unbounded [Queue] the returned error is always nil.
type Producer[T any] interface {
	// Enqueue adds an element to the queue (non-blocking).
	// The element is copied into the queue's internal storage.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value (copied out of the queue's internal
// storage). The vacated slot is cleared to allow garbage collection of
// referenced objects.
type Consumer[T any] interface {
	// Dequeue removes and returns an element from the queue
	// (non-blocking). Returns (zero-value, ErrWouldBlock) if the queue
	// is empty.
	Dequeue() (T, error)
}

// Channel is the combined producer-consumer interface for an unbounded
// FIFO queue, plus its approximate length.
//
// Len is eventually consistent: accurate counts in lock-free algorithms
// require expensive cross-core synchronization, so the counter is
// maintained outside the pointer protocol and is observability data
// only.
type Channel[T any] interface {
	Producer[T]
	Consumer[T]
	// Len returns the approximate number of elements in the queue.
	Len() int
	// IsEmpty reports whether the queue appears empty.
	IsEmpty() bool
}

// ptrSize is the size of a pointer in bytes.
const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padPtr is padding to fill cache line after pointer-sized field.
type padPtr [64 - ptrSize]byte
