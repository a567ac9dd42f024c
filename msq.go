// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package msq

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
)

// node is one cell of the queue chain: a value and an atomic link to
// the successor. The first node of the chain is always the sentinel,
// whose value is never meaningful; real data begins at its successor.
//
// A node is created by the enqueueing goroutine immediately before its
// first link attempt and becomes unreachable when a dequeuer's head CAS
// advances past it. The garbage collector reclaims it once no retry
// loop can still dereference it.
type node[T any] struct {
	value T
	next  atomic.Pointer[node[T]]
}

// Queue is an unbounded lock-free multi-producer multi-consumer FIFO
// queue based on the Michael-Scott algorithm.
//
// The chain from head to the terminal node is always non-empty: head
// references the sentinel, tail references the last node or a node
// shortly before it (it may lag while an insertion is mid-flight, and
// any goroutine that observes the lag helps advance it).
//
// All operations are lock-free: at least one contending goroutine
// completes in bounded steps at any time, though an individual call may
// retry under contention. Completed Enqueue/Dequeue pairs are
// linearizable in classic Michael-Scott fashion.
//
// Memory: one node per element plus the sentinel; nodes are reclaimed
// by the garbage collector (see package documentation).
type Queue[T any] struct {
	_      pad
	head   atomic.Pointer[node[T]] // Sentinel; first element is head.next
	_      padPtr
	tail   atomic.Pointer[node[T]] // Last node, or shortly before it
	_      padPtr
	length atomix.Int64 // Approximate element count (observability only)
	_      pad
}

// New creates an empty queue. Head and tail share a single sentinel
// node; the sentinel is allocated exactly once, here.
func New[T any]() *Queue[T] {
	q := &Queue[T]{}
	sentinel := &node[T]{}
	q.head.Store(sentinel)
	q.tail.Store(sentinel)
	return q
}

// Enqueue adds an element to the tail of the queue.
//
// The element is copied into a freshly allocated node, so the original
// may be modified after Enqueue returns. Enqueue always returns nil:
// the queue is unbounded and insertion cannot fail. The error result
// exists so the queue satisfies the same Producer shape as the bounded
// queues in this ecosystem.
//
// Safe for any number of concurrent producers.
func (q *Queue[T]) Enqueue(elem *T) error {
	n := &node[T]{value: *elem}
	backoff := Backoff{}
	for {
		tail := q.tail.Load()
		next := tail.next.Load()

		if next != nil {
			// Tail is lagging: another goroutine linked a node but has
			// not swung tail yet. Help it forward and retry at once.
			q.tail.CompareAndSwap(tail, next)
			continue
		}

		if tail.next.CompareAndSwap(nil, n) {
			// Linked. Swing tail to the new node; losing this CAS means
			// another goroutine already helped, which is fine.
			q.tail.CompareAndSwap(tail, n)
			q.length.Add(1)
			return nil
		}

		// Lost the link race to a concurrent enqueuer.
		backoff.Spin()
	}
}

// Dequeue removes and returns the element at the head of the queue.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
//
// The node holding the returned value becomes the new sentinel; its
// value slot is cleared so the queue does not pin the consumed element.
//
// Safe for any number of concurrent consumers.
func (q *Queue[T]) Dequeue() (T, error) {
	backoff := Backoff{}
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		next := head.next.Load()

		if head == tail {
			if next == nil {
				// Genuinely empty.
				var zero T
				return zero, ErrWouldBlock
			}
			// One insertion is mid-flight with tail not yet advanced:
			// help it forward and retry at once.
			q.tail.CompareAndSwap(tail, next)
			continue
		}

		if next != nil {
			if q.head.CompareAndSwap(head, next) {
				// Unique winner: next is the new sentinel and only this
				// goroutine owns its value now. The old head is
				// unreachable from the structure and will be collected.
				elem := next.value
				var zero T
				next.value = zero
				q.length.Add(-1)
				return elem, nil
			}
		}

		// Lost the head race, or read a stale head/next pair.
		backoff.Spin()
	}
}

// Len returns the approximate number of elements in the queue.
//
// The counter is maintained outside the pointer protocol and is only
// eventually consistent: it may lag behind in-flight operations and
// must not be used to predict whether Dequeue will succeed. Once all
// producers and consumers have joined, it is exact.
func (q *Queue[T]) Len() int {
	n := q.length.LoadRelaxed()
	if n < 0 {
		// A consumer's decrement can land before the matching
		// producer's increment; clamp the transient.
		return 0
	}
	return int(n)
}

// IsEmpty reports whether the queue appears empty. Equivalent to
// Len() == 0 and carries the same eventual-consistency caveat.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Reset drains the queue until empty, releasing every node except the
// surviving sentinel, and zeroes the length counter.
//
// Reset is NOT safe to run concurrently with any other operation on the
// same queue; the caller must guarantee exclusive access for the whole
// call. Queues that are simply abandoned need no Reset: the collector
// reclaims the entire chain.
func (q *Queue[T]) Reset() {
	for {
		if _, err := q.Dequeue(); err != nil {
			break
		}
	}
	q.length.Store(0)
}
