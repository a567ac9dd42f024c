// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package msq provides an unbounded lock-free MPMC FIFO queue.
//
// The queue implements the Michael-Scott algorithm (PODC 1996): a singly
// linked chain of nodes behind atomic head/tail pointers, mutated only
// through compare-and-swap. Any number of goroutines may enqueue and
// dequeue concurrently; no mutex, no blocking wait, no capacity limit.
//
// For bounded queues with backpressure, use [code.hybscloud.com/lfq]
// instead. This package is the unbounded counterpart for workloads
// where producers must never be refused.
//
// # Quick Start
//
//	q := msq.New[Event]()
//
//	// Enqueue (always succeeds, never blocks)
//	ev := Event{ID: 1}
//	q.Enqueue(&ev)
//
//	// Dequeue (non-blocking)
//	ev, err := q.Dequeue()
//	if msq.IsWouldBlock(err) {
//	    // Queue is empty - try again later
//	}
//
// # Common Patterns
//
// Work hand-off between goroutine pools (MPMC):
//
//	q := msq.New[Job]()
//
//	// Submitters (any goroutine)
//	func Submit(j Job) {
//	    q.Enqueue(&j)
//	}
//
//	// Workers
//	for range numWorkers {
//	    go func() {
//	        backoff := iox.Backoff{}
//	        for {
//	            job, err := q.Dequeue()
//	            if err != nil {
//	                backoff.Wait()
//	                continue
//	            }
//	            backoff.Reset()
//	            job.Run()
//	        }
//	    }()
//	}
//
// # Algorithm
//
// The chain always begins with a sentinel node whose value is never
// meaningful; the first real element, if any, is the sentinel's
// successor. Enqueue links a new node after the last node and then
// swings tail forward; dequeue swings head to its successor and reads
// the value out of the node that just became the new sentinel.
//
// Both operations use a helping protocol: a goroutine that observes a
// lagging tail (a node linked but tail not yet advanced) advances it on
// behalf of whichever goroutine is mid-insertion. This makes the queue
// lock-free: at every point in time at least one of the contending
// goroutines completes its operation in a bounded number of steps,
// although an individual goroutine may retry under contention.
//
// Failed CAS attempts are paced by [Backoff], an exponential spin
// strategy (one pause unit doubling up to a fixed cap). Backoff never
// sleeps and never blocks; it only spreads retries in time.
//
// # Memory Reclamation
//
// Nodes are reclaimed by the garbage collector. A dequeued node stays
// alive exactly as long as some goroutine can still reach it, which
// rules out both use-after-free and the ABA hazard of manual
// reclamation: a node's address cannot be recycled while any retry loop
// still holds it as a CAS expectation. The dequeuer zeroes the consumed
// value in the new sentinel so the queue does not pin consumed objects.
//
// # Length
//
// Len and IsEmpty read an approximate counter maintained outside the
// pointer protocol. The counter is eventually consistent: it is
// observability data, never a synchronization point, and must not be
// used to decide whether a Dequeue will succeed. After all producers
// and consumers have joined, it is exact.
//
// # Error Handling
//
// Dequeue on an empty queue returns [ErrWouldBlock], sourced from
// [code.hybscloud.com/iox] for ecosystem consistency. It is a control
// flow signal, not a failure:
//
//	elem, err := q.Dequeue()
//	if msq.IsWouldBlock(err) {
//	    // empty - poll again, with backoff
//	}
//
// Enqueue always returns nil; the error result exists so the queue
// satisfies the same Producer shape as the bounded queues.
//
// # Teardown
//
// A queue that is no longer referenced is collected as a whole; no
// teardown call is required. Reset drains a queue for reuse and must
// not run concurrently with any other operation on the same queue.
//
// # Race Detection
//
// All shared pointer mutations go through sync/atomic, which the race
// detector tracks, so the full test suite runs race-enabled. Stress
// tests scale their iteration counts down under the detector's slowdown.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for the relaxed length counter, and
// [code.hybscloud.com/spin] for CPU pause instructions.
package msq
