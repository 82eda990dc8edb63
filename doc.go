// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringq provides a bounded lock-free multi-producer multi-consumer
// FIFO queue built on a fixed-size ring of sequenced slots.
//
// Any number of goroutines may enqueue and dequeue concurrently. Neither
// operation ever blocks: a full queue rejects an enqueue and an empty queue
// rejects a dequeue, immediately and without side effects.
//
// # Quick Start
//
//	q, err := ringq.NewRingBuffer[Event](1024)
//	if err != nil {
//	    return err // capacity was not a power of two in [2, MaxCapacity]
//	}
//
//	if !q.TryEnqueue(ev) {
//	    // Queue is full - handle backpressure
//	}
//
//	ev, ok := q.TryDequeue()
//	if !ok {
//	    // Queue is empty - try again later
//	}
//
// The same operations are also available in error form, which composes
// with the [code.hybscloud.com/iox] ecosystem:
//
//	err := q.Enqueue(&ev)
//	if ringq.IsWouldBlock(err) {
//	    // full
//	}
//	ev, err := q.Dequeue()
//	if ringq.IsWouldBlock(err) {
//	    // empty
//	}
//
// # Algorithm
//
// Every slot carries a sequence number next to its element. For the cursor
// value pos mapping to a slot, the sequence is pos while the slot is free,
// pos+1 once an element is published, and pos+capacity after the element
// has been consumed, which makes the slot free for the next lap.
//
// A producer reads the enqueue cursor, compares the slot sequence with it
// and, when they match, advances the cursor with compare-and-swap. The
// winner of that CAS is the only writer of the slot until it publishes the
// element with a release store of pos+1. Consumers do the same against the
// dequeue cursor, looking for pos+1 and publishing pos+capacity. A slot
// sequence behind the cursor means full (producers) or empty (consumers).
//
// Elements are delivered in CAS order: two producers racing for the same
// position are ordered by whichever CAS lands first. Items enqueued by one
// goroutine are dequeued in the order that goroutine enqueued them.
//
// The queue is lock-free, not wait-free, and gives no fairness guarantee
// among competing producers or among competing consumers.
//
// # Capacity
//
// Capacity is fixed at construction, is not rounded, and must be a power
// of two between 2 and [MaxCapacity] inclusive:
//
//	ringq.NewRingBuffer[int](4)     // ok
//	ringq.NewRingBuffer[int](65536) // ok
//	ringq.NewRingBuffer[int](1000)  // ErrInvalidCapacity
//	ringq.NewRingBuffer[int](1)     // ErrInvalidCapacity
//
// Cursors are 32-bit and wrap around. Slot states are decided by the
// signed 32-bit difference between a sequence and a cursor; with capacity
// bounded by MaxCapacity that difference never reaches the sign bit, so
// the queue keeps working after 2^31 and 2^32 operations.
//
// Length is intentionally not provided. See the stats subpackage for a
// counting decorator.
//
// # Layout
//
// [RingBuffer] places the producer cursor and the consumer cursor on
// separate cache lines, each next to its own copy of the buffer reference.
// [CompactRing] runs the same protocol with a sequential layout for when
// header size matters more than throughput. Select either through the
// [Builder]:
//
//	q, err := ringq.Build[Event](ringq.NewBuilder(1024))           // → RingBuffer
//	q, err := ringq.Build[Event](ringq.NewBuilder(1024).Compact()) // → CompactRing
//
// # Backoff
//
// A goroutine that loses a CAS race retries. [BackoffSpin] (default) waits
// with [spin.Wait]: a short CPU pause per retry, turning into a processor
// yield more and more often as failures pile up. [BackoffYield] yields on
// every retry, and [BackoffNone] retries immediately:
//
//	q, err := ringq.Build[Job](ringq.NewBuilder(4096).Backoff(ringq.BackoffYield))
//
// # Blocking
//
// The queue itself never waits for space or data. The blocking subpackage
// polls the queue with [iox.Backoff] until a context is done:
//
//	err := blocking.Enqueue(ctx, q, job)
//	job, err := blocking.Dequeue(ctx, q)
//
// # Race Detection
//
// Go's race detector cannot observe happens-before edges established through
// acquire-release operations on a separate variable. Elements are plain
// fields ordered by the slot sequence, so concurrent tests may report false
// positives under -race. Such tests check [RaceEnabled] and skip.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomics with explicit
// memory ordering, [code.hybscloud.com/spin] for CPU pause and yield,
// [code.hybscloud.com/iox] for semantic errors, and [golang.org/x/sys/cpu]
// for cache-line padding.
package ringq
