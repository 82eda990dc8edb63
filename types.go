// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// Queue is the combined producer-consumer interface for a bounded FIFO ring.
//
// Both sides are non-blocking: a full queue rejects an enqueue and an empty
// queue rejects a dequeue, immediately and without side effects.
//
// The interface intentionally excludes length because an accurate count
// needs both cursors read at once, which a lock-free ring cannot offer
// without cross-core synchronization. Track counts in application logic
// when needed (see the stats subpackage).
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
}

// Producer is the interface for enqueueing elements.
//
// The two methods are the same operation in two idioms: TryEnqueue
// reports success as a bool, Enqueue returns nil or ErrWouldBlock.
type Producer[T any] interface {
	// TryEnqueue adds item to the queue (non-blocking).
	// Returns false if the queue is full; the queue is left unchanged.
	TryEnqueue(item T) bool

	// Enqueue adds a copy of *elem to the queue (non-blocking).
	// Returns nil on success, ErrWouldBlock if the queue is full.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The slot an element is taken from is cleared, so the queue does not
// retain references to objects it has handed out.
type Consumer[T any] interface {
	// TryDequeue removes and returns the oldest claimed element.
	// Returns (zero-value, false) if the queue is empty.
	TryDequeue() (T, bool)

	// Dequeue removes and returns the oldest claimed element.
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	Dequeue() (T, error)
}
