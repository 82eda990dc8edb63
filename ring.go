// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"code.hybscloud.com/atomix"
	"golang.org/x/sys/cpu"
)

// RingBuffer is a bounded lock-free multi-producer multi-consumer queue.
//
// Producers claim a slot by advancing tail with CAS when the slot's
// sequence equals the cursor; consumers mirror this on head with an offset
// of one. The CAS winner is the only writer of the slot for that epoch and
// hands it over with a release store of the sequence.
//
// Layout keeps the producer group and the consumer group on separate
// cache lines. Each group carries its own copy of the mask and the buffer
// slice header (both slices share one backing array), so reading "your"
// buffer never touches the line the other side is hammering.
//
// Memory: n cells (4 bytes + sizeof(T) each, plus alignment). Only the
// cursors are padded; cells are packed, accepting false sharing between
// adjacent slots in exchange for a ring that is not n cache lines long.
type RingBuffer[T any] struct {
	_       cpu.CacheLinePad
	tail    atomix.Uint32 // enqueue cursor
	enqMask uint32
	enqBuf  []cell[T]
	_       cpu.CacheLinePad
	head    atomix.Uint32 // dequeue cursor
	deqMask uint32
	deqBuf  []cell[T]
	_       cpu.CacheLinePad
	backoff Backoff
}

// NewRingBuffer creates a RingBuffer with the given capacity.
//
// Capacity must be a power of two in [2, MaxCapacity]; otherwise the
// returned error wraps ErrInvalidCapacity. Capacity is not rounded.
func NewRingBuffer[T any](capacity int) (*RingBuffer[T], error) {
	return newRingBuffer[T](capacity, BackoffSpin)
}

// MustNewRingBuffer is like NewRingBuffer but panics on an invalid capacity.
func MustNewRingBuffer[T any](capacity int) *RingBuffer[T] {
	q, err := NewRingBuffer[T](capacity)
	if err != nil {
		panic(err)
	}
	return q
}

func newRingBuffer[T any](capacity int, backoff Backoff) (*RingBuffer[T], error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}

	n := uint32(capacity)
	buf := newCells[T](n)
	return &RingBuffer[T]{
		enqMask: n - 1,
		enqBuf:  buf,
		deqMask: n - 1,
		deqBuf:  buf,
		backoff: backoff,
	}, nil
}

// TryEnqueue adds item to the queue.
// Returns false immediately if the queue is full.
func (q *RingBuffer[T]) TryEnqueue(item T) bool {
	return enqueueCell(&q.tail, q.enqBuf, q.enqMask, q.backoff, &item)
}

// Enqueue adds a copy of *elem to the queue.
// Returns ErrWouldBlock if the queue is full.
func (q *RingBuffer[T]) Enqueue(elem *T) error {
	if !enqueueCell(&q.tail, q.enqBuf, q.enqMask, q.backoff, elem) {
		return ErrWouldBlock
	}
	return nil
}

// TryDequeue removes and returns an element from the queue.
// Returns (zero-value, false) immediately if the queue is empty.
func (q *RingBuffer[T]) TryDequeue() (T, bool) {
	return dequeueCell(&q.head, q.deqBuf, q.deqMask, q.backoff)
}

// Dequeue removes and returns an element from the queue.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *RingBuffer[T]) Dequeue() (T, error) {
	elem, ok := dequeueCell(&q.head, q.deqBuf, q.deqMask, q.backoff)
	if !ok {
		return elem, ErrWouldBlock
	}
	return elem, nil
}

// Cap returns the queue capacity.
func (q *RingBuffer[T]) Cap() int {
	return int(q.enqMask) + 1
}
