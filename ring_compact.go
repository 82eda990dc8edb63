// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "code.hybscloud.com/atomix"

// CompactRing is a RingBuffer with sequential field layout.
//
// Same claim protocol, same guarantees. The cursors, mask and buffer
// reference share cache lines, so producers and consumers invalidate each
// other's lines on every claim. Use it when the queue header size matters
// more than throughput, e.g. many small rings embedded in other structs.
//
// Memory: n cells plus a header of two cursors and one slice
type CompactRing[T any] struct {
	tail    atomix.Uint32
	head    atomix.Uint32
	mask    uint32
	backoff Backoff
	buffer  []cell[T]
}

// NewCompactRing creates a CompactRing with the given capacity.
// Capacity rules are those of NewRingBuffer.
func NewCompactRing[T any](capacity int) (*CompactRing[T], error) {
	return newCompactRing[T](capacity, BackoffSpin)
}

func newCompactRing[T any](capacity int, backoff Backoff) (*CompactRing[T], error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}

	n := uint32(capacity)
	return &CompactRing[T]{
		mask:    n - 1,
		backoff: backoff,
		buffer:  newCells[T](n),
	}, nil
}

// TryEnqueue adds item to the queue.
// Returns false immediately if the queue is full.
func (q *CompactRing[T]) TryEnqueue(item T) bool {
	return enqueueCell(&q.tail, q.buffer, q.mask, q.backoff, &item)
}

// Enqueue adds a copy of *elem to the queue.
// Returns ErrWouldBlock if the queue is full.
func (q *CompactRing[T]) Enqueue(elem *T) error {
	if !enqueueCell(&q.tail, q.buffer, q.mask, q.backoff, elem) {
		return ErrWouldBlock
	}
	return nil
}

// TryDequeue removes and returns an element from the queue.
// Returns (zero-value, false) immediately if the queue is empty.
func (q *CompactRing[T]) TryDequeue() (T, bool) {
	return dequeueCell(&q.head, q.buffer, q.mask, q.backoff)
}

// Dequeue removes and returns an element from the queue.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *CompactRing[T]) Dequeue() (T, error) {
	elem, ok := dequeueCell(&q.head, q.buffer, q.mask, q.backoff)
	if !ok {
		return elem, ErrWouldBlock
	}
	return elem, nil
}

// Cap returns the queue capacity.
func (q *CompactRing[T]) Cap() int {
	return int(q.mask) + 1
}
