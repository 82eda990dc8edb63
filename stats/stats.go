// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package stats counts the outcomes of operations on a ringq queue.
package stats

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/ringq"
	"golang.org/x/sys/cpu"
)

// Counted wraps a queue and counts accepted and rejected operations.
//
// Producer-side and consumer-side counters live on separate cache lines,
// so counting adds no sharing between the two sides beyond what the
// queue already has.
type Counted[T any] struct {
	q        ringq.Queue[T]
	_        cpu.CacheLinePad
	enqueued atomix.Int64
	full     atomix.Int64
	_        cpu.CacheLinePad
	dequeued atomix.Int64
	empty    atomix.Int64
	_        cpu.CacheLinePad
}

var _ ringq.Queue[int] = (*Counted[int])(nil)

// Wrap returns a counting decorator around q.
func Wrap[T any](q ringq.Queue[T]) *Counted[T] {
	return &Counted[T]{q: q}
}

// Unwrap returns the underlying queue.
func (c *Counted[T]) Unwrap() ringq.Queue[T] { return c.q }

// TryEnqueue forwards to the wrapped queue and counts the outcome.
func (c *Counted[T]) TryEnqueue(item T) bool {
	if c.q.TryEnqueue(item) {
		c.enqueued.Add(1)
		return true
	}
	c.full.Add(1)
	return false
}

// Enqueue forwards to the wrapped queue and counts the outcome.
func (c *Counted[T]) Enqueue(elem *T) error {
	err := c.q.Enqueue(elem)
	c.countEnqueue(err)
	return err
}

// TryDequeue forwards to the wrapped queue and counts the outcome.
func (c *Counted[T]) TryDequeue() (T, bool) {
	elem, ok := c.q.TryDequeue()
	if ok {
		c.dequeued.Add(1)
	} else {
		c.empty.Add(1)
	}
	return elem, ok
}

// Dequeue forwards to the wrapped queue and counts the outcome.
func (c *Counted[T]) Dequeue() (T, error) {
	elem, err := c.q.Dequeue()
	switch {
	case err == nil:
		c.dequeued.Add(1)
	case ringq.IsWouldBlock(err):
		c.empty.Add(1)
	}
	return elem, err
}

// Cap returns the capacity of the wrapped queue.
func (c *Counted[T]) Cap() int { return c.q.Cap() }

func (c *Counted[T]) countEnqueue(err error) {
	switch {
	case err == nil:
		c.enqueued.Add(1)
	case ringq.IsWouldBlock(err):
		c.full.Add(1)
	}
}

// Snapshot is a point-in-time copy of the counters.
// Fields are read one at a time, so a snapshot taken under load is not
// a consistent cut across fields.
type Snapshot struct {
	Enqueued int64 // accepted enqueues
	Full     int64 // enqueues rejected because the queue was full
	Dequeued int64 // successful dequeues
	Empty    int64 // dequeues rejected because the queue was empty
}

// Snapshot reads the counters.
func (c *Counted[T]) Snapshot() Snapshot {
	return Snapshot{
		Enqueued: c.enqueued.Load(),
		Full:     c.full.Load(),
		Dequeued: c.dequeued.Load(),
		Empty:    c.empty.Load(),
	}
}

// Pending returns Enqueued - Dequeued, the number of elements the
// snapshot saw as in the queue. It may be off by in-flight operations.
func (s Snapshot) Pending() int64 {
	return s.Enqueued - s.Dequeued
}
