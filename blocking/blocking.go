// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package blocking waits on a ringq queue until it has space or data.
//
// The ring itself never blocks. These helpers poll it with [iox.Backoff]
// and give up when the context is done, which is the only cancellation
// point: a claim that succeeded is never rolled back.
//
//	ctx, cancel := context.WithTimeout(ctx, time.Second)
//	defer cancel()
//	if err := blocking.Enqueue(ctx, q, job); err != nil {
//	    return err // context.DeadlineExceeded: queue stayed full
//	}
package blocking

import (
	"context"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/ringq"
)

// Enqueue adds item to q, waiting while q is full.
// Returns ctx.Err() if ctx is done before the item is accepted.
func Enqueue[T any](ctx context.Context, q ringq.Producer[T], item T) error {
	backoff := iox.Backoff{}
	for !q.TryEnqueue(item) {
		if err := ctx.Err(); err != nil {
			return err
		}
		backoff.Wait()
	}
	return nil
}

// Dequeue removes an element from q, waiting while q is empty.
// Returns (zero-value, ctx.Err()) if ctx is done before an element arrives.
func Dequeue[T any](ctx context.Context, q ringq.Consumer[T]) (T, error) {
	backoff := iox.Backoff{}
	for {
		elem, ok := q.TryDequeue()
		if ok {
			return elem, nil
		}
		if err := ctx.Err(); err != nil {
			return elem, err
		}
		backoff.Wait()
	}
}

// Drain calls fn for every element dequeued from q until q reports empty
// or fn returns an error. It does not wait for more data.
// Returns the number of elements passed to fn and the first error.
func Drain[T any](ctx context.Context, q ringq.Consumer[T], fn func(T) error) (int, error) {
	n := 0
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		elem, ok := q.TryDequeue()
		if !ok {
			return n, nil
		}
		n++
		if err := fn(elem); err != nil {
			return n, err
		}
	}
}
