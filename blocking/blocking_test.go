// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package blocking_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/ringq"
	"code.hybscloud.com/ringq/blocking"
)

func TestEnqueueDequeueImmediate(t *testing.T) {
	q := ringq.MustNewRingBuffer[int](4)
	ctx := context.Background()

	for i := range 4 {
		if err := blocking.Enqueue(ctx, q, i); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}
	for i := range 4 {
		v, err := blocking.Dequeue(ctx, q)
		if err != nil || v != i {
			t.Fatalf("Dequeue: got (%d, %v), want (%d, nil)", v, err, i)
		}
	}
}

func TestEnqueueTimesOutWhenFull(t *testing.T) {
	q := ringq.MustNewRingBuffer[int](2)
	q.TryEnqueue(1)
	q.TryEnqueue(2)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := blocking.Enqueue(ctx, q, 3)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Enqueue on full: got %v, want DeadlineExceeded", err)
	}

	// The rejected item was never added.
	q.TryDequeue()
	q.TryDequeue()
	if _, ok := q.TryDequeue(); ok {
		t.Fatal("queue holds an item from a cancelled Enqueue")
	}
}

func TestDequeueCancelledWhenEmpty(t *testing.T) {
	q := ringq.MustNewRingBuffer[string](2)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	v, err := blocking.Dequeue(ctx, q)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Dequeue on empty: got %v, want Canceled", err)
	}
	if v != "" {
		t.Fatalf("Dequeue on empty: got %q, want zero value", v)
	}
}

func TestEnqueueWaitsForSpace(t *testing.T) {
	if ringq.RaceEnabled {
		t.Skip("skip: element writes are ordered by slot sequences the race detector cannot see")
	}

	q := ringq.MustNewRingBuffer[int](2)
	q.TryEnqueue(1)
	q.TryEnqueue(2)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- blocking.Enqueue(ctx, q, 3) }()

	time.Sleep(5 * time.Millisecond)
	if v, ok := q.TryDequeue(); !ok || v != 1 {
		t.Fatalf("TryDequeue: got (%d, %v), want (1, true)", v, ok)
	}
	if err := <-done; err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	for _, want := range []int{2, 3} {
		if v, ok := q.TryDequeue(); !ok || v != want {
			t.Fatalf("TryDequeue: got (%d, %v), want (%d, true)", v, ok, want)
		}
	}
}

func TestPipeline(t *testing.T) {
	if ringq.RaceEnabled {
		t.Skip("skip: element writes are ordered by slot sequences the race detector cannot see")
	}

	const (
		producers = 4
		perProd   = 5000
	)

	q := ringq.MustNewRingBuffer[int](16)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := range perProd {
				if err := blocking.Enqueue(ctx, q, id*perProd+i); err != nil {
					t.Errorf("Enqueue: %v", err)
					return
				}
			}
		}(p)
	}

	seen := make([]bool, producers*perProd)
	for range producers * perProd {
		v, err := blocking.Dequeue(ctx, q)
		if err != nil {
			t.Fatalf("Dequeue: %v", err)
		}
		if seen[v] {
			t.Fatalf("duplicate %d", v)
		}
		seen[v] = true
	}
	wg.Wait()
}

func TestDrain(t *testing.T) {
	q := ringq.MustNewRingBuffer[int](8)
	for i := range 5 {
		q.TryEnqueue(i)
	}

	var got []int
	n, err := blocking.Drain(context.Background(), q, func(v int) error {
		got = append(got, v)
		return nil
	})
	if err != nil || n != 5 {
		t.Fatalf("Drain: got (%d, %v), want (5, nil)", n, err)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("Drain order: got %v", got)
		}
	}
	if _, ok := q.TryDequeue(); ok {
		t.Fatal("queue not empty after Drain")
	}
}

func TestDrainStopsOnError(t *testing.T) {
	q := ringq.MustNewRingBuffer[int](8)
	for i := range 5 {
		q.TryEnqueue(i)
	}

	errStop := errors.New("stop")
	n, err := blocking.Drain(context.Background(), q, func(v int) error {
		if v == 2 {
			return errStop
		}
		return nil
	})
	if !errors.Is(err, errStop) || n != 3 {
		t.Fatalf("Drain: got (%d, %v), want (3, stop)", n, err)
	}
	if v, ok := q.TryDequeue(); !ok || v != 3 {
		t.Fatalf("TryDequeue after Drain: got (%d, %v), want (3, true)", v, ok)
	}
}

func TestDrainCancelled(t *testing.T) {
	q := ringq.MustNewRingBuffer[int](4)
	q.TryEnqueue(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, err := blocking.Drain(ctx, q, func(int) error { return nil })
	if !errors.Is(err, context.Canceled) || n != 0 {
		t.Fatalf("Drain: got (%d, %v), want (0, Canceled)", n, err)
	}
}
