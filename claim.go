// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "code.hybscloud.com/atomix"

// cell is one slot of the ring.
//
// seq encodes the slot state relative to a cursor value pos that maps to
// this slot (pos&mask == index):
//
//	seq == pos             free, may be claimed by the producer holding pos
//	seq == pos+1           published, may be claimed by the consumer holding pos
//	seq == pos+capacity    consumed, free for the producer of the next lap
//
// There is no other state. elem is written only by the goroutine that won
// the claim for the current epoch and is ordered by the release store of seq.
//
// Cells are not padded. Neighbouring cells share cache lines, so producers
// and consumers working on adjacent slots may contend on the same line; the
// ring stays at n small cells instead of n cache lines.
type cell[T any] struct {
	seq  atomix.Uint32
	elem T
}

// newCells allocates n cells with seq[i] = i.
func newCells[T any](n uint32) []cell[T] {
	buf := make([]cell[T], n)
	for i := range n {
		buf[i].seq.StoreRelaxed(i)
	}
	return buf
}

// enqueueCell runs the producer side of the claim protocol against tail.
//
// Differences are taken as int32(seq - pos). With capacity <= MaxCapacity
// every reachable difference lies in [-capacity, capacity], so the sign is
// correct across the 2^31 and 2^32 wrap points of the uint32 cursors.
func enqueueCell[T any](tail *atomix.Uint32, buf []cell[T], mask uint32, mode Backoff, item *T) bool {
	r := retrier{mode: mode}
	for {
		pos := tail.LoadAcquire()
		c := &buf[pos&mask]
		diff := int32(c.seq.LoadAcquire() - pos)

		if diff == 0 {
			if tail.CompareAndSwapAcqRel(pos, pos+1) {
				c.elem = *item
				c.seq.StoreRelease(pos + 1)
				return true
			}
		} else if diff < 0 {
			// The slot still holds an item from the previous lap.
			return false
		}
		r.wait()
	}
}

// dequeueCell runs the consumer side of the claim protocol against head.
func dequeueCell[T any](head *atomix.Uint32, buf []cell[T], mask uint32, mode Backoff) (T, bool) {
	r := retrier{mode: mode}
	for {
		pos := head.LoadAcquire()
		c := &buf[pos&mask]
		diff := int32(c.seq.LoadAcquire() - (pos + 1))

		if diff == 0 {
			if head.CompareAndSwapAcqRel(pos, pos+1) {
				elem := c.elem
				var zero T
				c.elem = zero
				c.seq.StoreRelease(pos + mask + 1)
				return elem, true
			}
		} else if diff < 0 {
			var zero T
			return zero, false
		}
		r.wait()
	}
}
