// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrInvalidCapacity is returned by constructors when the requested
// capacity is less than 2, not a power of two, or larger than
// [MaxCapacity]. No queue is created in that case.
//
// The returned error wraps ErrInvalidCapacity; test with errors.Is:
//
//	q, err := ringq.NewRingBuffer[int](1000)
//	if errors.Is(err, ringq.ErrInvalidCapacity) {
//	    // 1000 is not a power of two
//	}
var ErrInvalidCapacity = errors.New("invalid capacity")

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For Enqueue: the queue is full (backpressure)
// For Dequeue: the queue is empty (no data available)
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// retry later, drop the item, or push back on its own producer.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil or ErrWouldBlock.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}

// checkCapacity validates a requested capacity.
func checkCapacity(capacity int) error {
	if capacity < 2 || capacity&(capacity-1) != 0 || capacity > MaxCapacity {
		return fmt.Errorf("ringq: %w: %d", ErrInvalidCapacity, capacity)
	}
	return nil
}
