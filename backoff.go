// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "code.hybscloud.com/spin"

// Backoff selects what a goroutine does between two failed claim attempts.
//
// A claim fails when another goroutine wins the CAS on the same cursor
// value, or when the cursor read is already stale. Full and empty results
// are never retried, so the strategy only matters under contention and
// never changes observable queue behavior.
type Backoff uint8

const (
	// BackoffSpin waits with [spin.Wait]: a fixed-length CPU pause per
	// failed claim, replaced by a processor yield on a growing share of
	// failures as they accumulate. This is the default.
	BackoffSpin Backoff = iota

	// BackoffYield yields the processor with [spin.Yield] on every failed
	// claim and never pauses. Useful when producers and consumers
	// outnumber GOMAXPROCS, so the CAS winner gets scheduled sooner.
	BackoffYield

	// BackoffNone retries immediately (pure spin-CAS).
	BackoffNone
)

// String returns the strategy name.
func (b Backoff) String() string {
	switch b {
	case BackoffSpin:
		return "spin"
	case BackoffYield:
		return "yield"
	case BackoffNone:
		return "none"
	default:
		return "unknown"
	}
}

// retrier is the per-call backoff state. It lives on the caller's stack.
type retrier struct {
	mode   Backoff
	yields uint32 // BackoffYield only
	sw     spin.Wait
}

func (r *retrier) wait() {
	switch r.mode {
	case BackoffNone:
	case BackoffYield:
		r.yields++
		spin.Yield(0)
	default:
		r.sw.Once()
	}
}
