// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// MaxCapacity is the largest accepted capacity.
//
// Cursors are 32-bit and slot states are compared through a signed 32-bit
// difference bounded by the capacity. Keeping capacity at or below 2^30
// keeps that difference far from the sign bit at every cursor value.
const MaxCapacity = 1 << 30

// Options configures queue creation.
type Options struct {
	// Layout hint
	compact bool // Sequential header, no cache-line padding

	// Retry strategy between failed claims
	backoff Backoff

	// Capacity (power of 2, not rounded)
	capacity int
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Padded ring (default, general purpose)
//	q, err := ringq.Build[Request](ringq.NewBuilder(4096))
//
//	// Compact header, yielding backoff
//	q, err := ringq.Build[Event](ringq.NewBuilder(256).Compact().Backoff(ringq.BackoffYield))
//
//	// Untyped ring for a dynamically typed call boundary
//	q, err := ringq.NewBuilder(1024).BuildAny()
//
// Capacity is validated by the Build functions, not by NewBuilder.
type Builder struct {
	opts Options
}

// NewBuilder creates a queue builder with the given capacity.
func NewBuilder(capacity int) *Builder {
	return &Builder{opts: Options{capacity: capacity, backoff: BackoffSpin}}
}

// Compact selects the sequential layout ([CompactRing]).
//
// Trade-off: a header a few cache lines smaller, more cross-core traffic
// between producers and consumers.
func (b *Builder) Compact() *Builder {
	b.opts.compact = true
	return b
}

// Backoff sets the retry strategy between failed claims.
// Panics on an unknown strategy.
func (b *Builder) Backoff(backoff Backoff) *Builder {
	if backoff > BackoffNone {
		panic("ringq: unknown backoff strategy")
	}
	b.opts.backoff = backoff
	return b
}

// Build creates a Queue[T].
//
// Layout selection:
//
//	default   → *RingBuffer[T]  (cursors on separate cache lines)
//	Compact() → *CompactRing[T] (sequential layout)
//
// Returns an error wrapping ErrInvalidCapacity if the capacity is not a
// power of two in [2, MaxCapacity].
func Build[T any](b *Builder) (Queue[T], error) {
	if b.opts.compact {
		q, err := newCompactRing[T](b.opts.capacity, b.opts.backoff)
		if err != nil {
			return nil, err
		}
		return q, nil
	}
	q, err := newRingBuffer[T](b.opts.capacity, b.opts.backoff)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// BuildRing creates a *RingBuffer[T] with compile-time type safety.
// Panics if the builder is configured with Compact().
func BuildRing[T any](b *Builder) (*RingBuffer[T], error) {
	if b.opts.compact {
		panic("ringq: BuildRing requires the padded layout, not Compact()")
	}
	return newRingBuffer[T](b.opts.capacity, b.opts.backoff)
}

// BuildAny creates an untyped Queue[any].
//
// Prefer Build[T]: the untyped form boxes non-pointer values and moves
// type checks to run time. It exists for call boundaries that only see
// dynamically typed values.
func (b *Builder) BuildAny() (Queue[any], error) {
	return Build[any](b)
}
