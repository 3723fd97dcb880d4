// Package arena provides the contiguous, monotonically growable memory
// regions that package alloc manages. An arena only ever grows; the allocator
// layers block structure on top of the raw bytes.
package arena

import "errors"

// ErrExhausted indicates the arena cannot grow by the requested amount.
var ErrExhausted = errors.New("arena: cannot extend further")

// Arena is the backing store consumed by the allocator.
//
// Implementations must guarantee that the slice returned by Bytes aliases a
// backing array that never relocates across Extend calls: the allocator hands
// out sub-slices of it that stay live across growth.
type Arena interface {
	// Bytes returns the currently extended region. Its length grows with
	// each successful Extend.
	Bytes() []byte

	// Extend grows the region by n bytes and returns the offset of the new
	// space, or ErrExhausted when the arena is at capacity. A failed Extend
	// has no side effects.
	Extend(n int) (int, error)

	// Reset shrinks the region back to zero length so the allocator can be
	// re-initialized on the same backing store.
	Reset()

	// Low and High report the inclusive bounds of the extended region, for
	// diagnostics only. High is -1 while the region is empty.
	Low() int
	High() int
}
