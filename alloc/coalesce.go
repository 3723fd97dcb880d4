package alloc

import "github.com/joshuapare/arenakit/internal/format"

// coalesce merges the free block at bp with adjacent free neighbors, inserts
// the result into its size-class bucket and returns its (possibly relocated)
// ref. The prologue and epilogue sentinels are permanently allocated, so the
// boundary cases need no special detection: the first real block sees the
// prologue's allocated footer, the last sees the epilogue's allocated header.
func (a *Allocator) coalesce(bp Ref) Ref {
	data := a.ar.Bytes()
	prevAlloc := format.IsAllocated(format.PrevFooter(data, bp))
	next := format.NextBlock(data, bp)
	nextAlloc := format.IsAllocated(format.Header(data, next))
	size := format.SizeOf(format.Header(data, bp))

	switch {
	case prevAlloc && nextAlloc:
		// No free neighbors.

	case prevAlloc && !nextAlloc:
		a.stats.CoalesceForward++
		a.removeFree(next)
		size += format.SizeOf(format.Header(data, next))
		format.PutHeader(data, bp, format.Pack(size, false))
		format.PutFooter(data, bp, format.Pack(size, false))

	case !prevAlloc && nextAlloc:
		a.stats.CoalesceBackward++
		prev := format.PrevBlock(data, bp)
		a.removeFree(prev)
		size += format.SizeOf(format.Header(data, prev))
		format.PutHeader(data, prev, format.Pack(size, false))
		// bp's header still holds the old size, so its footer position is
		// the end of the merged block.
		format.PutFooter(data, bp, format.Pack(size, false))
		bp = prev

	default:
		a.stats.CoalesceBoth++
		prev := format.PrevBlock(data, bp)
		a.removeFree(prev)
		a.removeFree(next)
		size += format.SizeOf(format.Header(data, prev)) +
			format.SizeOf(format.Header(data, next))
		format.PutHeader(data, prev, format.Pack(size, false))
		format.PutFooter(data, next, format.Pack(size, false))
		bp = prev
	}

	// The merged size may land the block in a different bucket than either
	// pre-merge piece.
	a.insertFree(bp)
	return bp
}
