package alloc

import "github.com/joshuapare/arenakit/internal/format"

// insertFree pushes a free block at the head of its size-class bucket. The
// block must already carry a free header with its current size.
func (a *Allocator) insertFree(bp Ref) {
	data := a.ar.Bytes()
	idx := classify(format.SizeOf(format.Header(data, bp)))
	head := a.buckets[idx]

	format.SetPrevFree(data, bp, NilRef)
	format.SetNextFree(data, bp, head)
	if head != NilRef {
		format.SetPrevFree(data, head, bp)
	}
	a.buckets[idx] = bp
}

// removeFree splices a free block out of its bucket's list. The block must be
// free and currently linked; violating that is undefined behavior. A block
// with no back reference is the head of bucket classify(size), since blocks
// are indexed by their size at insertion time and the size word is not
// rewritten while linked - this keeps removal O(1) without a per-block tag.
//
// The block's overlay words are left as-is; callers must not read stale link
// fields after removal.
func (a *Allocator) removeFree(bp Ref) {
	data := a.ar.Bytes()
	prev := format.PrevFree(data, bp)
	next := format.NextFree(data, bp)

	if prev == NilRef {
		idx := classify(format.SizeOf(format.Header(data, bp)))
		a.buckets[idx] = next
	} else {
		format.SetNextFree(data, prev, next)
	}
	if next != NilRef {
		format.SetPrevFree(data, next, prev)
	}
}
