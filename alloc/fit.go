package alloc

import "github.com/joshuapare/arenakit/internal/format"

// findFit locates a free block of at least asize bytes: first-fit within the
// smallest sufficient size class, then every larger class in order. Within a
// bucket, blocks are scanned most-recently-freed first (insert is head-push).
// Returns NilRef when no bucket yields a sufficient block.
func (a *Allocator) findFit(asize int) Ref {
	data := a.ar.Bytes()
	for idx := classify(asize); idx < numClasses; idx++ {
		for bp := a.buckets[idx]; bp != NilRef; bp = format.NextFree(data, bp) {
			if format.SizeOf(format.Header(data, bp)) >= asize {
				return bp
			}
		}
	}
	return NilRef
}

// place installs an allocation of asize bytes at the free block bp. When the
// leftover would be at least a minimum block, the block is split and the
// remainder re-enters the free structure via coalesce; otherwise the whole
// block is allocated to avoid unusably small fragments.
func (a *Allocator) place(bp Ref, asize int) {
	data := a.ar.Bytes()
	csize := format.SizeOf(format.Header(data, bp))

	// Remove before rewriting the header: removal keys off the size the
	// block was inserted under.
	a.removeFree(bp)

	if csize-asize >= format.MinBlockSize {
		a.stats.SplitCount++
		format.PutHeader(data, bp, format.Pack(asize, true))
		format.PutFooter(data, bp, format.Pack(asize, true))

		rem := format.NextBlock(data, bp)
		format.PutHeader(data, rem, format.Pack(csize-asize, false))
		format.PutFooter(data, rem, format.Pack(csize-asize, false))
		a.coalesce(rem)
	} else {
		format.PutHeader(data, bp, format.Pack(csize, true))
		format.PutFooter(data, bp, format.Pack(csize, true))
	}
}
