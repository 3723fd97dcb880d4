package alloc

import (
	"fmt"
	"os"

	"github.com/joshuapare/arenakit/internal/format"
)

// extend grows the arena by the given word count (rounded up to an even word
// count to keep 16-byte alignment), formats the new space as one free block,
// relocates the epilogue sentinel behind it and coalesces the block with a
// trailing free block, if any. Returns the coalesced block's ref.
func (a *Allocator) extend(words int) (Ref, error) {
	if words%2 != 0 {
		words++
	}
	size := words * format.WordSize

	off, err := a.ar.Extend(size)
	if err != nil {
		if logAlloc {
			fmt.Fprintf(os.Stderr, "[GROW] denied: need=%d bytes, high=%d\n",
				size, a.ar.High())
		}
		return NilRef, ErrArenaExhausted
	}
	a.stats.GrowCalls++
	a.stats.GrowBytes += int64(size)

	if logAlloc {
		fmt.Fprintf(os.Stderr, "[GROW] #%d: +%d bytes, arena now %d bytes\n",
			a.stats.GrowCalls, size, a.ar.High()+1)
	}

	// The new block's header overwrites the old epilogue header, so its
	// payload starts exactly at the old arena end.
	data := a.ar.Bytes()
	bp := off
	format.PutHeader(data, bp, format.Pack(size, false))
	format.PutFooter(data, bp, format.Pack(size, false))
	format.PutHeader(data, bp+size, format.Pack(0, true))

	return a.coalesce(bp), nil
}
