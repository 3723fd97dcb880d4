package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/internal/format"
)

// defaultTestLimit is the arena capacity used by most tests.
const defaultTestLimit = 1 << 20

// blockInfo describes one block observed during a heap walk.
type blockInfo struct {
	ref  Ref
	size int
	free bool
}

// newTestAllocator returns an initialized allocator over a fresh Mem arena.
func newTestAllocator(t testing.TB, limit int) *Allocator {
	t.Helper()
	a := New(arena.NewMem(limit))
	require.NoError(t, a.Init())
	return a
}

// walkBlocks returns every block between the prologue and the epilogue, in
// structural order.
func walkBlocks(t testing.TB, a *Allocator) []blockInfo {
	t.Helper()
	data := a.ar.Bytes()
	var blocks []blockInfo
	for bp := format.NextBlock(data, a.base); ; bp = format.NextBlock(data, bp) {
		hdr := format.Header(data, bp)
		size := format.SizeOf(hdr)
		if size == 0 {
			break
		}
		blocks = append(blocks, blockInfo{
			ref:  bp,
			size: size,
			free: !format.IsAllocated(hdr),
		})
		require.Less(t, len(blocks), 1<<20, "runaway heap walk")
	}
	return blocks
}

// bucketRefs returns the refs linked into the given size-class bucket, in
// list order (most recently freed first).
func bucketRefs(t testing.TB, a *Allocator, idx int) []Ref {
	t.Helper()
	data := a.ar.Bytes()
	var refs []Ref
	for bp := a.buckets[idx]; bp != NilRef; bp = format.NextFree(data, bp) {
		refs = append(refs, bp)
		require.Less(t, len(refs), 1<<20, "runaway free list")
	}
	return refs
}
