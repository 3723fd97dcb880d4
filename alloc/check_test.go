package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/internal/format"
)

func Test_CheckCleanHeap(t *testing.T) {
	a := newTestAllocator(t, defaultTestLimit)
	require.True(t, a.Check("fresh"))

	r1, _, err := a.Allocate(100)
	require.NoError(t, err)
	_, _, err = a.Allocate(200)
	require.NoError(t, err)
	require.NoError(t, a.Release(r1))
	require.True(t, a.Check("after-churn"))
}

func Test_CheckUninitialized(t *testing.T) {
	a := New(arena.NewMem(defaultTestLimit))
	require.False(t, a.Check("uninit"))
}

func Test_CheckDetectsFooterMismatch(t *testing.T) {
	a := newTestAllocator(t, defaultTestLimit)
	ref, _, err := a.Allocate(48)
	require.NoError(t, err)

	data := a.ar.Bytes()
	format.PutFooter(data, ref, format.Pack(64, false))
	require.False(t, a.Check("bad-footer"))
}

func Test_CheckDetectsCorruptPrologue(t *testing.T) {
	a := newTestAllocator(t, defaultTestLimit)

	data := a.ar.Bytes()
	format.PutHeader(data, a.base, format.Pack(format.DWordSize, false))
	require.False(t, a.Check("bad-prologue"))
}

func Test_CheckDetectsAdjacentFreeBlocks(t *testing.T) {
	a, refs := setupNeighbors(t)
	require.NoError(t, a.Release(refs[1]))

	// Mark the neighbor free by hand, bypassing coalescing and the lists.
	data := a.ar.Bytes()
	format.PutHeader(data, refs[2], format.Pack(64, false))
	format.PutFooter(data, refs[2], format.Pack(64, false))
	require.False(t, a.Check("uncoalesced"))
}

func Test_CheckDetectsWrongBucket(t *testing.T) {
	a, refs := setupNeighbors(t)
	require.NoError(t, a.Release(refs[1]))

	// Move the 64-byte entry into a bucket its size does not classify to.
	a.buckets[4] = a.buckets[2]
	a.buckets[2] = NilRef
	require.False(t, a.Check("wrong-bucket"))
}

func Test_CheckDetectsUnlistedFreeBlock(t *testing.T) {
	a, refs := setupNeighbors(t)
	require.NoError(t, a.Release(refs[1]))

	// Drop the bucket entry; the walk still sees a free block.
	a.buckets[2] = NilRef
	require.False(t, a.Check("unlisted"))
}

func Test_CheckDetectsAllocatedOnFreeList(t *testing.T) {
	a, refs := setupNeighbors(t)

	a.buckets[2] = refs[1]
	data := a.ar.Bytes()
	format.SetPrevFree(data, refs[1], NilRef)
	format.SetNextFree(data, refs[1], NilRef)
	require.False(t, a.Check("listed-allocated"))
}
