package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The arena grows only when no free block can satisfy a request.
func Test_GrowOnlyOnMiss(t *testing.T) {
	a := newTestAllocator(t, defaultTestLimit)
	grows := a.Stats().GrowCalls

	// The initial chunk covers these without extending.
	for i := 0; i < 3; i++ {
		_, _, err := a.Allocate(48)
		require.NoError(t, err)
	}
	require.Equal(t, grows, a.Stats().GrowCalls)

	// Exceeding the remaining free space forces a grow.
	_, _, err := a.Allocate(512)
	require.NoError(t, err)
	require.Equal(t, grows+1, a.Stats().GrowCalls)
}

// Odd word counts round up so every block size stays 16-aligned.
func Test_ExtendRoundsOddWords(t *testing.T) {
	a := newTestAllocator(t, defaultTestLimit)

	before := a.Stats().GrowBytes
	bp, err := a.extend(3)
	require.NoError(t, err)
	require.NotEqual(t, NilRef, bp)
	require.Equal(t, before+32, a.Stats().GrowBytes)
	require.True(t, a.Check("extend-round"))
}

// Small requests that miss the free lists still grow by the 256-byte floor.
func Test_GrowFloor(t *testing.T) {
	a := newTestAllocator(t, defaultTestLimit)

	// Consume the initial chunk exactly: 64 * 4 = 256.
	for i := 0; i < 4; i++ {
		_, _, err := a.Allocate(48)
		require.NoError(t, err)
	}
	before := a.Stats().GrowBytes
	_, _, err := a.Allocate(48)
	require.NoError(t, err)
	require.Equal(t, before+256, a.Stats().GrowBytes)
}

// A fresh extension merges with a free block at the old arena end before
// placement, so the new space is not fragmented from what preceded it.
func Test_GrowCoalescesWithTrailingFree(t *testing.T) {
	a := newTestAllocator(t, defaultTestLimit)

	refs := make([]Ref, 4)
	for i := range refs {
		var err error
		refs[i], _, err = a.Allocate(48)
		require.NoError(t, err)
	}
	require.NoError(t, a.Release(refs[3]))

	// 400 adjusts to 416; the trailing free 64 bytes cannot hold it, so the
	// arena extends by 416 and the merged 480-byte block is placed at the
	// released ref.
	got, _, err := a.Allocate(400)
	require.NoError(t, err)
	require.Equal(t, refs[3], got)
	require.True(t, a.Check("grow-merge"))
}
