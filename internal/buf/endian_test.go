package buf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestU64LERoundTrip(t *testing.T) {
	b := make([]byte, 8)

	for _, v := range []uint64{0, 1, 0x10, 0xdeadbeef, 1<<63 | 0x21} {
		PutU64LE(b, v)
		require.Equal(t, v, U64LE(b))
	}
}

func TestU64LEShortBuffer(t *testing.T) {
	short := make([]byte, 7)

	// Reads return zero, writes are dropped, no panic either way.
	require.Zero(t, U64LE(short))
	PutU64LE(short, 0xffffffffffffffff)
	require.Equal(t, make([]byte, 7), short)
}
