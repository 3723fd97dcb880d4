package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlign(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, 0},
		{1, 16},
		{15, 16},
		{16, 16},
		{17, 32},
		{31, 32},
		{32, 32},
		{100, 112},
		{4096, 4096},
		{4097, 4112},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, Align(tc.in), "Align(%d)", tc.in)
	}
}

func TestIsAligned(t *testing.T) {
	require.True(t, IsAligned(0))
	require.True(t, IsAligned(16))
	require.True(t, IsAligned(4096))
	require.False(t, IsAligned(8))
	require.False(t, IsAligned(17))
}
