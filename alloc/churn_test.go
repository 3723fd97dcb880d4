package alloc

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/arenakit/arena"
)

// live tracks one outstanding allocation and the bytes written into it.
type live struct {
	ref  Ref
	data []byte
}

// fill writes a deterministic pattern derived from the ref into p.
func fill(p []byte, ref Ref) {
	for i := range p {
		p[i] = byte(ref>>4) + byte(i)
	}
}

// Randomized allocate/release/resize churn against a shadow model. Every
// outstanding block must retain exactly what was written into it, and the
// heap must stay structurally consistent throughout.
func Test_RandomChurn(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5eed))
	a := New(arena.NewMem(8 << 20))
	require.NoError(t, a.Init())

	var models []live
	verify := func(m live) {
		got := a.Payload(m.ref)[:len(m.data)]
		require.True(t, bytes.Equal(m.data, got),
			"block %d lost its contents", m.ref)
	}

	for i := 0; i < 5000; i++ {
		switch op := rng.Intn(10); {
		case op < 5 || len(models) == 0:
			size := 1 + rng.Intn(1024)
			ref, p, err := a.Allocate(size)
			require.NoError(t, err)
			fill(p, ref)
			models = append(models, live{ref: ref, data: append([]byte(nil), p...)})

		case op < 8:
			j := rng.Intn(len(models))
			m := models[j]
			verify(m)
			require.NoError(t, a.Release(m.ref))
			models[j] = models[len(models)-1]
			models = models[:len(models)-1]

		default:
			j := rng.Intn(len(models))
			m := models[j]
			verify(m)
			size := 1 + rng.Intn(2048)
			ref, p, err := a.Resize(m.ref, size)
			require.NoError(t, err)
			n := len(m.data)
			if n > len(p) {
				n = len(p)
			}
			require.True(t, bytes.Equal(m.data[:n], p[:n]),
				"resize dropped the prefix of block %d", m.ref)
			fill(p, ref)
			models[j] = live{ref: ref, data: append([]byte(nil), p...)}
		}

		if i%500 == 0 {
			require.True(t, a.Check("churn"))
		}
	}

	// Drain and verify everything still outstanding.
	for _, m := range models {
		verify(m)
		require.NoError(t, a.Release(m.ref))
	}
	require.True(t, a.Check("drained"))

	s := a.Stats()
	require.Positive(t, s.AllocCalls)
	require.Positive(t, s.FreeCalls)
	require.Positive(t, s.ResizeCalls)
}

// Interleaved zeroed allocations must come back clean even when they reuse
// space previous owners dirtied.
func Test_RandomChurnZeroed(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	a := New(arena.NewMem(4 << 20))
	require.NoError(t, a.Init())

	for i := 0; i < 200; i++ {
		ref, p, err := a.Allocate(1 + rng.Intn(512))
		require.NoError(t, err)
		for j := range p {
			p[j] = 0xA5
		}
		require.NoError(t, a.Release(ref))

		n := 1 + rng.Intn(64)
		zref, zp, err := a.AllocateZero(n, 8)
		require.NoError(t, err)
		for _, b := range zp {
			require.Zero(t, b)
		}
		require.Len(t, zp, n*8)
		require.NoError(t, a.Release(zref))
	}
	require.True(t, a.Check("zeroed"))
}
