//go:build unix

package arena

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileExtendAndFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.bin")

	a, err := NewFile(path, 1<<16)
	require.NoError(t, err)
	defer a.Close()

	off, err := a.Extend(4096)
	require.NoError(t, err)
	require.Equal(t, 0, off)

	copy(a.Bytes()[0:4], []byte("heap"))
	require.NoError(t, a.Flush())

	// The bytes must be visible through the file.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("heap"), raw[0:4])
}

func TestFileExhausted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.bin")

	a, err := NewFile(path, 4096)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Extend(4096)
	require.NoError(t, err)

	_, err = a.Extend(1)
	require.ErrorIs(t, err, ErrExhausted)
}

func TestFileReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.bin")

	a, err := NewFile(path, 4096)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Extend(1024)
	require.NoError(t, err)
	a.Reset()
	require.Empty(t, a.Bytes())

	off, err := a.Extend(2048)
	require.NoError(t, err)
	require.Equal(t, 0, off)
}
