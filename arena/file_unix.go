//go:build unix

package arena

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// File is a file-backed arena. The file is sized to the full capacity and
// memory-mapped once, so the mapping base never moves while Extend only
// advances the logical end of the region.
type File struct {
	f    *os.File
	data []byte
	used int
}

// NewFile opens (or creates) the file at path, sizes it to capacity bytes and
// maps it read-write. A non-positive capacity selects DefaultCap.
func NewFile(path string, capacity int) (*File, error) {
	if capacity <= 0 {
		capacity = DefaultCap
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	if err := f.Truncate(int64(capacity)); err != nil {
		f.Close()
		return nil, fmt.Errorf("arena: size backing file: %w", err)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, capacity,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("arena: map backing file: %w", err)
	}

	return &File{f: f, data: data}, nil
}

// Bytes returns the extended region.
func (a *File) Bytes() []byte {
	return a.data[:a.used]
}

// Extend grows the region by n bytes and returns the offset of the new space.
func (a *File) Extend(n int) (int, error) {
	if n < 0 || a.used+n > len(a.data) {
		return 0, ErrExhausted
	}
	off := a.used
	a.used += n
	return off, nil
}

// Reset shrinks the region to zero length. The mapping is kept.
func (a *File) Reset() {
	a.used = 0
}

// Low returns the lowest offset of the extended region.
func (a *File) Low() int {
	return 0
}

// High returns the highest valid offset, or -1 while the region is empty.
func (a *File) High() int {
	return a.used - 1
}

// Flush synchronously writes the extended region back to the file.
func (a *File) Flush() error {
	if a.used == 0 {
		return nil
	}
	return unix.Msync(a.data[:a.used], unix.MS_SYNC)
}

// Close unmaps the region and closes the backing file. The arena must not be
// used afterwards.
func (a *File) Close() error {
	if a.data != nil {
		if err := unix.Munmap(a.data); err != nil {
			return err
		}
		a.data = nil
	}
	return a.f.Close()
}
