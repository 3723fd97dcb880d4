//go:build !unix

package arena

import "os"

// File is a file-backed arena for platforms without mmap support. The region
// lives in memory and Flush writes it back to the file wholesale.
type File struct {
	path string
	buf  []byte
}

// NewFile opens (or creates) the file at path and reserves capacity bytes of
// in-memory backing. A non-positive capacity selects DefaultCap.
func NewFile(path string, capacity int) (*File, error) {
	if capacity <= 0 {
		capacity = DefaultCap
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	f.Close()
	return &File{path: path, buf: make([]byte, 0, capacity)}, nil
}

// Bytes returns the extended region.
func (a *File) Bytes() []byte {
	return a.buf
}

// Extend grows the region by n bytes and returns the offset of the new space.
func (a *File) Extend(n int) (int, error) {
	if n < 0 || len(a.buf)+n > cap(a.buf) {
		return 0, ErrExhausted
	}
	off := len(a.buf)
	a.buf = a.buf[:off+n]
	return off, nil
}

// Reset shrinks the region to zero length.
func (a *File) Reset() {
	a.buf = a.buf[:0]
}

// Low returns the lowest offset of the extended region.
func (a *File) Low() int {
	return 0
}

// High returns the highest valid offset, or -1 while the region is empty.
func (a *File) High() int {
	return len(a.buf) - 1
}

// Flush writes the extended region back to the file.
func (a *File) Flush() error {
	return os.WriteFile(a.path, a.buf, 0o644)
}

// Close flushes and releases the in-memory backing.
func (a *File) Close() error {
	err := a.Flush()
	a.buf = nil
	return err
}
