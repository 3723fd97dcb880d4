package arena

// DefaultCap is the backing capacity reserved by NewMem when none is given.
const DefaultCap = 64 << 20

// Mem is a heap-backed arena. The full capacity is reserved up front so the
// backing array never moves; Extend only lengthens the visible slice.
type Mem struct {
	buf []byte
}

// NewMem returns an arena that can grow up to limit bytes. A non-positive
// limit selects DefaultCap.
func NewMem(limit int) *Mem {
	if limit <= 0 {
		limit = DefaultCap
	}
	return &Mem{buf: make([]byte, 0, limit)}
}

// Bytes returns the extended region.
func (m *Mem) Bytes() []byte {
	return m.buf
}

// Extend grows the region by n bytes and returns the offset of the new space.
func (m *Mem) Extend(n int) (int, error) {
	if n < 0 || len(m.buf)+n > cap(m.buf) {
		return 0, ErrExhausted
	}
	off := len(m.buf)
	m.buf = m.buf[:off+n]
	return off, nil
}

// Reset shrinks the region to zero length. The backing array is kept.
func (m *Mem) Reset() {
	m.buf = m.buf[:0]
}

// Low returns the lowest offset of the extended region.
func (m *Mem) Low() int {
	return 0
}

// High returns the highest valid offset, or -1 while the region is empty.
func (m *Mem) High() int {
	return len(m.buf) - 1
}
