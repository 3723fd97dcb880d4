// Package format defines the in-arena block layout and its accessors.
//
// Every block - allocated or free - is addressed by the offset of its payload
// start ("bp") and carries a boundary word immediately before the payload (the
// header) and a mirrored word at the end of the block (the footer):
//
//	Offset        Size  Description
//	bp-8          8     Header: size | alloc bit. Size covers header, payload
//	                    and footer and is always a multiple of 16.
//	bp            ...   Payload. While the block is free, the first two words
//	                    are reinterpreted as the free-list overlay below.
//	bp+size-16    8     Footer: identical encoding to the header.
//
// Free-list overlay (free blocks only):
//
//	bp            8     Offset of the previous free block in the bucket, 0=none
//	bp+8          8     Offset of the next free block in the bucket, 0=none
//
// Offset 0 is never a valid payload (the arena starts with an alignment pad
// and the prologue), so 0 doubles as the nil reference in the overlay.
//
// No validation happens here; callers must hand in offsets that refer to real
// block boundaries.
package format

import "github.com/joshuapare/arenakit/internal/buf"

// Pack encodes a block size and allocated flag into a boundary word.
func Pack(size int, allocated bool) uint64 {
	w := uint64(size)
	if allocated {
		w |= AllocBit
	}
	return w
}

// SizeOf extracts the block size from a boundary word.
func SizeOf(w uint64) int {
	return int(w & SizeMask)
}

// IsAllocated reports whether a boundary word marks its block allocated.
func IsAllocated(w uint64) bool {
	return w&AllocBit != 0
}

// Header reads the boundary word preceding the payload at bp.
func Header(data []byte, bp int) uint64 {
	return buf.U64LE(data[bp-WordSize:])
}

// PutHeader writes the boundary word preceding the payload at bp.
func PutHeader(data []byte, bp int, w uint64) {
	buf.PutU64LE(data[bp-WordSize:], w)
}

// Footer reads the block's trailing boundary word. The footer position is
// derived from the size currently encoded in the header.
func Footer(data []byte, bp int) uint64 {
	return buf.U64LE(data[bp+SizeOf(Header(data, bp))-DWordSize:])
}

// PutFooter writes the block's trailing boundary word at the position derived
// from the size currently encoded in the header. Callers updating both words
// must therefore write the header first.
func PutFooter(data []byte, bp int, w uint64) {
	buf.PutU64LE(data[bp+SizeOf(Header(data, bp))-DWordSize:], w)
}

// PrevFooter reads the footer of the structurally previous block, which sits
// in the double word just before bp's header.
func PrevFooter(data []byte, bp int) uint64 {
	return buf.U64LE(data[bp-DWordSize:])
}

// NextBlock returns the payload offset of the structurally next block.
func NextBlock(data []byte, bp int) int {
	return bp + SizeOf(Header(data, bp))
}

// PrevBlock returns the payload offset of the structurally previous block,
// computed from that block's footer.
func PrevBlock(data []byte, bp int) int {
	return bp - SizeOf(PrevFooter(data, bp))
}

// PrevFree reads the free-list back reference of a free block. 0 means none.
func PrevFree(data []byte, bp int) int {
	return int(buf.U64LE(data[bp:]))
}

// NextFree reads the free-list forward reference of a free block. 0 means none.
func NextFree(data []byte, bp int) int {
	return int(buf.U64LE(data[bp+WordSize:]))
}

// SetPrevFree writes the free-list back reference of a free block.
func SetPrevFree(data []byte, bp, target int) {
	buf.PutU64LE(data[bp:], uint64(target))
}

// SetNextFree writes the free-list forward reference of a free block.
func SetNextFree(data []byte, bp, target int) {
	buf.PutU64LE(data[bp+WordSize:], uint64(target))
}
