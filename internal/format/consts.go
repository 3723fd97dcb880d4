package format

const (
	// WordSize is the size of a single boundary word (header or footer).
	WordSize = 8

	// DWordSize is a double word - the combined header+footer overhead of a
	// block, and the payload space consumed by the free-list overlay.
	DWordSize = 2 * WordSize

	// Alignment is the boundary every payload offset and block size respects.
	Alignment = 16

	// AlignmentMask selects the sub-alignment bits of a size or offset.
	AlignmentMask = Alignment - 1

	// MinBlockSize is the smallest legal block: header + footer plus enough
	// payload to hold the two free-list references when the block is free.
	MinBlockSize = 2 * DWordSize
)

const (
	// AllocBit is the low bit of a boundary word, set when the block is
	// allocated. Sizes are 16-byte aligned, leaving the low four bits free.
	AllocBit uint64 = 0x1

	// SizeMask strips the flag bits from a boundary word.
	SizeMask = ^uint64(AlignmentMask)
)
