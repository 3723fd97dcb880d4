// Package alloc implements a general-purpose dynamic allocator over a single
// contiguous, growable arena.
//
// # Overview
//
// The allocator uses segregated free lists with boundary-tag coalescing.
// Every block carries a size+allocated header word and a mirrored footer;
// free blocks additionally thread themselves into one of 11 size-class
// buckets through a doubly linked overlay stored in their payload. No memory
// outside the arena is used to track blocks.
//
// # Public surface
//
//   - Allocate(size): find or create a block, return its ref and payload
//   - Release(ref): free a block and coalesce with free neighbors
//   - Resize(ref, size): allocate-copy-release
//   - AllocateZero(n, size): Allocate(n*size) with a zero fill
//   - Init(): (re)establish the prologue/epilogue sentinels and first chunk
//   - Check(context): walk the whole arena validating invariants
//
// # Usage Example
//
//	ar := arena.NewMem(64 << 20)
//	a := alloc.New(ar)
//	if err := a.Init(); err != nil {
//	    return err
//	}
//
//	ref, payload, err := a.Allocate(256)
//	if err != nil {
//	    return err
//	}
//	copy(payload, record)
//
//	// Later, free the block
//	err = a.Release(ref)
//
// # Size Classes
//
// Free blocks are bucketed by power-of-two doublings of their total size:
//
//	Bucket  0:     0 -    31 bytes
//	Bucket  1:    32 -    63 bytes
//	Bucket  2:    64 -   127 bytes
//	Bucket  3:   128 -   255 bytes
//	Bucket  4:   256 -   511 bytes
//	Bucket  5:   512 -  1023 bytes
//	Bucket  6:  1024 -  2047 bytes
//	Bucket  7:  2048 -  4095 bytes
//	Bucket  8:  4096 -  8191 bytes
//	Bucket  9:  8192 - 16383 bytes
//	Bucket 10: 16384+       bytes (catch-all)
//
// Allocation is first-fit within the smallest sufficient class, scanning
// larger classes in order. This trades some fragmentation for O(1)
// average-case bucket selection.
//
// # Alignment
//
// All payloads are 16-byte aligned and block sizes are multiples of 16. The
// minimum block is 32 bytes (header + footer + the free-list overlay).
//
// # Growth
//
// When no free block fits, the arena is extended by at least 256 bytes
// (32 words) and the new space is coalesced with a trailing free block, if
// any. Growth failure surfaces as ErrArenaExhausted with no partial writes.
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally.
//
// # Related Packages
//
//   - github.com/joshuapare/arenakit/arena: backing stores (heap, mmap file)
//   - github.com/joshuapare/arenakit/internal/format: block layout accessors
package alloc
