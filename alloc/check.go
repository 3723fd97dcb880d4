package alloc

import (
	"io"
	"log/slog"
	"os"

	"github.com/joshuapare/arenakit/internal/format"
)

// Log receives consistency-check findings. It discards output unless the
// ARENA_LOG_HEAP environment variable is set, in which case findings go to
// stderr; callers may also replace it outright.
var Log = newCheckLogger()

func newCheckLogger() *slog.Logger {
	if os.Getenv("ARENA_LOG_HEAP") != "" {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Check walks the block chain from the prologue to the epilogue sentinel and
// audits every free list, validating:
//
//   - payload alignment and size alignment of every block
//   - header/footer consistency
//   - no two structurally adjacent free blocks (coalescing is exhaustive)
//   - every free block appears in exactly the bucket its size classifies to,
//     and allocated blocks appear in none
//
// context identifies the call site in log output. Returns true when the heap
// is consistent.
func (a *Allocator) Check(context string) bool {
	data := a.ar.Bytes()
	if a.base == NilRef || len(data) < 2*format.DWordSize {
		Log.Error("heap not initialized", "context", context)
		return false
	}

	ok := true
	fail := func(msg string, args ...any) {
		ok = false
		Log.Error(msg, append([]any{"context", context}, args...)...)
	}

	if format.SizeOf(format.Header(data, a.base)) != format.DWordSize ||
		!format.IsAllocated(format.Header(data, a.base)) {
		fail("bad prologue", "header", format.Header(data, a.base))
	}

	walkedFree := 0
	prevWasFree := false
	for bp := format.NextBlock(data, a.base); ; bp = format.NextBlock(data, bp) {
		if bp < format.DWordSize || bp > len(data) {
			fail("walk left the arena", "bp", bp)
			return false
		}
		hdr := format.Header(data, bp)
		size := format.SizeOf(hdr)

		if size == 0 {
			// Terminal sentinel: allocated, no payload, no footer.
			if !format.IsAllocated(hdr) {
				fail("epilogue not allocated", "bp", bp)
			}
			if bp != len(data) {
				fail("epilogue not at arena end", "bp", bp, "end", len(data))
			}
			break
		}

		if !format.IsAligned(bp) {
			fail("misaligned payload", "bp", bp)
		}
		if !format.IsAligned(size) || size < format.MinBlockSize {
			fail("bad block size", "bp", bp, "size", size)
			return false
		}
		if bp+size-format.DWordSize > len(data) {
			fail("block overruns arena", "bp", bp, "size", size)
			return false
		}
		if hdr != format.Footer(data, bp) {
			fail("header/footer mismatch", "bp", bp,
				"header", hdr, "footer", format.Footer(data, bp))
		}

		if format.IsAllocated(hdr) {
			prevWasFree = false
		} else {
			if prevWasFree {
				fail("adjacent free blocks", "bp", bp)
			}
			prevWasFree = true
			walkedFree++
		}
	}

	// Free-list audit: membership, bucket placement, no cycles.
	maxBlocks := len(data) / format.MinBlockSize
	listedFree := 0
	for idx := range a.buckets {
		seen := 0
		for bp := a.buckets[idx]; bp != NilRef; bp = format.NextFree(data, bp) {
			if bp < format.DWordSize || bp >= len(data) {
				fail("free list ref outside arena", "bucket", idx, "bp", bp)
				break
			}
			hdr := format.Header(data, bp)
			if format.IsAllocated(hdr) {
				fail("allocated block on free list", "bucket", idx, "bp", bp)
				break
			}
			if classify(format.SizeOf(hdr)) != idx {
				fail("block in wrong bucket", "bucket", idx, "bp", bp,
					"size", format.SizeOf(hdr))
			}
			seen++
			if seen > maxBlocks {
				fail("free list cycle", "bucket", idx)
				break
			}
		}
		listedFree += seen
	}
	if listedFree != walkedFree {
		fail("free block count mismatch",
			"walked", walkedFree, "listed", listedFree)
	}

	if ok {
		Log.Debug("heap consistent", "context", context,
			"bytes", len(data), "free_blocks", walkedFree)
	}
	return ok
}
