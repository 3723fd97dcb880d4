package alloc

import (
	"os"

	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/internal/format"
)

// Runtime debug flag for growth tracing - controlled by ARENA_LOG_ALLOC env var.
var logAlloc = os.Getenv("ARENA_LOG_ALLOC") != ""

// chunkWords is the minimum arena extension, in words (256 bytes).
const chunkWords = 1 << 5

// Ref is a block reference: the offset of the block's payload inside the
// arena. NilRef is the null reference; offset 0 is never a valid payload
// because the arena starts with an alignment pad and the prologue.
type Ref = int

// NilRef is the null block reference.
const NilRef Ref = 0

// Allocator manages blocks inside a single growable arena. All state lives
// either in the arena itself (block words, free-list overlay) or in this
// struct (bucket heads); Init resets both.
type Allocator struct {
	ar      arena.Arena
	buckets [numClasses]Ref
	base    Ref // prologue payload offset, set by Init
	stats   Stats
}

// New creates an allocator over ar. Init must be called before the first
// allocation.
func New(ar arena.Arena) *Allocator {
	return &Allocator{ar: ar}
}

// Init (re)initializes the allocator: resets the arena and all bucket heads,
// writes the alignment pad, the permanently allocated prologue and the
// zero-size epilogue sentinel, then extends the arena with one initial free
// chunk. Callable repeatedly to reset state between independent runs.
func (a *Allocator) Init() error {
	a.ar.Reset()
	a.buckets = [numClasses]Ref{}
	a.stats = Stats{}
	a.base = NilRef

	off, err := a.ar.Extend(2 * format.DWordSize)
	if err != nil {
		return ErrArenaExhausted
	}

	// Layout: [pad word][prologue header][prologue footer][epilogue header].
	data := a.ar.Bytes()
	base := off + 2*format.WordSize
	format.PutHeader(data, base, format.Pack(format.DWordSize, true))
	format.PutFooter(data, base, format.Pack(format.DWordSize, true))
	format.PutHeader(data, base+format.DWordSize, format.Pack(0, true))
	a.base = base

	if _, err := a.extend(chunkWords); err != nil {
		return err
	}
	return nil
}

// Allocate returns a block with at least size usable bytes, growing the arena
// if no free block fits. The returned slice aliases the arena; it is valid
// until the block is released. size <= 0 is a no-op returning NilRef.
func (a *Allocator) Allocate(size int) (Ref, []byte, error) {
	a.stats.AllocCalls++
	if size <= 0 {
		return NilRef, nil, nil
	}

	// Adjusted size: payload + header/footer overhead, aligned, never below
	// the minimum block.
	asize := format.Align(size + format.DWordSize)
	if asize < format.MinBlockSize {
		asize = format.MinBlockSize
	}

	bp := a.findFit(asize)
	if bp == NilRef {
		a.stats.FitSlowPath++
		grow := asize
		if grow < chunkWords*format.WordSize {
			grow = chunkWords * format.WordSize
		}
		nb, err := a.extend(grow / format.WordSize)
		if err != nil {
			return NilRef, nil, err
		}
		bp = nb
	} else {
		a.stats.FitFastPath++
	}

	a.place(bp, asize)
	a.stats.BytesAllocated += int64(asize)

	data := a.ar.Bytes()
	return bp, data[bp : bp+size : bp+asize-format.DWordSize], nil
}

// Release frees the block at ref and coalesces it with adjacent free blocks.
// Passing a ref that was not returned by Allocate, or releasing twice, is
// undefined behavior; only refs outside the arena are rejected.
func (a *Allocator) Release(ref Ref) error {
	a.stats.FreeCalls++
	data := a.ar.Bytes()
	if ref < format.DWordSize || ref >= len(data) {
		return ErrBadRef
	}

	size := format.SizeOf(format.Header(data, ref))
	format.PutHeader(data, ref, format.Pack(size, false))
	format.PutFooter(data, ref, format.Pack(size, false))
	a.stats.BytesFreed += int64(size)

	a.coalesce(ref)
	return nil
}

// Resize moves the block at ref to a block of at least size bytes, copying
// min(old payload capacity, size) bytes. ref == NilRef behaves as Allocate;
// size <= 0 behaves as Release and returns NilRef.
func (a *Allocator) Resize(ref Ref, size int) (Ref, []byte, error) {
	a.stats.ResizeCalls++
	if ref == NilRef {
		return a.Allocate(size)
	}
	if size <= 0 {
		return NilRef, nil, a.Release(ref)
	}

	data := a.ar.Bytes()
	if ref < format.DWordSize || ref >= len(data) {
		return NilRef, nil, ErrBadRef
	}
	oldCap := format.SizeOf(format.Header(data, ref)) - format.DWordSize

	newRef, payload, err := a.Allocate(size)
	if err != nil {
		return NilRef, nil, err
	}

	// The arena backing never moves, so the old payload is still addressable
	// through the refreshed slice even if Allocate grew the arena.
	data = a.ar.Bytes()
	n := min(oldCap, size)
	copy(data[newRef:newRef+n], data[ref:ref+n])

	if err := a.Release(ref); err != nil {
		return NilRef, nil, err
	}
	return newRef, payload, nil
}

// AllocateZero allocates n*size bytes and zero-fills exactly that many bytes.
// On failure nothing is allocated.
func (a *Allocator) AllocateZero(n, size int) (Ref, []byte, error) {
	ref, payload, err := a.Allocate(n * size)
	if err != nil || ref == NilRef {
		return ref, payload, err
	}
	clear(payload)
	return ref, payload, nil
}

// Payload returns the usable bytes of a live block. The slice length is the
// block's full payload capacity, which may exceed the originally requested
// size due to alignment and the split threshold.
func (a *Allocator) Payload(ref Ref) []byte {
	data := a.ar.Bytes()
	size := format.SizeOf(format.Header(data, ref))
	return data[ref : ref+size-format.DWordSize]
}

// Stats returns a copy of the allocator's operation counters.
func (a *Allocator) Stats() Stats {
	return a.stats
}
