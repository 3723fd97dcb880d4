package alloc

// Stats holds internal allocator counters, for tests and instrumentation.
type Stats struct {
	AllocCalls  int   // Total Allocate calls
	FreeCalls   int   // Total Release calls
	ResizeCalls int   // Total Resize calls
	GrowCalls   int   // Arena extensions
	GrowBytes   int64 // Total bytes added by extensions

	FitFastPath int // Allocations satisfied from the free lists
	FitSlowPath int // Allocations that required growing the arena

	SplitCount       int // Block splits during placement
	CoalesceForward  int // Merges with the next block only
	CoalesceBackward int // Merges with the previous block only
	CoalesceBoth     int // Merges with both neighbors

	BytesAllocated int64 // Total block bytes handed out (including overhead)
	BytesFreed     int64 // Total block bytes released
}
