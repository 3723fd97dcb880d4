package alloc

// numClasses is the number of segregated size-class buckets.
const numClasses = 11

// classify maps a block size to its bucket index. Buckets cover power-of-two
// doublings starting at 32: [0,32), [32,64), ..., [8192,16384); the last
// bucket is a catch-all for sizes >= 16384. Total and deterministic for any
// non-negative size.
func classify(size int) int {
	idx := 0
	for bound := 32; idx < numClasses-1; bound <<= 1 {
		if size < bound {
			return idx
		}
		idx++
	}
	return numClasses - 1
}
