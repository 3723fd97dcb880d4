package format

// Align returns n rounded up to the next 16-byte boundary.
//
// Example:
//
//	Align(1)  = 16
//	Align(16) = 16
//	Align(17) = 32
func Align(n int) int {
	return (n + AlignmentMask) &^ AlignmentMask
}

// IsAligned reports whether n sits on a 16-byte boundary.
func IsAligned(n int) bool {
	return n&AlignmentMask == 0
}
