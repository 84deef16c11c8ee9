package common

// WipeByteArray zeroes the slice in place. Used to clear passwords
// from memory once they have been consumed.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
