package common

// WipeByteArray overwrites b with zeros. Used to drop raw password bytes
// read from the terminal once they have been copied where needed.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
