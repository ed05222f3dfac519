package mandel

// EscapeTime iterates z = z*z + c from z = 0 and reports how quickly c leaves
// the disc of radius 2.
//
// The magnitude test runs before each of the maxIters iterations. If it fails
// at step i the result is (maxIters-i) & 0xff: early escapes give large values,
// late escapes small ones. Points that have not escaped after maxIters steps,
// and any maxIters <= 0, give 0.
//
// The result is meant to be used directly as a gray level or palette index.
// For maxIters above 255 it wraps, so distinct escape times that differ by a
// multiple of 256 map to the same byte.
func EscapeTime(c complex128, maxIters int) uint8 {
	z := complex(0, 0)
	for i := range maxIters {
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return uint8((maxIters - i) & 0xff)
		}
		z = z*z + c
	}
	return 0
}
