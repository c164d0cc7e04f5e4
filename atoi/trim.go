package atoi

import "github.com/coregx/lexical/simd"

// TrimZeros strips the leading run of '0' bytes from b and returns the
// remainder together with the number of bytes stripped. It must only be
// applied after sign stripping: a '-' in front of a run of zeros is still
// meaningful and would be misread if the zeros went first.
func TrimZeros(b []byte) (trimmed []byte, count int) {
	n := simd.SkipZeros(b)
	return b[n:], n
}
