// Package simd provides SWAR (SIMD Within A Register) byte-scanning
// primitives for the conversion hot path. The implementations process 8
// bytes at a time using uint64 bitwise operations and are portable pure Go.
package simd

import (
	"encoding/binary"
	"math/bits"
)

// zeroRun8 is eight ASCII '0' bytes viewed as a little-endian uint64.
const zeroRun8 = 0x3030303030303030

// SkipZeros returns the length of the leading run of ASCII '0' bytes in b.
//
// XOR against a register of '0' bytes turns every '0' into 0x00, so the
// lowest nonzero byte of the result marks the end of the run. For inputs
// shorter than 8 bytes a plain loop avoids the setup overhead.
func SkipZeros(b []byte) int {
	n := len(b)
	if n < 8 {
		for i := 0; i < n; i++ {
			if b[i] != '0' {
				return i
			}
		}
		return n
	}

	idx := 0
	for idx+8 <= n {
		chunk := binary.LittleEndian.Uint64(b[idx:]) ^ zeroRun8
		if chunk != 0 {
			return idx + bits.TrailingZeros64(chunk)/8
		}
		idx += 8
	}

	// Remaining 0-7 bytes.
	for idx < n {
		if b[idx] != '0' {
			return idx
		}
		idx++
	}
	return n
}
