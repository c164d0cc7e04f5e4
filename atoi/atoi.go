// Package atoi implements the generic byte-buffer-to-integer conversion core.
//
// The converter is a stack of pure functions: a digit table maps bytes to
// digit values, an accumulator loop folds digits into a fixed-width integer,
// and thin sign/signedness adapters interpret an optional leading sign.
// Nothing here allocates and nothing holds state across calls; every function
// is reentrant and safe for concurrent use from independent goroutines.
//
// Two accumulation policies are provided:
//
//   - Wrapping lets overflow wrap in two's complement and records where the
//     first wrap happened. This is the fastest policy and backs the lossy API.
//   - Checked freezes the accumulator at the last value before overflow while
//     still scanning to the end of the digit run, so callers can report both
//     the pre-overflow value and an exact consumed length.
//
// Both policies always scan the entire valid digit run. Stopping at the first
// overflow would lose the position where the digits end, which the fallible
// API needs for its error indexes.
package atoi

// UnsignedInteger is the constraint for unsigned fixed-width integers.
type UnsignedInteger interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// SignedInteger is the constraint for signed fixed-width integers.
type SignedInteger interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Integer is the constraint for any fixed-width integer.
type Integer interface {
	UnsignedInteger | SignedInteger
}

// Sign is the sign detected in front of a numeral.
type Sign int8

const (
	// Positive is the default when no sign byte is present.
	Positive Sign = iota
	// Negative is reported for a single leading '-'.
	Negative
)

// AccumulateFunc is the accumulation policy invoked on the sign-stripped,
// zero-trimmed digit run. It folds digits into *value and returns the number
// of bytes consumed together with the index of the first byte whose
// accumulation overflowed, or -1 if no overflow occurred.
//
// Wrapping and Checked are the two provided policies.
type AccumulateFunc[T Integer] func(value *T, radix T, b []byte) (consumed, truncatedAt int)

// overflowingMul multiplies a by b with wraparound and reports whether the
// exact product was out of range. For signed types both operands must be
// non-negative; the accumulator only calls it that way before the first
// overflow is recorded, and the report is ignored afterwards.
func overflowingMul[T Integer](a, b T) (T, bool) {
	r := a * b
	return r, a != 0 && r/a != b
}

// overflowingAdd adds b to a with wraparound and reports whether the exact
// sum was out of range. Same non-negative requirement as overflowingMul.
func overflowingAdd[T Integer](a, b T) (T, bool) {
	r := a + b
	return r, r < a
}

// Wrapping folds every digit of b into *value using wrap-on-overflow
// arithmetic. The accumulator keeps wrapping after an overflow; truncatedAt
// records the position of the first wrap and is never moved afterwards.
// Scanning stops only at the first byte that is not a digit for radix.
func Wrapping[T Integer](value *T, radix T, b []byte) (consumed, truncatedAt int) {
	r := byte(radix)
	truncatedAt = -1
	v := *value
	for i := 0; i < len(b); i++ {
		d := digitTable[b[i]]
		if d >= r {
			*value = v
			return i, truncatedAt
		}
		m, o1 := overflowingMul(v, radix)
		s, o2 := overflowingAdd(m, T(d))
		v = s
		if truncatedAt < 0 && (o1 || o2) {
			truncatedAt = i
		}
	}
	*value = v
	return len(b), truncatedAt
}

// Checked folds digits with overflow detection. Once an overflow is seen the
// accumulator freezes at the last representable value and the loop keeps
// scanning only to locate the end of the digit run, so consumed stays exact.
func Checked[T Integer](value *T, radix T, b []byte) (consumed, truncatedAt int) {
	r := byte(radix)
	truncatedAt = -1
	v := *value
	for i := 0; i < len(b); i++ {
		d := digitTable[b[i]]
		if d >= r {
			*value = v
			return i, truncatedAt
		}
		if truncatedAt >= 0 {
			continue
		}
		m, o1 := overflowingMul(v, radix)
		s, o2 := overflowingAdd(m, T(d))
		if o1 || o2 {
			truncatedAt = i
		} else {
			v = s
		}
	}
	*value = v
	return len(b), truncatedAt
}

// magnitude parses the sign-stripped numeral. Leading zeros are trimmed
// before accumulation, which is only valid here because the trimmed prefix
// contributes exactly zero; the trimmed count is folded back into consumed,
// and truncatedAt is reported relative to the untrimmed buffer.
func magnitude[T Integer](radix uint8, b []byte, accumulate AccumulateFunc[T]) (T, int, int) {
	b, zeros := TrimZeros(b)
	var v T
	consumed, truncatedAt := accumulate(&v, T(radix), b)
	if truncatedAt >= 0 {
		truncatedAt += zeros
	}
	return v, consumed + zeros, truncatedAt
}

// FilterSign recognizes at most one leading '+' or '-' and parses the rest of
// the buffer as a magnitude. A buffer holding only a sign byte parses to the
// zero value with zero consumed bytes and no truncation; whether a lone sign
// is an error is decided by the callers of the signedness adapters.
func FilterSign[T Integer](radix uint8, b []byte, accumulate AccumulateFunc[T]) (value T, sign Sign, consumed, truncatedAt int) {
	signLen := 0
	switch {
	case len(b) == 0:
	case b[0] == '+':
		signLen = 1
	case b[0] == '-':
		sign = Negative
		signLen = 1
	}
	if len(b) <= signLen {
		return 0, sign, 0, -1
	}
	v, n, truncatedAt := magnitude(radix, b[signLen:], accumulate)
	if truncatedAt >= 0 {
		truncatedAt += signLen
	}
	return v, sign, signLen + n, truncatedAt
}

// Unsigned parses a possibly signed numeral into an unsigned type. A leading
// '-' wraps the magnitude onto the unsigned range, exactly as a negative
// literal would in two's complement, and forces consumed to 0 so that error
// classification sees a negative-for-unsigned numeral as invalid at index 0
// even when every digit was well formed. The truncation report is unaffected.
func Unsigned[T UnsignedInteger](radix uint8, b []byte, accumulate AccumulateFunc[T]) (value T, consumed int, truncated bool) {
	v, sign, n, truncatedAt := FilterSign(radix, b, accumulate)
	if sign == Negative {
		return -v, 0, truncatedAt >= 0
	}
	return v, n, truncatedAt >= 0
}

// Signed parses a possibly signed numeral into a signed type. Negation wraps,
// which is what makes the most negative value come out right under the
// Wrapping policy: its magnitude wraps into the sign bit and the negation
// wraps it back.
func Signed[T SignedInteger](radix uint8, b []byte, accumulate AccumulateFunc[T]) (value T, consumed int, truncated bool) {
	v, sign, n, truncatedAt := FilterSign(radix, b, accumulate)
	if sign == Negative {
		return -v, n, truncatedAt >= 0
	}
	return v, n, truncatedAt >= 0
}
