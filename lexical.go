// Package lexical provides fast lexical conversion of byte buffers to
// integers.
//
// lexical targets hot numeric-parsing paths: conversions are allocation-free,
// inspect every input byte exactly once, and report byte-exact failure
// positions. One generic core (package atoi) serves every signed and unsigned
// width; there is no per-width loop duplication.
//
// Two conversion flavors are exposed:
//
//   - Lossy: ParseUint, ParseInt and the per-width wrappers always return a
//     value. Overflow wraps in two's complement and anything after the last
//     valid digit is ignored, matching what a truncating hardware conversion
//     would produce.
//   - Checked: TryParseUint, TryParseInt and friends return a *ParseError
//     carrying the failure kind and byte index. The value returned alongside
//     an error is the partial value accumulated before the failure.
//
// Basic usage:
//
//	v := lexical.ParseUint8([]byte("42"))          // 42
//	v = lexical.ParseUint8([]byte("-1"))           // 255, wrapped
//	_, err := lexical.TryParseUint8([]byte("256")) // numeric overflow
//
// Error precedence: when a digit run overflows and is also followed by a
// non-digit byte, the checked API reports the overflow, not the trailing
// invalid digit.
//
// The radix variants accept any radix in [2, 36], with digits beyond 9
// written as letters of either case. Behavior for a radix outside that range
// is unspecified; no byte ever validates as a digit for a radix below 2.
package lexical

import "github.com/coregx/lexical/atoi"

// ParseUint converts b to an unsigned integer in base 10, wrapping on
// overflow and ignoring anything after the last valid digit. A leading '-'
// wraps the magnitude onto the unsigned range.
func ParseUint[T atoi.UnsignedInteger](b []byte) T {
	return ParseUintRadix[T](10, b)
}

// ParseUintRadix is ParseUint with an explicit radix in [2, 36].
func ParseUintRadix[T atoi.UnsignedInteger](radix uint8, b []byte) T {
	v, _, _ := atoi.Unsigned[T](radix, b, atoi.Wrapping[T])
	return v
}

// ParseInt converts b to a signed integer in base 10, wrapping on overflow
// and ignoring anything after the last valid digit.
func ParseInt[T atoi.SignedInteger](b []byte) T {
	return ParseIntRadix[T](10, b)
}

// ParseIntRadix is ParseInt with an explicit radix in [2, 36].
func ParseIntRadix[T atoi.SignedInteger](radix uint8, b []byte) T {
	v, _, _ := atoi.Signed[T](radix, b, atoi.Wrapping[T])
	return v
}

// TryParseUint converts b to an unsigned integer in base 10. Empty input,
// invalid digits and overflow are reported as a *ParseError; the value
// returned alongside an error is the partial value accumulated before the
// failure. A negative numeral is reported as an invalid digit at index 0,
// however well formed its digits are.
func TryParseUint[T atoi.UnsignedInteger](b []byte) (T, error) {
	return TryParseUintRadix[T](10, b)
}

// TryParseUintRadix is TryParseUint with an explicit radix in [2, 36].
func TryParseUintRadix[T atoi.UnsignedInteger](radix uint8, b []byte) (T, error) {
	v, consumed, truncated := atoi.Unsigned[T](radix, b, atoi.Checked[T])
	if err := classify(consumed, truncated, len(b)); err != nil {
		return v, err
	}
	return v, nil
}

// TryParseInt converts b to a signed integer in base 10, reporting failures
// the same way TryParseUint does.
func TryParseInt[T atoi.SignedInteger](b []byte) (T, error) {
	return TryParseIntRadix[T](10, b)
}

// TryParseIntRadix is TryParseInt with an explicit radix in [2, 36].
func TryParseIntRadix[T atoi.SignedInteger](radix uint8, b []byte) (T, error) {
	v, consumed, truncated := atoi.Signed[T](radix, b, atoi.Checked[T])
	if err := classify(consumed, truncated, len(b)); err != nil {
		return v, err
	}
	return v, nil
}
