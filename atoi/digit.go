package atoi

// invalidDigit is the table sentinel for bytes that are not digits in any
// radix. It compares as invalid against every supported radix (2-36).
const invalidDigit = 0xFF

// digitTable maps an ASCII byte to its digit value: '0'-'9' map to 0-9 and
// letters of either case map to 10-35, covering radixes up to 36. Every other
// byte maps to invalidDigit.
var digitTable = func() (t [256]byte) {
	for i := range t {
		t[i] = invalidDigit
	}
	for c := byte('0'); c <= '9'; c++ {
		t[c] = c - '0'
	}
	for c := byte('a'); c <= 'z'; c++ {
		t[c] = c - 'a' + 10
	}
	for c := byte('A'); c <= 'Z'; c++ {
		t[c] = c - 'A' + 10
	}
	return t
}()

// Digit returns the numeric value of an ASCII digit byte, where letters of
// either case count as digits 10-35. Bytes that are not a digit in any
// supported radix return a value >= 36, so a plain comparison against the
// radix decides validity.
func Digit(c byte) byte {
	return digitTable[c]
}
