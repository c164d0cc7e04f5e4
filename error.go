package lexical

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the checked conversions, matched with errors.Is.
var (
	// ErrEmpty indicates a zero-length input buffer.
	ErrEmpty = errors.New("empty input")

	// ErrInvalidDigit indicates a byte that cannot extend the numeral was
	// found before the buffer ended, or that the only content was a sign.
	ErrInvalidDigit = errors.New("invalid digit found")

	// ErrOverflow indicates the accumulated magnitude exceeded the range of
	// the target type.
	ErrOverflow = errors.New("numeric overflow")
)

// ParseError is the structured error returned by the checked conversions.
type ParseError struct {
	Err   error // one of ErrEmpty, ErrInvalidDigit, ErrOverflow
	Index int   // byte offset the error refers to
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at index %d", e.Err, e.Index)
}

// Unwrap returns the sentinel error, enabling errors.Is checks.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// classify turns the core's (consumed, truncated) accounting into an error,
// or nil for a fully consumed, in-range numeral. Truncation is checked before
// trailing length: when an overflowing digit run is followed by junk, the
// overflow is the condition that matters.
func classify(consumed int, truncated bool, inputLen int) *ParseError {
	switch {
	case inputLen == 0:
		return &ParseError{Err: ErrEmpty, Index: 0}
	case truncated:
		return &ParseError{Err: ErrOverflow, Index: 0}
	case consumed < inputLen:
		return &ParseError{Err: ErrInvalidDigit, Index: consumed}
	}
	return nil
}
