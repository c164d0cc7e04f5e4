package lexical

// Per-width wrappers over the generic API, for call sites where the target
// width cannot be inferred from context. Each one is a plain instantiation;
// the loop body lives once, in package atoi.

// ParseUint8 converts b to a uint8 in base 10, wrapping on overflow.
func ParseUint8(b []byte) uint8 { return ParseUint[uint8](b) }

// ParseUint16 converts b to a uint16 in base 10, wrapping on overflow.
func ParseUint16(b []byte) uint16 { return ParseUint[uint16](b) }

// ParseUint32 converts b to a uint32 in base 10, wrapping on overflow.
func ParseUint32(b []byte) uint32 { return ParseUint[uint32](b) }

// ParseUint64 converts b to a uint64 in base 10, wrapping on overflow.
func ParseUint64(b []byte) uint64 { return ParseUint[uint64](b) }

// ParseInt8 converts b to an int8 in base 10, wrapping on overflow.
func ParseInt8(b []byte) int8 { return ParseInt[int8](b) }

// ParseInt16 converts b to an int16 in base 10, wrapping on overflow.
func ParseInt16(b []byte) int16 { return ParseInt[int16](b) }

// ParseInt32 converts b to an int32 in base 10, wrapping on overflow.
func ParseInt32(b []byte) int32 { return ParseInt[int32](b) }

// ParseInt64 converts b to an int64 in base 10, wrapping on overflow.
func ParseInt64(b []byte) int64 { return ParseInt[int64](b) }

// TryParseUint8 converts b to a uint8 in base 10 with error reporting.
func TryParseUint8(b []byte) (uint8, error) { return TryParseUint[uint8](b) }

// TryParseUint16 converts b to a uint16 in base 10 with error reporting.
func TryParseUint16(b []byte) (uint16, error) { return TryParseUint[uint16](b) }

// TryParseUint32 converts b to a uint32 in base 10 with error reporting.
func TryParseUint32(b []byte) (uint32, error) { return TryParseUint[uint32](b) }

// TryParseUint64 converts b to a uint64 in base 10 with error reporting.
func TryParseUint64(b []byte) (uint64, error) { return TryParseUint[uint64](b) }

// TryParseInt8 converts b to an int8 in base 10 with error reporting.
func TryParseInt8(b []byte) (int8, error) { return TryParseInt[int8](b) }

// TryParseInt16 converts b to an int16 in base 10 with error reporting.
func TryParseInt16(b []byte) (int16, error) { return TryParseInt[int16](b) }

// TryParseInt32 converts b to an int32 in base 10 with error reporting.
func TryParseInt32(b []byte) (int32, error) { return TryParseInt[int32](b) }

// TryParseInt64 converts b to an int64 in base 10 with error reporting.
func TryParseInt64(b []byte) (int64, error) { return TryParseInt[int64](b) }
