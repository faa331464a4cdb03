package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/tscodec/errs"
)

type (
	DataType        uint8
	CompressionType uint8
)

// Internal data types. The zero value is deliberately not a valid type.
const (
	Boolean DataType = 0x1 // Boolean is a single byte, 0 or 1.
	Int32   DataType = 0x2 // Int32 is a 32-bit signed integer.
	Int64   DataType = 0x3 // Int64 is a 64-bit signed integer.
	Float   DataType = 0x4 // Float is an IEEE-754 single precision value.
	Double  DataType = 0x5 // Double is an IEEE-754 double precision value.
	Text    DataType = 0x6 // Text is a length-prefixed Binary.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// DataTypes lists every supported internal data type in declaration order.
var DataTypes = [...]DataType{Boolean, Int32, Int64, Float, Double, Text}

// Valid reports whether d is one of the six supported data types.
func (d DataType) Valid() bool {
	return d >= Boolean && d <= Text
}

// FixedWidth returns the encoded width in bytes of a single value.
// It returns false for Text, whose width depends on the payload, and for
// unsupported types.
func (d DataType) FixedWidth() (int, bool) {
	switch d {
	case Boolean:
		return 1, true
	case Int32, Float:
		return 4, true
	case Int64, Double:
		return 8, true
	default:
		return 0, false
	}
}

func (d DataType) String() string {
	switch d {
	case Boolean:
		return "BOOLEAN"
	case Int32:
		return "INT32"
	case Int64:
		return "INT64"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case Text:
		return "TEXT"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is a known compression type.
func (c CompressionType) Valid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType parses a case-insensitive compression name as
// returned by CompressionType.String.
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, name)
	}
}
