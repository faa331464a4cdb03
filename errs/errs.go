// Package errs defines the errors returned by tscodec packages.
//
// Callers should match errors with errors.Is against the sentinel values.
// The typed errors carry diagnostics (offending tag, column index, lengths)
// and can be extracted with errors.As.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedDataType is returned when a data type tag, on either the
	// wire or the internal side, is outside the six supported types.
	ErrUnsupportedDataType = errors.New("unsupported data type")
	// ErrSizeMismatch is returned when a column length differs from the batch size.
	ErrSizeMismatch = errors.New("column size mismatch")

	ErrTruncatedBuffer   = errors.New("buffer is truncated")
	ErrTrailingBytes     = errors.New("buffer has trailing bytes")
	ErrInvalidTimeBuffer = errors.New("time buffer length is not a multiple of 8")
	ErrTextTooLong       = errors.New("text value exceeds 4GiB length prefix")

	ErrInvalidHeaderSize  = errors.New("invalid frame header size")
	ErrInvalidHeaderFlags = errors.New("invalid frame header flags")
	ErrInvalidMagicNumber = errors.New("invalid frame magic number")
	ErrUnsupportedVersion = errors.New("unsupported frame version")
	ErrChecksumMismatch   = errors.New("frame checksum mismatch")
	ErrChecksumMissing    = errors.New("frame has no checksum")
	ErrPayloadTooLarge    = errors.New("frame payload exceeds configured limit")
	ErrTooManyColumns     = errors.New("too many columns for frame header")
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrColumnTypeConflict = errors.New("column holds fields of different data types")
	ErrRowWidthMismatch   = errors.New("row has more fields than column names")

	// ErrServerStatus is returned when a server response carries a non-success status.
	ErrServerStatus = errors.New("server returned failure status")
	// ErrInvalidURL is returned for a malformed connection URL.
	ErrInvalidURL = errors.New("invalid connection url")
)

// Side identifies which type enumeration an unsupported tag came from.
type Side uint8

const (
	SideInternal Side = iota + 1
	SideWire
)

func (s Side) String() string {
	switch s {
	case SideInternal:
		return "internal"
	case SideWire:
		return "wire"
	default:
		return "unknown"
	}
}

// UnsupportedDataTypeError reports a type tag outside the supported set.
// Tag holds the raw ordinal exactly as received.
type UnsupportedDataTypeError struct {
	Side Side
	Tag  uint8
}

func (e *UnsupportedDataTypeError) Error() string {
	return fmt.Sprintf("%s: %s tag %d", ErrUnsupportedDataType, e.Side, e.Tag)
}

func (e *UnsupportedDataTypeError) Is(target error) bool {
	return target == ErrUnsupportedDataType
}

// SizeMismatchError reports a column whose length differs from the batch size.
type SizeMismatchError struct {
	Column   int
	Expected int
	Actual   int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("%s: column %d has %d values, expected %d", ErrSizeMismatch, e.Column, e.Actual, e.Expected)
}

func (e *SizeMismatchError) Is(target error) bool {
	return target == ErrSizeMismatch
}

// RowDecodeError locates a decode failure inside a result set.
type RowDecodeError struct {
	Row    int
	Column int
	Err    error
}

func (e *RowDecodeError) Error() string {
	return fmt.Sprintf("row %d column %d: %v", e.Row, e.Column, e.Err)
}

func (e *RowDecodeError) Unwrap() error {
	return e.Err
}

// StatusError carries the failure status of a server response.
type StatusError struct {
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s", ErrServerStatus, e.Status)
	}

	return fmt.Sprintf("%s: %s: %s", ErrServerStatus, e.Status, e.Message)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrServerStatus
}
