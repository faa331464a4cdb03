package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnsupportedDataTypeError(t *testing.T) {
	err := error(&UnsupportedDataTypeError{Side: SideWire, Tag: 9})

	require.ErrorIs(t, err, ErrUnsupportedDataType)
	require.NotErrorIs(t, err, ErrSizeMismatch)
	require.Equal(t, "unsupported data type: wire tag 9", err.Error())

	wrapped := fmt.Errorf("decode: %w", err)
	var target *UnsupportedDataTypeError
	require.True(t, errors.As(wrapped, &target))
	require.Equal(t, uint8(9), target.Tag)
	require.Equal(t, SideWire, target.Side)
}

func TestSizeMismatchError(t *testing.T) {
	err := error(&SizeMismatchError{Column: 2, Expected: 3, Actual: 4})

	require.ErrorIs(t, err, ErrSizeMismatch)
	require.Equal(t, "column size mismatch: column 2 has 4 values, expected 3", err.Error())
}

func TestRowDecodeError_Unwrap(t *testing.T) {
	inner := &UnsupportedDataTypeError{Side: SideWire, Tag: 200}
	err := error(&RowDecodeError{Row: 5, Column: 1, Err: inner})

	require.ErrorIs(t, err, ErrUnsupportedDataType)
	require.Contains(t, err.Error(), "row 5 column 1")

	var target *UnsupportedDataTypeError
	require.True(t, errors.As(err, &target))
	require.Equal(t, uint8(200), target.Tag)
}

func TestSide_String(t *testing.T) {
	require.Equal(t, "internal", SideInternal.String())
	require.Equal(t, "wire", SideWire.String())
	require.Equal(t, "unknown", Side(0).String())
}

func TestStatusError(t *testing.T) {
	err := error(&StatusError{Status: "ERROR_STATUS", Message: "timeseries not exist"})

	require.ErrorIs(t, err, ErrServerStatus)
	require.Equal(t, "server returned failure status: ERROR_STATUS: timeseries not exist", err.Error())

	bare := &StatusError{Status: "INVALID_HANDLE_STATUS"}
	require.Equal(t, "server returned failure status: INVALID_HANDLE_STATUS", bare.Error())
}
