package format

import (
	"testing"

	"github.com/arloliu/tscodec/errs"
	"github.com/stretchr/testify/require"
)

func TestDataType_Valid(t *testing.T) {
	for _, dt := range DataTypes {
		require.True(t, dt.Valid(), dt.String())
	}

	require.False(t, DataType(0).Valid())
	require.False(t, DataType(7).Valid())
	require.False(t, DataType(0xFF).Valid())
}

func TestDataType_FixedWidth(t *testing.T) {
	testCases := []struct {
		dt    DataType
		width int
		fixed bool
	}{
		{Boolean, 1, true},
		{Int32, 4, true},
		{Int64, 8, true},
		{Float, 4, true},
		{Double, 8, true},
		{Text, 0, false},
		{DataType(0), 0, false},
		{DataType(42), 0, false},
	}

	for _, tc := range testCases {
		width, fixed := tc.dt.FixedWidth()
		require.Equal(t, tc.width, width, tc.dt.String())
		require.Equal(t, tc.fixed, fixed, tc.dt.String())
	}
}

func TestDataType_String(t *testing.T) {
	require.Equal(t, "BOOLEAN", Boolean.String())
	require.Equal(t, "INT32", Int32.String())
	require.Equal(t, "INT64", Int64.String())
	require.Equal(t, "FLOAT", Float.String())
	require.Equal(t, "DOUBLE", Double.String())
	require.Equal(t, "TEXT", Text.String())
	require.Equal(t, "Unknown", DataType(99).String())
}

func TestCompressionType(t *testing.T) {
	require.True(t, CompressionNone.Valid())
	require.True(t, CompressionLZ4.Valid())
	require.False(t, CompressionType(0).Valid())
	require.False(t, CompressionType(5).Valid())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "Unknown", CompressionType(9).String())
}

func TestBinary(t *testing.T) {
	src := []byte("ab")
	b := NewBinary(src)
	src[0] = 'x'

	require.Equal(t, "ab", b.String())
	require.Equal(t, 2, b.Len())

	empty := NewBinary(nil)
	require.NotNil(t, empty)
	require.Equal(t, 0, empty.Len())

	require.Equal(t, Binary{0xFF, 0x00}, BinaryString("\xff\x00"))
}

func TestParseCompressionType(t *testing.T) {
	for _, c := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		parsed, err := ParseCompressionType(c.String())
		require.NoError(t, err)
		require.Equal(t, c, parsed)
	}

	parsed, err := ParseCompressionType(" ZSTD ")
	require.NoError(t, err)
	require.Equal(t, CompressionZstd, parsed)

	parsed, err = ParseCompressionType("")
	require.NoError(t, err)
	require.Equal(t, CompressionNone, parsed)

	_, err = ParseCompressionType("gzip")
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}
