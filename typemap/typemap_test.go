package typemap

import (
	"errors"
	"testing"

	"github.com/arloliu/tscodec/errs"
	"github.com/arloliu/tscodec/format"
	"github.com/arloliu/tscodec/wire"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip_Internal(t *testing.T) {
	for _, dt := range format.DataTypes {
		wt, err := ToWire(dt)
		require.NoError(t, err)

		back, err := ToInternal(wt)
		require.NoError(t, err)
		require.Equal(t, dt, back)
	}
}

func TestRoundTrip_Wire(t *testing.T) {
	for wt := wire.BOOLEAN; wt <= wire.TEXT; wt++ {
		dt, err := ToInternal(wt)
		require.NoError(t, err)

		back, err := ToWire(dt)
		require.NoError(t, err)
		require.Equal(t, wt, back)
	}
}

func TestMapping_IsBijective(t *testing.T) {
	seen := make(map[wire.DataType]format.DataType)
	for _, dt := range format.DataTypes {
		wt, err := ToWire(dt)
		require.NoError(t, err)

		_, dup := seen[wt]
		require.False(t, dup, "wire tag %s mapped twice", wt)
		seen[wt] = dt
		require.Equal(t, dt.String(), wt.String())
	}
	require.Len(t, seen, len(format.DataTypes))
}

func TestToWire_Unsupported(t *testing.T) {
	for _, tag := range []uint8{0, 7, 0x80, 0xFF} {
		_, err := ToWire(format.DataType(tag))
		require.ErrorIs(t, err, errs.ErrUnsupportedDataType)

		var target *errs.UnsupportedDataTypeError
		require.True(t, errors.As(err, &target))
		require.Equal(t, tag, target.Tag)
		require.Equal(t, errs.SideInternal, target.Side)
	}
}

func TestToInternal_Unsupported(t *testing.T) {
	for _, tag := range []uint8{6, 7, 0x7F, 0xFF} {
		_, err := ToInternal(wire.DataType(tag))
		require.ErrorIs(t, err, errs.ErrUnsupportedDataType)

		var target *errs.UnsupportedDataTypeError
		require.True(t, errors.As(err, &target))
		require.Equal(t, tag, target.Tag)
		require.Equal(t, errs.SideWire, target.Side)
	}
}
