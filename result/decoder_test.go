package result

import (
	"errors"
	"math"
	"testing"

	"github.com/arloliu/tscodec/errs"
	"github.com/arloliu/tscodec/format"
	"github.com/arloliu/tscodec/wire"
	"github.com/stretchr/testify/require"
)

func TestDecode_AllTypes(t *testing.T) {
	rows := []wire.Row{
		{
			Timestamp: 1000,
			Values: []wire.Value{
				wire.BoolValue(true),
				wire.Int32Value(-42),
				wire.Int64Value(math.MaxInt64),
				wire.FloatValue(1.5),
				wire.DoubleValue(math.Pi),
				wire.TextValue([]byte("ok")),
				wire.EmptyValue(),
			},
		},
	}

	records, err := Decode(rows)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	require.Equal(t, int64(1000), rec.Timestamp)
	require.Len(t, rec.Fields, 7)

	b, ok := rec.Fields[0].Bool()
	require.True(t, ok)
	require.True(t, b)

	i32, ok := rec.Fields[1].Int32()
	require.True(t, ok)
	require.Equal(t, int32(-42), i32)

	i64, ok := rec.Fields[2].Int64()
	require.True(t, ok)
	require.Equal(t, int64(math.MaxInt64), i64)

	f32, ok := rec.Fields[3].Float32()
	require.True(t, ok)
	require.Equal(t, float32(1.5), f32)

	f64, ok := rec.Fields[4].Float64()
	require.True(t, ok)
	require.Equal(t, math.Pi, f64)

	text, ok := rec.Fields[5].Binary()
	require.True(t, ok)
	require.Equal(t, "ok", text.String())

	require.True(t, rec.Fields[6].IsNull())
	_, ok = rec.Fields[6].DataType()
	require.False(t, ok)
}

func TestDecode_FieldTypes(t *testing.T) {
	values := []wire.Value{
		wire.BoolValue(false),
		wire.Int32Value(0),
		wire.Int64Value(0),
		wire.FloatValue(0),
		wire.DoubleValue(0),
		wire.TextValue(nil),
	}

	records, err := Decode([]wire.Row{{Values: values}})
	require.NoError(t, err)

	for i, f := range records[0].Fields {
		dt, ok := f.DataType()
		require.True(t, ok)
		require.Equal(t, format.DataTypes[i], dt)
		require.False(t, f.IsNull(), "zero scalars must not decode to null")
	}
}

func TestDecode_NullPrecedence(t *testing.T) {
	v := wire.Int32Value(42)
	v.Empty = true

	bad := wire.Value{Empty: true, Type: wire.DataType(0xEE), Binary: []byte("garbage")}

	records, err := Decode([]wire.Row{{Timestamp: 7, Values: []wire.Value{v, bad}}})
	require.NoError(t, err)
	require.Equal(t, []Field{Null(), Null()}, records[0].Fields)
	require.NotEqual(t, Int32Field(42), records[0].Fields[0])
}

func TestDecode_FloatNarrowing(t *testing.T) {
	wide := wire.Value{Type: wire.FLOAT, Float: 0.1}

	f, err := DecodeValue(wide)
	require.NoError(t, err)

	v, ok := f.Float32()
	require.True(t, ok)
	require.Equal(t, float32(0.1), v)

	_, ok = f.Float64()
	require.False(t, ok)
}

func TestDecode_RowOrderPreserved(t *testing.T) {
	rows := make([]wire.Row, 50)
	for i := range rows {
		rows[i] = wire.Row{
			Timestamp: int64(1000 - i*7),
			Values:    []wire.Value{wire.Int64Value(int64(i))},
		}
	}

	records, err := Decode(rows)
	require.NoError(t, err)
	require.Len(t, records, len(rows))

	for i, rec := range records {
		require.Equal(t, rows[i].Timestamp, rec.Timestamp)
		v, ok := rec.Fields[0].Int64()
		require.True(t, ok)
		require.Equal(t, int64(i), v)
	}
}

func TestDecode_IndependentRowWidths(t *testing.T) {
	rows := []wire.Row{
		{Timestamp: 1, Values: []wire.Value{wire.BoolValue(true)}},
		{Timestamp: 2},
		{Timestamp: 3, Values: []wire.Value{wire.EmptyValue(), wire.Int32Value(1), wire.EmptyValue()}},
	}

	records, err := Decode(rows)
	require.NoError(t, err)
	require.Len(t, records[0].Fields, 1)
	require.Empty(t, records[1].Fields)
	require.Len(t, records[2].Fields, 3)
}

func TestDecode_Empty(t *testing.T) {
	records, err := Decode(nil)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestDecode_FailureAtomicity(t *testing.T) {
	rows := make([]wire.Row, 10)
	for i := range rows {
		rows[i] = wire.Row{Timestamp: int64(i), Values: []wire.Value{wire.Int32Value(int32(i)), wire.DoubleValue(1)}}
	}
	rows[5].Values[1].Type = wire.DataType(17)

	records, err := Decode(rows)
	require.Nil(t, records)
	require.ErrorIs(t, err, errs.ErrUnsupportedDataType)

	var rowErr *errs.RowDecodeError
	require.True(t, errors.As(err, &rowErr))
	require.Equal(t, 5, rowErr.Row)
	require.Equal(t, 1, rowErr.Column)

	var typeErr *errs.UnsupportedDataTypeError
	require.True(t, errors.As(err, &typeErr))
	require.Equal(t, uint8(17), typeErr.Tag)
	require.Equal(t, errs.SideWire, typeErr.Side)
}

func TestDecode_CopiesText(t *testing.T) {
	payload := []byte("abc")

	records, err := Decode([]wire.Row{{Values: []wire.Value{wire.TextValue(payload)}}})
	require.NoError(t, err)

	payload[0] = 'x'
	text, _ := records[0].Fields[0].Binary()
	require.Equal(t, "abc", text.String())
}
