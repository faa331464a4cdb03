package result

import (
	"math"
	"testing"

	"github.com/arloliu/tscodec/format"
	"github.com/stretchr/testify/require"
)

func TestField_Null(t *testing.T) {
	f := Null()

	require.True(t, f.IsNull())
	require.Nil(t, f.Value())
	require.Equal(t, Field{}, f)

	_, ok := f.Bool()
	require.False(t, ok)
	_, ok = f.Int32()
	require.False(t, ok)
	_, ok = f.Binary()
	require.False(t, ok)
}

func TestField_Value(t *testing.T) {
	testCases := []struct {
		name  string
		field Field
		want  any
		dt    format.DataType
	}{
		{"bool", BoolField(true), true, format.Boolean},
		{"int32", Int32Field(math.MinInt32), int32(math.MinInt32), format.Int32},
		{"int64", Int64Field(-5), int64(-5), format.Int64},
		{"float", FloatField(-0.5), float32(-0.5), format.Float},
		{"double", DoubleField(math.MaxFloat64), math.MaxFloat64, format.Double},
		{"text", TextField(format.BinaryString("x")), format.BinaryString("x"), format.Text},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.field.Value())

			dt, ok := tc.field.DataType()
			require.True(t, ok)
			require.Equal(t, tc.dt, dt)
			require.False(t, tc.field.IsNull())
		})
	}
}

func TestField_AccessorTypeCheck(t *testing.T) {
	f := Int32Field(7)

	_, ok := f.Int64()
	require.False(t, ok)
	_, ok = f.Float32()
	require.False(t, ok)

	v, ok := f.Int32()
	require.True(t, ok)
	require.Equal(t, int32(7), v)
}

func TestField_NegativeInt32(t *testing.T) {
	v, ok := Int32Field(-1).Int32()
	require.True(t, ok)
	require.Equal(t, int32(-1), v)
}
