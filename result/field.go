package result

import (
	"math"

	"github.com/arloliu/tscodec/format"
)

// Field is one cell of a RowRecord: either null or a typed scalar.
//
// A null Field carries no data type and is distinct from any zero value.
// Construct fields with Null or the typed constructors; the zero Field is null.
type Field struct {
	dt     format.DataType
	bits   uint64
	binary format.Binary
}

// Null returns a field with no type and no value.
func Null() Field {
	return Field{}
}

// BoolField creates a Boolean field.
func BoolField(v bool) Field {
	f := Field{dt: format.Boolean}
	if v {
		f.bits = 1
	}

	return f
}

// Int32Field creates an Int32 field.
func Int32Field(v int32) Field {
	return Field{dt: format.Int32, bits: uint64(int64(v))} //nolint:gosec
}

// Int64Field creates an Int64 field.
func Int64Field(v int64) Field {
	return Field{dt: format.Int64, bits: uint64(v)} //nolint:gosec
}

// FloatField creates a Float field.
func FloatField(v float32) Field {
	return Field{dt: format.Float, bits: uint64(math.Float32bits(v))}
}

// DoubleField creates a Double field.
func DoubleField(v float64) Field {
	return Field{dt: format.Double, bits: math.Float64bits(v)}
}

// TextField creates a Text field. The field references v without copying.
func TextField(v format.Binary) Field {
	return Field{dt: format.Text, binary: v}
}

// IsNull reports whether the field holds no value.
func (f Field) IsNull() bool {
	return f.dt == 0
}

// DataType returns the field type. The second result is false for null fields.
func (f Field) DataType() (format.DataType, bool) {
	return f.dt, f.dt != 0
}

// Bool returns the value of a Boolean field.
func (f Field) Bool() (bool, bool) {
	return f.bits != 0, f.dt == format.Boolean
}

// Int32 returns the value of an Int32 field.
func (f Field) Int32() (int32, bool) {
	return int32(int64(f.bits)), f.dt == format.Int32 //nolint:gosec
}

// Int64 returns the value of an Int64 field.
func (f Field) Int64() (int64, bool) {
	return int64(f.bits), f.dt == format.Int64 //nolint:gosec
}

// Float32 returns the value of a Float field.
func (f Field) Float32() (float32, bool) {
	return math.Float32frombits(uint32(f.bits)), f.dt == format.Float //nolint:gosec
}

// Float64 returns the value of a Double field.
func (f Field) Float64() (float64, bool) {
	return math.Float64frombits(f.bits), f.dt == format.Double
}

// Binary returns the value of a Text field.
func (f Field) Binary() (format.Binary, bool) {
	return f.binary, f.dt == format.Text
}

// Value returns the scalar as its Go type, or nil for null fields.
func (f Field) Value() any {
	switch f.dt {
	case format.Boolean:
		v, _ := f.Bool()
		return v
	case format.Int32:
		v, _ := f.Int32()
		return v
	case format.Int64:
		v, _ := f.Int64()
		return v
	case format.Float:
		v, _ := f.Float32()
		return v
	case format.Double:
		v, _ := f.Float64()
		return v
	case format.Text:
		return f.binary
	default:
		return nil
	}
}

// RowRecord is a row-oriented view of one timestamp across all measurements.
type RowRecord struct {
	Timestamp int64
	Fields    []Field
}
