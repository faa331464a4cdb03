// Package wire models result-set rows as they arrive from the server.
//
// A Row carries one timestamp and one Value per measurement. Each Value is
// either empty (absent) or tagged with a wire DataType and carries exactly
// one payload member matching that tag. The wire DataType enumeration uses
// the server protocol ordinals and is translated to format.DataType by the
// typemap package.
package wire

// DataType is the server protocol data type ordinal.
type DataType uint8

// Protocol data type ordinals, in server enumeration order.
const (
	BOOLEAN DataType = 0 // BOOLEAN is carried in Value.Bool.
	INT32   DataType = 1 // INT32 is carried in Value.Int32.
	INT64   DataType = 2 // INT64 is carried in Value.Int64.
	FLOAT   DataType = 3 // FLOAT is carried widened in Value.Float.
	DOUBLE  DataType = 4 // DOUBLE is carried in Value.Double.
	TEXT    DataType = 5 // TEXT is carried in Value.Binary.
)

// Valid reports whether d is one of the six protocol ordinals.
func (d DataType) Valid() bool {
	return d <= TEXT
}

func (d DataType) String() string {
	switch d {
	case BOOLEAN:
		return "BOOLEAN"
	case INT32:
		return "INT32"
	case INT64:
		return "INT64"
	case FLOAT:
		return "FLOAT"
	case DOUBLE:
		return "DOUBLE"
	case TEXT:
		return "TEXT"
	default:
		return "Unknown"
	}
}

// Value is a single tagged cell of a wire row.
//
// When Empty is set the remaining members carry no meaning and must not be
// inspected. Float is a double precision member because the server sends
// single precision values widened; decoders narrow it back.
type Value struct {
	Empty  bool
	Type   DataType
	Bool   bool
	Int32  int32
	Int64  int64
	Float  float64
	Double float64
	Binary []byte
}

// Row is one timestamp of a result set.
type Row struct {
	Timestamp int64
	Values    []Value
}

// EmptyValue creates an absent value.
func EmptyValue() Value {
	return Value{Empty: true}
}

// BoolValue creates a BOOLEAN value.
func BoolValue(v bool) Value {
	return Value{Type: BOOLEAN, Bool: v}
}

// Int32Value creates an INT32 value.
func Int32Value(v int32) Value {
	return Value{Type: INT32, Int32: v}
}

// Int64Value creates an INT64 value.
func Int64Value(v int64) Value {
	return Value{Type: INT64, Int64: v}
}

// FloatValue creates a FLOAT value, widening v the way the server transmits single precision values.
func FloatValue(v float32) Value {
	return Value{Type: FLOAT, Float: float64(v)}
}

// DoubleValue creates a DOUBLE value.
func DoubleValue(v float64) Value {
	return Value{Type: DOUBLE, Double: v}
}

// TextValue creates a TEXT value. The value references b without copying.
func TextValue(b []byte) Value {
	return Value{Type: TEXT, Binary: b}
}
