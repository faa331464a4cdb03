// Package result turns server result rows into row records of typed,
// nullable fields.
package result

import (
	"github.com/arloliu/tscodec/errs"
	"github.com/arloliu/tscodec/format"
	"github.com/arloliu/tscodec/typemap"
	"github.com/arloliu/tscodec/wire"
)

// Decode converts wire rows into row records, preserving row order, timestamps
// and per-row field order.
//
// Empty values decode to Null without consulting their type tag or payload.
// Every other value is mapped through typemap.ToInternal and its single
// matching payload member is extracted; Float payloads arrive widened and are
// narrowed to float32 with round-to-nearest-even. Text payloads are copied.
//
// Rows are decoded independently; differing row widths are not reconciled.
//
// Decoding is atomic: on the first unsupported tag Decode returns a nil slice
// and an *errs.RowDecodeError locating the value, which wraps the
// *errs.UnsupportedDataTypeError.
func Decode(rows []wire.Row) ([]RowRecord, error) {
	records := make([]RowRecord, len(rows))

	for i, row := range rows {
		fields := make([]Field, len(row.Values))
		for j, v := range row.Values {
			f, err := DecodeValue(v)
			if err != nil {
				return nil, &errs.RowDecodeError{Row: i, Column: j, Err: err}
			}
			fields[j] = f
		}

		records[i] = RowRecord{Timestamp: row.Timestamp, Fields: fields}
	}

	return records, nil
}

// DecodeValue converts a single wire value into a Field.
func DecodeValue(v wire.Value) (Field, error) {
	if v.Empty {
		return Null(), nil
	}

	dt, err := typemap.ToInternal(v.Type)
	if err != nil {
		return Field{}, err
	}

	switch dt {
	case format.Boolean:
		return BoolField(v.Bool), nil
	case format.Int32:
		return Int32Field(v.Int32), nil
	case format.Int64:
		return Int64Field(v.Int64), nil
	case format.Float:
		return FloatField(float32(v.Float)), nil
	case format.Double:
		return DoubleField(v.Double), nil
	default:
		return TextField(format.NewBinary(v.Binary)), nil
	}
}
