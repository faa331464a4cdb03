// Package arrowconv exports decoded result rows as an Apache Arrow record,
// for callers that hand result sets to columnar tooling.
package arrowconv

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/arloliu/tscodec/errs"
	"github.com/arloliu/tscodec/format"
	"github.com/arloliu/tscodec/result"
)

// TimeColumn is the name of the leading timestamp column.
const TimeColumn = "time"

// ArrowType returns the Arrow type used for a data type.
func ArrowType(dt format.DataType) (arrow.DataType, error) {
	switch dt {
	case format.Boolean:
		return arrow.FixedWidthTypes.Boolean, nil
	case format.Int32:
		return arrow.PrimitiveTypes.Int32, nil
	case format.Int64:
		return arrow.PrimitiveTypes.Int64, nil
	case format.Float:
		return arrow.PrimitiveTypes.Float32, nil
	case format.Double:
		return arrow.PrimitiveTypes.Float64, nil
	case format.Text:
		return arrow.BinaryTypes.Binary, nil
	default:
		return nil, &errs.UnsupportedDataTypeError{Side: errs.SideInternal, Tag: uint8(dt)}
	}
}

// InferTypes returns the data type of each named column: the type of its
// first non-null field, or 0 when every field is null.
//
// Returns errs.ErrRowWidthMismatch for rows wider than names and
// errs.ErrColumnTypeConflict when a column mixes data types.
func InferTypes(names []string, rows []result.RowRecord) ([]format.DataType, error) {
	types := make([]format.DataType, len(names))

	for i, row := range rows {
		if len(row.Fields) > len(names) {
			return nil, fmt.Errorf("%w: row %d has %d fields, %d names", errs.ErrRowWidthMismatch, i, len(row.Fields), len(names))
		}

		for j, f := range row.Fields {
			dt, ok := f.DataType()
			if !ok {
				continue
			}

			switch types[j] {
			case 0:
				types[j] = dt
			case dt:
			default:
				return nil, fmt.Errorf("%w: column %q has %s and %s (row %d)", errs.ErrColumnTypeConflict, names[j], types[j], dt, i)
			}
		}
	}

	return types, nil
}

// Schema builds the Arrow schema for the given column names and types.
// A zero type yields an all-null column.
func Schema(names []string, types []format.DataType) (*arrow.Schema, error) {
	if len(names) != len(types) {
		return nil, fmt.Errorf("%d column names for %d types", len(names), len(types))
	}

	fields := make([]arrow.Field, 0, len(names)+1)
	fields = append(fields, arrow.Field{Name: TimeColumn, Type: arrow.PrimitiveTypes.Int64})

	for i, name := range names {
		var arrowType arrow.DataType = arrow.Null
		if types[i] != 0 {
			t, err := ArrowType(types[i])
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", name, err)
			}
			arrowType = t
		}

		fields = append(fields, arrow.Field{Name: name, Type: arrowType, Nullable: true})
	}

	return arrow.NewSchema(fields, nil), nil
}

// FromRows converts row records into an Arrow record with a leading Int64
// time column followed by one nullable column per name.
//
// Rows narrower than names are padded with nulls. The caller must Release
// the returned record.
func FromRows(mem memory.Allocator, names []string, rows []result.RowRecord) (arrow.Record, error) {
	types, err := InferTypes(names, rows)
	if err != nil {
		return nil, err
	}

	schema, err := Schema(names, types)
	if err != nil {
		return nil, err
	}

	builders := make([]array.Builder, len(schema.Fields()))
	arrays := make([]arrow.Array, len(schema.Fields()))

	defer func() {
		for _, builder := range builders {
			if builder != nil {
				builder.Release()
			}
		}
		for _, arr := range arrays {
			if arr != nil {
				arr.Release()
			}
		}
	}()

	for i, field := range schema.Fields() {
		builders[i] = array.NewBuilder(mem, field.Type)
		builders[i].Reserve(len(rows))
	}

	timeBuilder, _ := builders[0].(*array.Int64Builder)
	for _, row := range rows {
		timeBuilder.Append(row.Timestamp)

		for j := range names {
			builder := builders[j+1]
			if j >= len(row.Fields) || row.Fields[j].IsNull() {
				builder.AppendNull()
				continue
			}

			appendField(builder, row.Fields[j])
		}
	}

	for i, builder := range builders {
		arrays[i] = builder.NewArray()
	}

	return array.NewRecord(schema, arrays, int64(len(rows))), nil
}

// appendField appends a non-null field whose type matches the builder, as
// guaranteed by InferTypes.
func appendField(builder array.Builder, f result.Field) {
	switch b := builder.(type) {
	case *array.BooleanBuilder:
		v, _ := f.Bool()
		b.Append(v)
	case *array.Int32Builder:
		v, _ := f.Int32()
		b.Append(v)
	case *array.Int64Builder:
		v, _ := f.Int64()
		b.Append(v)
	case *array.Float32Builder:
		v, _ := f.Float32()
		b.Append(v)
	case *array.Float64Builder:
		v, _ := f.Float64()
		b.Append(v)
	case *array.BinaryBuilder:
		v, _ := f.Binary()
		b.Append(v)
	}
}
