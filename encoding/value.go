package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/tscodec/endian"
	"github.com/arloliu/tscodec/errs"
	"github.com/arloliu/tscodec/format"
)

// textLengthWidth is the size of the big-endian length prefix of a Text value.
const textLengthWidth = 4

// EncodeBatch serializes a batch into its time buffer and value buffer.
//
// Both buffers are freshly allocated and owned by the caller. On error no
// buffer is returned.
func EncodeBatch(b Batch) ([]byte, []byte, error) {
	values, err := EncodeValueBuffer(b)
	if err != nil {
		return nil, nil, err
	}

	return EncodeTimeBuffer(b), values, nil
}

// ValueBufferSize validates every column of the batch and returns the exact
// size of its value buffer.
//
// Fixed-width columns contribute batch size × width bytes. Text columns
// contribute a 4-byte length prefix per value plus the payload bytes.
//
// Returns:
//   - errs.ErrUnsupportedDataType if a column declares a type outside the supported set
//   - errs.ErrSizeMismatch if a column length differs from the batch size
//   - errs.ErrTextTooLong if a Text value does not fit the 32-bit length prefix
func ValueBufferSize(b Batch) (int, error) {
	n := b.Size()
	total := 0

	for i, col := range b.Columns {
		if err := validateColumn(i, col, n); err != nil {
			return 0, err
		}

		if width, ok := col.DataType().FixedWidth(); ok {
			total += n * width
			continue
		}

		text := col.(TextColumn) //nolint:forcetypeassert // checked by validateColumn
		for _, v := range text {
			if uint64(len(v)) > math.MaxUint32 {
				return 0, fmt.Errorf("%w: column %d has %d bytes", errs.ErrTextTooLong, i, len(v))
			}
		}
		total += n*textLengthWidth + text.payloadSize()
	}

	return total, nil
}

func validateColumn(index int, col Column, size int) error {
	dt := col.DataType()
	if !dt.Valid() {
		return &errs.UnsupportedDataTypeError{Side: errs.SideInternal, Tag: uint8(dt)}
	}

	switch col.(type) {
	case BoolColumn, Int32Column, Int64Column, FloatColumn, DoubleColumn, TextColumn:
	default:
		return fmt.Errorf("%w: column %d has unknown implementation %T", errs.ErrUnsupportedDataType, index, col)
	}

	if col.Len() != size {
		return &errs.SizeMismatchError{Column: index, Expected: size, Actual: col.Len()}
	}

	return nil
}

// EncodeValueBuffer serializes every value column of the batch into one buffer.
//
// Columns are written in measurement order and, within a column, values in
// batch order:
//   - Boolean: 1 byte, 0x00 or 0x01
//   - Int32, Float: 4 bytes big-endian (Float as IEEE-754 single precision)
//   - Int64, Double: 8 bytes big-endian (Double as IEEE-754 double precision)
//   - Text: 4-byte big-endian length L followed by L raw bytes
//
// The buffer is sized by ValueBufferSize before any byte is written, so a
// failing batch produces no partial output.
func EncodeValueBuffer(b Batch) ([]byte, error) {
	size, err := ValueBufferSize(b)
	if err != nil {
		return nil, err
	}

	engine := endian.Network()
	buf := make([]byte, size)
	offset := 0

	for _, col := range b.Columns {
		switch c := col.(type) {
		case BoolColumn:
			for _, v := range c {
				if v {
					buf[offset] = 1
				}
				offset++
			}
		case Int32Column:
			for _, v := range c {
				engine.PutUint32(buf[offset:], uint32(v)) //nolint:gosec
				offset += 4
			}
		case Int64Column:
			for _, v := range c {
				engine.PutUint64(buf[offset:], uint64(v)) //nolint:gosec
				offset += 8
			}
		case FloatColumn:
			for _, v := range c {
				endian.PutFloat32(engine, buf[offset:], v)
				offset += 4
			}
		case DoubleColumn:
			for _, v := range c {
				endian.PutFloat64(engine, buf[offset:], v)
				offset += 8
			}
		case TextColumn:
			for _, v := range c {
				engine.PutUint32(buf[offset:], uint32(len(v))) //nolint:gosec
				offset += textLengthWidth
				offset += copy(buf[offset:], v)
			}
		}
	}

	return buf, nil
}

// DecodeValueBuffer is the inverse of EncodeValueBuffer.
//
// The caller supplies the batch size and the data type of every column, as
// the value buffer carries neither. Text payloads are copied out of data.
//
// Returns:
//   - errs.ErrUnsupportedDataType if a type is outside the supported set
//   - errs.ErrTruncatedBuffer if data ends before all values are read
//   - errs.ErrTrailingBytes if data holds bytes after the last value
func DecodeValueBuffer(data []byte, size int, types []format.DataType) ([]Column, error) {
	r := valueReader{data: data, engine: endian.Network()}
	columns := make([]Column, len(types))

	for i, dt := range types {
		col, err := r.readColumn(dt, size)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		columns[i] = col
	}

	if r.offset != len(data) {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrTrailingBytes, len(data)-r.offset)
	}

	return columns, nil
}

type valueReader struct {
	data   []byte
	offset int
	engine endian.EndianEngine
}

func (r *valueReader) next(n int) ([]byte, error) {
	if n > len(r.data)-r.offset {
		return nil, errs.ErrTruncatedBuffer
	}

	b := r.data[r.offset : r.offset+n]
	r.offset += n

	return b, nil
}

func (r *valueReader) readColumn(dt format.DataType, size int) (Column, error) {
	if !dt.Valid() {
		return nil, &errs.UnsupportedDataTypeError{Side: errs.SideInternal, Tag: uint8(dt)}
	}

	if width, ok := dt.FixedWidth(); ok {
		raw, err := r.next(size * width)
		if err != nil {
			return nil, err
		}

		return r.fixedColumn(dt, raw, size), nil
	}

	col := make(TextColumn, size)
	for i := range size {
		prefix, err := r.next(textLengthWidth)
		if err != nil {
			return nil, err
		}

		payload, err := r.next(int(r.engine.Uint32(prefix)))
		if err != nil {
			return nil, err
		}
		col[i] = format.NewBinary(payload)
	}

	return col, nil
}

func (r *valueReader) fixedColumn(dt format.DataType, raw []byte, size int) Column {
	switch dt {
	case format.Boolean:
		col := make(BoolColumn, size)
		for i := range col {
			col[i] = raw[i] != 0
		}

		return col
	case format.Int32:
		col := make(Int32Column, size)
		for i := range col {
			col[i] = int32(r.engine.Uint32(raw[i*4:])) //nolint:gosec
		}

		return col
	case format.Int64:
		col := make(Int64Column, size)
		for i := range col {
			col[i] = int64(r.engine.Uint64(raw[i*8:])) //nolint:gosec
		}

		return col
	case format.Float:
		col := make(FloatColumn, size)
		for i := range col {
			col[i] = endian.Float32(r.engine, raw[i*4:])
		}

		return col
	default:
		col := make(DoubleColumn, size)
		for i := range col {
			col[i] = endian.Float64(r.engine, raw[i*8:])
		}

		return col
	}
}
