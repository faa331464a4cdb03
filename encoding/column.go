package encoding

import "github.com/arloliu/tscodec/format"

// Column is one measurement of a Batch: a homogeneous array of values of a
// single data type.
//
// The concrete column types below cover every supported data type, so the
// encoder switches on a closed set instead of inspecting individual values.
type Column interface {
	// DataType returns the declared type of every value in the column.
	DataType() format.DataType
	// Len returns the number of values in the column.
	Len() int
}

type (
	BoolColumn   []bool
	Int32Column  []int32
	Int64Column  []int64
	FloatColumn  []float32
	DoubleColumn []float64
	TextColumn   []format.Binary
)

var (
	_ Column = BoolColumn(nil)
	_ Column = Int32Column(nil)
	_ Column = Int64Column(nil)
	_ Column = FloatColumn(nil)
	_ Column = DoubleColumn(nil)
	_ Column = TextColumn(nil)
)

func (c BoolColumn) DataType() format.DataType   { return format.Boolean }
func (c Int32Column) DataType() format.DataType  { return format.Int32 }
func (c Int64Column) DataType() format.DataType  { return format.Int64 }
func (c FloatColumn) DataType() format.DataType  { return format.Float }
func (c DoubleColumn) DataType() format.DataType { return format.Double }
func (c TextColumn) DataType() format.DataType   { return format.Text }

func (c BoolColumn) Len() int   { return len(c) }
func (c Int32Column) Len() int  { return len(c) }
func (c Int64Column) Len() int  { return len(c) }
func (c FloatColumn) Len() int  { return len(c) }
func (c DoubleColumn) Len() int { return len(c) }
func (c TextColumn) Len() int   { return len(c) }

// payloadSize returns the number of Text payload bytes, excluding length prefixes.
func (c TextColumn) payloadSize() int {
	total := 0
	for _, b := range c {
		total += len(b)
	}

	return total
}

// Batch is a columnar block of one device's measurements: Timestamps holds
// the time column and every entry of Columns must hold exactly
// len(Timestamps) values.
//
// Timestamps are opaque ticks; no ordering is enforced.
type Batch struct {
	Timestamps []int64
	Columns    []Column
}

// Size returns the number of rows in the batch.
func (b Batch) Size() int {
	return len(b.Timestamps)
}

// DataTypes returns the declared type of each column in measurement order.
func (b Batch) DataTypes() []format.DataType {
	types := make([]format.DataType, len(b.Columns))
	for i, col := range b.Columns {
		types[i] = col.DataType()
	}

	return types
}
