// Package tscodec is the measurement codec of a time-series database client.
//
// It converts between two representations of measurement data:
//
//   - a columnar batch (one time column plus N typed value columns) and the
//     pair of network-order buffers the server ingests: a time buffer and a
//     value buffer
//   - the per-timestamp rows of tagged, possibly-empty values the server
//     returns for a query, and row records of typed, nullable fields
//
// and maps data type tags between the server protocol enumeration and the
// client enumeration.
//
// # Basic Usage
//
// Encoding a batch for ingestion:
//
//	batch := tscodec.Batch{
//	    Timestamps: []int64{100, 200},
//	    Columns: []tscodec.Column{
//	        encoding.BoolColumn{true, false},
//	        encoding.TextColumn{format.BinaryString("ab"), format.BinaryString("")},
//	    },
//	}
//	timeBuf, valueBuf, err := tscodec.EncodeBatch(batch)
//
// Decoding a result set:
//
//	records, err := tscodec.DecodeRows(rows)
//	for _, rec := range records {
//	    for _, f := range rec.Fields {
//	        if f.IsNull() {
//	            continue
//	        }
//	        fmt.Println(rec.Timestamp, f.Value())
//	    }
//	}
//
// # Package Structure
//
// This package wraps the packages doing the work: typemap (type tag mapping),
// encoding (batch buffers), result (row decoding). The frame package packs
// both buffers into one checksummed, optionally compressed message, and
// arrowconv exports row records as Arrow records.
//
// Every function is pure and safe for concurrent use. Outputs are freshly
// allocated and owned by the caller.
package tscodec

import (
	"github.com/arloliu/tscodec/encoding"
	"github.com/arloliu/tscodec/format"
	"github.com/arloliu/tscodec/result"
	"github.com/arloliu/tscodec/typemap"
	"github.com/arloliu/tscodec/wire"
)

type (
	// DataType is the client data type enumeration.
	DataType = format.DataType
	// WireDataType is the server protocol data type enumeration.
	WireDataType = wire.DataType
	// Binary is the payload of a Text value.
	Binary = format.Binary
	// Batch is a columnar block of measurements.
	Batch = encoding.Batch
	// Column is one typed measurement column of a Batch.
	Column = encoding.Column
	// WireRow is one timestamp of a server result set.
	WireRow = wire.Row
	// WireValue is one tagged cell of a WireRow.
	WireValue = wire.Value
	// RowRecord is a decoded result row.
	RowRecord = result.RowRecord
	// Field is one nullable cell of a RowRecord.
	Field = result.Field
)

// ToWireType maps a client data type to the server protocol ordinal.
//
// Returns errs.ErrUnsupportedDataType for types outside the supported six.
func ToWireType(dt DataType) (WireDataType, error) {
	return typemap.ToWire(dt)
}

// ToInternalType maps a server protocol ordinal to the client data type.
//
// Returns errs.ErrUnsupportedDataType for ordinals outside the supported six.
func ToInternalType(wt WireDataType) (DataType, error) {
	return typemap.ToInternal(wt)
}

// EncodeBatch serializes a batch into its time buffer and value buffer.
//
// Returns errs.ErrUnsupportedDataType or errs.ErrSizeMismatch for invalid
// columns, in which case no buffer is produced.
func EncodeBatch(b Batch) (timeBuf []byte, valueBuf []byte, err error) {
	return encoding.EncodeBatch(b)
}

// DecodeRows converts a server result set into row records.
//
// The call is atomic: on an unsupported type tag it returns no records.
func DecodeRows(rows []WireRow) ([]RowRecord, error) {
	return result.Decode(rows)
}
