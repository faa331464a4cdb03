// Package encoding serializes a columnar batch of measurements into the two
// network-order buffers a time-series server ingests, and parses them back.
//
// # Time Buffer
//
// The time buffer holds every timestamp of the batch as an 8-byte big-endian
// signed integer, in batch order. Its length is exactly 8 times the batch size.
//
// # Value Buffer
//
// The value buffer is column-major: all values of column 0, then all values of
// column 1, and so on, with no separators or padding. Each value is written in
// network byte order according to its column's data type:
//
//	Boolean  1 byte, 0x01 for true and 0x00 for false
//	Int32    4 bytes, two's complement
//	Int64    8 bytes, two's complement
//	Float    4 bytes, IEEE-754 binary32
//	Double   8 bytes, IEEE-754 binary64
//	Text     4-byte unsigned length n, followed by n raw bytes
//
// The buffer carries no type information; a reader must know the column
// types and the batch size to parse it.
//
// # Usage
//
//	batch := encoding.Batch{
//	    Timestamps: []int64{100, 200},
//	    Columns: []encoding.Column{
//	        encoding.BoolColumn{true, false},
//	        encoding.TextColumn{format.BinaryString("ab"), format.BinaryString("")},
//	    },
//	}
//	timeBuf, valueBuf, err := encoding.EncodeBatch(batch)
//
// Every column must hold exactly len(Timestamps) values; otherwise EncodeBatch
// fails with errs.ErrSizeMismatch and produces no output.
package encoding
