package encoding

import (
	"iter"

	"github.com/arloliu/tscodec/endian"
	"github.com/arloliu/tscodec/errs"
)

// timestampWidth is the encoded size of one timestamp.
const timestampWidth = 8

// EncodeTimeBuffer serializes the batch's time column.
//
// The result is exactly 8 × batch size bytes: each timestamp as a big-endian
// 64-bit signed integer, in batch order, with no header. The returned slice
// starts at offset 0 and is owned by the caller.
func EncodeTimeBuffer(b Batch) []byte {
	engine := endian.Network()
	buf := make([]byte, len(b.Timestamps)*timestampWidth)

	for i, ts := range b.Timestamps {
		offset := i * timestampWidth
		engine.PutUint64(buf[offset:offset+timestampWidth], uint64(ts)) //nolint:gosec
	}

	return buf
}

// DecodeTimeBuffer is the inverse of EncodeTimeBuffer.
//
// Returns errs.ErrInvalidTimeBuffer if the length is not a multiple of 8.
func DecodeTimeBuffer(data []byte) ([]int64, error) {
	if len(data)%timestampWidth != 0 {
		return nil, errs.ErrInvalidTimeBuffer
	}

	count := len(data) / timestampWidth
	timestamps := make([]int64, 0, count)
	for ts := range NewTimestampDecoder().All(data, count) {
		timestamps = append(timestamps, ts)
	}

	return timestamps, nil
}

// TimestampDecoder reads timestamps out of a time buffer without copying it.
//
// The decoder is stateless and can be reused across multiple decoding operations.
type TimestampDecoder struct {
	engine endian.EndianEngine
}

// NewTimestampDecoder creates a decoder for network-order time buffers.
func NewTimestampDecoder() TimestampDecoder {
	return TimestampDecoder{engine: endian.Network()}
}

// All returns an iterator over the first count timestamps in data.
//
// If data holds fewer than count timestamps the iterator stops early.
func (d TimestampDecoder) All(data []byte, count int) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		dataLen := len(data)
		for i := range count {
			start := i * timestampWidth
			if start+timestampWidth > dataLen {
				return
			}

			ts := int64(d.engine.Uint64(data[start : start+timestampWidth])) //nolint:gosec
			if !yield(ts) {
				return
			}
		}
	}
}
