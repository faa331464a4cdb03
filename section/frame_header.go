package section

import (
	"fmt"

	"github.com/arloliu/tscodec/endian"
	"github.com/arloliu/tscodec/errs"
	"github.com/arloliu/tscodec/wire"
)

// FrameHeader describes the batch carried by a frame.
type FrameHeader struct {
	Flag FrameFlag
	// Count is the batch size: the number of timestamps and the number of
	// values in every column.
	Count uint32
	// Types holds the wire data type of each column in measurement order.
	Types []wire.DataType
}

// Size returns the encoded header size in bytes.
func (h *FrameHeader) Size() int {
	return FixedHeaderSize + len(h.Types)
}

// AppendTo appends the encoded header to dst.
//
// Returns errs.ErrTooManyColumns if Types exceeds MaxColumns.
func (h *FrameHeader) AppendTo(dst []byte) ([]byte, error) {
	if len(h.Types) > MaxColumns {
		return nil, fmt.Errorf("%w: %d", errs.ErrTooManyColumns, len(h.Types))
	}

	engine := endian.Network()
	dst = engine.AppendUint16(dst, MagicNumber)
	dst = append(dst, Version, h.Flag.Options, h.Flag.Compression)
	dst = engine.AppendUint32(dst, h.Count)
	dst = engine.AppendUint16(dst, uint16(len(h.Types))) //nolint:gosec
	for _, t := range h.Types {
		dst = append(dst, uint8(t))
	}

	return dst, nil
}

// ParseFrameHeader parses a header from the start of data and returns it
// together with the number of bytes consumed.
//
// Type tags are returned as received; validating them is left to the caller.
//
// Returns:
//   - errs.ErrInvalidHeaderSize if data is shorter than the header
//   - errs.ErrInvalidMagicNumber, errs.ErrUnsupportedVersion for foreign data
//   - flag validation errors
func ParseFrameHeader(data []byte) (FrameHeader, int, error) {
	if len(data) < FixedHeaderSize {
		return FrameHeader{}, 0, errs.ErrInvalidHeaderSize
	}

	engine := endian.Network()
	if magic := engine.Uint16(data[0:2]); magic != MagicNumber {
		return FrameHeader{}, 0, fmt.Errorf("%w: %#04x", errs.ErrInvalidMagicNumber, magic)
	}

	if data[2] != Version {
		return FrameHeader{}, 0, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, data[2])
	}

	h := FrameHeader{
		Flag:  FrameFlag{Options: data[3], Compression: data[4]},
		Count: engine.Uint32(data[5:9]),
	}
	if err := h.Flag.Validate(); err != nil {
		return FrameHeader{}, 0, err
	}

	ncols := int(engine.Uint16(data[9:11]))
	if len(data) < FixedHeaderSize+ncols {
		return FrameHeader{}, 0, errs.ErrInvalidHeaderSize
	}

	h.Types = make([]wire.DataType, ncols)
	for i := range ncols {
		h.Types[i] = wire.DataType(data[FixedHeaderSize+i])
	}

	return h, h.Size(), nil
}
