package section

import (
	"fmt"

	"github.com/arloliu/tscodec/errs"
	"github.com/arloliu/tscodec/format"
)

// FrameFlag holds the packed option and compression bytes of a frame header.
type FrameFlag struct {
	// Options bit 0 marks a trailing checksum. Bits 1-7 are reserved and must be 0.
	Options uint8
	// Compression holds the time payload compression in bits 0-3 and the
	// value payload compression in bits 4-7.
	Compression uint8
}

// NewFrameFlag returns a flag with a checksum and no compression.
func NewFrameFlag() FrameFlag {
	return FrameFlag{
		Options:     ChecksumMask,
		Compression: uint8(format.CompressionNone) | uint8(format.CompressionNone)<<4,
	}
}

// HasChecksum returns whether the frame carries a trailing checksum.
func (f FrameFlag) HasChecksum() bool {
	return f.Options&ChecksumMask != 0
}

// SetChecksum enables or disables the trailing checksum.
func (f *FrameFlag) SetChecksum(enabled bool) {
	if enabled {
		f.Options |= ChecksumMask
	} else {
		f.Options &^= ChecksumMask
	}
}

// TimeCompression returns the compression applied to the time payload.
func (f FrameFlag) TimeCompression() format.CompressionType {
	return format.CompressionType(f.Compression & TimeCompressionMask)
}

// ValueCompression returns the compression applied to the value payload.
func (f FrameFlag) ValueCompression() format.CompressionType {
	return format.CompressionType((f.Compression & ValueCompressionMask) >> 4)
}

// SetTimeCompression sets the time payload compression.
func (f *FrameFlag) SetTimeCompression(c format.CompressionType) {
	f.Compression = (f.Compression &^ TimeCompressionMask) | (uint8(c) & TimeCompressionMask)
}

// SetValueCompression sets the value payload compression.
func (f *FrameFlag) SetValueCompression(c format.CompressionType) {
	f.Compression = (f.Compression &^ ValueCompressionMask) | (uint8(c)<<4)&ValueCompressionMask
}

// Validate checks reserved bits and compression types.
func (f FrameFlag) Validate() error {
	if f.Options&^ChecksumMask != 0 {
		return fmt.Errorf("%w: reserved option bits set: %#02x", errs.ErrInvalidHeaderFlags, f.Options)
	}

	if !f.TimeCompression().Valid() {
		return fmt.Errorf("%w: time payload: %d", errs.ErrInvalidCompression, uint8(f.TimeCompression()))
	}

	if !f.ValueCompression().Valid() {
		return fmt.Errorf("%w: value payload: %d", errs.ErrInvalidCompression, uint8(f.ValueCompression()))
	}

	return nil
}
