package frame

import (
	"fmt"

	"github.com/arloliu/tscodec/encoding"
	"github.com/arloliu/tscodec/endian"
	"github.com/arloliu/tscodec/errs"
	"github.com/arloliu/tscodec/format"
	"github.com/arloliu/tscodec/internal/hash"
	"github.com/arloliu/tscodec/section"
	"github.com/arloliu/tscodec/typemap"
	"github.com/rs/zerolog"
)

// Decoder unpacks frames produced by Encoder.
//
// Compression is read from each frame header, so one decoder handles
// frames from encoders with any compression settings.
type Decoder struct {
	cfg    *Config
	logger zerolog.Logger
}

// NewDecoder creates a frame decoder.
//
// By default frames without a checksum are rejected; use WithChecksum(false)
// to accept them.
func NewDecoder(opts ...Option) (*Decoder, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Decoder{
		cfg:    cfg,
		logger: cfg.logger.With().Str("component", "frame-decoder").Logger(),
	}, nil
}

// Decode parses a frame back into a batch.
//
// The checksum, when present, is verified before any payload is inspected.
// The returned batch does not reference data.
func (d *Decoder) Decode(data []byte) (encoding.Batch, error) {
	header, offset, err := section.ParseFrameHeader(data)
	if err != nil {
		return encoding.Batch{}, err
	}

	body := data
	if header.Flag.HasChecksum() {
		if len(data) < offset+section.ChecksumSize {
			return encoding.Batch{}, errs.ErrTruncatedBuffer
		}

		end := len(data) - section.ChecksumSize
		if hash.Checksum(data[:end]) != endian.Network().Uint64(data[end:]) {
			return encoding.Batch{}, errs.ErrChecksumMismatch
		}
		body = data[:end]
	} else if d.cfg.checksum {
		return encoding.Batch{}, errs.ErrChecksumMissing
	}

	types := make([]format.DataType, len(header.Types))
	for i, wt := range header.Types {
		dt, err := typemap.ToInternal(wt)
		if err != nil {
			return encoding.Batch{}, fmt.Errorf("column %d: %w", i, err)
		}
		types[i] = dt
	}

	r := payloadReader{data: body, offset: offset, limit: d.cfg.maxPayloadSize}

	tsPayload, err := r.next("time")
	if err != nil {
		return encoding.Batch{}, err
	}

	valPayload, err := r.next("value")
	if err != nil {
		return encoding.Batch{}, err
	}

	if r.offset != len(body) {
		return encoding.Batch{}, fmt.Errorf("%w: %d bytes after value payload", errs.ErrTrailingBytes, len(body)-r.offset)
	}

	tsCodec, valCodec, err := codecs(header.Flag.TimeCompression(), header.Flag.ValueCompression())
	if err != nil {
		return encoding.Batch{}, err
	}

	timeBuf, err := tsCodec.DecompressLimit(tsPayload, d.cfg.maxPayloadSize)
	if err != nil {
		return encoding.Batch{}, fmt.Errorf("failed to decompress time payload: %w", err)
	}

	valueBuf, err := valCodec.DecompressLimit(valPayload, d.cfg.maxPayloadSize)
	if err != nil {
		return encoding.Batch{}, fmt.Errorf("failed to decompress value payload: %w", err)
	}

	timestamps, err := encoding.DecodeTimeBuffer(timeBuf)
	if err != nil {
		return encoding.Batch{}, err
	}

	count := int(header.Count)
	if len(timestamps) != count {
		return encoding.Batch{}, fmt.Errorf("%w: header declares %d rows, time payload holds %d",
			errs.ErrSizeMismatch, count, len(timestamps))
	}

	columns, err := encoding.DecodeValueBuffer(valueBuf, count, types)
	if err != nil {
		return encoding.Batch{}, err
	}

	d.logger.Debug().
		Int("rows", count).
		Int("columns", len(columns)).
		Int("frame_bytes", len(data)).
		Str("time_compression", header.Flag.TimeCompression().String()).
		Str("value_compression", header.Flag.ValueCompression().String()).
		Msg("Decoded frame")

	return encoding.Batch{Timestamps: timestamps, Columns: columns}, nil
}

// payloadReader walks the length-prefixed payloads of a frame body.
type payloadReader struct {
	data   []byte
	offset int
	limit  int
}

func (r *payloadReader) next(name string) ([]byte, error) {
	if len(r.data)-r.offset < section.LengthPrefixSize {
		return nil, fmt.Errorf("%w: %s payload length", errs.ErrTruncatedBuffer, name)
	}

	size := endian.Network().Uint32(r.data[r.offset:])
	r.offset += section.LengthPrefixSize

	if uint64(size) > uint64(r.limit) { //nolint:gosec
		return nil, fmt.Errorf("%w: %s payload is %d bytes, limit %d", errs.ErrPayloadTooLarge, name, size, r.limit)
	}

	n := int(size)
	if len(r.data)-r.offset < n {
		return nil, fmt.Errorf("%w: %s payload", errs.ErrTruncatedBuffer, name)
	}

	payload := r.data[r.offset : r.offset+n]
	r.offset += n

	return payload, nil
}
