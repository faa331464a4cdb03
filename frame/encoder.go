// Package frame packs an encoded batch into a single self-describing,
// length-prefixed message for a transport, and unpacks it again.
//
// The frame carries the time buffer and the value buffer exactly as produced
// by the encoding package, each optionally compressed, behind a header that
// records the batch size and the wire type of every column. See the section
// package for the byte layout.
//
// Encoders and decoders are immutable after construction and safe for
// concurrent use.
package frame

import (
	"fmt"
	"io"

	"github.com/arloliu/tscodec/compress"
	"github.com/arloliu/tscodec/encoding"
	"github.com/arloliu/tscodec/endian"
	"github.com/arloliu/tscodec/errs"
	"github.com/arloliu/tscodec/internal/hash"
	"github.com/arloliu/tscodec/internal/pool"
	"github.com/arloliu/tscodec/section"
	"github.com/arloliu/tscodec/typemap"
	"github.com/arloliu/tscodec/wire"
	"github.com/rs/zerolog"
)

// Encoder builds frames from batches.
type Encoder struct {
	cfg      *Config
	flag     section.FrameFlag
	tsCodec  compress.Codec
	valCodec compress.Codec
	logger   zerolog.Logger
}

// NewEncoder creates a frame encoder.
//
// By default payloads are uncompressed and a checksum is appended.
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	tsCodec, valCodec, err := codecs(cfg.timeCompression, cfg.valueCompression)
	if err != nil {
		return nil, err
	}

	flag := section.NewFrameFlag()
	flag.SetChecksum(cfg.checksum)
	flag.SetTimeCompression(cfg.timeCompression)
	flag.SetValueCompression(cfg.valueCompression)

	return &Encoder{
		cfg:      cfg,
		flag:     flag,
		tsCodec:  tsCodec,
		valCodec: valCodec,
		logger:   cfg.logger.With().Str("component", "frame-encoder").Logger(),
	}, nil
}

// Encode serializes b into a newly allocated frame.
//
// Returns the errors of encoding.EncodeBatch, errs.ErrTooManyColumns, or
// errs.ErrPayloadTooLarge when a payload exceeds the configured limit.
func (e *Encoder) Encode(b encoding.Batch) ([]byte, error) {
	return e.AppendFrame(nil, b)
}

// WriteTo serializes b into a pooled buffer and writes the frame to w.
//
// Returns the number of bytes written. Nothing is written when encoding fails.
func (e *Encoder) WriteTo(w io.Writer, b encoding.Batch) (int64, error) {
	bb := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(bb)

	buf, err := e.AppendFrame(bb.B, b)
	if err != nil {
		return 0, err
	}
	bb.B = buf

	return bb.WriteTo(w)
}

// AppendFrame serializes b and appends the frame to dst.
//
// The returned slice shares dst's storage when its capacity suffices. On error
// dst is returned unchanged alongside the error.
func (e *Encoder) AppendFrame(dst []byte, b encoding.Batch) ([]byte, error) {
	header := section.FrameHeader{
		Flag:  e.flag,
		Count: uint32(b.Size()), //nolint:gosec
		Types: make([]wire.DataType, len(b.Columns)),
	}
	for i, col := range b.Columns {
		wt, err := typemap.ToWire(col.DataType())
		if err != nil {
			return dst, fmt.Errorf("column %d: %w", i, err)
		}
		header.Types[i] = wt
	}

	timeBuf, valueBuf, err := encoding.EncodeBatch(b)
	if err != nil {
		return dst, err
	}

	tsPayload, err := e.compressPayload(e.tsCodec, "time", timeBuf)
	if err != nil {
		return dst, err
	}

	valPayload, err := e.compressPayload(e.valCodec, "value", valueBuf)
	if err != nil {
		return dst, err
	}

	size := header.Size() + 2*section.LengthPrefixSize + len(tsPayload) + len(valPayload)
	if e.flag.HasChecksum() {
		size += section.ChecksumSize
	}

	start := len(dst)
	buf := dst
	if cap(buf)-start < size {
		buf = make([]byte, start, start+size)
		copy(buf, dst)
	}

	buf, err = header.AppendTo(buf)
	if err != nil {
		return dst, err
	}

	engine := endian.Network()
	buf = engine.AppendUint32(buf, uint32(len(tsPayload))) //nolint:gosec
	buf = append(buf, tsPayload...)
	buf = engine.AppendUint32(buf, uint32(len(valPayload))) //nolint:gosec
	buf = append(buf, valPayload...)

	if e.flag.HasChecksum() {
		buf = engine.AppendUint64(buf, hash.Checksum(buf[start:]))
	}

	e.logger.Debug().
		Int("rows", b.Size()).
		Int("columns", len(b.Columns)).
		Int("time_bytes", len(timeBuf)).
		Int("value_bytes", len(valueBuf)).
		Float64("time_ratio", compress.Ratio(len(timeBuf), len(tsPayload))).
		Float64("value_ratio", compress.Ratio(len(valueBuf), len(valPayload))).
		Int("frame_bytes", len(buf)-start).
		Msg("Encoded frame")

	return buf, nil
}

func (e *Encoder) compressPayload(codec compress.Codec, name string, data []byte) ([]byte, error) {
	if len(data) > e.cfg.maxPayloadSize {
		return nil, fmt.Errorf("%w: %s payload is %d bytes, limit %d", errs.ErrPayloadTooLarge, name, len(data), e.cfg.maxPayloadSize)
	}

	payload, err := codec.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to compress %s payload: %w", name, err)
	}

	if len(payload) > e.cfg.maxPayloadSize {
		return nil, fmt.Errorf("%w: compressed %s payload is %d bytes, limit %d", errs.ErrPayloadTooLarge, name, len(payload), e.cfg.maxPayloadSize)
	}

	return payload, nil
}
