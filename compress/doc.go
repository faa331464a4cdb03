// Package compress provides the block compressors applied to frame payloads.
//
// The time and value buffers produced by the encoding package are fixed-layout
// and often highly redundant (regular timestamps, repeated values, repeated
// text). A frame may compress each buffer independently with one of:
//
//   - None: payload is carried as-is
//   - Zstd: best ratio, klauspost/compress by default or valyala/gozstd when
//     built with the `gozstd` tag and cgo enabled
//   - S2: fastest, klauspost/compress/s2
//   - LZ4: fast block compression, pierrec/lz4
//
// Use CreateCodec to obtain a Codec for a format.CompressionType.
//
// # Thread Safety
//
// All codecs are stateless values. Encoder and decoder state is kept in
// sync.Pools, so codecs are safe for concurrent use.
package compress
