package compress

import (
	"fmt"
	"io"

	"github.com/arloliu/tscodec/errs"
	"github.com/arloliu/tscodec/format"
)

// Compressor compresses a complete encoded buffer.
//
// The returned slice is owned by the caller. The input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor using the same algorithm.
//
// Implementations return an error for corrupted input or input produced by a
// different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// LimitedDecompressor decompresses with a bound on the output size.
//
// DecompressLimit fails with errs.ErrPayloadTooLarge as soon as the output
// would exceed limit bytes, without allocating past that bound.
type LimitedDecompressor interface {
	DecompressLimit(data []byte, limit int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
	LimitedDecompressor
}

func errTooLarge(algo string, limit int) error {
	return fmt.Errorf("%w: %s output exceeds %d bytes", errs.ErrPayloadTooLarge, algo, limit)
}

// Ratio returns compressed/original, or 0 when original is zero.
func Ratio(original, compressed int) float64 {
	if original == 0 {
		return 0
	}

	return float64(compressed) / float64(original)
}

// CreateCodec returns the Codec for the given compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of the payload being compressed (for error messages)
//
// Returns:
//   - Codec: codec instance for the specified type
//   - error: errs.ErrInvalidCompression for unknown types
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w for %s: %d", errs.ErrInvalidCompression, target, uint8(compressionType))
	}
}

// streamChunkSize is the initial output capacity of readLimited when the
// decompressed size is unknown.
const streamChunkSize = 64 * 1024

// readLimited drains r into a buffer whose capacity never exceeds limit+1.
// sizeHint, when positive, sets the initial capacity.
func readLimited(r io.Reader, sizeHint, limit int, algo string) ([]byte, error) {
	initial := streamChunkSize
	if sizeHint > 0 {
		initial = sizeHint + 1
	}
	buf := make([]byte, 0, min(initial, limit+1))

	for {
		if len(buf) == cap(buf) {
			grown := make([]byte, len(buf), min(2*cap(buf)+1, limit+1))
			copy(grown, buf)
			buf = grown
		}

		n, err := r.Read(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+n]

		if len(buf) > limit {
			return nil, errTooLarge(algo, limit)
		}

		if err == io.EOF {
			return buf, nil
		}

		if err != nil {
			return nil, fmt.Errorf("%s decompression failed: %w", algo, err)
		}
	}
}
