package compress

// ZstdCompressor provides Zstandard compression.
//
// Two backends exist: the pure Go klauspost/compress/zstd implementation
// (default) and the cgo valyala/gozstd binding, selected with the `gozstd`
// build tag. Both produce standard zstd frames and interoperate.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
