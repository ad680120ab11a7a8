package compress

// ZstdCompressor provides Zstandard compression for layout blob payloads.
//
// Zstd gives the best ratio of the supported algorithms and is the default for
// name payloads, which are dominated by repeated mnemonics and padding.
//
// Two implementations are selected at build time: a cgo-backed one via
// valyala/gozstd (build tag "cgozstd") and a pure-Go one via
// klauspost/compress/zstd (default). Both produce interchangeable frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
