package compress

// ZstdCompressor compresses payloads with Zstandard, trading speed for the
// best ratio of the built-in codecs; suited to archival of digitized runs.
//
// Two implementations back the same type: a cgo build binds libzstd through
// gozstd, while cgo-free builds fall back to the pure-Go encoder. The wire
// format is identical, so archives written by one build decompress on the
// other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
