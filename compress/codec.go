package compress

import (
	"fmt"

	"github.com/daqio/adcwave/format"
)

// Compressor compresses a serialized digit payload.
//
// Payloads are word buffers already transformed by a waveform codec, so
// implementations should favor throughput over exotic matching: the
// remaining redundancy is mostly short literal structure.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The returned slice is newly allocated and owned by the caller; the
	// input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Implementations must be safe for concurrent use or document their
// thread-safety requirements clearly.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original
	// payload.
	//
	// The returned slice is newly allocated and owned by the caller; the
	// input slice is not modified. Corrupted or format-incompatible data
	// returns an error.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
