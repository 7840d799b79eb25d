package compress

import (
	"testing"

	"github.com/daqio/adcwave/format"
	"github.com/stretchr/testify/require"
)

// testPayload mimics a serialized differential word buffer: little-endian
// words with long repetitive stretches.
func testPayload() []byte {
	payload := make([]byte, 0, 4096)
	for i := range 2048 {
		w := uint16(0x8000 | (i % 7))
		payload = append(payload, byte(w), byte(w>>8))
	}

	return payload
}

func TestGetCodec_AllTypes(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, ct := range types {
		codec, err := GetCodec(ct)
		require.NoError(t, err, "type %s", ct)
		require.NotNil(t, codec)
	}
}

func TestGetCodec_Unsupported(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0x99))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported compression type")
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := testPayload()

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err, "type %s", ct)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err, "type %s", ct)
		require.Equal(t, payload, restored, "type %s", ct)
	}
}

func TestCodecs_CompressRepetitivePayload(t *testing.T) {
	payload := testPayload()

	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), "type %s", ct)
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, compressed)

		restored, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

func TestNoOp_PassesThrough(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := testPayload()

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, restored)
}
