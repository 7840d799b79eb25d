package encoding

import (
	"testing"

	"github.com/daqio/adcwave/errs"
	"github.com/stretchr/testify/require"
)

func diffRoundTrip(t *testing.T, samples []int16) []int16 {
	t.Helper()

	words, err := EncodeDiff(samples)
	require.NoError(t, err)

	dst := make([]int16, len(samples))
	require.NoError(t, DecodeDiff(words, dst))

	return dst
}

func TestEncodeDiff_ConstantRun(t *testing.T) {
	samples := []int16{10, 10, 10, 10, 10}

	words, err := EncodeDiff(samples)
	require.NoError(t, err)

	// Anchor word plus a single coded word holding one "no change x4" code.
	require.Len(t, words, 2)
	require.Equal(t, int16(10), words[0])
	require.Equal(t, uint16(0xC000), uint16(words[1])) // flag + code bit at 14

	require.Equal(t, samples, diffRoundTrip(t, samples))
}

func TestEncodeDiff_SmallDeltas(t *testing.T) {
	samples := []int16{100, 101, 99, 100, 103, 100, 100}
	require.Equal(t, samples, diffRoundTrip(t, samples))
}

func TestEncodeDiff_LiteralEscape(t *testing.T) {
	// Every delta exceeds the coded range: the stream is anchor + literals.
	samples := []int16{0, 1000, -1000, 1000, -1000}

	words, err := EncodeDiff(samples)
	require.NoError(t, err)
	require.Len(t, words, 5)
	for _, w := range words[1:] {
		require.Zero(t, uint16(w)&0x8000, "literal words have the coded flag clear")
	}

	require.Equal(t, samples, diffRoundTrip(t, samples))
}

func TestEncodeDiff_NegativeLiterals(t *testing.T) {
	samples := []int16{-12000, 12000, -12000, -11990, -12000}
	require.Equal(t, samples, diffRoundTrip(t, samples))
}

func TestEncodeDiff_MixedCodesAndLiterals(t *testing.T) {
	samples := []int16{500, 500, 500, 500, 500, 501, 499, 620, 620, 620, 617, 620}
	require.Equal(t, samples, diffRoundTrip(t, samples))
}

func TestEncodeDiff_LongZeroRun(t *testing.T) {
	samples := make([]int16, 1000)
	for i := range samples {
		samples[i] = 420
	}

	words, err := EncodeDiff(samples)
	require.NoError(t, err)

	// 999 zero deltas fold into 249 x4 codes and 3 x1 codes; the x4 codes
	// are one bit each, so the whole run packs into ~17 coded words.
	require.Less(t, len(words), 25)
	require.Equal(t, samples, diffRoundTrip(t, samples))
}

func TestEncodeDiff_Empty(t *testing.T) {
	words, err := EncodeDiff([]int16{})
	require.NoError(t, err)
	require.Empty(t, words)

	require.NoError(t, DecodeDiff(words, []int16{}))
}

func TestEncodeDiff_SingleSample(t *testing.T) {
	samples := []int16{-321}

	words, err := EncodeDiff(samples)
	require.NoError(t, err)
	require.Equal(t, []int16{-321}, words)

	require.Equal(t, samples, diffRoundTrip(t, samples))
}

func TestEncodeDiff_SampleRange(t *testing.T) {
	// The second sample needs a literal escape but exceeds the 15-bit
	// two's-complement range a literal word can carry.
	_, err := EncodeDiff([]int16{0, 20000})
	require.ErrorIs(t, err, errs.ErrSampleRange)

	// In-range extremes are fine.
	samples := []int16{0, 16383, -16384, 0}
	require.Equal(t, samples, diffRoundTrip(t, samples))
}

func TestDecodeDiff_TruncatedStream(t *testing.T) {
	words, err := EncodeDiff([]int16{7, 7, 8, 9, 9, 9})
	require.NoError(t, err)

	// Declaring more samples than the stream carries is a truncation error.
	err = DecodeDiff(words, make([]int16, 10))
	require.ErrorIs(t, err, errs.ErrTruncatedStream)

	err = DecodeDiff([]int16{}, make([]int16, 1))
	require.ErrorIs(t, err, errs.ErrTruncatedStream)
}

func TestDecodeDiff_ExcessSamples(t *testing.T) {
	words, err := EncodeDiff([]int16{7, 7, 7, 7, 7})
	require.NoError(t, err)

	// A destination smaller than the stream's sample count means the caller
	// paired the buffer with the wrong declared length.
	err = DecodeDiff(words, make([]int16, 2))
	require.ErrorIs(t, err, errs.ErrCorruptedStream)
}

func TestDiffValues_StopsEarly(t *testing.T) {
	words, err := EncodeDiff([]int16{1, 2, 3, 4, 5})
	require.NoError(t, err)

	var got []int16
	for v := range DiffValues(words) {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}

	require.Equal(t, []int16{1, 2, 3}, got)
}
