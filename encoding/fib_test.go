package encoding

import (
	"math"
	"testing"

	"github.com/daqio/adcwave/errs"
	"github.com/stretchr/testify/require"
)

func fibRoundTrip(t *testing.T, samples []int16) []int16 {
	t.Helper()

	words, err := EncodeFibonacci(samples)
	require.NoError(t, err)

	dst := make([]int16, len(samples))
	require.NoError(t, DecodeFibonacci(words, dst))

	return dst
}

func TestFibNumbers_TableProperties(t *testing.T) {
	fib := fibNumbers()

	require.Equal(t, int64(1), fib[0])
	require.Equal(t, int64(2), fib[1])
	require.Equal(t, int64(3), fib[2])
	for i := 2; i < len(fib); i++ {
		require.Equal(t, fib[i-1]+fib[i-2], fib[i])
	}

	// Large enough for any zigzag-mapped delta of two int16 samples.
	require.Greater(t, fib[len(fib)-1], int64(1)<<31)

	// The table is shared: repeated calls return the same backing array.
	require.Equal(t, &fib[0], &fibNumbers()[0])
}

func TestZigzag_Mapping(t *testing.T) {
	require.Equal(t, int64(0), zigzag(0))
	require.Equal(t, int64(1), zigzag(-1))
	require.Equal(t, int64(2), zigzag(1))
	require.Equal(t, int64(3), zigzag(-2))
	require.Equal(t, int64(4), zigzag(2))

	for _, d := range []int64{0, 1, -1, 317, -65534, 65534} {
		require.Equal(t, d, unzigzag(zigzag(d)))
	}
}

func TestEncodeFibonacci_KnownCodewords(t *testing.T) {
	// Deltas 0, +1 and -1 map (after zigzag and the +1 shift) to the
	// Zeckendorf values 1, 3 and 2: codewords 11, 0011 and 011.
	words, err := EncodeFibonacci([]int16{5, 5, 6, 5})
	require.NoError(t, err)

	require.Equal(t, int16(4), words[0])
	require.Equal(t, int16(5), words[1])
	require.Len(t, words, 3)

	// 11 0011 011 packed MSB-first, zero-padded to a word.
	require.Equal(t, uint16(0b1100_1101_1000_0000), uint16(words[2]))
}

func TestEncodeFibonacci_SmallWaveform(t *testing.T) {
	samples := []int16{100, 101, 99, 100}
	require.Equal(t, samples, fibRoundTrip(t, samples))
}

func TestEncodeFibonacci_Empty(t *testing.T) {
	words, err := EncodeFibonacci([]int16{})
	require.NoError(t, err)
	require.Equal(t, []int16{0}, words)

	require.NoError(t, DecodeFibonacci(words, []int16{}))
}

func TestEncodeFibonacci_SingleSample(t *testing.T) {
	samples := []int16{-4096}

	words, err := EncodeFibonacci(samples)
	require.NoError(t, err)
	require.Equal(t, []int16{1, -4096}, words)

	require.Equal(t, samples, fibRoundTrip(t, samples))
}

func TestEncodeFibonacci_ExtremeDeltas(t *testing.T) {
	samples := []int16{math.MinInt16, math.MaxInt16, math.MinInt16, 0, math.MaxInt16}
	require.Equal(t, samples, fibRoundTrip(t, samples))
}

func TestEncodeFibonacci_PedestalWaveform(t *testing.T) {
	samples := make([]int16, 800)
	for i := range samples {
		samples[i] = 2048
	}
	samples[100] = 2300
	samples[101] = 2500
	samples[102] = 2210

	words, err := EncodeFibonacci(samples)
	require.NoError(t, err)

	// Constant regions cost two bits per tick; the buffer shrinks well
	// below the raw sample count.
	require.Less(t, len(words), 160)
	require.Equal(t, samples, fibRoundTrip(t, samples))
}

func TestDecodeFibonacci_DestinationSize(t *testing.T) {
	words, err := EncodeFibonacci([]int16{1, 2, 3})
	require.NoError(t, err)

	err = DecodeFibonacci(words, make([]int16, 4))
	require.ErrorIs(t, err, errs.ErrDestinationSize)
}

func TestDecodeFibonacci_TruncatedStream(t *testing.T) {
	err := DecodeFibonacci([]int16{}, []int16{})
	require.ErrorIs(t, err, errs.ErrTruncatedStream)

	// Declared length with no anchor word.
	err = DecodeFibonacci([]int16{3}, make([]int16, 3))
	require.ErrorIs(t, err, errs.ErrTruncatedStream)

	// Anchor present but the bitstream ends before all samples decode.
	err = DecodeFibonacci([]int16{3, 7}, make([]int16, 3))
	require.ErrorIs(t, err, errs.ErrTruncatedStream)
}
