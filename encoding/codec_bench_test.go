package encoding

import "testing"

// benchWaveform builds a pedestal-centered waveform with sparse pulses, the
// shape these codecs see in production.
func benchWaveform(n int) []int16 {
	samples := make([]int16, n)
	state := uint32(0x9E37)
	for i := range samples {
		state = state*1664525 + 1013904223
		samples[i] = 2048 + int16(state%5) - 2
		if i%500 == 250 {
			samples[i] = 2048 + int16(200+state%100)
		}
	}

	return samples
}

func BenchmarkEncodeZeroSuppress(b *testing.B) {
	samples := benchWaveform(4096)
	p := ZeroSuppressParams{Threshold: 10, NeighborDistance: 3}

	b.ReportAllocs()
	for b.Loop() {
		_, _ = EncodeZeroSuppress(samples, p)
	}
}

func BenchmarkEncodeDiff(b *testing.B) {
	samples := benchWaveform(4096)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = EncodeDiff(samples)
	}
}

func BenchmarkDecodeDiff(b *testing.B) {
	samples := benchWaveform(4096)
	words, _ := EncodeDiff(samples)
	dst := make([]int16, len(samples))

	b.ReportAllocs()
	for b.Loop() {
		_ = DecodeDiff(words, dst)
	}
}

func BenchmarkEncodeFibonacci(b *testing.B) {
	samples := benchWaveform(4096)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = EncodeFibonacci(samples)
	}
}

func BenchmarkDecodeFibonacci(b *testing.B) {
	samples := benchWaveform(4096)
	words, _ := EncodeFibonacci(samples)
	dst := make([]int16, len(samples))

	b.ReportAllocs()
	for b.Loop() {
		_ = DecodeFibonacci(words, dst)
	}
}
