package format

type (
	// Mode identifies the waveform compression scheme applied to a channel's
	// ADC samples. The set is closed; decoding a buffer with a mode other
	// than the one it was encoded with is undefined.
	Mode uint8

	// CompressionType identifies the optional byte-level compression applied
	// to a serialized digit payload.
	CompressionType uint8
)

const (
	ModeNone             Mode = 0x1 // ModeNone stores the literal sample sequence.
	ModeDifferential     Mode = 0x2 // ModeDifferential is the bit-packed prefix code over first differences.
	ModeZeroSuppress     Mode = 0x3 // ModeZeroSuppress keeps only above-threshold blocks.
	ModeZeroSuppressDiff Mode = 0x4 // ModeZeroSuppressDiff zero-suppresses, then differential-encodes the result.
	ModeFibonacci        Mode = 0x5 // ModeFibonacci is the Zeckendorf universal code over zigzag deltas.

	CompressionNone CompressionType = 0x1 // CompressionNone stores the payload uncompressed.
	CompressionZstd CompressionType = 0x2 // CompressionZstd applies Zstandard to the payload.
	CompressionS2   CompressionType = 0x3 // CompressionS2 applies S2 to the payload.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 applies LZ4 to the payload.
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "None"
	case ModeDifferential:
		return "Differential"
	case ModeZeroSuppress:
		return "ZeroSuppress"
	case ModeZeroSuppressDiff:
		return "ZeroSuppressDiff"
	case ModeFibonacci:
		return "Fibonacci"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
