// Package errs defines the sentinel errors shared across adcwave packages.
//
// Call sites wrap these sentinels with context using fmt.Errorf and the %w
// verb, so callers can match them with errors.Is:
//
//	if errors.Is(err, errs.ErrUnknownMode) {
//	    // caller passed a mode value outside the closed set
//	}
package errs

import "errors"

var (
	// ErrUnknownMode indicates a compression mode outside the closed set
	// defined in the format package.
	ErrUnknownMode = errors.New("unknown compression mode")

	// ErrDestinationSize indicates a decode destination whose length does
	// not match the declared sample count of the encoded buffer.
	ErrDestinationSize = errors.New("destination size mismatch")

	// ErrWaveformTooLong indicates a waveform whose length cannot be
	// represented in a 16-bit header word.
	ErrWaveformTooLong = errors.New("waveform length exceeds header word range")

	// ErrSampleRange indicates a sample that cannot be carried by a
	// differential literal escape word.
	ErrSampleRange = errors.New("sample outside differential literal range")

	// ErrTruncatedStream indicates an encoded buffer that ended before the
	// declared number of samples was reconstructed.
	ErrTruncatedStream = errors.New("truncated compressed stream")

	// ErrCorruptedStream indicates an encoded buffer whose content cannot
	// have been produced by the matching encoder.
	ErrCorruptedStream = errors.New("corrupted compressed stream")

	// ErrInvalidOption indicates a compression option with an out-of-range
	// or inconsistent value.
	ErrInvalidOption = errors.New("invalid option")

	// ErrInvalidEnvelope indicates a serialized digit whose header is
	// malformed or has an unexpected magic or version.
	ErrInvalidEnvelope = errors.New("invalid digit envelope")

	// ErrChecksumMismatch indicates a serialized digit whose payload digest
	// does not match the digest recorded in its header.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")
)
