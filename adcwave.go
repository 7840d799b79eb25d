// Package adcwave provides lossless compression for detector-channel
// waveforms: sequences of signed 16-bit ADC samples, one per digitization
// tick.
//
// Three codec families are available, selected by a closed mode set:
//
//   - format.ModeZeroSuppress collapses below-threshold regions, keeping only
//     blocks of interest, with neighbor-merging, pedestal/sticky-aware and
//     multi-channel activity variants.
//   - format.ModeDifferential packs a fixed prefix code over first
//     differences, tuned for long near-constant runs around a pedestal.
//   - format.ModeFibonacci writes zigzag-mapped differences as Zeckendorf
//     digit sequences, a universal code with no tuning parameters.
//
// format.ModeZeroSuppressDiff chains the first two, and format.ModeNone
// stores samples verbatim.
//
// # Basic Usage
//
// Compressing and restoring a waveform:
//
//	words, err := adcwave.Compress(samples, format.ModeZeroSuppress,
//	    adcwave.WithThreshold(5),
//	    adcwave.WithNeighborDistance(2))
//	if err != nil {
//	    return err
//	}
//
//	restored := make([]int16, len(samples))
//	err = adcwave.Uncompress(words, restored, format.ModeZeroSuppress)
//
// The mode and the declared sample count must be persisted alongside the
// buffer; decoding with a different mode or a mis-sized destination is
// rejected. The digit package bundles the three into a channel record with a
// serialized, checksummed envelope.
//
// All calls are synchronous, deterministic transforms over caller-owned
// buffers. The only process-wide state is the write-once Fibonacci table, so
// any number of channels may be compressed concurrently on independent
// buffers.
package adcwave

import (
	"fmt"
	"iter"

	"github.com/daqio/adcwave/encoding"
	"github.com/daqio/adcwave/errs"
	"github.com/daqio/adcwave/format"
	"github.com/daqio/adcwave/internal/pool"
)

// Compress encodes a waveform with the given mode and returns the compressed
// word buffer.
//
// The returned buffer is newly owned by the caller; the input slice is left
// intact and may be reused. Compression is one-shot and deterministic. There
// is no guarantee of size reduction on adversarial input.
func Compress(samples []int16, mode format.Mode, opts ...Option) ([]int16, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	switch mode {
	case format.ModeNone:
		return append([]int16(nil), samples...), nil

	case format.ModeDifferential:
		return encoding.EncodeDiff(samples)

	case format.ModeZeroSuppress:
		return encoding.EncodeZeroSuppress(samples, cfg.zsParams())

	case format.ModeZeroSuppressDiff:
		words, err := encoding.EncodeZeroSuppress(samples, cfg.zsParams())
		if err != nil {
			return nil, err
		}

		return encoding.EncodeDiff(words)

	case format.ModeFibonacci:
		return encoding.EncodeFibonacci(samples)

	default:
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrUnknownMode, uint8(mode))
	}
}

// Uncompress decodes a compressed word buffer into dst.
//
// dst must be pre-sized to the declared original sample count; only positions
// within it are written. The mode and any pedestal supplied at encode time
// must be passed identically here. An unrecognized mode fails with
// errs.ErrUnknownMode.
func Uncompress(words []int16, dst []int16, mode format.Mode, opts ...Option) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	switch mode {
	case format.ModeNone:
		if len(words) != len(dst) {
			return fmt.Errorf("%w: %d words, destination holds %d", errs.ErrDestinationSize, len(words), len(dst))
		}
		copy(dst, words)

		return nil

	case format.ModeDifferential:
		return encoding.DecodeDiff(words, dst)

	case format.ModeZeroSuppress:
		if cfg.pedestalSet {
			return encoding.DecodeZeroSuppressPedestal(words, dst, cfg.pedestal)
		}

		return encoding.DecodeZeroSuppress(words, dst)

	case format.ModeZeroSuppressDiff:
		return uncompressZeroSuppressDiff(words, dst, cfg)

	case format.ModeFibonacci:
		return encoding.DecodeFibonacci(words, dst)

	default:
		return fmt.Errorf("%w: 0x%02x", errs.ErrUnknownMode, uint8(mode))
	}
}

// uncompressZeroSuppressDiff undoes the composite mode: the differential
// layer is peeled off first, reproducing the zero-suppressed intermediate
// buffer, which is then expanded into dst.
//
// The intermediate length is not stored anywhere; it is discovered while
// streaming the differential decode, since the zero-suppression header and
// block lengths pin down the total word count.
func uncompressZeroSuppressDiff(words []int16, dst []int16, cfg *config) error {
	next, stop := pullDiff(words)
	defer stop()

	header, err := next(2)
	if err != nil {
		return err
	}

	nBlocks := int(header[1])
	if nBlocks < 0 {
		return fmt.Errorf("%w: negative block count", errs.ErrCorruptedStream)
	}

	table, err := next(2 * nBlocks)
	if err != nil {
		return err
	}

	kept := 0
	for _, length := range table[nBlocks:] {
		if length < 0 {
			return fmt.Errorf("%w: negative block length", errs.ErrCorruptedStream)
		}
		kept += int(length)
	}

	payload, err := next(kept)
	if err != nil {
		return err
	}

	total := 2 + 2*nBlocks + kept
	scratch, cleanup := pool.GetInt16Slice(total)
	defer cleanup()

	copy(scratch, header)
	copy(scratch[2:], table)
	copy(scratch[2+2*nBlocks:], payload)

	if cfg.pedestalSet {
		return encoding.DecodeZeroSuppressPedestal(scratch, dst, cfg.pedestal)
	}

	return encoding.DecodeZeroSuppress(scratch, dst)
}

// pullDiff adapts the differential value iterator into a pull function that
// yields the next n words or ErrTruncatedStream.
func pullDiff(words []int16) (func(n int) ([]int16, error), func()) {
	values, stop := iter.Pull(encoding.DiffValues(words))

	next := func(n int) ([]int16, error) {
		out := make([]int16, n)
		for i := range out {
			v, ok := values()
			if !ok {
				return nil, fmt.Errorf("%w: differential stream ended inside zero-suppression structure", errs.ErrTruncatedStream)
			}
			out[i] = v
		}

		return out, nil
	}

	return next, stop
}
