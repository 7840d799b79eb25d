// Package encoding implements the lossless waveform codecs used by adcwave.
//
// A waveform is an ordered []int16 of ADC samples, one per digitization tick.
// Every codec in this package transforms a waveform into a sequence of int16
// words whose layout is codec-specific, and back:
//
//   - Zero suppression keeps only contiguous above-threshold blocks, with
//     plain, neighbor-merging, pedestal/sticky-aware, and multi-channel
//     activity variants sharing one canonical block finder.
//   - The differential codec packs a fixed prefix code over sample-to-sample
//     differences into the low 15 bits of flagged words, tuned for long
//     near-constant runs around a pedestal.
//   - The Fibonacci codec writes each zigzag-mapped difference as a
//     Zeckendorf digit sequence closed by a "11" terminator, concatenated
//     into an unpadded bitstream.
//
// All encoders return a newly owned word slice and leave the input intact.
// All decoders require a destination pre-sized to the declared sample count
// and only write within it. The codecs hold no mutable shared state apart
// from the write-once Fibonacci table, so independent buffers may be encoded
// and decoded concurrently without coordination.
package encoding
