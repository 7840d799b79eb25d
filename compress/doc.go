// Package compress provides the optional byte-level codecs applied to
// serialized digit payloads.
//
// The waveform codecs in the encoding package already remove the
// redundancy a general-purpose compressor would find in raw samples; the
// codecs here squeeze the remaining entropy out of a serialized word
// payload before it is persisted or shipped. Four algorithms are
// available, keyed by format.CompressionType: None, Zstd, S2 and LZ4.
package compress
