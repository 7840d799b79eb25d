package digit

import (
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/daqio/adcwave/compress"
	"github.com/daqio/adcwave/endian"
	"github.com/daqio/adcwave/errs"
	"github.com/daqio/adcwave/format"
	"github.com/daqio/adcwave/internal/pool"
)

// Envelope layout, all fields little-endian:
//
//	offset  size  field
//	0       4     magic "WDG1"
//	4       4     channel id
//	8       2     declared sample count
//	10      1     waveform compression mode
//	11      1     payload compression type
//	12      8     pedestal (IEEE-754 bits)
//	20      8     sigma (IEEE-754 bits)
//	28      4     word count of the uncompressed payload
//	32      8     xxhash64 of the uncompressed payload bytes
//	40      4     compressed payload byte length
//	44      ...   payload
//
// The digest is computed over the serialized words before payload
// compression, so corruption is caught regardless of the codec in use.
const (
	envelopeMagic      = uint32(0x31474457) // "WDG1"
	envelopeHeaderSize = 44
)

var wireEngine = endian.GetLittleEndianEngine()

// Marshal serializes the digit into a self-describing envelope, compressing
// the word payload with the given compression type.
func Marshal(d *Digit, compression format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}
	if d.Samples < 0 || d.Samples > math.MaxUint16 {
		return nil, fmt.Errorf("%w: sample count %d", errs.ErrInvalidEnvelope, d.Samples)
	}

	raw := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(raw)

	raw.Grow(2 * len(d.Words))
	for _, w := range d.Words {
		raw.B = wireEngine.AppendUint16(raw.B, uint16(w))
	}

	digest := xxhash.Sum64(raw.Bytes())

	payload, err := codec.Compress(raw.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	out := make([]byte, 0, envelopeHeaderSize+len(payload))
	out = wireEngine.AppendUint32(out, envelopeMagic)
	out = wireEngine.AppendUint32(out, d.Channel)
	out = wireEngine.AppendUint16(out, uint16(d.Samples))
	out = append(out, uint8(d.Mode), uint8(compression))
	out = wireEngine.AppendUint64(out, math.Float64bits(d.Pedestal))
	out = wireEngine.AppendUint64(out, math.Float64bits(d.Sigma))
	out = wireEngine.AppendUint32(out, uint32(len(d.Words)))
	out = wireEngine.AppendUint64(out, digest)
	out = wireEngine.AppendUint32(out, uint32(len(payload)))
	out = append(out, payload...)

	return out, nil
}

// Unmarshal parses an envelope back into a Digit, decompressing the payload
// and verifying its digest.
func Unmarshal(data []byte) (*Digit, error) {
	if len(data) < envelopeHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, header needs %d", errs.ErrInvalidEnvelope, len(data), envelopeHeaderSize)
	}
	if wireEngine.Uint32(data[0:4]) != envelopeMagic {
		return nil, fmt.Errorf("%w: bad magic", errs.ErrInvalidEnvelope)
	}

	d := &Digit{
		Channel:  wireEngine.Uint32(data[4:8]),
		Samples:  int(wireEngine.Uint16(data[8:10])),
		Mode:     format.Mode(data[10]),
		Pedestal: math.Float64frombits(wireEngine.Uint64(data[12:20])),
		Sigma:    math.Float64frombits(wireEngine.Uint64(data[20:28])),
	}
	compression := format.CompressionType(data[11])
	wordCount := int(wireEngine.Uint32(data[28:32]))
	digest := wireEngine.Uint64(data[32:40])
	payloadLen := int(wireEngine.Uint32(data[40:44]))

	if len(data) != envelopeHeaderSize+payloadLen {
		return nil, fmt.Errorf("%w: payload length %d does not match %d trailing bytes",
			errs.ErrInvalidEnvelope, payloadLen, len(data)-envelopeHeaderSize)
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(data[envelopeHeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}
	if len(raw) != 2*wordCount {
		return nil, fmt.Errorf("%w: %d payload bytes for %d words", errs.ErrInvalidEnvelope, len(raw), wordCount)
	}
	if xxhash.Sum64(raw) != digest {
		return nil, fmt.Errorf("%w: channel %d", errs.ErrChecksumMismatch, d.Channel)
	}

	d.Words = make([]int16, wordCount)
	for i := range d.Words {
		d.Words[i] = int16(wireEngine.Uint16(raw[2*i : 2*i+2]))
	}

	return d, nil
}
