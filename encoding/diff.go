package encoding

import (
	"fmt"
	"iter"

	"github.com/daqio/adcwave/errs"
)

// The differential codec packs a fixed, hand-built prefix code over first
// differences into 16-bit words. It is not a canonical Huffman tree: the code
// lengths are tuned for pedestal-centered waveforms dominated by long
// no-change runs.
//
// Word layout: bit 15 of each word is the coded-block flag. A flag of 0 marks
// a literal word whose low 15 bits carry a two's-complement sample value; the
// bit cursor restarts at the next word. A flag of 1 marks a coded word whose
// bits 14..0 are scanned high to low; the number of zero bits preceding each
// set bit selects the action:
//
//	zeros  action
//	0      no change, repeated 4 ticks
//	1      no change, 1 tick
//	2      +1    3      -1
//	4      +2    5      -2
//	6      +3    7      -3
//
// Zero runs continue across consecutive coded words. Any difference with
// magnitude above 3 escapes to a literal word. The first waveform sample is
// always stored as a raw 16-bit anchor in word 0.
const (
	diffCodedFlag   = uint16(0x8000)
	diffLiteralMask = uint16(0x7FFF)
	diffLiteralSign = uint16(0x4000)

	// diffLiteralMax bounds the values a literal escape word can carry:
	// 15-bit two's complement.
	diffLiteralMax = 16383
	diffLiteralMin = -16384
)

// zero-run lengths of the delta codes, indexed by action.
const (
	codeRepeat0x4 = 0
	codeRepeat0x1 = 1
	codePlus1     = 2
	codeMinus1    = 3
	codePlus2     = 4
	codeMinus2    = 5
	codePlus3     = 6
	codeMinus3    = 7
)

// diffWriter builds the packed word stream for the differential encoder.
//
// Code bits land in bits 14..0 of the word under construction; a full word is
// closed with the coded flag set and a new one opened, so codes may span
// coded words. Literals close any partially built coded word first, padding
// it with zero bits that the decoder's cursor restart makes harmless.
type diffWriter struct {
	words  []int16
	cur    uint16
	bitPos int
	open   bool
}

func newDiffWriter(anchor int16) *diffWriter {
	return &diffWriter{
		words:  []int16{anchor},
		bitPos: 14,
	}
}

func (w *diffWriter) codeBit(bit uint16) {
	if !w.open {
		w.cur = 0
		w.bitPos = 14
		w.open = true
	}

	if bit != 0 {
		w.cur |= 1 << w.bitPos
	}
	w.bitPos--

	if w.bitPos < 0 {
		w.words = append(w.words, int16(w.cur|diffCodedFlag))
		w.open = false
	}
}

// code emits the prefix code with the given number of leading zero bits.
func (w *diffWriter) code(zeros int) {
	for range zeros {
		w.codeBit(0)
	}
	w.codeBit(1)
}

// literal closes the current coded word and emits a 15-bit literal word.
func (w *diffWriter) literal(value int16) {
	if w.open {
		w.words = append(w.words, int16(w.cur|diffCodedFlag))
		w.open = false
	}

	w.words = append(w.words, int16(uint16(value)&diffLiteralMask))
}

func (w *diffWriter) finish() []int16 {
	if w.open {
		w.words = append(w.words, int16(w.cur|diffCodedFlag))
		w.open = false
	}

	return w.words
}

// EncodeDiff compresses a waveform with the differential prefix code.
//
// The returned slice is newly allocated; the input is not modified. An empty
// waveform encodes to an empty buffer. Samples outside the literal escape
// range fail with ErrSampleRange.
func EncodeDiff(samples []int16) ([]int16, error) {
	if len(samples) == 0 {
		return []int16{}, nil
	}

	w := newDiffWriter(samples[0])

	zeroRun := 0
	flushZeros := func() {
		for ; zeroRun >= 4; zeroRun -= 4 {
			w.code(codeRepeat0x4)
		}
		for ; zeroRun > 0; zeroRun-- {
			w.code(codeRepeat0x1)
		}
	}

	for i := 1; i < len(samples); i++ {
		delta := int(samples[i]) - int(samples[i-1])
		if delta == 0 {
			zeroRun++
			continue
		}

		flushZeros()

		switch delta {
		case 1:
			w.code(codePlus1)
		case -1:
			w.code(codeMinus1)
		case 2:
			w.code(codePlus2)
		case -2:
			w.code(codeMinus2)
		case 3:
			w.code(codePlus3)
		case -3:
			w.code(codeMinus3)
		default:
			if samples[i] < diffLiteralMin || samples[i] > diffLiteralMax {
				return nil, fmt.Errorf("%w: sample %d at tick %d", errs.ErrSampleRange, samples[i], i)
			}
			w.literal(samples[i])
		}
	}

	flushZeros()

	return w.finish(), nil
}

// DiffValues returns an iterator over the samples of a differential-encoded
// buffer.
//
// The iterator reconstructs the running sample value from the anchor word,
// yielding each decoded sample in tick order until the buffer is exhausted
// or the consumer stops. A malformed buffer ends the iteration early; use
// DecodeDiff when the expected sample count is known.
func DiffValues(words []int16) iter.Seq[int16] {
	return func(yield func(int16) bool) {
		if len(words) == 0 {
			return
		}

		cur := words[0]
		if !yield(cur) {
			return
		}

		zeroRun := 0
		for _, raw := range words[1:] {
			w := uint16(raw)

			if w&diffCodedFlag == 0 {
				// Literal word: the bit cursor restarts, dropping any
				// pending zero count from the padding of the previous
				// coded word.
				zeroRun = 0
				v := int16(w & diffLiteralMask)
				if w&diffLiteralSign != 0 {
					v |= ^int16(diffLiteralMask)
				}
				cur = v
				if !yield(cur) {
					return
				}

				continue
			}

			for bit := 14; bit >= 0; bit-- {
				if w&(1<<bit) == 0 {
					zeroRun++
					continue
				}

				repeat := 1
				switch zeroRun {
				case codeRepeat0x4:
					repeat = 4
				case codeRepeat0x1:
				case codePlus1:
					cur++
				case codeMinus1:
					cur--
				case codePlus2:
					cur += 2
				case codeMinus2:
					cur -= 2
				case codePlus3:
					cur += 3
				case codeMinus3:
					cur -= 3
				default:
					return
				}
				zeroRun = 0

				for range repeat {
					if !yield(cur) {
						return
					}
				}
			}
		}
	}
}

// DecodeDiff reconstructs a differential-encoded waveform into dst.
//
// dst must be pre-sized to the original sample count; the differential layout
// carries no length header, so the count comes from the caller. A buffer that
// ends before dst is filled fails with ErrTruncatedStream; a buffer that
// yields more samples than dst holds fails with ErrCorruptedStream.
func DecodeDiff(words []int16, dst []int16) error {
	produced := 0
	for v := range DiffValues(words) {
		if produced == len(dst) {
			return fmt.Errorf("%w: more samples than the %d declared", errs.ErrCorruptedStream, len(dst))
		}
		dst[produced] = v
		produced++
	}

	if produced < len(dst) {
		return fmt.Errorf("%w: produced %d of %d samples", errs.ErrTruncatedStream, produced, len(dst))
	}

	return nil
}
