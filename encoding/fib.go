package encoding

import (
	"fmt"
	"math"
	"sync"

	"github.com/daqio/adcwave/errs"
)

// The Fibonacci table starts at F(2) so every positive integer has a unique
// Zeckendorf representation (F(1) would duplicate the value 1). It is built
// once on first use and read-only afterward; concurrent callers share it.
var (
	fibOnce  sync.Once
	fibTable []int64
)

// fibNumbers returns the shared Fibonacci table: 1, 2, 3, 5, 8, ...
//
// The table extends past 2^31, far beyond the largest zigzag-mapped
// difference of two 16-bit samples.
func fibNumbers() []int64 {
	fibOnce.Do(func() {
		table := make([]int64, 0, 48)
		a, b := int64(1), int64(2)
		for a <= 1<<31 {
			table = append(table, a)
			a, b = b, a+b
		}
		fibTable = table
	})

	return fibTable
}

// zigzag maps a signed difference to a non-negative integer: 0 -> 0,
// -1 -> 1, +1 -> 2, -2 -> 3, alternating sign.
func zigzag(d int64) int64 {
	return (d << 1) ^ (d >> 63)
}

// unzigzag inverts zigzag.
func unzigzag(m int64) int64 {
	return (m >> 1) ^ -(m & 1)
}

// EncodeFibonacci compresses a waveform with the Zeckendorf universal code.
//
// Each first difference is zigzag-mapped and shifted by one so it is a
// positive integer, then written as its Zeckendorf digit sequence: greedy
// subtraction of the largest Fibonacci number not exceeding the remainder
// guarantees no two adjacent set digits, so the appended terminator bit forms
// a "11" pair that cannot occur inside a codeword. The digit sequences are
// concatenated unpadded and packed into 16-bit words.
//
// Buffer layout: [origLen, anchorSample, packedBits...]. An empty waveform
// encodes to a lone zero-length header. Waveforms longer than a header word
// can represent fail with ErrWaveformTooLong.
func EncodeFibonacci(samples []int16) ([]int16, error) {
	n := len(samples)
	if n > math.MaxInt16 {
		return nil, fmt.Errorf("%w: %d ticks", errs.ErrWaveformTooLong, n)
	}
	if n == 0 {
		return []int16{0}, nil
	}

	fib := fibNumbers()
	w := bitWriter{}

	var digits [64]bool
	for i := 1; i < n; i++ {
		delta := int64(samples[i]) - int64(samples[i-1])
		v := zigzag(delta) + 1

		top := 0
		for top+1 < len(fib) && fib[top+1] <= v {
			top++
		}

		rem := v
		for k := top; k >= 0; k-- {
			if fib[k] <= rem {
				digits[k] = true
				rem -= fib[k]
			} else {
				digits[k] = false
			}
		}

		for k := 0; k <= top; k++ {
			if digits[k] {
				w.writeBit(1)
			} else {
				w.writeBit(0)
			}
		}
		w.writeBit(1) // terminator: forms the "11" pair
	}

	packed := w.flush()
	words := make([]int16, 0, 2+len(packed))
	words = append(words, int16(n), samples[0])
	words = append(words, packed...)

	return words, nil
}

// DecodeFibonacci reconstructs a Fibonacci-encoded waveform into dst.
//
// dst must be pre-sized to the declared original length. The bitstream is
// scanned once; each "11" pair closes a codeword, whose preceding set digits
// are summed as Fibonacci values, un-zigzagged and added to the running
// sample value. Decoding stops once the declared count is produced; a stream
// that ends earlier fails with ErrTruncatedStream.
func DecodeFibonacci(words []int16, dst []int16) error {
	if len(words) == 0 {
		return fmt.Errorf("%w: missing length header", errs.ErrTruncatedStream)
	}

	origLen := int(words[0])
	if origLen < 0 {
		return fmt.Errorf("%w: negative length header", errs.ErrCorruptedStream)
	}
	if len(dst) != origLen {
		return fmt.Errorf("%w: declared %d samples, destination holds %d", errs.ErrDestinationSize, origLen, len(dst))
	}
	if origLen == 0 {
		return nil
	}
	if len(words) < 2 {
		return fmt.Errorf("%w: missing anchor sample", errs.ErrTruncatedStream)
	}

	fib := fibNumbers()
	cur := words[1]
	dst[0] = cur

	r := newBitReader(words[2:])
	var value int64
	idx := 0
	prevSet := false

	for produced := 1; produced < origLen; {
		bit, ok := r.readBit()
		if !ok {
			return fmt.Errorf("%w: produced %d of %d samples", errs.ErrTruncatedStream, produced, origLen)
		}

		if bit == 1 && prevSet {
			delta := unzigzag(value - 1)
			cur = int16(int64(cur) + delta)
			dst[produced] = cur
			produced++

			value = 0
			idx = 0
			prevSet = false

			continue
		}

		if bit == 1 {
			if idx >= len(fib) {
				return fmt.Errorf("%w: Zeckendorf digit index out of range", errs.ErrCorruptedStream)
			}
			value += fib[idx]
			prevSet = true
		} else {
			prevSet = false
		}
		idx++
	}

	return nil
}
