package encoding

import (
	"fmt"
	"math"

	"github.com/daqio/adcwave/errs"
)

// ZeroSuppressParams controls the activity test and block merging of the
// zero-suppression encoder.
//
// The zero value yields the plain variant: a tick is active iff the absolute
// sample value exceeds the threshold, and blocks are maximal runs of
// consecutive active ticks.
type ZeroSuppressParams struct {
	// Threshold is the strict activity cut: a tick whose activity equals the
	// threshold is inactive.
	Threshold float64

	// NeighborDistance is the merge tolerance in ticks. A block tolerates up
	// to NeighborDistance consecutive inactive ticks before closing, and
	// block boundaries are padded by NeighborDistance to capture rising and
	// falling edges.
	NeighborDistance int

	// Pedestal biases the activity test: activity is |sample - Pedestal|.
	Pedestal float64

	// StickyCodes enables the sticky-code artifact filter; see IsStickyCode.
	StickyCodes bool

	// Neighbors holds the waveforms of neighboring channels. When non-empty,
	// the activity at a tick is the maximum activity across the target and
	// all neighbor waveforms at that tick, so isolated single-channel noise
	// is suppressed while correlated activity is kept.
	Neighbors [][]int16
}

// zsBlock is a recorded contiguous active tick-run.
type zsBlock struct {
	start  int
	length int
}

// active reports whether tick i of samples passes the activity cut.
func (p *ZeroSuppressParams) active(samples []int16, i int) bool {
	act := activity(samples[i], p.Pedestal, p.StickyCodes)
	for _, nb := range p.Neighbors {
		if i >= len(nb) {
			continue
		}
		if a := activity(nb[i], p.Pedestal, p.StickyCodes); a > act {
			act = a
		}
	}

	return act > p.Threshold
}

// findBlocks computes the disjoint, ordered block list for a waveform of n
// ticks under the canonical merge algorithm:
//
//  1. Active runs separated by at most NeighborDistance inactive ticks merge
//     into one block; a larger gap closes the block.
//  2. Each block is padded backward and forward by NeighborDistance, clipped
//     to the waveform bounds.
//  3. When padding would overlap the previous block, the later block's start
//     is clipped to the tick after the previous block's end, keeping blocks
//     disjoint without re-merging runs the tolerance already separated.
func findBlocks(samples []int16, p *ZeroSuppressParams) []zsBlock {
	n := len(samples)
	var blocks []zsBlock

	// Pass 1: merge active runs by gap tolerance.
	for i := 0; i < n; i++ {
		if !p.active(samples, i) {
			continue
		}

		if len(blocks) > 0 {
			last := &blocks[len(blocks)-1]
			end := last.start + last.length - 1
			if i-end-1 <= p.NeighborDistance {
				last.length = i - last.start + 1
				continue
			}
		}

		blocks = append(blocks, zsBlock{start: i, length: 1})
	}

	if p.NeighborDistance == 0 {
		return blocks
	}

	// Pass 2: pad edges, keeping blocks disjoint.
	prevEnd := -1
	for k := range blocks {
		start := blocks[k].start - p.NeighborDistance
		if start < 0 {
			start = 0
		}
		if start <= prevEnd {
			start = prevEnd + 1
		}

		end := blocks[k].start + blocks[k].length - 1 + p.NeighborDistance
		if end > n-1 {
			end = n - 1
		}

		blocks[k] = zsBlock{start: start, length: end - start + 1}
		prevEnd = end
	}

	return blocks
}

// EncodeZeroSuppress compresses a waveform by keeping only its active blocks.
//
// The encoded layout, in 16-bit words, is:
//
//	[origLen, nBlocks, start_0..n-1, length_0..n-1, sample_0..m-1]
//
// where the samples are the concatenated block contents in tick order. An
// all-quiet waveform encodes to nBlocks = 0 with no payload.
//
// The returned slice is newly allocated; the input is not modified. Waveforms
// longer than a header word can represent fail with ErrWaveformTooLong.
func EncodeZeroSuppress(samples []int16, p ZeroSuppressParams) ([]int16, error) {
	n := len(samples)
	if n > math.MaxInt16 {
		return nil, fmt.Errorf("%w: %d ticks", errs.ErrWaveformTooLong, n)
	}

	blocks := findBlocks(samples, &p)

	kept := 0
	for _, b := range blocks {
		kept += b.length
	}

	words := make([]int16, 0, 2+2*len(blocks)+kept)
	words = append(words, int16(n), int16(len(blocks)))
	for _, b := range blocks {
		words = append(words, int16(b.start))
	}
	for _, b := range blocks {
		words = append(words, int16(b.length))
	}
	for _, b := range blocks {
		words = append(words, samples[b.start:b.start+b.length]...)
	}

	return words, nil
}

// DecodeZeroSuppress reconstructs a zero-suppressed waveform into dst,
// filling suppressed regions with zero.
//
// dst must be pre-sized to the declared original length.
func DecodeZeroSuppress(words []int16, dst []int16) error {
	return decodeZeroSuppress(words, dst, 0)
}

// DecodeZeroSuppressPedestal reconstructs a zero-suppressed waveform into
// dst, filling suppressed regions with the rounded pedestal instead of zero.
// The pedestal must match the one supplied at encode time.
func DecodeZeroSuppressPedestal(words []int16, dst []int16, pedestal float64) error {
	return decodeZeroSuppress(words, dst, int16(math.Round(pedestal)))
}

func decodeZeroSuppress(words []int16, dst []int16, fill int16) error {
	if len(words) < 2 {
		return fmt.Errorf("%w: zero-suppressed buffer shorter than header", errs.ErrTruncatedStream)
	}

	origLen := int(words[0])
	nBlocks := int(words[1])
	if origLen < 0 || nBlocks < 0 {
		return fmt.Errorf("%w: negative header field", errs.ErrCorruptedStream)
	}
	if len(dst) != origLen {
		return fmt.Errorf("%w: declared %d samples, destination holds %d", errs.ErrDestinationSize, origLen, len(dst))
	}
	if len(words) < 2+2*nBlocks {
		return fmt.Errorf("%w: %d blocks declared, %d words present", errs.ErrTruncatedStream, nBlocks, len(words))
	}

	for i := range dst {
		dst[i] = fill
	}

	starts := words[2 : 2+nBlocks]
	lengths := words[2+nBlocks : 2+2*nBlocks]
	payload := words[2+2*nBlocks:]

	offset := 0
	for b := 0; b < nBlocks; b++ {
		start := int(starts[b])
		length := int(lengths[b])
		if start < 0 || length < 0 || start > origLen {
			return fmt.Errorf("%w: block %d out of range", errs.ErrCorruptedStream, b)
		}

		if offset+length > len(payload) {
			return fmt.Errorf("%w: block %d exceeds payload", errs.ErrTruncatedStream, b)
		}

		// A block recorded up to the waveform edge is clipped to what fits;
		// the payload still advances by the recorded length so the running
		// sum of block lengths matches the payload size.
		copyLen := length
		if start+copyLen > origLen {
			copyLen = origLen - start
		}

		copy(dst[start:start+copyLen], payload[offset:offset+copyLen])
		offset += length
	}

	return nil
}
