package encoding

// bitWriter packs bits MSB-first into 16-bit words.
//
// It backs the Fibonacci codec, which concatenates variable-length digit
// sequences with no per-sample padding. Bits accumulate in a word-sized
// buffer and are appended to the word slice whenever 16 bits are full;
// flush pads the final partial word with zero bits.
type bitWriter struct {
	words  []int16
	cur    uint16
	filled int
}

// writeBit appends a single bit to the stream.
func (w *bitWriter) writeBit(bit uint16) {
	w.cur = (w.cur << 1) | (bit & 1)
	w.filled++

	if w.filled == 16 {
		w.words = append(w.words, int16(w.cur))
		w.cur = 0
		w.filled = 0
	}
}

// writeBits appends the numBits low-order bits of value, MSB-first.
func (w *bitWriter) writeBits(value uint64, numBits int) {
	for i := numBits - 1; i >= 0; i-- {
		w.writeBit(uint16(value>>i) & 1)
	}
}

// flush pads the current partial word with zero bits and appends it.
// The writer must not be used after flush.
func (w *bitWriter) flush() []int16 {
	if w.filled > 0 {
		w.cur <<= 16 - w.filled
		w.words = append(w.words, int16(w.cur))
		w.cur = 0
		w.filled = 0
	}

	return w.words
}

// bitReader consumes bits MSB-first from a sequence of 16-bit words.
type bitReader struct {
	words []int16
	pos   int
	cur   uint16
	left  int
}

func newBitReader(words []int16) *bitReader {
	return &bitReader{words: words}
}

// readBit reads a single bit from the stream.
//
// Returns the bit value and true, or zero and false when no words remain.
func (r *bitReader) readBit() (uint16, bool) {
	if r.left == 0 {
		if r.pos >= len(r.words) {
			return 0, false
		}
		r.cur = uint16(r.words[r.pos])
		r.pos++
		r.left = 16
	}

	bit := (r.cur >> 15) & 1
	r.cur <<= 1
	r.left--

	return bit, true
}
