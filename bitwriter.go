package deflate

// BitWriter accumulates a stream of bits and packs them into bytes
// LSB-first within each byte, per RFC 1951 §3.1.1.
//
// RFC 1951 mandates two different bit orders: Huffman codes are written
// with their most significant bit first, while everything else (header
// fields and the "extra bits" that follow length/distance/repeat codes)
// is written least significant bit first. BitWriter exposes one method
// for each so that no caller has to reason about bit order directly.
type BitWriter struct {
	dst []byte

	// bits holds pending output bits, low bit first; nbits of them are
	// valid. Mirrors flate/huffman_bit_writer.go's accumulator.
	bits  uint64
	nbits uint
}

// NewBitWriter returns an empty BitWriter.
func NewBitWriter() *BitWriter {
	return &BitWriter{}
}

// AppendBit appends a single bit.
func (w *BitWriter) AppendBit(b uint) {
	w.pack(uint64(b&1), 1)
}

// AppendBitsLSB appends the low n bits of value, least-significant bit
// first.
func (w *BitWriter) AppendBitsLSB(value uint32, n uint) {
	if n == 0 {
		return
	}
	w.pack(uint64(value)&((1<<n)-1), n)
}

// AppendBitsMSB appends the low n bits of value, most-significant bit
// first. Used exclusively for Huffman codes: the canonical code value
// stored by HuffmanBuilder is already MSB-first within its bit length, so
// this reverses it into the writer's LSB-first accumulator.
func (w *BitWriter) AppendBitsMSB(value uint32, n uint) {
	for i := int(n) - 1; i >= 0; i-- {
		w.pack(uint64((value>>uint(i))&1), 1)
	}
}

// pack pushes n bits (already right-aligned in v) into the accumulator,
// flushing whole bytes to dst once eight or more bits are buffered.
func (w *BitWriter) pack(v uint64, n uint) {
	w.bits |= v << w.nbits
	w.nbits += n
	for w.nbits >= 8 {
		w.dst = append(w.dst, byte(w.bits))
		w.bits >>= 8
		w.nbits -= 8
	}
}

// Finalize returns the accumulated bytes, zero-padding the last byte if
// the total bit count is not a multiple of 8. The BitWriter must not be
// reused afterward.
func (w *BitWriter) Finalize() []byte {
	if w.nbits > 0 {
		w.dst = append(w.dst, byte(w.bits))
		w.bits = 0
		w.nbits = 0
	}
	return w.dst
}

// BitLength reports the number of bits appended so far.
func (w *BitWriter) BitLength() int {
	return len(w.dst)*8 + int(w.nbits)
}
