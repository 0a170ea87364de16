// Package deflate implements the DEFLATE compression algorithm (RFC 1951):
// a sliding-window LZ77 matcher feeding a two-alphabet canonical Huffman
// coder, emitted as a single dynamic-Huffman block. It has no
// decompressor, no stored or fixed-Huffman block types, no multi-block
// splitting, and no zlib/gzip wrapper framing — Compress is a pure
// function from a bounded byte sequence to a complete DEFLATE stream.
package deflate

import (
	"errors"
	"fmt"
)

// MaxInputSize is the largest input Compress accepts. Inputs beyond this
// bound would need to be split across multiple blocks, which this
// package's single-block design does not support.
const MaxInputSize = 10 << 20 // 10 MiB

// ErrInputTooLarge is returned by Compress when input exceeds
// MaxInputSize.
var ErrInputTooLarge = errors.New("deflate: input too large")

// Compress returns a complete DEFLATE stream for input: a single dynamic
// Huffman block with BFINAL=1, ending with the end-of-block marker. It is
// byte-identical across runs for identical inputs.
//
// The result can be read back by any RFC 1951-compliant inflater,
// including the standard library's compress/flate.
func Compress(input []byte) ([]byte, error) {
	if len(input) > MaxInputSize {
		return nil, fmt.Errorf("deflate: %w: %d bytes exceeds limit of %d", ErrInputTooLarge, len(input), MaxInputSize)
	}

	tokens := findMatches(input)
	llFreq, ddFreq := tally(tokens)
	if ddFreq == ([numDistanceCodes]int32{}) {
		// No matches were found; the DD alphabet still needs at least
		// one symbol so a valid (if unused) distance table can be
		// transmitted. Mirrors flate/huffman_bit_writer.go's
		// makeStatistics forcing offsetFreq[0] = 1 in the same case.
		ddFreq[0] = 1
	}

	llCodes := BuildHuffman(llFreq[:], 15)
	ddCodes := BuildHuffman(ddFreq[:], 15)

	bw := NewBitWriter()
	writeDynamicBlock(bw, tokens, llCodes, ddCodes)
	return bw.Finalize(), nil
}
