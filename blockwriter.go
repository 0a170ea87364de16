package deflate

import "github.com/chronos-tachyon/assert"

// codegenOrder is the odd order in which meta code-length sizes are
// transmitted, per RFC 1951 §3.2.7 — transcribed from
// flate/huffman_bit_writer.go's codegenOrder.
var codegenOrder = [numMetaSymbols]uint8{16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15}

// writeDynamicBlock emits the single dynamic-Huffman block described by
// spec.md §4.7: header sizes, the meta table, the RLE-encoded LL/DD
// code-length vectors, the token stream, and EOB.
func writeDynamicBlock(bw *BitWriter, tokens []Token, llCodes, ddCodes []Code) {
	llLengths := codeLengths(llCodes)
	ddLengths := codeLengths(ddCodes)

	hlit := lastNonZero(llLengths, 257)
	hdist := lastNonZero(ddLengths, 1)

	combined := make([]uint8, hlit+hdist)
	copy(combined, llLengths[:hlit])
	copy(combined[hlit:], ddLengths[:hdist])

	rle := encodeCodeLengths(combined)

	var metaFreq [numMetaSymbols]int32
	for _, sym := range rle {
		metaFreq[sym.Symbol]++
	}
	metaCodes := BuildHuffman(metaFreq[:], 7)
	metaLengths := make([]uint8, numMetaSymbols)
	for i, c := range metaCodes {
		metaLengths[i] = c.Length
	}

	hclen := 4
	for i := numMetaSymbols - 1; i >= 4; i-- {
		if metaLengths[codegenOrder[i]] != 0 {
			hclen = i + 1
			break
		}
	}

	assert.Assertf(hlit >= 257 && hlit <= 286, "HLIT %d out of range", hlit)
	assert.Assertf(hdist >= 1 && hdist <= 30, "HDIST %d out of range", hdist)
	assert.Assertf(hclen >= 4 && hclen <= numMetaSymbols, "HCLEN %d out of range", hclen)

	bw.AppendBit(1) // BFINAL: this is the only and final block.
	bw.AppendBitsLSB(2, 2) // BTYPE: dynamic Huffman.

	bw.AppendBitsLSB(uint32(hlit-257), 5)
	bw.AppendBitsLSB(uint32(hdist-1), 5)
	bw.AppendBitsLSB(uint32(hclen-4), 4)

	for i := 0; i < hclen; i++ {
		bw.AppendBitsLSB(uint32(metaLengths[codegenOrder[i]]), 3)
	}

	for _, sym := range rle {
		c := metaCodes[sym.Symbol]
		bw.AppendBitsMSB(c.Value, uint(c.Length))
		if sym.ExtraBits > 0 {
			bw.AppendBitsLSB(sym.ExtraVal, sym.ExtraBits)
		}
	}

	for _, t := range tokens {
		switch t.Kind {
		case LiteralToken:
			c := llCodes[t.Literal]
			bw.AppendBitsMSB(c.Value, uint(c.Length))
		case MatchToken:
			lengthCode, lenExtraBits, lenExtraVal := lengthCodeFor(t.Length)
			lc := llCodes[lengthCode]
			bw.AppendBitsMSB(lc.Value, uint(lc.Length))
			if lenExtraBits > 0 {
				bw.AppendBitsLSB(uint32(lenExtraVal), lenExtraBits)
			}

			distanceCode, distExtraBits, distExtraVal := distanceCodeFor(t.Distance)
			dc := ddCodes[distanceCode]
			bw.AppendBitsMSB(dc.Value, uint(dc.Length))
			if distExtraBits > 0 {
				bw.AppendBitsLSB(uint32(distExtraVal), distExtraBits)
			}
		}
	}

	eob := llCodes[eobSymbol]
	bw.AppendBitsMSB(eob.Value, uint(eob.Length))
}

// codeLengths extracts the per-symbol bit length from a canonical code
// table.
func codeLengths(codes []Code) []uint8 {
	lengths := make([]uint8, len(codes))
	for i, c := range codes {
		lengths[i] = c.Length
	}
	return lengths
}

// lastNonZero returns max(floor, 1+index of the last non-zero entry).
func lastNonZero(lengths []uint8, floor int) int {
	last := -1
	for i, l := range lengths {
		if l != 0 {
			last = i
		}
	}
	n := last + 1
	if n < floor {
		n = floor
	}
	return n
}
