package deflate

// BlockStats reports the intermediate shape of a compressed block without
// emitting a bitstream, grounded on
// other_examples/chronos-tachyon-flate__analysis.go's studyFrequenciesLLD
// and the teacher's own dynamicSize/makeStatistics split (compute first,
// inspect or assert against the result second).
type BlockStats struct {
	LLFrequencies [numLLSymbols]int32
	DDFrequencies [numDistanceCodes]int32
	HLIT          int
	HDIST         int
	HCLEN         int
}

// Analyze runs LZ77 and frequency tallying over input, builds the LL, DD
// and meta Huffman code lengths, and reports the resulting header sizes,
// without writing any bits. It exists to make the pipeline's intermediate state inspectable,
// e.g. against the frequency tables in spec.md §8's concrete scenarios.
func Analyze(input []byte) BlockStats {
	tokens := findMatches(input)
	llFreq, ddFreq := tally(tokens)
	if ddFreq == ([numDistanceCodes]int32{}) {
		ddFreq[0] = 1
	}

	llCodes := BuildHuffman(llFreq[:], 15)
	ddCodes := BuildHuffman(ddFreq[:], 15)

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
	metaLengths := codeLengths(metaCodes)

	hclen := 4
	for i := numMetaSymbols - 1; i >= 4; i-- {
		if metaLengths[codegenOrder[i]] != 0 {
			hclen = i + 1
			break
		}
	}

	return BlockStats{
		LLFrequencies: llFreq,
		DDFrequencies: ddFreq,
		HLIT:          hlit,
		HDIST:         hdist,
		HCLEN:         hclen,
	}
}
