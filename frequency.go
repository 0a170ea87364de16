package deflate

// numLLSymbols is the size of the literal/length alphabet: 256 literals,
// symbol 256 for end-of-block, and 29 length codes (257..285).
const numLLSymbols = 286

// eobSymbol is the literal/length alphabet's end-of-block marker.
const eobSymbol = 256

// tally walks a Token stream once and produces the LL and DD frequency
// tables described in spec.md §4.4, grounded on
// flate/huffman_bit_writer.go's makeStatistics.
func tally(tokens []Token) (ll [numLLSymbols]int32, dd [numDistanceCodes]int32) {
	for _, t := range tokens {
		switch t.Kind {
		case LiteralToken:
			ll[t.Literal]++
		case MatchToken:
			lengthCode, _, _ := lengthCodeFor(t.Length)
			ll[lengthCode]++
			distanceCode, _, _ := distanceCodeFor(t.Distance)
			dd[distanceCode]++
		}
	}
	ll[eobSymbol]++
	return ll, dd
}
