package deflate

// Meta-alphabet symbols used to run-length encode the LL/DD code-length
// vectors, per RFC 1951 §3.2.7.
const (
	metaRepeatPrev  = 16 // repeat previous length 3-6 more times, 2 extra bits
	metaRepeatZero3 = 17 // 3-10 zeros, 3 extra bits
	metaRepeatZero7 = 18 // 11-138 zeros, 7 extra bits

	numMetaSymbols = 19
)

// codeLengthSymbol is one entry in the RLE-encoded code-length stream,
// per spec.md §4.6.
type codeLengthSymbol struct {
	Symbol    uint8
	ExtraBits uint
	ExtraVal  uint32
}

// encodeCodeLengths applies the greedy rule from spec.md §4.6 to the
// concatenation of the LL and DD code-length vectors, grounded on
// flate/huffman_bit_writer.go's generateCodegen.
func encodeCodeLengths(lengths []uint8) []codeLengthSymbol {
	var out []codeLengthSymbol

	n := len(lengths)
	for i := 0; i < n; {
		v := lengths[i]
		runLen := 1
		for i+runLen < n && lengths[i+runLen] == v {
			runLen++
		}

		if v == 0 {
			remaining := runLen
			for remaining > 0 {
				switch {
				case remaining >= 11:
					take := remaining
					if take > 138 {
						take = 138
					}
					out = append(out, codeLengthSymbol{Symbol: metaRepeatZero7, ExtraBits: 7, ExtraVal: uint32(take - 11)})
					remaining -= take
				case remaining >= 3:
					out = append(out, codeLengthSymbol{Symbol: metaRepeatZero3, ExtraBits: 3, ExtraVal: uint32(remaining - 3)})
					remaining = 0
				default:
					out = append(out, codeLengthSymbol{Symbol: 0})
					remaining--
				}
			}
		} else {
			out = append(out, codeLengthSymbol{Symbol: v})
			remaining := runLen - 1
			for remaining >= 3 {
				take := remaining
				if take > 6 {
					take = 6
				}
				out = append(out, codeLengthSymbol{Symbol: metaRepeatPrev, ExtraBits: 2, ExtraVal: uint32(take - 3)})
				remaining -= take
			}
			for ; remaining > 0; remaining-- {
				out = append(out, codeLengthSymbol{Symbol: v})
			}
		}

		i += runLen
	}

	return out
}
