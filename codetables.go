package deflate

// Static length/distance code tables, per RFC 1951 §3.2.5, transcribed
// from flate/huffman_bit_writer.go's lengthExtraBits/lengthBase and
// offsetExtraBits/offsetBase package vars.

const (
	// firstLengthCode is the literal/length alphabet symbol for the
	// shortest match length (3 bytes).
	firstLengthCode = 257
	// numLengthCodes is the number of length codes, 257..285 inclusive.
	numLengthCodes = 29
	// numDistanceCodes is the number of distance codes, 0..29 inclusive.
	numDistanceCodes = 30
)

// lengthExtraBits gives the number of extra bits needed by length code
// (firstLengthCode + i).
var lengthExtraBits = [numLengthCodes]uint{
	0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1,
	2, 2, 2, 2,
	3, 3, 3, 3,
	4, 4, 4, 4,
	5, 5, 5, 5,
	0,
}

// lengthBase gives the smallest match length encoded by length code
// (firstLengthCode + i), before adding the extra bits value.
var lengthBase = [numLengthCodes]int{
	3, 4, 5, 6, 7, 8, 9, 10,
	11, 13, 15, 17,
	19, 23, 27, 31,
	35, 43, 51, 59,
	67, 83, 99, 115,
	131, 163, 195, 227,
	258,
}

// distanceExtraBits gives the number of extra bits needed by distance
// code i.
var distanceExtraBits = [numDistanceCodes]uint{
	0, 0, 0, 0,
	1, 1,
	2, 2,
	3, 3,
	4, 4,
	5, 5,
	6, 6,
	7, 7,
	8, 8,
	9, 9,
	10, 10,
	11, 11,
	12, 12,
	13, 13,
}

// distanceBase gives the smallest distance encoded by distance code i,
// before adding the extra bits value.
var distanceBase = [numDistanceCodes]int{
	1, 2, 3, 4,
	5, 7,
	9, 13,
	17, 25,
	33, 49,
	65, 97,
	129, 193,
	257, 385,
	513, 769,
	1025, 1537,
	2049, 3073,
	4097, 6145,
	8193, 12289,
	16385, 24577,
}

// lengthCodeFor returns the length code, extra bit count, and extra bit
// value for a match of the given length (3..258).
func lengthCodeFor(length int) (code int, extraBits uint, extraValue int) {
	// lengthBase is sorted ascending; find the last entry not exceeding
	// length. numLengthCodes is small (29) so a linear scan is fine.
	i := 0
	for i+1 < numLengthCodes && lengthBase[i+1] <= length {
		i++
	}
	return firstLengthCode + i, lengthExtraBits[i], length - lengthBase[i]
}

// distanceCodeFor returns the distance code, extra bit count, and extra
// bit value for a distance of the given value (1..32768).
func distanceCodeFor(distance int) (code int, extraBits uint, extraValue int) {
	i := 0
	for i+1 < numDistanceCodes && distanceBase[i+1] <= distance {
		i++
	}
	return i, distanceExtraBits[i], distance - distanceBase[i]
}
