package deflate

import "testing"

// TestLengthCodeForSpecScenarios checks the exact length/code pairs listed
// in spec.md's testable-properties section: lengths 3, 258, 11, and 12
// each map to a specific length code and extra-bit value.
func TestLengthCodeForSpecScenarios(t *testing.T) {
	cases := []struct {
		length        int
		wantCode      int
		wantExtraBits uint
		wantExtraVal  int
	}{
		{3, 257, 0, 0},
		{10, 264, 0, 0},
		{11, 265, 1, 0},
		{12, 265, 1, 1},
		{258, 285, 0, 0},
	}
	for _, c := range cases {
		code, extraBits, extraVal := lengthCodeFor(c.length)
		if code != c.wantCode || extraBits != c.wantExtraBits || extraVal != c.wantExtraVal {
			t.Errorf("lengthCodeFor(%d) = (%d, %d, %d), want (%d, %d, %d)",
				c.length, code, extraBits, extraVal, c.wantCode, c.wantExtraBits, c.wantExtraVal)
		}
	}
}

func TestDistanceCodeForSpecScenarios(t *testing.T) {
	cases := []struct {
		distance      int
		wantCode      int
		wantExtraBits uint
		wantExtraVal  int
	}{
		{1, 0, 0, 0},
		{2, 1, 0, 0},
		{3, 2, 0, 0},
		{4, 3, 0, 0},
		{32768, 29, 13, 8191},
	}
	for _, c := range cases {
		code, extraBits, extraVal := distanceCodeFor(c.distance)
		if code != c.wantCode || extraBits != c.wantExtraBits || extraVal != c.wantExtraVal {
			t.Errorf("distanceCodeFor(%d) = (%d, %d, %d), want (%d, %d, %d)",
				c.distance, code, extraBits, extraVal, c.wantCode, c.wantExtraBits, c.wantExtraVal)
		}
	}
}

// TestCodeTablesRoundTripAllLengths checks that every length 3..258
// decodes to a code whose base plus extra value reconstructs the original
// input exactly; TestCodeTablesRoundTripAllDistances does the same for
// every distance 1..32768.
func TestCodeTablesRoundTripAllLengths(t *testing.T) {
	for length := 3; length <= 258; length++ {
		code, extraBits, extraVal := lengthCodeFor(length)
		i := code - firstLengthCode
		got := lengthBase[i] + extraVal
		if got != length {
			t.Fatalf("length %d: code %d base %d + extra %d = %d, want %d", length, code, lengthBase[i], extraVal, got, length)
		}
		if extraVal < 0 || extraVal >= 1<<extraBits {
			t.Fatalf("length %d: extra value %d does not fit in %d bits", length, extraVal, extraBits)
		}
	}
}

func TestCodeTablesRoundTripAllDistances(t *testing.T) {
	for distance := 1; distance <= 32768; distance++ {
		code, extraBits, extraVal := distanceCodeFor(distance)
		got := distanceBase[code] + extraVal
		if got != distance {
			t.Fatalf("distance %d: code %d base %d + extra %d = %d, want %d", distance, code, distanceBase[code], extraVal, got, distance)
		}
		if extraVal < 0 || extraVal >= 1<<extraBits {
			t.Fatalf("distance %d: extra value %d does not fit in %d bits", distance, extraVal, extraBits)
		}
	}
}
