package deflate

import "testing"

// TestTallySpecScenario checks the exact LL/DD frequency tables spec.md
// gives for the "Oneone oneone twotwo twotwo" scenario.
func TestTallySpecScenario(t *testing.T) {
	tokens := findMatches([]byte("Oneone oneone twotwo twotwo"))
	ll, dd := tally(tokens)

	wantLL := map[int]int32{
		'O': 1, 'n': 2, 'e': 2, 'o': 2, ' ': 1,
		257: 2, 258: 1, 261: 1,
		't': 1, 'w': 1,
		eobSymbol: 1,
	}
	for sym, want := range wantLL {
		if ll[sym] != want {
			t.Errorf("ll[%d] = %d, want %d", sym, ll[sym], want)
		}
	}
	for sym, got := range ll {
		if _, ok := wantLL[sym]; !ok && got != 0 {
			t.Errorf("ll[%d] = %d, want 0 (unexpected symbol used)", sym, got)
		}
	}

	wantDD := map[int]int32{2: 1, 3: 1, 5: 2}
	for sym, want := range wantDD {
		if dd[sym] != want {
			t.Errorf("dd[%d] = %d, want %d", sym, dd[sym], want)
		}
	}
	for sym, got := range dd {
		if _, ok := wantDD[sym]; !ok && got != 0 {
			t.Errorf("dd[%d] = %d, want 0 (unexpected code used)", sym, got)
		}
	}
}

func TestTallyEmptyInput(t *testing.T) {
	ll, dd := tally(nil)
	if ll[eobSymbol] != 1 {
		t.Fatalf("ll[EOB] = %d, want 1 even for empty input", ll[eobSymbol])
	}
	for sym, f := range ll {
		if sym != eobSymbol && f != 0 {
			t.Fatalf("ll[%d] = %d, want 0", sym, f)
		}
	}
	for sym, f := range dd {
		if f != 0 {
			t.Fatalf("dd[%d] = %d, want 0", sym, f)
		}
	}
}
