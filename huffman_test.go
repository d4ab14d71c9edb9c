package bzip2

import (
	"math/rand"
	"testing"
)

func TestNumTables(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 2}, {199, 2},
		{200, 3}, {599, 3},
		{600, 4}, {1199, 4},
		{1200, 5}, {2399, 5},
		{2400, 6}, {100000, 6},
	}
	for _, c := range cases {
		if got := numTables(c.n); got != c.want {
			t.Errorf("numTables(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestHuffmanTablesAllSymbolsCodable(t *testing.T) {
	const alphaSize = 258
	rng := rand.New(rand.NewSource(3))

	n := 5000
	syms := make([]uint16, n)
	for i := range syms {
		// Skew the distribution so some symbols are far more common than
		// others, like a real block's MTF+RLE2 output.
		if rng.Intn(4) == 0 {
			syms[i] = uint16(rng.Intn(alphaSize))
		} else {
			syms[i] = uint16(rng.Intn(8))
		}
	}

	encoders, selectors := huffmanTables(syms, alphaSize)

	wantNSel := (n + groupSize - 1) / groupSize
	if len(selectors) != wantNSel {
		t.Fatalf("got %d selectors, want %d", len(selectors), wantNSel)
	}
	wantNGroups := numTables(n)
	if len(encoders) != wantNGroups {
		t.Fatalf("got %d tables, want %d", len(encoders), wantNGroups)
	}

	for g, sel := range selectors {
		if int(sel) >= len(encoders) {
			t.Fatalf("selector %d out of range: %d", g, sel)
		}
		start, end := groupRange(g, n)
		enc := &encoders[sel]
		for _, s := range syms[start:end] {
			_, nb := enc.Code(uint32(s))
			if nb == 0 || nb > maxPrefixBits {
				t.Fatalf("symbol %d under table %d has invalid length %d", s, sel, nb)
			}
		}
	}
}

func TestHuffmanTablesSmallBlock(t *testing.T) {
	syms := []uint16{0, 1, 2, 3, 4}
	encoders, selectors := huffmanTables(syms, 6)
	if len(selectors) != 1 {
		t.Fatalf("got %d selectors, want 1", len(selectors))
	}
	if len(encoders) != numTables(len(syms)) {
		t.Fatalf("got %d tables, want %d", len(encoders), numTables(len(syms)))
	}
}
