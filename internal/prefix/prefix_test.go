package prefix

import "testing"

func TestGenerateLengthsRejectsUnsortedCounts(t *testing.T) {
	codes := PrefixCodes{
		{Sym: 0, Cnt: 5},
		{Sym: 1, Cnt: 1},
	}
	if err := GenerateLengths(codes, 17); err == nil {
		t.Fatal("expected an error for counts not sorted ascending")
	}
}

func TestGeneratePrefixesRejectsUnsortedSymbols(t *testing.T) {
	codes := PrefixCodes{
		{Sym: 1, Len: 2},
		{Sym: 0, Len: 2},
	}
	if err := GeneratePrefixes(codes); err == nil {
		t.Fatal("expected an error for symbols not sorted ascending")
	}
}

// checkCanonical verifies that codes forms a valid, uniquely-decodable
// canonical prefix code: lengths satisfy the Kraft equality, and no two
// symbols share the same code.
func checkCanonical(t *testing.T, codes PrefixCodes) {
	t.Helper()
	var kraft uint64
	const unit = uint64(1) << 32
	seen := make(map[string]bool)
	for _, c := range codes {
		kraft += unit >> c.Len
		key := ""
		for b := int(c.Len) - 1; b >= 0; b-- {
			if c.Val&(1<<uint(b)) != 0 {
				key += "1"
			} else {
				key += "0"
			}
		}
		if seen[key] {
			t.Fatalf("duplicate code %s for symbol %d", key, c.Sym)
		}
		seen[key] = true
	}
	if kraft != unit {
		t.Fatalf("Kraft sum = %d/2^32, want 2^32 (not a complete code)", kraft)
	}
}

func TestGenerateLengthsAndPrefixesSkewedCounts(t *testing.T) {
	codes := PrefixCodes{
		{Sym: 0, Cnt: 1000},
		{Sym: 1, Cnt: 1},
		{Sym: 2, Cnt: 1},
		{Sym: 3, Cnt: 2},
		{Sym: 4, Cnt: 5},
		{Sym: 5, Cnt: 20},
	}
	codes.SortByCount()
	if err := GenerateLengths(codes, 17); err != nil {
		t.Fatalf("GenerateLengths: %v", err)
	}
	codes.SortBySymbol()
	if err := GeneratePrefixes(codes); err != nil {
		t.Fatalf("GeneratePrefixes: %v", err)
	}
	checkCanonical(t, codes)

	for _, c := range codes {
		if c.Sym == 0 && c.Len > 3 {
			t.Errorf("most frequent symbol got length %d, expected a short code", c.Len)
		}
	}
}

func TestGenerateLengthsRespectsMaxBits(t *testing.T) {
	// A set of counts following roughly a Fibonacci-like sequence drives an
	// unusually tall Huffman tree, forcing the maxBits clamp to trigger.
	const n = 40
	codes := make(PrefixCodes, n)
	a, b := uint32(1), uint32(1)
	for i := 0; i < n; i++ {
		codes[i] = PrefixCode{Sym: uint32(i), Cnt: a}
		a, b = b, a+b
	}
	codes.SortByCount()
	const maxBits = 8
	if err := GenerateLengths(codes, maxBits); err != nil {
		t.Fatalf("GenerateLengths: %v", err)
	}
	for _, c := range codes {
		if c.Len > maxBits {
			t.Errorf("symbol %d has length %d, exceeds maxBits %d", c.Sym, c.Len, maxBits)
		}
		if c.Len == 0 {
			t.Errorf("symbol %d has zero length", c.Sym)
		}
	}
	codes.SortBySymbol()
	if err := GeneratePrefixes(codes); err != nil {
		t.Fatalf("GeneratePrefixes: %v", err)
	}
	checkCanonical(t, codes)
}

func TestGenerateLengthsSingleSymbol(t *testing.T) {
	codes := PrefixCodes{{Sym: 0, Cnt: 42}}
	if err := GenerateLengths(codes, 17); err != nil {
		t.Fatalf("GenerateLengths: %v", err)
	}
	if codes[0].Len != 1 {
		t.Fatalf("got length %d, want 1", codes[0].Len)
	}
}

func TestEncoderRoundTripsLengths(t *testing.T) {
	codes := PrefixCodes{
		{Sym: 0, Cnt: 10},
		{Sym: 1, Cnt: 1},
		{Sym: 2, Cnt: 1},
	}
	codes.SortByCount()
	if err := GenerateLengths(codes, 17); err != nil {
		t.Fatalf("GenerateLengths: %v", err)
	}
	codes.SortBySymbol()
	if err := GeneratePrefixes(codes); err != nil {
		t.Fatalf("GeneratePrefixes: %v", err)
	}

	var enc Encoder
	enc.Init(codes)
	for _, c := range codes {
		val, l := enc.Code(c.Sym)
		if val != c.Val || l != c.Len {
			t.Errorf("symbol %d: Encoder gave (%d,%d), want (%d,%d)", c.Sym, val, l, c.Val, c.Len)
		}
	}
}
