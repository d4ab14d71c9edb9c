package bzip2

import "github.com/gobzip/bzenc/internal/prefix"

const (
	groupSize     = 50 // symbols per Huffman-table selector group
	maxPrefixBits = 17 // longest canonical code this encoder will emit
	huffIters     = 4  // refinement passes over the selector assignment
)

// numTables picks bzip2's coding-table count for a block whose MTF+RLE2
// output (including the end-of-block symbol) has nSyms symbols.
func numTables(nSyms int) int {
	switch {
	case nSyms < 200:
		return 2
	case nSyms < 600:
		return 3
	case nSyms < 1200:
		return 4
	case nSyms < 2400:
		return 5
	default:
		return 6
	}
}

func groupRange(g, n int) (start, end int) {
	start = g * groupSize
	end = start + groupSize
	if end > n {
		end = n
	}
	return start, end
}

// huffmanTables builds and iteratively refines the block's Huffman coding
// tables over an alphabet of alphaSize symbols (the block's used-byte
// count plus RUNA, RUNB, and end-of-block), and assigns each consecutive
// group of up to groupSize symbols in syms to whichever table encodes it
// most cheaply.
//
// Tables start from a seed assignment that splits the groups into
// nTables contiguous, roughly-equal chunks, then refine: each pass
// recomputes the cheapest table per group under the previous pass's code
// lengths, then rebuilds every table's lengths from its new group
// membership. This mirrors the reference bzip2 encoder's
// sendMTFValues/BZ_N_ITERS loop.
//
// It returns one prefix.Encoder per table and one selector (table index)
// per group, in group order.
func huffmanTables(syms []uint16, alphaSize int) (encoders []prefix.Encoder, selectors []uint8) {
	nGroups := numTables(len(syms))
	nSel := (len(syms) + groupSize - 1) / groupSize
	if nSel == 0 {
		nSel = 1
	}

	selectors = make([]uint8, nSel)
	for g := 0; g < nSel; g++ {
		selectors[g] = uint8(g * nGroups / nSel)
	}

	lens := make([][]uint32, nGroups)
	for t := range lens {
		lens[t] = make([]uint32, alphaSize)
	}
	var tableCodes [][]prefix.PrefixCode

	rebuild := func() {
		freq := make([][]uint32, nGroups)
		for t := range freq {
			freq[t] = make([]uint32, alphaSize)
		}
		for g := 0; g < nSel; g++ {
			start, end := groupRange(g, len(syms))
			t := selectors[g]
			for _, s := range syms[start:end] {
				freq[t][s]++
			}
		}

		tableCodes = make([][]prefix.PrefixCode, nGroups)
		for t := 0; t < nGroups; t++ {
			codes := make(prefix.PrefixCodes, alphaSize)
			for s := 0; s < alphaSize; s++ {
				codes[s] = prefix.PrefixCode{Sym: uint32(s), Cnt: freq[t][s]}
			}
			codes.SortByCount()
			if err := prefix.GenerateLengths(codes, maxPrefixBits); err != nil {
				errWrap("huffman: %v", err)
			}
			codes.SortBySymbol()
			for s := 0; s < alphaSize; s++ {
				lens[t][s] = codes[s].Len
			}
			tableCodes[t] = append([]prefix.PrefixCode(nil), codes...)
		}
	}

	rebuild() // seed every table from the initial contiguous partition

	for iter := 0; iter < huffIters; iter++ {
		for g := 0; g < nSel; g++ {
			start, end := groupRange(g, len(syms))
			group := syms[start:end]

			best, bestCost := 0, ^uint64(0)
			for t := 0; t < nGroups; t++ {
				var cost uint64
				for _, s := range group {
					cost += uint64(lens[t][s])
				}
				if cost < bestCost {
					bestCost, best = cost, t
				}
			}
			selectors[g] = uint8(best)
		}
		rebuild()
	}

	encoders = make([]prefix.Encoder, nGroups)
	for t := range encoders {
		codes := prefix.PrefixCodes(tableCodes[t])
		if err := prefix.GeneratePrefixes(codes); err != nil {
			errWrap("huffman: %v", err)
		}
		encoders[t].Init(codes)
	}
	return encoders, selectors
}
