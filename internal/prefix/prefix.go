// Package prefix builds canonical Huffman prefix codes for a closed
// alphabet of symbols, the way bzip2's block encoder needs: given a set
// of symbol frequencies, produce bit-lengths bounded by a maximum code
// length, then turn those lengths into canonical code values.
package prefix

import "sort"

// PrefixCode associates a symbol with its frequency count, its assigned
// bit-length, and (once GeneratePrefixes has run) its canonical code
// value.
type PrefixCode struct {
	Sym uint32
	Cnt uint32
	Len uint32
	Val uint32
}

// PrefixCodes is a table of codes for one alphabet. Most operations
// require the table to first be sorted the way the operation expects;
// see SortByCount and SortBySymbol.
type PrefixCodes []PrefixCode

// SortByCount orders the table by ascending frequency. GenerateLengths
// requires this order.
func (pc PrefixCodes) SortByCount() {
	sort.Slice(pc, func(i, j int) bool { return pc[i].Cnt < pc[j].Cnt })
}

// SortBySymbol orders the table by ascending symbol value. GeneratePrefixes
// requires this order.
func (pc PrefixCodes) SortBySymbol() {
	sort.Slice(pc, func(i, j int) bool { return pc[i].Sym < pc[j].Sym })
}

// Length reports the total number of bits needed to encode every symbol's
// count-many occurrences under this table's lengths.
func (pc PrefixCodes) Length() uint64 {
	var n uint64
	for _, c := range pc {
		n += uint64(c.Cnt) * uint64(c.Len)
	}
	return n
}

// Error is the error type returned by this package.
type Error string

func (e Error) Error() string { return "prefix: " + string(e) }

// GenerateLengths assigns a bit-length to every code in the table, built
// from a Huffman tree over the Cnt frequencies, then clamped to maxBits by
// repeatedly halving (rounding up) every frequency and rebuilding until the
// tallest code fits. codes must already be sorted by SortByCount.
func GenerateLengths(codes PrefixCodes, maxBits uint) error {
	n := len(codes)
	if n == 0 {
		return nil
	}
	for i := 1; i < n; i++ {
		if codes[i-1].Cnt > codes[i].Cnt {
			return Error("codes not sorted by count")
		}
	}
	if n == 1 {
		codes[0].Len = 1
		return nil
	}

	weights := make([]uint64, n)
	for i, c := range codes {
		weights[i] = uint64(c.Cnt)
	}
	for {
		lens := huffmanLengths(weights)
		var maxLen uint
		for _, l := range lens {
			if uint(l) > maxLen {
				maxLen = uint(l)
			}
		}
		if maxLen <= maxBits {
			for i := range codes {
				codes[i].Len = uint32(lens[i])
			}
			return nil
		}
		for i := range weights {
			weights[i] = (weights[i] + 1) / 2
			if weights[i] == 0 {
				weights[i] = 1
			}
		}
	}
}

// huffmanLengths computes per-leaf code lengths for a Huffman tree built
// over weights, which must already be sorted ascending. It uses the
// classic two-queue linear-time merge: since the leaves arrive pre-sorted,
// the smallest two weights overall are always at the front of one of two
// queues (the original leaves, or the previously-merged internal nodes),
// so no general priority queue is needed.
func huffmanLengths(weights []uint64) []int {
	n := len(weights)
	numNodes := 2*n - 1
	nodeWeight := make([]uint64, numNodes)
	parent := make([]int, numNodes)
	copy(nodeWeight, weights)

	leafPos := 0               // next unconsumed original leaf
	internal := make([]int, 0, n-1) // merged-node indices, always non-decreasing weight
	internalPos := 0
	nextInternal := n

	popMin := func() int {
		if leafPos < n && (internalPos >= len(internal) || nodeWeight[leafPos] <= nodeWeight[internal[internalPos]]) {
			idx := leafPos
			leafPos++
			return idx
		}
		idx := internal[internalPos]
		internalPos++
		return idx
	}

	for i := 0; i < n-1; i++ {
		a := popMin()
		b := popMin()
		node := nextInternal
		nextInternal++
		nodeWeight[node] = nodeWeight[a] + nodeWeight[b]
		parent[a] = node
		parent[b] = node
		internal = append(internal, node)
	}

	root := numNodes - 1
	lens := make([]int, n)
	for i := 0; i < n; i++ {
		d := 0
		for j := i; j != root; j = parent[j] {
			d++
		}
		lens[i] = d
	}
	return lens
}

// GeneratePrefixes assigns canonical code values to codes based on their
// already-computed Len fields. codes must be sorted by SortBySymbol; every
// Len must be in 1..32.
func GeneratePrefixes(codes PrefixCodes) error {
	n := len(codes)
	if n == 0 {
		return nil
	}
	for i := 1; i < n; i++ {
		if codes[i-1].Sym >= codes[i].Sym {
			return Error("codes not sorted by unique symbol")
		}
	}

	var maxLen uint32
	for _, c := range codes {
		if c.Len == 0 || c.Len > 32 {
			return Error("invalid code length")
		}
		if c.Len > maxLen {
			maxLen = c.Len
		}
	}

	blCount := make([]uint32, maxLen+1)
	for _, c := range codes {
		blCount[c.Len]++
	}

	nextCode := make([]uint32, maxLen+1)
	var code uint32
	for bits := uint32(1); bits <= maxLen; bits++ {
		code = (code + blCount[bits-1]) << 1
		nextCode[bits] = code
	}

	for i := range codes {
		l := codes[i].Len
		codes[i].Val = nextCode[l]
		nextCode[l]++
	}
	return nil
}
