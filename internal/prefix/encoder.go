package prefix

// Encoder is a symbol -> canonical code lookup for one Huffman table. It
// is built once per table from a PrefixCodes that has already been through
// GenerateLengths and GeneratePrefixes, then consulted once per symbol
// written to the block's bitstream.
type Encoder struct {
	vals []uint32 // canonical code value, MSB-first, per symbol
	lens []uint32 // code length in bits, per symbol
}

// Init populates e from codes, indexing by PrefixCode.Sym. codes need not
// be sorted; every symbol in [0, max Sym] not present in codes is left
// with a zero length and must never be looked up.
func (e *Encoder) Init(codes PrefixCodes) {
	var n uint32
	for _, c := range codes {
		if c.Sym+1 > n {
			n = c.Sym + 1
		}
	}
	if uint32(cap(e.vals)) < n {
		e.vals = make([]uint32, n)
		e.lens = make([]uint32, n)
	} else {
		e.vals = e.vals[:n]
		e.lens = e.lens[:n]
		for i := range e.vals {
			e.vals[i] = 0
			e.lens[i] = 0
		}
	}
	for _, c := range codes {
		e.vals[c.Sym] = c.Val
		e.lens[c.Sym] = c.Len
	}
}

// Code reports the canonical code value and bit-length for sym.
func (e *Encoder) Code(sym uint32) (val, len uint32) {
	return e.vals[sym], e.lens[sym]
}
