package bzip2

// Reserved low symbols in the MTF+RLE2 output alphabet. Every other symbol
// v in [2, numUsed] represents a nonzero move-to-front index v-1; the
// end-of-block symbol (numUsed+1) is appended by the block encoder, not
// here.
const (
	symRUNA = 0
	symRUNB = 1
)

// moveToFront performs bzip2's second and third block stages together:
// the move-to-front transform of the BWT output against the block's
// used-byte alphabet, followed immediately by RLE2's bijective base-2
// encoding of the zero runs that move-to-front produces for repeated
// bytes. Folding the two together avoids materializing the intermediate
// move-to-front index stream.
type moveToFront struct {
	dict []byte // current front-to-back ranking of the block's used bytes
}

// Init resets the dictionary to used, which must list the block's
// distinct byte values in ascending order (the symbol map's order).
func (m *moveToFront) Init(used []byte) {
	if cap(m.dict) < len(used) {
		m.dict = make([]byte, len(used))
	} else {
		m.dict = m.dict[:len(used)]
	}
	copy(m.dict, used)
}

// Encode runs buf (the BWT output) through move-to-front and RLE2,
// appending the resulting symbol stream to dst and returning the extended
// slice. The caller appends the end-of-block symbol afterward.
func (m *moveToFront) Encode(dst []uint16, buf []byte) []uint16 {
	var zeros uint

	flushZeros := func() {
		n := zeros
		zeros = 0
		for n > 0 {
			if n&1 == 1 {
				dst = append(dst, symRUNA)
				n = (n - 1) / 2
			} else {
				dst = append(dst, symRUNB)
				n = (n - 2) / 2
			}
		}
	}

	for _, b := range buf {
		i := 0
		for m.dict[i] != b {
			i++
		}
		if i == 0 {
			zeros++
			continue
		}
		flushZeros()

		c := m.dict[i]
		copy(m.dict[1:i+1], m.dict[0:i])
		m.dict[0] = c
		dst = append(dst, uint16(i)+1)
	}
	flushZeros()
	return dst
}
