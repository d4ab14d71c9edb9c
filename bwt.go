package bzip2

import "github.com/gobzip/bzenc/internal/sais"

// encodeBWT performs the Burrows-Wheeler transform of buf in place and
// returns the primary pointer: the index into the transformed buffer of
// the rotation equal to the untransformed buf itself, which a decoder
// needs to invert the transform.
//
// The rotations are sorted by suffix-sorting buf concatenated with itself:
// for p < len(buf), the first len(buf) symbols of that suffix are exactly
// the rotation starting at p.
//
// sa is scratch space reused across blocks by the caller; it must have
// length len(buf)+1.
func encodeBWT(buf []byte, sa []int) (ptr int) {
	n := len(buf)
	if len(sa) != n+1 {
		errWrap("bwt: scratch suffix array has wrong length")
	}
	dbl := make([]byte, 2*n)
	copy(dbl, buf)
	copy(dbl[n:], buf)
	dsa := make([]int, 2*n+1)
	sais.ComputeSA(dbl, dsa)
	j := 1
	for _, p := range dsa[1:] {
		if p < n {
			sa[j] = p
			j++
		}
	}

	out := make([]byte, n)
	for j := 0; j < n; j++ {
		p := sa[1+j]
		if p == 0 {
			ptr = j
			out[j] = buf[n-1]
		} else {
			out[j] = buf[p-1]
		}
	}
	copy(buf, out)
	return ptr
}
