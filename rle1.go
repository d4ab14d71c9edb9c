package bzip2

// rle1Encoder implements bzip2's first-stage run-length encoding: runs of
// 1-3 identical bytes pass through unchanged; a run of exactly 4 identical
// bytes is always followed by one length byte giving the count of
// additional repeats beyond the 4 (0..255), for a maximum single run group
// of 4+255 = 259 source bytes collapsing to 5 output bytes.
//
// It writes directly into a fixed-capacity output buffer (one block's
// worth of BWT input) and reports when that buffer cannot accept more
// without risking a dangling, unflushable run.
type rle1Encoder struct {
	out []byte // shares storage with, and never exceeds cap of, the block buffer

	open  bool // a run is in progress
	last  byte
	lit   int // literal bytes of the current run already written (1..4)
	extra int // pending repeat count for a lit==4 run, not yet flushed
}

func newRLE1Encoder(block []byte) *rle1Encoder {
	return &rle1Encoder{out: block[:0]}
}

// Bytes returns the encoded output written so far.
func (r *rle1Encoder) Bytes() []byte { return r.out }

func (r *rle1Encoder) room() int { return cap(r.out) - len(r.out) }

// Write feeds buf into the encoder, consuming as many leading bytes as fit
// in the remaining output capacity. It returns the number of bytes
// consumed and whether the output buffer is now full; once full is true,
// the caller must start a new block before offering more input.
func (r *rle1Encoder) Write(buf []byte) (n int, full bool) {
	for n < len(buf) {
		c := buf[n]

		if r.open && c == r.last && r.lit == 4 {
			if r.extra == 255 {
				if r.room() < 1 {
					return n, true
				}
				r.out = append(r.out, byte(r.extra))
				r.extra = 0
				r.open = false
				continue // reprocess c as the start of a fresh run
			}
			r.extra++
			n++
			continue
		}

		if r.open && c == r.last {
			// lit is 1, 2, or 3: one more literal, reserving a second slot
			// when this literal would be the 4th, since a lit==4 run always
			// owes a trailing count byte later.
			need := 1
			if r.lit == 3 {
				need = 2
			}
			if r.room() < need {
				return n, true
			}
			r.out = append(r.out, c)
			r.lit++
			n++
			continue
		}

		// Starting a new run: first flush any pending count byte owed by
		// the run just ended.
		if r.open && r.lit == 4 {
			if r.room() < 1 {
				return n, true
			}
			r.out = append(r.out, byte(r.extra))
			r.extra = 0
			r.open = false
		}
		if r.room() < 1 {
			return n, true
		}
		r.out = append(r.out, c)
		r.last = c
		r.lit = 1
		r.open = true
		n++
	}
	return n, false
}

// Finish flushes any count byte still owed by a run in progress. It must
// be called exactly once after the final Write, before Bytes is trusted as
// complete.
func (r *rle1Encoder) Finish() {
	if r.open && r.lit == 4 {
		if r.room() < 1 {
			errWrap("rle1: no reserved capacity for pending run count")
		}
		r.out = append(r.out, byte(r.extra))
		r.extra = 0
		r.open = false
	}
}
