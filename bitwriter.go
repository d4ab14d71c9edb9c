package bzip2

import (
	"io"

	"github.com/gobzip/bzenc/internal/prefix"
)

// bitWriter packs bits MSB-first into bytes and writes them to an
// io.Writer sink, the bit order bzip2 uses for every field in the stream.
type bitWriter struct {
	w   io.Writer
	buf []byte // staged output bytes, flushed to w in bulk

	bb uint64 // bit accumulator; the next bit to emit is the top unused bit
	nb uint   // number of valid bits currently in bb, counted from the top

	cnt int64 // total bytes packed so far, including any still staged in buf
	err error
}

func newBitWriter(w io.Writer) *bitWriter {
	return &bitWriter{w: w, buf: make([]byte, 0, 4096)}
}

// WriteBits packs the low nb bits of val into the stream, MSB-first. nb
// must be at most 56; the accumulator always has fewer than 8 bits pending
// between calls, so this never overflows a uint64.
func (bw *bitWriter) WriteBits(val uint64, nb uint) {
	if bw.err != nil {
		return
	}
	bw.bb |= (val & (1<<nb - 1)) << (64 - bw.nb - nb)
	bw.nb += nb
	for bw.nb >= 8 {
		bw.buf = append(bw.buf, byte(bw.bb>>56))
		bw.bb <<= 8
		bw.nb -= 8
		bw.cnt++
	}
	if len(bw.buf) >= 4096 {
		bw.flushBuf()
	}
}

// WriteSymbol writes sym's canonical code under enc.
func (bw *bitWriter) WriteSymbol(enc *prefix.Encoder, sym uint32) {
	val, nb := enc.Code(sym)
	bw.WriteBits(uint64(val), uint(nb))
}

func (bw *bitWriter) flushBuf() {
	if bw.err != nil || len(bw.buf) == 0 {
		return
	}
	if _, err := bw.w.Write(bw.buf); err != nil {
		bw.err = err
	}
	bw.buf = bw.buf[:0]
}

// Flush pads any partial trailing byte with zero bits, writes everything
// staged to the sink, and reports the first write error encountered (by
// this call or any prior WriteBits).
func (bw *bitWriter) Flush() error {
	if bw.nb > 0 {
		bw.buf = append(bw.buf, byte(bw.bb>>56))
		bw.bb = 0
		bw.nb = 0
		bw.cnt++
	}
	bw.flushBuf()
	return bw.err
}

// Offset reports the number of whole bytes packed so far, not counting
// bits still buffered in the accumulator. Bytes counted here may still be
// sitting in buf rather than actually handed to w.
func (bw *bitWriter) Offset() int64 { return bw.cnt }
