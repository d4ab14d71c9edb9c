package bzip2

import (
	"hash/crc32"

	"github.com/gobzip/bzenc/internal"
)

// updateCRC folds buf into the running bzip2 CRC register crc. bzip2's
// per-block and per-stream CRCs use the same CRC-32 polynomial as gzip and
// zip, but computed MSB-first, where the standard library's crc32 package
// (and most CRC-32 implementations) process bits LSB-first.
//
// Rather than building a second 256-entry table for the MSB-first bit
// order, this bit-reverses the input bytes and the running register,
// drives the stdlib's reflected crc32.IEEETable, and reverses the result
// back — the MSB-first CRC of a string is the bit-reversal of the
// LSB-first CRC of the bit-reversed string.
func updateCRC(crc uint32, buf []byte) uint32 {
	crc = internal.ReverseUint32(crc)
	for _, v := range buf {
		crc = crc32.IEEETable[byte(crc)^internal.ReverseLUT[v]] ^ (crc >> 8)
	}
	return internal.ReverseUint32(crc)
}

// combineCRC folds a completed block's CRC into the stream's running
// combined CRC, the way the reference bzip2 implementation does: rotate
// the accumulator left by one bit, then XOR in the block's CRC. This is a
// fixed operation independent of the block's length, unlike the general
// CRC-combine used to splice two independently-checksummed buffers.
func combineCRC(total, block uint32) uint32 {
	return (total<<1 | total>>31) ^ block
}
