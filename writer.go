package bzip2

import "io"

// Compression level constants, matching the compress/flate convention:
// Level also selects the block size, as 100000*Level bytes.
const (
	BestSpeed          = 1
	BestCompression    = 9
	DefaultCompression = 9
)

const (
	streamMagic  = 0x425A68   // "BZh"
	trailerMagic = 0x177245385090
)

// WriterConfig holds the encoding options for a Writer.
type WriterConfig struct {
	// Level sets the block size as a multiple of 100000 bytes, from 1
	// (BestSpeed, 100000-byte blocks) to 9 (BestCompression, 900000-byte
	// blocks).
	// Zero selects DefaultCompression.
	Level int

	_ struct{} // prevents unkeyed struct literals
}

// Writer encodes a single bzip2 stream to an underlying io.Writer. It is
// not safe for concurrent use.
type Writer struct {
	cfg       WriterConfig
	blockSize int

	bw     *bitWriter
	encBuf []byte // backing array reused across blocks for rle's output
	rle    *rle1Encoder
	block  blockEncoder

	blockCRC  uint32
	streamCRC uint32

	wroteHeader bool
	closed      bool

	InputOffset  int64
	OutputOffset int64
}

// NewWriter creates a Writer with DefaultCompression writing to w.
func NewWriter(w io.Writer) (*Writer, error) {
	return NewWriterLevel(w, WriterConfig{Level: DefaultCompression})
}

// NewWriterLevel creates a Writer with the given configuration writing to w.
func NewWriterLevel(w io.Writer, cfg WriterConfig) (*Writer, error) {
	if cfg.Level == 0 {
		cfg.Level = DefaultCompression
	}
	if cfg.Level < BestSpeed || cfg.Level > BestCompression {
		return nil, Error("invalid compression level")
	}
	zw := &Writer{cfg: cfg, blockSize: cfg.Level * 100000}
	zw.Reset(w)
	return zw, nil
}

// Reset discards the Writer's state and configures it to write a fresh
// stream to w, keeping the compression level it was created with.
func (zw *Writer) Reset(w io.Writer) {
	zw.bw = newBitWriter(w)
	if cap(zw.encBuf) < zw.blockSize {
		zw.encBuf = make([]byte, 0, zw.blockSize)
	}
	zw.rle = newRLE1Encoder(zw.encBuf[:0])
	zw.blockCRC = 0xFFFFFFFF
	zw.streamCRC = 0
	zw.wroteHeader = false
	zw.closed = false
	zw.InputOffset = 0
	zw.OutputOffset = 0
}

func (zw *Writer) writeHeader() {
	zw.bw.WriteBits(uint64(streamMagic), 24)
	zw.bw.WriteBits(uint64('0'+zw.cfg.Level), 8)
	zw.wroteHeader = true
}

// Write feeds p into the stream, encoding and emitting as many complete
// blocks as p's contents fill.
func (zw *Writer) Write(p []byte) (n int, err error) {
	defer errRecover(&err)
	if zw.closed {
		errWrap("write to closed writer")
	}
	if !zw.wroteHeader {
		zw.writeHeader()
	}

	total := len(p)
	for len(p) > 0 {
		m, full := zw.rle.Write(p)
		if m > 0 {
			zw.blockCRC = updateCRC(zw.blockCRC, p[:m])
		}
		p = p[m:]
		if full {
			zw.flushBlock()
		}
	}

	zw.InputOffset += int64(total)
	zw.OutputOffset = zw.bw.Offset()
	return total, zw.bw.err
}

func (zw *Writer) flushBlock() {
	zw.rle.Finish()
	if data := zw.rle.Bytes(); len(data) > 0 {
		finalCRC := ^zw.blockCRC
		zw.block.Encode(zw.bw, data, finalCRC)
		zw.streamCRC = combineCRC(zw.streamCRC, finalCRC)
	}
	zw.blockCRC = 0xFFFFFFFF
	zw.rle = newRLE1Encoder(zw.encBuf[:0])
}

func (zw *Writer) writeTrailer() {
	zw.bw.WriteBits(trailerMagic, 48)
	zw.bw.WriteBits(uint64(zw.streamCRC), 32)
}

// Close flushes any buffered data as a final block, writes the stream
// trailer, and flushes the underlying writer. It does not close the
// underlying io.Writer.
func (zw *Writer) Close() (err error) {
	defer errRecover(&err)
	if zw.closed {
		return nil
	}
	if !zw.wroteHeader {
		zw.writeHeader()
	}
	zw.flushBlock()
	zw.writeTrailer()
	zw.closed = true

	err = zw.bw.Flush()
	zw.OutputOffset = zw.bw.Offset()
	return err
}
