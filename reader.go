// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imgsize

import (
	"encoding/binary"
	"errors"
	"io"
)

var errShortRead = errors.New("short read")

// errStop is the sentinel panicked by byteReader.stop and recovered at the
// single dispatcher/parser call boundary (see dispatcher.go). It lets
// per-format parsers read like straight-line code instead of threading
// "if err != nil" through every primitive read, exactly as the teacher's
// streamReader does for EXIF/IPTC walking.
var errStop = errors.New("stop")

// fourCC is a four-byte ASCII tag identifying a chunk or box type
// (RIFF/WebP chunk IDs, ISO-BMFF box types).
type fourCC [4]byte

// byteReader is a non-thread-safe cursor over an io.ReadSeeker. It
// provides the absolute-seek / read-exact-N / fixed-width-integer
// vocabulary every per-format parser in this package is written against.
type byteReader struct {
	r         io.ReadSeeker
	byteOrder binary.ByteOrder

	buf []byte

	readErr error

	// bytesRead and steps implement the bounded-work contract in spec
	// §5: every parser must terminate in O(header bytes) with a hard
	// ceiling on both bytes consumed and boxes/markers/entries visited.
	bytesRead int64
	steps     int
}

// Bounds recommended by spec §5.
const (
	maxBytesRead = 64 * 1024
	maxSteps     = 1024
)

func newByteReader(r io.ReadSeeker, byteOrder binary.ByteOrder) *byteReader {
	return &byteReader{r: r, byteOrder: byteOrder}
}

// stop panics with errStop after recording err, so the parser that caused
// it unwinds straight back to the recover in runParser.
func (b *byteReader) stop(err error) {
	if err != nil {
		b.readErr = err
	}
	panic(errStop)
}

// step counts one unit of bounded work (a box, marker, chunk, or IFD
// entry visited) and stops the parser if the cap is exceeded.
func (b *byteReader) step() {
	b.steps++
	if b.steps > maxSteps {
		b.stop(newParserErrorf(Unknown, "exceeded step limit of %d", maxSteps))
	}
}

func (b *byteReader) pos() int64 {
	n, err := b.r.Seek(0, io.SeekCurrent)
	if err != nil {
		b.stop(err)
	}
	return n
}

// size returns the total length of the underlying stream, restoring the
// current position. Used by the JP2 box walker's "box extends to end of
// file" (length == 0) handling.
func (b *byteReader) size() int64 {
	cur := b.pos()
	end, err := b.r.Seek(0, io.SeekEnd)
	if err != nil {
		b.stop(err)
	}
	b.seek(cur)
	return end
}

func (b *byteReader) seek(pos int64) {
	if pos < 0 {
		b.stop(newParserErrorf(Unknown, "negative seek offset %d", pos))
	}
	if _, err := b.r.Seek(pos, io.SeekStart); err != nil {
		b.stop(err)
	}
}

func (b *byteReader) skip(n int64) {
	if n == 0 {
		return
	}
	b.accountBytes(n)
	if _, err := b.r.Seek(n, io.SeekCurrent); err != nil {
		b.stop(err)
	}
}

func (b *byteReader) accountBytes(n int64) {
	b.bytesRead += n
	if b.bytesRead > maxBytesRead {
		b.stop(newParserErrorf(Unknown, "exceeded read limit of %d bytes", maxBytesRead))
	}
}

func (b *byteReader) allocateBuf(n int) {
	if n > cap(b.buf) {
		b.buf = make([]byte, n)
	}
	b.buf = b.buf[:n]
}

// readExact reads exactly n bytes at the current position, stopping the
// parser (via panic/recover) on a short read.
func (b *byteReader) readExact(n int) []byte {
	b.accountBytes(int64(n))
	b.allocateBuf(n)
	if _, err := io.ReadFull(b.r, b.buf); err != nil {
		if err == io.ErrUnexpectedEOF {
			err = errShortRead
		}
		b.stop(err)
	}
	return b.buf
}

// readExactInto reads exactly len(p) bytes into p, without touching the
// shared scratch buffer (used for FourCC-sized reads the caller wants to
// keep beyond the next primitive read).
func (b *byteReader) readExactInto(p []byte) {
	b.accountBytes(int64(len(p)))
	if _, err := io.ReadFull(b.r, p); err != nil {
		if err == io.ErrUnexpectedEOF {
			err = errShortRead
		}
		b.stop(err)
	}
}

func (b *byteReader) readU8() uint8 {
	return b.readExact(1)[0]
}

func (b *byteReader) readU16() uint16 {
	buf := b.readExact(2)
	return b.byteOrder.Uint16(buf)
}

func (b *byteReader) readU32() uint32 {
	buf := b.readExact(4)
	return b.byteOrder.Uint32(buf)
}

func (b *byteReader) readU64() uint64 {
	buf := b.readExact(8)
	return b.byteOrder.Uint64(buf)
}

func (b *byteReader) readI32() int32 {
	return int32(b.readU32())
}

// readNullTerminated reads bytes (not including the terminating NUL) up to
// a maximum of max bytes including the NUL. Used by EXR's attribute
// name/type strings.
func (b *byteReader) readNullTerminated(max int) []byte {
	var out []byte
	for i := 0; i < max; i++ {
		c := b.readU8()
		if c == 0 {
			return out
		}
		out = append(out, c)
	}
	b.stop(newParserErrorf(Unknown, "null-terminated field exceeds %d bytes", max))
	return nil
}
