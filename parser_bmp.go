// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imgsize

import "encoding/binary"

// DIB header sizes this package knows how to read. Sizes outside this
// set are rejected rather than guessed at as BITMAPINFOHEADER-compatible
// (spec §9 open question, decided conservatively: §8 invariant 5 forbids
// a silent wrong answer).
const (
	dibHeaderCore = 12 // BITMAPCOREHEADER
)

// parseBMP reads the 14-byte BITMAPFILEHEADER ("BM" signature + size +
// reserved + pixel data offset) and delegates to the DIB header that
// immediately follows it, per spec §4.3 ("BMP ... delegate to DIB header
// at current position"). Grounded on
// _examples/jsummers-bmpinspect/bmpinspect.go's file-header/info-header
// split and _examples/other_examples/.../sergeymakinen-go-bmp reader.go's
// fileHeaderLen constant.
func parseBMP(b *byteReader) (int, int, error) {
	b.byteOrder = binary.LittleEndian
	b.seek(14)
	return readDIBHeader(b, BMP)
}

// parseDIB reads a bare Device-Independent Bitmap header with no
// preceding BITMAPFILEHEADER (a standalone .dib / raw clipboard bitmap).
func parseDIB(b *byteReader) (int, int, error) {
	b.byteOrder = binary.LittleEndian
	b.seek(0)
	return readDIBHeader(b, DIB)
}

// readDIBHeader implements spec §4.3's DIB case table:
//
//	12 (BITMAPCOREHEADER):            width/height are u16.
//	40 or larger (BITMAPINFOHEADER+):  width/height are i32; a negative
//	                                   height means top-down and is
//	                                   reported as its absolute value. A
//	                                   negative width is always invalid.
//
// format is the tag errors should be reported against: BMP when called
// via the file-header delegation, DIB when the header is bare.
func readDIBHeader(b *byteReader, format Format) (int, int, error) {
	headerSize := b.readU32()
	if !dibHeaderSizes[headerSize] {
		return 0, 0, newParserErrorf(format, "unrecognized DIB header size %d", headerSize)
	}

	if headerSize == dibHeaderCore {
		width := b.readU16()
		height := b.readU16()
		return int(width), int(height), nil
	}

	width := b.readI32()
	height := b.readI32()
	if width < 0 {
		return 0, 0, newParserErrorf(format, "negative DIB width %d", width)
	}
	if height < 0 {
		height = -height
	}
	return int(width), int(height), nil
}
