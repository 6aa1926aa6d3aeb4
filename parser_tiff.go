// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imgsize

import "encoding/binary"

const (
	tiffMagic          = 42
	tiffTagImageWidth  = 0x0100
	tiffTagImageHeight = 0x0101

	tiffTypeShort = 3
	tiffTypeLong  = 4
)

// parseTIFF reads the byte-order mark, validates the magic number, and
// scans IFD0 for ImageWidth/ImageHeight. Grounded on the CONFIG branch
// already present in imagedecoder_tif.go, which performs exactly this
// scan (minus the EXIF IFD1 walk that follows it there).
func parseTIFF(b *byteReader) (int, int, error) {
	b.seek(0)
	mark := b.readU16()
	switch mark {
	case 0x4949: // "II"
		b.byteOrder = binary.LittleEndian
	case 0x4D4D: // "MM"
		b.byteOrder = binary.BigEndian
	default:
		return 0, 0, newParserErrorf(TIFF, "bad byte-order mark 0x%04x", mark)
	}

	if magic := b.readU16(); magic != tiffMagic {
		return 0, 0, newParserErrorf(TIFF, "bad magic number %d", magic)
	}

	ifdOffset := b.readU32()
	if ifdOffset < 8 {
		return 0, 0, newParserErrorf(TIFF, "invalid IFD offset %d", ifdOffset)
	}
	b.seek(int64(ifdOffset))

	numTags := b.readU16()
	var width, height int
	var haveWidth, haveHeight bool

	for i := 0; i < int(numTags); i++ {
		b.step()
		tag := b.readU16()
		dataType := b.readU16()
		b.skip(4) // count; always 1 for the tags we care about.

		if tag != tiffTagImageWidth && tag != tiffTagImageHeight {
			b.skip(4) // value/offset
			continue
		}

		var value int
		switch dataType {
		case tiffTypeShort:
			value = int(b.readU16())
			b.skip(2) // padding to fill the 4-byte value slot
		case tiffTypeLong:
			value = int(b.readU32())
		default:
			return 0, 0, newParserErrorf(TIFF, "unsupported tag type %d", dataType)
		}

		if tag == tiffTagImageWidth {
			width, haveWidth = value, true
		} else {
			height, haveHeight = value, true
		}
	}

	if !haveWidth || !haveHeight {
		return 0, 0, newParserErrorf(TIFF, "missing ImageWidth/ImageHeight tag")
	}
	return width, height, nil
}
