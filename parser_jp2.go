// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imgsize

var (
	jp2BoxHeader = fourCC{'j', 'p', '2', 'h'}
	jp2BoxIhdr   = fourCC{'i', 'h', 'd', 'r'}
)

const (
	jp2cCodestream = 0xFF4F // SOC marker
	jp2cSIZMarker  = 0xFF51
)

// parseJP2 handles both the JP2 file format (a box stream wrapping a
// codestream) and a bare raw JPEG 2000 codestream. The detector reports
// JP2 for both; we distinguish them by peeking the first bytes.
//
// Box walking is grounded on the header shape in go-jpeg2000's
// internal/box package: 4-byte length (1 means extended 8-byte length
// follows, 0 means "extends to EOF"), 4-byte type, then contents.
func parseJP2(b *byteReader) (int, int, error) {
	b.seek(0)
	first4 := b.readExact(4)
	isCodestream := first4[0] == 0xFF && first4[1] == 0x4F

	b.seek(0)
	if isCodestream {
		return parseJP2Codestream(b)
	}
	return parseJP2BoxForm(b)
}

// parseJP2BoxForm walks top-level boxes looking for jp2h -> ihdr.
func parseJP2BoxForm(b *byteReader) (int, int, error) {
	end := b.size()

	for b.pos() < end {
		b.step()
		boxStart := b.pos()
		length := int64(b.readU32())
		var boxType fourCC
		b.readExactInto(boxType[:])

		headerLen := int64(8)
		switch length {
		case 0:
			length = end - boxStart
		case 1:
			length = int64(b.readU64())
			headerLen = 16
		}
		if length < headerLen {
			return 0, 0, newParserErrorf(JP2, "invalid box length %d", length)
		}
		contentEnd := boxStart + length

		if boxType == jp2BoxHeader {
			return parseJP2HeaderBox(b, contentEnd)
		}

		b.seek(contentEnd)
	}

	return 0, 0, newParserErrorf(JP2, "missing jp2h box")
}

// parseJP2HeaderBox walks the jp2h super-box's children looking for ihdr,
// which holds height (u32), width (u32), numComponents (u16), and four
// more single-byte fields we don't need.
func parseJP2HeaderBox(b *byteReader, end int64) (int, int, error) {
	for b.pos() < end {
		b.step()
		boxStart := b.pos()
		length := int64(b.readU32())
		var boxType fourCC
		b.readExactInto(boxType[:])

		headerLen := int64(8)
		if length == 0 {
			length = end - boxStart
		} else if length == 1 {
			length = int64(b.readU64())
			headerLen = 16
		}
		if length < headerLen {
			return 0, 0, newParserErrorf(JP2, "invalid box length %d", length)
		}
		contentEnd := boxStart + length

		if boxType == jp2BoxIhdr {
			height := b.readU32()
			width := b.readU32()
			return int(width), int(height), nil
		}

		b.seek(contentEnd)
	}
	return 0, 0, newParserErrorf(JP2, "missing ihdr box inside jp2h")
}

// parseJP2Codestream reads a bare codestream: SOC marker, then scans
// markers until SIZ, which carries Xsiz/Ysiz/XOsiz/YOsiz as big-endian
// u32 fields following a u16 length and u16 Rsiz.
func parseJP2Codestream(b *byteReader) (int, int, error) {
	soc := b.readU16()
	if soc != jp2cCodestream {
		return 0, 0, newParserErrorf(JP2, "missing SOC marker")
	}

	for {
		b.step()
		marker := b.readU16()
		if marker == jp2cSIZMarker {
			b.skip(2) // segment length
			b.skip(2) // Rsiz
			xsiz := b.readU32()
			ysiz := b.readU32()
			xosiz := b.readU32()
			yosiz := b.readU32()
			if xsiz < xosiz || ysiz < yosiz {
				return 0, 0, newParserErrorf(JP2, "invalid SIZ extent")
			}
			return int(xsiz - xosiz), int(ysiz - yosiz), nil
		}

		if marker>>8 != 0xFF {
			return 0, 0, newParserErrorf(JP2, "malformed marker 0x%04x before SIZ", marker)
		}

		length := b.readU16()
		if length < 2 {
			return 0, 0, newParserErrorf(JP2, "invalid segment length %d", length)
		}
		b.skip(int64(length) - 2)
	}
}
