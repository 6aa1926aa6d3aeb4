// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imgsize

import "encoding/binary"

var (
	fccVP8Sp = fourCC{'V', 'P', '8', ' '}
	fccVP8L  = fourCC{'V', 'P', '8', 'L'}
	fccVP8X  = fourCC{'V', 'P', '8', 'X'}
)

// parseWEBP reads the first chunk after the RIFF/WEBP header (already
// confirmed present by the detector) and extracts dimensions per its
// sub-format, following spec §4.3. Grounded on imagedecoder_webp.go's
// RIFF chunk loop shape.
func parseWEBP(b *byteReader) (int, int, error) {
	b.byteOrder = binary.LittleEndian
	b.seek(12)

	var chunkID fourCC
	b.readExactInto(chunkID[:])

	switch chunkID {
	case fccVP8Sp:
		// Chunk data starts right after the 4-byte FourCC + 4-byte
		// chunk size (8 bytes in). The frame tag's width/height live
		// 6 bytes into the VP8 bitstream header, i.e. 14 bytes from
		// the start of the chunk.
		b.skip(4) // chunk size
		b.skip(6) // frame tag (3 bytes) + start code (3 bytes)
		w := b.readU16()
		h := b.readU16()
		return int(w & 0x3FFF), int(h & 0x3FFF), nil

	case fccVP8L:
		b.skip(4) // chunk size
		sig := b.readU8()
		if sig != 0x2F {
			return 0, 0, newParserErrorf(WEBP, "bad VP8L signature 0x%02x", sig)
		}
		v := b.readU32()
		width := int(v&0x3FFF) + 1
		height := int((v>>14)&0x3FFF) + 1
		return width, height, nil

	case fccVP8X:
		b.skip(4) // chunk size
		b.skip(4) // flags + reserved
		wMinus1 := readU24LE(b)
		hMinus1 := readU24LE(b)
		return int(wMinus1) + 1, int(hMinus1) + 1, nil

	default:
		return 0, 0, newParserErrorf(WEBP, "unsupported WebP chunk %q", chunkID[:])
	}
}

// readU24LE reads a 3-byte little-endian unsigned integer, used by
// VP8X's width-1/height-1 fields.
func readU24LE(b *byteReader) uint32 {
	buf := b.readExact(3)
	return uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16
}
