// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imgsize

import "encoding/binary"

const exrMagic = 20000630

// parseEXR walks the header's attribute list looking for dataWindow, a
// box2i of four little-endian int32 values (xMin, yMin, xMax, yMax).
// Grounded on the attribute-walking shape in coldmine-openexr's exr.go:
// NUL-terminated name, NUL-terminated type, u32 size, then size bytes of
// value, repeated until an empty name ends the header.
func parseEXR(b *byteReader) (int, int, error) {
	b.byteOrder = binary.LittleEndian
	b.seek(0)

	if magic := b.readU32(); magic != exrMagic {
		return 0, 0, newParserErrorf(EXR, "bad magic number %d", magic)
	}
	b.skip(4) // version field: version byte + 3 bytes of flags, unused here.

	for {
		b.step()
		name := b.readNullTerminated(256)
		if len(name) == 0 {
			break
		}
		typ := b.readNullTerminated(256)
		size := b.readU32()

		if string(name) == "dataWindow" && string(typ) == "box2i" {
			if size != 16 {
				return 0, 0, newParserErrorf(EXR, "dataWindow attribute has size %d, want 16", size)
			}
			xMin := b.readI32()
			yMin := b.readI32()
			xMax := b.readI32()
			yMax := b.readI32()
			if xMax < xMin || yMax < yMin {
				return 0, 0, newParserErrorf(EXR, "dataWindow has negative extent")
			}
			return int(xMax-xMin) + 1, int(yMax-yMin) + 1, nil
		}

		b.skip(int64(size))
	}

	return 0, 0, newParserErrorf(EXR, "missing dataWindow attribute")
}
