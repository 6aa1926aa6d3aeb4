// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imgsize

import "encoding/binary"

// parsePCX reads the image's bounding box (xmin, ymin, xmax, ymax) as
// little-endian u16 starting at byte 4, and derives dimensions from it.
func parsePCX(b *byteReader) (int, int, error) {
	b.byteOrder = binary.LittleEndian
	b.seek(4)
	xmin := b.readU16()
	ymin := b.readU16()
	xmax := b.readU16()
	ymax := b.readU16()
	if xmax < xmin || ymax < ymin {
		return 0, 0, newParserErrorf(PCX, "invalid bounding box (%d,%d)-(%d,%d)", xmin, ymin, xmax, ymax)
	}
	width := int(xmax) - int(xmin) + 1
	height := int(ymax) - int(ymin) + 1
	return width, height, nil
}
