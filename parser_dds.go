// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imgsize

import "encoding/binary"

// parseDDS reads height then width (in that order) as little-endian u32
// at byte 12, past the "DDS " magic and the 4-byte header-size and flags
// fields.
func parseDDS(b *byteReader) (int, int, error) {
	b.byteOrder = binary.LittleEndian
	b.seek(12)
	height := b.readU32()
	width := b.readU32()
	return int(width), int(height), nil
}
