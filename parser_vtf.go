// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imgsize

import "encoding/binary"

// parseVTF reads width/height as little-endian u16 at byte 16, past the
// "VTF\0" signature, the 8-byte version and the 4-byte header-size field.
func parseVTF(b *byteReader) (int, int, error) {
	b.byteOrder = binary.LittleEndian
	b.seek(16)
	width := b.readU16()
	height := b.readU16()
	return int(width), int(height), nil
}
