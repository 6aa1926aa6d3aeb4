// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imgsize

import "encoding/binary"

// parseTGA reads width/height as little-endian u16 at byte 12 of the
// image specification field; the header offset is fixed regardless of
// whether the optional TRUEVISION-XFILE footer is present.
func parseTGA(b *byteReader) (int, int, error) {
	b.byteOrder = binary.LittleEndian
	b.seek(12)
	width := b.readU16()
	height := b.readU16()
	return int(width), int(height), nil
}
