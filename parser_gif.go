// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imgsize

import "encoding/binary"

// parseGIF reads the logical screen descriptor's width/height, which
// follow the 6-byte "GIF87a"/"GIF89a" signature as little-endian u16.
func parseGIF(b *byteReader) (int, int, error) {
	b.byteOrder = binary.LittleEndian
	b.seek(6)
	width := b.readU16()
	height := b.readU16()
	return int(width), int(height), nil
}
