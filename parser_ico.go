// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imgsize

import "encoding/binary"

// parseICO reports the dimensions of the first ICONDIRENTRY only; spec
// §9 leaves the selection policy among multiple entries undocumented, so
// this package does not invent one. Grounded on
// _examples/other_examples/.../antoinefink-golang-ico reader.go's
// ICONDIR/ICONDIRENTRY layout.
func parseICO(b *byteReader) (int, int, error) {
	b.byteOrder = binary.LittleEndian
	b.seek(4)
	entryCount := b.readU16()
	if entryCount == 0 {
		return 0, 0, newParserErrorf(ICO, "icon directory has no entries")
	}

	widthByte := b.readU8()
	heightByte := b.readU8()

	width := int(widthByte)
	if width == 0 {
		width = 256
	}
	height := int(heightByte)
	if height == 0 {
		height = 256
	}
	return width, height, nil
}
