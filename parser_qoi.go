// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imgsize

// parseQOI reads the fixed-layout QOI header: 4-byte "qoif" magic,
// width and height as big-endian u32.
func parseQOI(b *byteReader) (int, int, error) {
	b.seek(4)
	width := b.readU32()
	height := b.readU32()
	return int(width), int(height), nil
}
