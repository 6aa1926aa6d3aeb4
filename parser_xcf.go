// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imgsize

// parseXCF reads width/height as big-endian u32 at byte 14, past the
// "gimp xcf " signature and its null-terminated version suffix.
func parseXCF(b *byteReader) (int, int, error) {
	b.seek(14)
	width := b.readU32()
	height := b.readU32()
	return int(width), int(height), nil
}
