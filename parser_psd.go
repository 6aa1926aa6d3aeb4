// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imgsize

// parsePSD reads the Photoshop file header's height then width (in that
// order — PSD stores rows before columns), both big-endian u32, starting
// at byte 14 (past the "8BPS" signature, 2-byte version, 6 reserved
// bytes, and 2-byte channel count).
func parsePSD(b *byteReader) (int, int, error) {
	b.seek(14)
	height := b.readU32()
	width := b.readU32()
	return int(width), int(height), nil
}
