// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imgsize

// parsePNG reads width/height from the IHDR chunk, which is always the
// first chunk and always starts at byte 16 (8-byte signature + 4-byte
// chunk length + 4-byte "IHDR" tag). Grounded on imagedecoder_png.go's
// chunk-skip loop shape, reduced to the one field every PNG has.
func parsePNG(b *byteReader) (int, int, error) {
	b.seek(16)
	width := b.readU32()
	height := b.readU32()
	return int(width), int(height), nil
}
