// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imgsize

const (
	jpegSOI = 0xD8
	jpegSOS = 0xDA
)

// isSOFMarker reports whether m is a Start-Of-Frame marker carrying
// dimensions: C0..CF excluding C4 (DHT), C8 (reserved), and CC (DAC).
func isSOFMarker(m byte) bool {
	if m < 0xC0 || m > 0xCF {
		return false
	}
	return m != 0xC4 && m != 0xC8 && m != 0xCC
}

// isStandaloneMarker reports whether m has no payload segment: the RSTn
// restart markers, SOI, EOI, and TEM.
func isStandaloneMarker(m byte) bool {
	if m >= 0xD0 && m <= 0xD7 {
		return true
	}
	return m == 0xD8 || m == 0xD9 || m == 0x01
}

// parseJPEG walks the marker stream looking for the first SOFx segment,
// which carries frame height/width. Grounded on imagedecoder_jpg.go's
// marker loop shape, reduced to the dimensions-only path.
func parseJPEG(b *byteReader) (int, int, error) {
	b.seek(0)
	marker := b.readU16()
	if byte(marker>>8) != 0xFF || byte(marker) != jpegSOI {
		return 0, 0, newParserErrorf(JPEG, "missing SOI marker")
	}

	for {
		b.step()

		// Skip to the next 0xFF, then read the marker byte, skipping
		// any 0xFF fill bytes in between.
		var m byte
		for {
			c := b.readU8()
			if c != 0xFF {
				continue
			}
			m = b.readU8()
			for m == 0xFF {
				m = b.readU8()
			}
			break
		}

		if m == jpegSOS {
			return 0, 0, newParserErrorf(JPEG, "start of scan reached before any SOF marker")
		}

		if isStandaloneMarker(m) {
			continue
		}

		length := b.readU16()
		if length < 2 {
			return 0, 0, newParserErrorf(JPEG, "invalid segment length %d", length)
		}

		if isSOFMarker(m) {
			b.skip(1) // precision
			height := b.readU16()
			width := b.readU16()
			return int(width), int(height), nil
		}

		b.skip(int64(length) - 2)
	}
}
