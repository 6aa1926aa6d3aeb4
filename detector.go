// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imgsize

import (
	"bytes"
	"encoding/binary"
	"io"
)

// peekSize is the number of leading bytes the detector reads up front;
// a handful of signature tests (ISO-BMFF brand sniffing, the TGA footer
// probe) grow the window beyond this as needed.
const peekSize = 32

// maxFtypBytes bounds how far the ISO-BMFF brand sniff will read past the
// ftyp box header, so a crafted box with an enormous declared size cannot
// make detection do unbounded work.
const maxFtypBytes = 4096

var (
	sigPNG  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	sigQOI  = []byte("qoif")
	sigGIF7 = []byte("GIF87a")
	sigGIF9 = []byte("GIF89a")
	sigBMP  = []byte("BM")
	sigPSD  = []byte("8BPS")
	sigXCF  = []byte("gimp xcf ")
	sigEXR  = []byte{0x76, 0x2F, 0x31, 0x01}
	sigVTF  = []byte("VTF\x00")
	sigDDS  = []byte("DDS ")
	sigJPEG = []byte{0xFF, 0xD8, 0xFF}
	sigJP2  = []byte{0x00, 0x00, 0x00, 0x0C, 0x6A, 0x50, 0x20, 0x20, 0x0D, 0x0A, 0x87, 0x0A}
	sigJPC  = []byte{0xFF, 0x4F, 0xFF, 0x51}
	sigTIFL = []byte{0x49, 0x49, 0x2A, 0x00}
	sigTIFB = []byte{0x4D, 0x4D, 0x00, 0x2A}
	sigICO  = []byte{0x00, 0x00, 0x01, 0x00}
	sigRIFF = []byte("RIFF")
	sigWEBP = []byte("WEBP")
	sigFtyp = []byte("ftyp")

	tgaFooter = []byte("TRUEVISION-XFILE.\x00")
)

var dibHeaderSizes = map[uint32]bool{
	12: true, 40: true, 52: true, 56: true, 64: true, 108: true, 124: true,
}

// detectFormat classifies the stream at r (which must currently be, or be
// seekable back to, position 0) into a Format tag, applying the fixed
// priority order from spec §4.2. It never mutates parser state; the
// dispatcher re-seeks to 0 and builds a fresh byteReader before parsing.
func detectFormat(r io.ReadSeeker) (Format, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return Unknown, newIOError(err)
	}

	prefix, err := peekN(r, peekSize)
	if err != nil {
		return Unknown, newIOError(err)
	}

	switch {
	case bytes.HasPrefix(prefix, sigPNG):
		return PNG, nil
	case bytes.HasPrefix(prefix, sigQOI):
		return QOI, nil
	case bytes.HasPrefix(prefix, sigGIF7), bytes.HasPrefix(prefix, sigGIF9):
		return GIF, nil
	case bytes.HasPrefix(prefix, sigBMP):
		return BMP, nil
	case bytes.HasPrefix(prefix, sigPSD):
		return PSD, nil
	case bytes.HasPrefix(prefix, sigXCF):
		return XCF, nil
	case bytes.HasPrefix(prefix, sigEXR):
		return EXR, nil
	case bytes.HasPrefix(prefix, sigVTF):
		return VTF, nil
	case bytes.HasPrefix(prefix, sigDDS):
		return DDS, nil
	case len(prefix) >= 12 && bytes.Equal(prefix[4:8], sigFtyp):
		return detectISOBMFF(r)
	case len(prefix) >= 12 && bytes.Equal(prefix[0:4], sigRIFF) && bytes.Equal(prefix[8:12], sigWEBP):
		return WEBP, nil
	case bytes.HasPrefix(prefix, sigJPEG):
		return JPEG, nil
	case bytes.HasPrefix(prefix, sigJP2), bytes.HasPrefix(prefix, sigJPC):
		return JP2, nil
	case bytes.HasPrefix(prefix, sigTIFL), bytes.HasPrefix(prefix, sigTIFB):
		return TIFF, nil
	case isPCXPrefix(prefix):
		return PCX, nil
	case bytes.HasPrefix(prefix, sigICO):
		return ICO, nil
	}

	if isTGA(r) {
		return TGA, nil
	}

	if len(prefix) >= 4 && dibHeaderSizes[binary.LittleEndian.Uint32(prefix[0:4])] {
		return DIB, nil
	}

	return Unknown, errUnsupportedFormat
}

// peekN reads up to n bytes from the current position of r without
// failing on a short file; it returns whatever was actually available.
func peekN(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	read, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	return buf[:read], nil
}

func isPCXPrefix(prefix []byte) bool {
	if len(prefix) < 3 {
		return false
	}
	if prefix[0] != 0x0A {
		return false
	}
	if prefix[1] > 5 {
		return false
	}
	switch prefix[2] {
	case 0, 2, 3, 4, 5:
		return true
	default:
		return false
	}
}

// isTGA probes the optional 18-byte footer at the end of the stream. A
// false positive against an arbitrary file whose last 18 bytes happen to
// match is possible and documented (spec §9); this package does not try
// to harden the heuristic further.
func isTGA(r io.ReadSeeker) bool {
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil || end < 18 {
		return false
	}
	if _, err := r.Seek(end-18, io.SeekStart); err != nil {
		return false
	}
	footer, err := peekN(r, 18)
	if err != nil || len(footer) != 18 {
		return false
	}
	return bytes.Equal(footer, tgaFooter)
}

// detectISOBMFF reads the major brand and compatible-brands list of the
// ftyp box (already confirmed present by the caller) and classifies the
// stream as AVIF, HEIC, HEIF, or UnsupportedFormat.
//
// Box layout: [size:4][type:4]( [largesize:8] if size==1 )[majorBrand:4]
// [minorVersion:4][compatibleBrands:4]*. Reads are capped at
// maxFtypBytes so a crafted box with an enormous declared size cannot
// make detection do unbounded work.
func detectISOBMFF(r io.ReadSeeker) (Format, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return Unknown, newIOError(err)
	}

	header, err := peekN(r, 16)
	if err != nil || len(header) < 16 {
		return Unknown, errUnsupportedFormat
	}

	boxSize := int64(binary.BigEndian.Uint32(header[0:4]))
	payloadStart := int64(8)
	if boxSize == 1 {
		boxSize = int64(binary.BigEndian.Uint64(header[8:16]))
		payloadStart = 16
	}

	if _, err := r.Seek(payloadStart, io.SeekStart); err != nil {
		return Unknown, errUnsupportedFormat
	}
	fields, err := peekN(r, 8) // majorBrand + minorVersion
	if err != nil || len(fields) < 8 {
		return Unknown, errUnsupportedFormat
	}
	brands := [][]byte{fields[0:4]}

	boxEnd := boxSize
	if boxEnd <= 0 || boxEnd > maxFtypBytes {
		boxEnd = maxFtypBytes
	}
	compatStart := payloadStart + 8
	if boxEnd > compatStart {
		if _, err := r.Seek(compatStart, io.SeekStart); err != nil {
			return Unknown, errUnsupportedFormat
		}
		remaining := boxEnd - compatStart
		if remaining > maxFtypBytes {
			remaining = maxFtypBytes
		}
		compat, err := peekN(r, int(remaining))
		if err == nil {
			for i := 0; i+4 <= len(compat); i += 4 {
				brands = append(brands, compat[i:i+4])
			}
		}
	}

	for _, b := range brands {
		switch string(b) {
		case "avif", "avis":
			return AVIF, nil
		}
	}
	for _, b := range brands {
		switch string(b) {
		case "heic", "heix", "heim", "heis":
			return HEIC, nil
		}
	}
	for _, b := range brands {
		switch string(b) {
		case "mif1", "msf1", "heif":
			return HEIF, nil
		}
	}

	return Unknown, errUnsupportedFormat
}
