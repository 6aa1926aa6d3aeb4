// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imgsize_test

import "encoding/binary"

// be32/le32/be16/le16 append fixed-width integers in the given byte
// order, used throughout the format test files to hand-build minimal
// valid headers without depending on any binary testdata.

func be16(buf []byte, v uint16) []byte {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	return append(buf, tmp[:]...)
}

func le16(buf []byte, v uint16) []byte {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	return append(buf, tmp[:]...)
}

func be32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

func le32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

func bytesN(n int, fill byte) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = fill
	}
	return buf
}

func pngFixture(width, height uint32) []byte {
	buf := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	buf = be32(buf, 13) // IHDR length
	buf = append(buf, "IHDR"...)
	buf = be32(buf, width)
	buf = be32(buf, height)
	buf = append(buf, 1, 2, 0, 0, 0) // bitdepth, colortype, compression, filter, interlace
	buf = be32(buf, 0)               // CRC, unchecked
	return buf
}

func qoiFixture(width, height uint32) []byte {
	buf := []byte("qoif")
	buf = be32(buf, width)
	buf = be32(buf, height)
	buf = append(buf, 4, 0) // channels, colorspace
	return buf
}

func gifFixture(width, height uint16) []byte {
	buf := []byte("GIF89a")
	buf = le16(buf, width)
	buf = le16(buf, height)
	buf = append(buf, 0, 0, 0) // packed fields, bg color index, pixel aspect ratio
	return buf
}

func bmpFixture(width, height int32) []byte {
	buf := []byte("BM")
	buf = le32(buf, 0)  // file size, unchecked
	buf = le16(buf, 0)  // reserved1
	buf = le16(buf, 0)  // reserved2
	buf = le32(buf, 54) // pixel data offset
	buf = le32(buf, 40) // DIB header size (BITMAPINFOHEADER)
	buf = le32(buf, uint32(width))
	buf = le32(buf, uint32(height))
	buf = le16(buf, 1)  // planes
	buf = le16(buf, 24) // bpp
	return buf
}

func dibFixture(width, height int32) []byte {
	buf := le32(nil, 40) // DIB header size
	buf = le32(buf, uint32(width))
	buf = le32(buf, uint32(height))
	buf = le16(buf, 1)
	buf = le16(buf, 24)
	return buf
}

func dibCoreFixture(width, height uint16) []byte {
	buf := le32(nil, 12) // BITMAPCOREHEADER size
	buf = le16(buf, width)
	buf = le16(buf, height)
	buf = le16(buf, 1)
	buf = le16(buf, 24)
	return buf
}

func psdFixture(width, height uint32) []byte {
	buf := []byte("8BPS")
	buf = be16(buf, 1) // version
	buf = append(buf, bytesN(6, 0)...)
	buf = be16(buf, 3) // channels
	buf = be32(buf, height)
	buf = be32(buf, width)
	buf = be16(buf, 8)  // depth
	buf = be16(buf, 3)  // color mode
	return buf
}

func xcfFixture(width, height uint32) []byte {
	buf := []byte("gimp xcf v011")
	buf = append(buf, 0) // NUL terminator to reach byte 14
	buf = be32(buf, width)
	buf = be32(buf, height)
	buf = be32(buf, 0) // base type
	return buf
}

func vtfFixture(width, height uint16) []byte {
	buf := []byte("VTF\x00")
	buf = le32(buf, 7) // major version
	buf = le32(buf, 2) // minor version
	buf = le32(buf, 80) // header size
	buf = le16(buf, width)
	buf = le16(buf, height)
	return buf
}

func ddsFixture(width, height uint32) []byte {
	buf := []byte("DDS ")
	buf = le32(buf, 124) // header size
	buf = le32(buf, 0)   // flags
	buf = le32(buf, height)
	buf = le32(buf, width)
	return buf
}

func pcxFixture(xmax, ymax uint16) []byte {
	buf := []byte{0x0A, 5, 0, 8}
	buf = le16(buf, 0) // xmin
	buf = le16(buf, 0) // ymin
	buf = le16(buf, xmax)
	buf = le16(buf, ymax)
	return buf
}

func icoFixture(width, height byte, entries uint16) []byte {
	buf := le16(nil, 0) // reserved
	buf = le16(buf, 1)  // type
	buf = le16(buf, entries)
	buf = append(buf, width, height, 0, 0) // width, height, colors, reserved
	buf = le16(buf, 1)                     // color planes
	buf = le16(buf, 32)                    // bpp
	buf = le32(buf, 0)                     // size in bytes
	buf = le32(buf, 22)                    // offset
	return buf
}

func tgaFixture(width, height uint16) []byte {
	buf := bytesN(12, 0)
	buf = le16(buf, width)
	buf = le16(buf, height)
	buf = append(buf, 24, 0) // pixel depth, image descriptor
	buf = le32(buf, 0)       // footer: extension area offset
	buf = le32(buf, 0)       // footer: developer directory offset
	buf = append(buf, "TRUEVISION-XFILE.\x00"...)
	return buf
}

func webpVP8Fixture(width, height uint16) []byte {
	buf := []byte("RIFF")
	buf = le32(buf, 0) // riff size, unchecked
	buf = append(buf, "WEBP"...)
	buf = append(buf, "VP8 "...)
	buf = le32(buf, 10) // chunk size
	buf = append(buf, 0x10, 0x02, 0x00) // frame tag (key frame, version 0, show_frame)
	buf = append(buf, 0x9D, 0x01, 0x2A) // start code
	buf = le16(buf, width&0x3FFF)
	buf = le16(buf, height&0x3FFF)
	return buf
}

func webpVP8LFixture(width, height uint32) []byte {
	buf := []byte("RIFF")
	buf = le32(buf, 0)
	buf = append(buf, "WEBP"...)
	buf = append(buf, "VP8L"...)
	buf = le32(buf, 5) // chunk size
	buf = append(buf, 0x2F)
	v := (width - 1) | ((height - 1) << 14)
	buf = le32(buf, v)
	return buf
}

func webpVP8XFixture(width, height uint32) []byte {
	buf := []byte("RIFF")
	buf = le32(buf, 0)
	buf = append(buf, "WEBP"...)
	buf = append(buf, "VP8X"...)
	buf = le32(buf, 10) // chunk size
	buf = append(buf, 0, 0, 0, 0) // flags + reserved
	wMinus1 := width - 1
	hMinus1 := height - 1
	buf = append(buf, byte(wMinus1), byte(wMinus1>>8), byte(wMinus1>>16))
	buf = append(buf, byte(hMinus1), byte(hMinus1>>8), byte(hMinus1>>16))
	return buf
}

// jpegSegment appends a marker segment (length includes the two length
// bytes themselves, per the JPEG spec) with the given payload.
func jpegSegment(buf []byte, marker byte, payload []byte) []byte {
	buf = append(buf, 0xFF, marker)
	buf = be16(buf, uint16(len(payload)+2))
	return append(buf, payload...)
}

func jpegFixture(width, height uint16) []byte {
	buf := []byte{0xFF, 0xD8} // SOI
	buf = jpegSegment(buf, 0xE0, append([]byte("JFIF\x00"), 1, 1, 0, 0, 1, 0, 1, 0, 0))

	var sof []byte
	sof = append(sof, 8) // precision
	sof = be16(sof, height)
	sof = be16(sof, width)
	sof = append(sof, 3, 1, 0x22, 0, 2, 0x11, 1, 3, 0x11, 1) // components
	buf = jpegSegment(buf, 0xC0, sof)

	buf = append(buf, 0xFF, 0xD9) // EOI, never reached by the parser
	return buf
}

func tiffFixture(width, height uint32, littleEndian bool) []byte {
	var order [2]byte
	var bo func([]byte, uint16) []byte
	var bo32 func([]byte, uint32) []byte
	if littleEndian {
		order = [2]byte{'I', 'I'}
		bo = le16
		bo32 = le32
	} else {
		order = [2]byte{'M', 'M'}
		bo = be16
		bo32 = be32
	}

	buf := append([]byte{}, order[:]...)
	buf = bo(buf, 42)
	buf = bo32(buf, 8) // IFD0 offset

	buf = bo(buf, 2) // two tags
	// ImageWidth, type LONG
	buf = bo(buf, 0x0100)
	buf = bo(buf, 4)
	buf = bo32(buf, 1)
	buf = bo32(buf, width)
	// ImageLength, type LONG
	buf = bo(buf, 0x0101)
	buf = bo(buf, 4)
	buf = bo32(buf, 1)
	buf = bo32(buf, height)
	buf = bo32(buf, 0) // next IFD offset

	return buf
}

func exrFixture(xMax, yMax int32) []byte {
	buf := le32(nil, 20000630) // magic
	buf = le32(buf, 2)         // version field
	buf = append(buf, "dataWindow\x00"...)
	buf = append(buf, "box2i\x00"...)
	buf = le32(buf, 16)
	buf = le32(buf, 0) // xMin
	buf = le32(buf, 0) // yMin
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], uint32(xMax))
	buf = append(buf, tmp[:]...)
	binary.LittleEndian.PutUint32(tmp[:], uint32(yMax))
	buf = append(buf, tmp[:]...)
	buf = append(buf, 0) // empty name: end of header
	return buf
}

func jp2BoxFixture(width, height uint32) []byte {
	sig := []byte{0x00, 0x00, 0x00, 0x0C, 'j', 'P', ' ', ' ', 0x0D, 0x0A, 0x87, 0x0A}
	ftyp := be32(nil, 20)
	ftyp = append(ftyp, "ftyp"...)
	ftyp = append(ftyp, "jp2 "...)
	ftyp = be32(ftyp, 0)
	ftyp = append(ftyp, "jp2 "...)

	ihdr := be32(nil, 22)
	ihdr = append(ihdr, "ihdr"...)
	ihdr = be32(ihdr, height)
	ihdr = be32(ihdr, width)
	ihdr = be16(ihdr, 3)         // numComponents
	ihdr = append(ihdr, 7, 7, 0) // bpc, compression, unkC
	ihdr = append(ihdr, 0)      // ipr

	jp2h := be32(nil, uint32(8+len(ihdr)))
	jp2h = append(jp2h, "jp2h"...)
	jp2h = append(jp2h, ihdr...)

	buf := append([]byte{}, sig...)
	buf = append(buf, ftyp...)
	buf = append(buf, jp2h...)
	return buf
}

func jp2CodestreamFixture(width, height uint32) []byte {
	buf := []byte{0xFF, 0x4F} // SOC
	buf = append(buf, 0xFF, 0x51)
	var seg []byte
	seg = be16(seg, 0) // Rsiz
	seg = be32(seg, width)
	seg = be32(seg, height)
	seg = be32(seg, 0) // XOsiz
	seg = be32(seg, 0) // YOsiz
	buf = be16(buf, uint16(len(seg)+2))
	buf = append(buf, seg...)
	return buf
}

// isobmffBox builds a single box with the given 4-byte type and payload.
func isobmffBox(boxType string, payload []byte) []byte {
	buf := be32(nil, uint32(8+len(payload)))
	buf = append(buf, boxType...)
	return append(buf, payload...)
}

func isobmffFixture(brand string, width, height uint32) []byte {
	ftyp := isobmffBox("ftyp", append([]byte(brand), be32(nil, 0)...))

	ispe := be32(nil, 0) // version+flags
	ispe = be32(ispe, width)
	ispe = be32(ispe, height)
	ipcoBox := isobmffBox("ipco", isobmffBox("ispe", ispe))

	ipma := be32(nil, 0) // version+flags
	ipma = be32(ipma, 1) // entry count
	ipma = be16(ipma, 1) // item ID
	ipma = append(ipma, 1)    // association count
	ipma = append(ipma, 1)    // property index 1, no priority-hint bit
	ipmaBox := isobmffBox("ipma", ipma)

	iprp := isobmffBox("iprp", append(append([]byte{}, ipcoBox...), ipmaBox...))

	pitm := be32(nil, 0) // version+flags
	pitm = be16(pitm, 1) // primary item ID
	pitmBox := isobmffBox("pitm", pitm)

	metaPayload := be32(nil, 0) // FullBox version+flags
	metaPayload = append(metaPayload, pitmBox...)
	metaPayload = append(metaPayload, iprp...)
	meta := isobmffBox("meta", metaPayload)

	buf := append([]byte{}, ftyp...)
	buf = append(buf, meta...)
	return buf
}
