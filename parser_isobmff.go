// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imgsize

import "math"

// ISOBMFF box and item types shared by AVIF, HEIC, and HEIF, which are
// all the same container format (ISO/IEC 14496-12) distinguished only
// by their ftyp brand (see detectISOBMFF in detector.go).
var (
	fccFtyp = fourCC{'f', 't', 'y', 'p'}
	fccMeta = fourCC{'m', 'e', 't', 'a'}
	fccIprp = fourCC{'i', 'p', 'r', 'p'}
	fccIpco = fourCC{'i', 'p', 'c', 'o'}
	fccIpma = fourCC{'i', 'p', 'm', 'a'}
	fccIspe = fourCC{'i', 's', 'p', 'e'}
	fccIrot = fourCC{'i', 'r', 'o', 't'}
	fccPitm = fourCC{'p', 'i', 't', 'm'}
)

// readISOBMFFBox reads a box header and returns (startPos, totalSize,
// boxType); totalSize == 0 means "extends to end of file".
func readISOBMFFBox(b *byteReader) (startPos int64, totalSize uint64, boxType fourCC) {
	startPos = b.pos()
	size := b.readU32()
	b.readExactInto(boxType[:])
	totalSize = uint64(size)
	if size == 1 {
		totalSize = b.readU64()
	}
	return
}

type ipcoProp struct {
	isIspe        bool
	isIrot        bool
	width, height uint32
	angle         uint8
}

// parseAVIF, parseHEIC, and parseHEIF all walk the identical box tree;
// only the format tag on returned errors differs, since the detector has
// already classified the ftyp brand.
func parseAVIF(b *byteReader) (int, int, error) { return parseISOBMFF(b, AVIF) }
func parseHEIC(b *byteReader) (int, int, error) { return parseISOBMFF(b, HEIC) }
func parseHEIF(b *byteReader) (int, int, error) { return parseISOBMFF(b, HEIF) }

// parseISOBMFF walks ftyp -> meta -> (pitm, iprp -> ipco, ipma) to resolve
// the primary item's ispe (image spatial extent) property, falling back
// to the largest ispe in the file when no primary item is identifiable.
// Grounded near-verbatim on the CONFIG-resolution path of
// imagedecoder_heif.go, stripped of the EXIF/XMP/iloc/iinf item-data
// extraction this package has no use for.
func parseISOBMFF(b *byteReader, format Format) (int, int, error) {
	b.seek(0)

	ftypStart, ftypSize, ftypType := readISOBMFFBox(b)
	if ftypType != fccFtyp {
		return 0, 0, newParserErrorf(format, "missing ftyp box")
	}
	if ftypSize > 0 {
		b.seek(ftypStart + int64(ftypSize))
	}

	var metaStart int64
	var metaSize uint64
	for {
		b.step()
		s, size, boxType := readISOBMFFBox(b)
		if boxType == fccMeta {
			metaStart, metaSize = s, size
			break
		}
		if size == 0 {
			return 0, 0, newParserErrorf(format, "missing meta box")
		}
		b.seek(s + int64(size))
	}

	b.skip(4) // meta FullBox version+flags

	var metaEnd int64
	if metaSize == 0 {
		metaEnd = math.MaxInt64
	} else {
		metaEnd = metaStart + int64(metaSize)
	}

	var primaryItemID uint32
	var ipcoProps []ipcoProp
	var primaryPropIndices []int

	for b.pos()+8 <= metaEnd {
		b.step()
		innerStart, innerSize, innerType := readISOBMFFBox(b)
		if innerSize == 0 {
			break
		}
		innerEnd := innerStart + int64(innerSize)

		switch innerType {
		case fccPitm:
			vf := b.readU32()
			if vf>>24 == 0 {
				primaryItemID = uint32(b.readU16())
			} else {
				primaryItemID = b.readU32()
			}

		case fccIprp:
			parseIprpBox(b, innerEnd, primaryItemID, &ipcoProps, &primaryPropIndices)
		}

		b.seek(innerEnd)
	}

	if len(ipcoProps) == 0 {
		return 0, 0, newParserErrorf(format, "no ispe property found")
	}

	var width, height uint32
	var rotate bool

	if primaryItemID != 0 && len(primaryPropIndices) > 0 {
		for _, idx := range primaryPropIndices {
			if idx < 1 || idx > len(ipcoProps) {
				continue
			}
			p := ipcoProps[idx-1]
			if p.isIspe && p.width > 0 && p.height > 0 {
				width, height = p.width, p.height
			}
			if p.isIrot && (p.angle == 1 || p.angle == 3) {
				rotate = true
			}
		}
	}

	if width == 0 || height == 0 {
		for _, p := range ipcoProps {
			if p.isIspe && p.width > 0 && p.height > 0 {
				if uint64(p.width)*uint64(p.height) > uint64(width)*uint64(height) {
					width, height = p.width, p.height
				}
			}
		}
		for _, p := range ipcoProps {
			if p.isIrot && (p.angle == 1 || p.angle == 3) {
				rotate = true
				break
			}
		}
	}

	if width == 0 || height == 0 {
		return 0, 0, newParserErrorf(format, "could not resolve primary item dimensions")
	}
	if rotate {
		width, height = height, width
	}
	return int(width), int(height), nil
}

// parseIprpBox walks iprp's ipco (property container) and ipma (property
// association) children, accumulating every ispe/irot property and the
// primary item's associated property indices.
func parseIprpBox(b *byteReader, iprpEnd int64, primaryItemID uint32, ipcoProps *[]ipcoProp, primaryPropIndices *[]int) {
	for b.pos()+8 <= iprpEnd {
		b.step()
		childStart, childSize, childType := readISOBMFFBox(b)
		if childSize == 0 {
			break
		}
		childEnd := childStart + int64(childSize)

		switch childType {
		case fccIpco:
			for b.pos()+8 <= childEnd {
				b.step()
				propStart, propSize, propType := readISOBMFFBox(b)
				if propSize == 0 {
					break
				}
				propEnd := propStart + int64(propSize)

				var prop ipcoProp
				switch propType {
				case fccIspe:
					b.skip(4) // version+flags
					prop = ipcoProp{isIspe: true, width: b.readU32(), height: b.readU32()}
				case fccIrot:
					prop = ipcoProp{isIrot: true, angle: b.readU8()}
				}
				*ipcoProps = append(*ipcoProps, prop)
				b.seek(propEnd)
			}

		case fccIpma:
			vf := b.readU32()
			ipmaVersion := uint8(vf >> 24)
			ipmaFlags := vf & 0xFFFFFF
			entryCount := b.readU32()
			for i := uint32(0); i < entryCount; i++ {
				var itemID uint32
				if ipmaVersion < 1 {
					itemID = uint32(b.readU16())
				} else {
					itemID = b.readU32()
				}
				assocCount := b.readU8()
				for j := uint8(0); j < assocCount; j++ {
					var propIdx int
					if ipmaFlags&1 != 0 {
						propIdx = int(b.readU16() & 0x7FFF)
					} else {
						propIdx = int(b.readU8() & 0x7F)
					}
					if itemID == primaryItemID && primaryItemID != 0 {
						*primaryPropIndices = append(*primaryPropIndices, propIdx)
					}
				}
			}
		}

		b.seek(childEnd)
	}
}
