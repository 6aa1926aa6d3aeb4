// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imgsize

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// GetImageSize is the polymorphic entry point described in spec §6. It
// accepts a filesystem path (string), a raw byte buffer ([]byte), or an
// already-open seekable reader (io.ReadSeeker), opens/wraps it as
// needed, and delegates to the core dispatcher. No branching happens
// inside the core; this is the single adapter point.
func GetImageSize(source any) (ImageInfo, error) {
	switch v := source.(type) {
	case string:
		return GetImageSizeFromPath(v)
	case []byte:
		return GetImageSizeFromBuffer(v)
	case io.ReadSeeker:
		return GetImageSizeFromReader(v)
	default:
		return ImageInfo{}, fmt.Errorf("imgsize: unsupported source type %T", source)
	}
}

// GetImageSizeFromPath opens path read-only and binary, then delegates
// to the core dispatcher.
func GetImageSizeFromPath(path string) (ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImageInfo{}, newIOError(err)
	}
	defer f.Close()
	return dispatch(f)
}

// GetImageSizeFromBuffer wraps a seekable cursor over b and delegates to
// the core dispatcher.
func GetImageSizeFromBuffer(b []byte) (ImageInfo, error) {
	return dispatch(bytes.NewReader(b))
}

// GetImageSizeFromReader delegates to the core dispatcher directly. The
// reader must be seekable; the core never retains it beyond this call.
func GetImageSizeFromReader(r io.ReadSeeker) (ImageInfo, error) {
	return dispatch(r)
}
