// Package lz4block implements the length-prefixed LZ4 block container:
// a 4 bytes little endian uncompressed size followed by a single LZ4 block.
//
// This is the layout used by the PHP lz4 extension (lz4_compress/lz4_uncompress).
package lz4block

import (
	"encoding/binary"
	"fmt"

	"github.com/pierrec/lz4/v4"

	"github.com/pierrec/lz4file/internal/lz4errors"
)

const (
	// HeaderSize is the size of the uncompressed length header.
	HeaderSize = 4

	// maxRatio bounds how much a single LZ4 block can expand when decoded.
	maxRatio = 255
)

type compressor interface {
	CompressBlock(src, dst []byte) (int, error)
}

func newCompressor(level lz4.CompressionLevel) compressor {
	if level == lz4.Fast {
		return new(lz4.Compressor)
	}
	return &lz4.CompressorHC{Level: level}
}

// Compress encodes src at the given level and returns the container bytes.
// lz4.Fast selects the standard compressor, any other level the HC one.
func Compress(src []byte, level lz4.CompressionLevel) ([]byte, error) {
	dst := make([]byte, HeaderSize+lz4.CompressBlockBound(len(src)))
	binary.LittleEndian.PutUint32(dst, uint32(len(src)))
	if len(src) == 0 {
		return dst[:HeaderSize], nil
	}

	n, err := newCompressor(level).CompressBlock(src, dst[HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	return dst[:HeaderSize+n], nil
}

// ContentSize returns the uncompressed size declared by the container header.
func ContentSize(src []byte) (int, error) {
	if len(src) < HeaderSize {
		return 0, lz4errors.ErrInvalidHeader
	}
	size := uint64(binary.LittleEndian.Uint32(src))
	if size > uint64(len(src)-HeaderSize)*maxRatio {
		return 0, fmt.Errorf("%w: %d bytes from a %d bytes block", lz4errors.ErrInvalidContentSize, size, len(src)-HeaderSize)
	}
	return int(size), nil
}

// Uncompress decodes a container produced by Compress.
func Uncompress(src []byte) ([]byte, error) {
	size, err := ContentSize(src)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, size)
	if size == 0 {
		return dst, nil
	}

	n, err := lz4.UncompressBlock(src[HeaderSize:], dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 uncompress: %w", err)
	}
	if n != size {
		return nil, fmt.Errorf("%w: got %d want %d", lz4errors.ErrContentSizeMismatch, n, size)
	}
	return dst, nil
}
