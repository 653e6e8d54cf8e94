// Package lz4stream wraps the LZ4 frame format for in-memory buffers.
package lz4stream

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

const (
	frameMagic       uint32 = 0x184D2204
	frameMagicLegacy uint32 = 0x184C2102
)

// IsFrame reports whether src starts with an LZ4 frame magic number.
func IsFrame(src []byte) bool {
	if len(src) < 4 {
		return false
	}
	switch binary.LittleEndian.Uint32(src) {
	case frameMagic, frameMagicLegacy:
		return true
	}
	return false
}

// Compress encodes src as a single LZ4 frame configured with options.
// The content size is always recorded in the frame descriptor.
func Compress(src []byte, options ...lz4.Option) ([]byte, error) {
	zbuf := new(bytes.Buffer)
	zw := lz4.NewWriter(zbuf)
	options = append(options, lz4.SizeOption(uint64(len(src))))
	if err := zw.Apply(options...); err != nil {
		return nil, err
	}

	if _, err := zw.Write(src); err != nil {
		return nil, fmt.Errorf("lz4 frame compress: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("lz4 frame compress: %w", err)
	}
	return zbuf.Bytes(), nil
}

// Uncompress decodes all the frames in src.
func Uncompress(src []byte) ([]byte, error) {
	zr := lz4.NewReader(bytes.NewReader(src))
	out := new(bytes.Buffer)
	if _, err := io.Copy(out, zr); err != nil {
		return nil, fmt.Errorf("lz4 frame uncompress: %w", err)
	}
	return out.Bytes(), nil
}
