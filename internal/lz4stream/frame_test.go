package lz4stream_test

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/pierrec/lz4/v4"

	"github.com/pierrec/lz4file/internal/lz4block"
	"github.com/pierrec/lz4file/internal/lz4stream"
)

func TestFrameRoundTrip(t *testing.T) {
	c := qt.New(t)
	src, err := os.ReadFile("../../testdata/repeat.txt")
	c.Assert(err, qt.IsNil)

	for _, size := range []lz4.BlockSize{lz4.Block64Kb, lz4.Block256Kb, lz4.Block1Mb, lz4.Block4Mb} {
		for _, checksum := range []bool{false, true} {
			size, checksum := size, checksum
			c.Run(fmt.Sprintf("%s/checksum=%v", size, checksum), func(c *qt.C) {
				zbuf, err := lz4stream.Compress(src,
					lz4.BlockSizeOption(size),
					lz4.ChecksumOption(checksum),
					lz4.CompressionLevelOption(lz4.Level9),
				)
				c.Assert(err, qt.IsNil)
				c.Assert(lz4stream.IsFrame(zbuf), qt.IsTrue)
				c.Assert(len(zbuf) < len(src), qt.IsTrue)

				out, err := lz4stream.Uncompress(zbuf)
				c.Assert(err, qt.IsNil)
				c.Assert(bytes.Equal(out, src), qt.IsTrue)
			})
		}
	}
}

func TestIsFrame(t *testing.T) {
	c := qt.New(t)
	block, err := lz4block.Compress([]byte("hello world"), lz4.Fast)
	c.Assert(err, qt.IsNil)

	c.Assert(lz4stream.IsFrame(nil), qt.IsFalse)
	c.Assert(lz4stream.IsFrame([]byte{0x04, 0x22, 0x4d}), qt.IsFalse)
	c.Assert(lz4stream.IsFrame(block), qt.IsFalse)
	c.Assert(lz4stream.IsFrame([]byte{0x04, 0x22, 0x4d, 0x18}), qt.IsTrue)
}

func TestUncompressInvalid(t *testing.T) {
	c := qt.New(t)
	zbuf, err := lz4stream.Compress([]byte("hello world"))
	c.Assert(err, qt.IsNil)

	_, err = lz4stream.Uncompress(zbuf[:len(zbuf)/2])
	c.Assert(err, qt.Not(qt.IsNil))

	_, err = lz4stream.Uncompress([]byte("not an lz4 frame"))
	c.Assert(err, qt.ErrorMatches, "lz4 frame uncompress: .*")
}

func TestCompressInvalidOption(t *testing.T) {
	c := qt.New(t)
	_, err := lz4stream.Compress([]byte("x"), lz4.BlockSizeOption(lz4.BlockSize(1234)))
	c.Assert(err, qt.ErrorIs, lz4.ErrOptionInvalidBlockSize)
}
