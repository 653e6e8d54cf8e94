package lz4block_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"testing"

	"github.com/pierrec/lz4/v4"

	"github.com/pierrec/lz4file/internal/lz4block"
	"github.com/pierrec/lz4file/internal/lz4errors"
)

type testcase struct {
	file         string
	compressible bool
	src          []byte
}

var rawFiles = []testcase{
	{"../../testdata/gettysburg.txt", true, nil},
	{"../../testdata/repeat.txt", true, nil},
	{"random", false, randomData(64 << 10)},
	{"empty", false, []byte{}},
}

func randomData(n int) []byte {
	buf := make([]byte, n)
	rand.New(rand.NewSource(1)).Read(buf)
	return buf
}

func TestCompressUncompress(t *testing.T) {
	for _, tc := range rawFiles {
		src := tc.src
		if src == nil {
			var err error
			src, err = os.ReadFile(tc.file)
			if err != nil {
				t.Fatal(err)
			}
		}

		for _, level := range []lz4.CompressionLevel{lz4.Fast, lz4.Level9} {
			tc, level := tc, level
			t.Run(fmt.Sprintf("%s/%s", tc.file, level), func(t *testing.T) {
				zbuf, err := lz4block.Compress(src, level)
				if err != nil {
					t.Fatal(err)
				}
				if got, want := binary.LittleEndian.Uint32(zbuf), uint32(len(src)); got != want {
					t.Fatalf("header: got %d; want %d", got, want)
				}
				if tc.compressible && len(zbuf) >= len(src) {
					t.Errorf("data not compressed: %d/%d", len(zbuf), len(src))
				}

				buf, err := lz4block.Uncompress(zbuf)
				if err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(buf, src) {
					t.Fatal("uncompressed compressed data not matching initial input")
				}
			})
		}
	}
}

func TestHighBeatsStandard(t *testing.T) {
	src, err := os.ReadFile("../../testdata/gettysburg.txt")
	if err != nil {
		t.Fatal(err)
	}
	fast, err := lz4block.Compress(src, lz4.Fast)
	if err != nil {
		t.Fatal(err)
	}
	high, err := lz4block.Compress(src, lz4.Level9)
	if err != nil {
		t.Fatal(err)
	}
	if len(high) > len(fast) {
		t.Errorf("high compression larger than standard: %d > %d", len(high), len(fast))
	}
}

func TestUncompressInvalid(t *testing.T) {
	valid, err := lz4block.Compress(bytes.Repeat([]byte("hello world "), 100), lz4.Fast)
	if err != nil {
		t.Fatal(err)
	}

	overflow := make([]byte, 8)
	binary.LittleEndian.PutUint32(overflow, 1<<30)

	short := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(short, binary.LittleEndian.Uint32(valid)-1)

	for _, tc := range []struct {
		label string
		src   []byte
		err   error
	}{
		{"nil", nil, lz4errors.ErrInvalidHeader},
		{"header only", []byte{1, 2}, lz4errors.ErrInvalidHeader},
		{"overflow", overflow, lz4errors.ErrInvalidContentSize},
		{"truncated", valid[:len(valid)/2], nil},
		{"size mismatch", short, nil},
	} {
		tc := tc
		t.Run(tc.label, func(t *testing.T) {
			_, err := lz4block.Uncompress(tc.src)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.err != nil && !errors.Is(err, tc.err) {
				t.Fatalf("got %v; want %v", err, tc.err)
			}
		})
	}
}

func TestContentSize(t *testing.T) {
	zbuf, err := lz4block.Compress([]byte("hello world"), lz4.Level9)
	if err != nil {
		t.Fatal(err)
	}
	n, err := lz4block.ContentSize(zbuf)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := n, len("hello world"); got != want {
		t.Fatalf("got %d; want %d", got, want)
	}
}

func FuzzUncompress(f *testing.F) {
	zbuf, _ := lz4block.Compress([]byte("hello world hello world"), lz4.Fast)
	f.Add(zbuf)
	f.Add([]byte{0, 0, 0, 0})
	f.Fuzz(func(t *testing.T, data []byte) {
		out, err := lz4block.Uncompress(data)
		if err != nil {
			return
		}
		zbuf, err := lz4block.Compress(out, lz4.Fast)
		if err != nil {
			t.Fatal(err)
		}
		back, err := lz4block.Uncompress(zbuf)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(back, out) {
			t.Fatal("round trip mismatch")
		}
	})
}
