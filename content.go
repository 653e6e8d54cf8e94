package lz4file

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// sniffLen is the maximum number of bytes considered when sniffing data.
const sniffLen = 512

// EmptyType is the media type reported for empty data.
const EmptyType = "application/x-empty"

// ContentType returns the media type of data, without parameters.
// Only the first line of data is sniffed.
func ContentType(data []byte) string {
	if len(data) == 0 {
		return EmptyType
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		data = data[:i+1]
	}
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}
	mtype := mimetype.Detect(data).String()
	if i := strings.IndexByte(mtype, ';'); i >= 0 {
		mtype = mtype[:i]
	}
	return strings.ToLower(strings.TrimSpace(mtype))
}

// CheckContentType returns an error wrapping ErrBadContentType if data is not plain text.
func CheckContentType(data []byte) error {
	if mtype := ContentType(data); mtype != TextType {
		return fmt.Errorf("%w, expected %q found %q", ErrBadContentType, TextType, mtype)
	}
	return nil
}
