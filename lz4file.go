// Package lz4file compresses and decompresses whole files held in memory with LZ4.
//
// A Job processes one file: it reads it, transforms it with the LZ4 codec,
// checks that decompressed data is plain text when it is meant for a console,
// and writes the result to disk when asked to. Every Job returns a Result
// carrying its Report of log lines and errors.
//
// Two containers are supported:
//   - the block container (default): a 4 bytes little endian uncompressed size
//     followed by one LZ4 block, as produced by the PHP lz4 extension
//   - the LZ4 frame format, as produced by the lz4 command line tool
//
// Decompression detects frames automatically.
package lz4file

import "github.com/pierrec/lz4file/internal/lz4errors"

const (
	// Extension is the file extension of compressed files.
	Extension = ".lz4"
	// TextType is the only media type accepted for decompressed data sent to a console.
	TextType = "text/plain"
)

type _error string

func (e _error) Error() string { return string(e) }

const (
	ErrInvalidHeader                 = lz4errors.ErrInvalidHeader
	ErrInvalidContentSize            = lz4errors.ErrInvalidContentSize
	ErrContentSizeMismatch           = lz4errors.ErrContentSizeMismatch
	ErrOptionInvalidCompressionLevel = lz4errors.ErrOptionInvalidCompressionLevel
	ErrOptionInvalidMode             = lz4errors.ErrOptionInvalidMode
	ErrOptionInvalidFormat           = lz4errors.ErrOptionInvalidFormat
	ErrOptionInvalidBlockSize        = lz4errors.ErrOptionInvalidBlockSize
	ErrInputNotFound                 = lz4errors.ErrInputNotFound
	ErrInputUnreadable               = lz4errors.ErrInputUnreadable
	ErrOutputCreate                  = lz4errors.ErrOutputCreate
	ErrBadContentType                = lz4errors.ErrBadContentType
)
