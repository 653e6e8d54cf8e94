package lz4file

import (
	"fmt"
	"io"
	"reflect"

	"github.com/pierrec/lz4/v4"
)

// Option defines the parameters to setup a Job.
type Option func(*Job) error

func (o Option) String() string {
	return o(nil).Error()
}

// Default options.
var (
	DefaultModeOption             = ModeOption(Decompress)
	DefaultCompressionLevelOption = CompressionLevelOption(High)
	DefaultFormatOption           = FormatOption(BlockFormat)
	DefaultBlockSizeOption        = BlockSizeOption(lz4.Block4Mb)
	DefaultChecksumOption         = ChecksumOption(true)
)

// Mode tells a Job which way to transform its input.
type Mode uint8

const (
	Decompress Mode = iota
	Compress
)

func (m Mode) String() string {
	switch m {
	case Compress:
		return "compress"
	case Decompress:
		return "decompress"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Level is the compression level. High trades speed for a better ratio.
type Level uint8

const (
	Standard Level = iota
	High
)

func (l Level) String() string {
	switch l {
	case Standard:
		return "STANDARD"
	case High:
		return "HIGH"
	}
	return fmt.Sprintf("Level(%d)", uint8(l))
}

// CompressionLevel returns the lz4 compression level matching l.
func (l Level) CompressionLevel() lz4.CompressionLevel {
	if l == Standard {
		return lz4.Fast
	}
	return lz4.Level9
}

// Format is the container used for compressed data.
type Format uint8

const (
	BlockFormat Format = iota
	FrameFormat
)

func (f Format) String() string {
	switch f {
	case BlockFormat:
		return "block"
	case FrameFormat:
		return "frame"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// ModeOption sets the transform direction (default=Decompress).
func ModeOption(mode Mode) Option {
	return func(j *Job) error {
		if j == nil {
			return _error(fmt.Sprintf("ModeOption(%s)", mode))
		}
		switch mode {
		case Compress, Decompress:
		default:
			return fmt.Errorf("%w: %d", ErrOptionInvalidMode, mode)
		}
		j.mode = mode
		return nil
	}
}

// CompressionLevelOption defines the compression level (default=High).
func CompressionLevelOption(level Level) Option {
	return func(j *Job) error {
		if j == nil {
			return _error(fmt.Sprintf("CompressionLevelOption(%s)", level))
		}
		switch level {
		case Standard, High:
		default:
			return fmt.Errorf("%w: %d", ErrOptionInvalidCompressionLevel, level)
		}
		j.level = level
		return nil
	}
}

// OutputOption sets the output file name. Without it, the transformed data
// is kept in the Result instead of being written.
func OutputOption(name string) Option {
	return func(j *Job) error {
		if j == nil {
			return _error(fmt.Sprintf("OutputOption(%q)", name))
		}
		j.output = name
		return nil
	}
}

// WriteOption allows decompressed data to be written to the output file (default=false).
// Decompressed data that is written to disk is not checked for its content type.
// Compressed data is always written when an output file is set.
func WriteOption(flag bool) Option {
	return func(j *Job) error {
		if j == nil {
			return _error(fmt.Sprintf("WriteOption(%v)", flag))
		}
		j.write = flag
		return nil
	}
}

// ReportOption enables the collection of log lines in the Report (default=false).
// Errors are always reported.
func ReportOption(flag bool) Option {
	return func(j *Job) error {
		if j == nil {
			return _error(fmt.Sprintf("ReportOption(%v)", flag))
		}
		j.report = flag
		return nil
	}
}

// FormatOption sets the container of compressed data (default=BlockFormat).
// Decompression detects frames regardless of this option.
func FormatOption(format Format) Option {
	return func(j *Job) error {
		if j == nil {
			return _error(fmt.Sprintf("FormatOption(%s)", format))
		}
		switch format {
		case BlockFormat, FrameFormat:
		default:
			return fmt.Errorf("%w: %d", ErrOptionInvalidFormat, format)
		}
		j.format = format
		return nil
	}
}

// BlockSizeOption defines the maximum size of frame blocks (default=Block4Mb).
func BlockSizeOption(size lz4.BlockSize) Option {
	return func(j *Job) error {
		if j == nil {
			return _error(fmt.Sprintf("BlockSizeOption(%s)", size))
		}
		switch size {
		case lz4.Block64Kb, lz4.Block256Kb, lz4.Block1Mb, lz4.Block4Mb:
		default:
			return fmt.Errorf("%w: %d", ErrOptionInvalidBlockSize, size)
		}
		j.blockSize = size
		return nil
	}
}

// ChecksumOption enables/disables the frame content checksum (default=true).
func ChecksumOption(flag bool) Option {
	return func(j *Job) error {
		if j == nil {
			return _error(fmt.Sprintf("ChecksumOption(%v)", flag))
		}
		j.checksum = flag
		return nil
	}
}

// RemoveInputOption removes the input file once the output file is written (default=false).
func RemoveInputOption(flag bool) Option {
	return func(j *Job) error {
		if j == nil {
			return _error(fmt.Sprintf("RemoveInputOption(%v)", flag))
		}
		j.removeInput = flag
		return nil
	}
}

// ProgressOption renders a progress bar on w while the output file is written.
// A nil writer disables it.
func ProgressOption(w io.Writer) Option {
	return func(j *Job) error {
		if j == nil {
			s := "ProgressOption(<nil>)"
			if w != nil {
				s = fmt.Sprintf("ProgressOption(%s)", reflect.TypeOf(w).String())
			}
			return _error(s)
		}
		j.progress = w
		return nil
	}
}
