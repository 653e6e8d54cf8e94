package lz4errors

type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrInvalidHeader is returned when a block container is shorter than its length header.
	ErrInvalidHeader Error = "lz4file: input too short for block header"
	// ErrInvalidContentSize is returned when the length header of a block container
	// declares more data than its block can expand to.
	ErrInvalidContentSize Error = "lz4file: invalid content size"
	// ErrContentSizeMismatch is returned when the decoded block does not match the length header.
	ErrContentSizeMismatch Error = "lz4file: decoded size does not match header"
	// ErrOptionInvalidCompressionLevel is returned when the supplied compression level is invalid.
	ErrOptionInvalidCompressionLevel Error = "lz4file: invalid compression level"
	// ErrOptionInvalidMode is returned when the supplied mode is neither compress nor decompress.
	ErrOptionInvalidMode Error = "lz4file: invalid mode"
	// ErrOptionInvalidFormat is returned when the supplied container format is unknown.
	ErrOptionInvalidFormat Error = "lz4file: invalid format"
	// ErrOptionInvalidBlockSize is returned when the frame block size is not one of 64K, 256K, 1M or 4M.
	ErrOptionInvalidBlockSize Error = "lz4file: invalid block size"
	// ErrInputNotFound is returned when the input file does not exist.
	ErrInputNotFound Error = "input file not found"
	// ErrInputUnreadable is returned when the input file cannot be opened or read.
	ErrInputUnreadable Error = "unable to open input file"
	// ErrOutputCreate is returned when the output file cannot be created or written.
	ErrOutputCreate Error = "unable to create output file"
	// ErrBadContentType is returned when decoded data does not sniff as plain text.
	ErrBadContentType Error = "bad decoded content type detected"
	// ErrNoInput is returned by the command line driver when no input pattern is given.
	ErrNoInput Error = "you must specify an input file or file pattern with -i argument"
	// ErrNoMatch is returned by the command line driver when the input pattern matches no file.
	ErrNoMatch Error = "no input file matching your pattern"
)
