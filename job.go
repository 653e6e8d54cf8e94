package lz4file

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/pierrec/lz4/v4"
	"github.com/schollz/progressbar/v3"

	"github.com/pierrec/lz4file/internal/lz4block"
	"github.com/pierrec/lz4file/internal/lz4stream"
)

// Job is the processing of a single input file.
type Job struct {
	input       string
	output      string
	mode        Mode
	level       Level
	format      Format
	write       bool
	report      bool
	blockSize   lz4.BlockSize
	checksum    bool
	removeInput bool
	progress    io.Writer
}

// NewJob returns a Job processing the named input file.
func NewJob(input string, options ...Option) (*Job, error) {
	j := &Job{input: input}
	for _, o := range []Option{
		DefaultModeOption,
		DefaultCompressionLevelOption,
		DefaultFormatOption,
		DefaultBlockSizeOption,
		DefaultChecksumOption,
	} {
		_ = o(j)
	}
	if err := j.Apply(options...); err != nil {
		return nil, err
	}
	return j, nil
}

// Apply applies useful options to the Job.
func (j *Job) Apply(options ...Option) error {
	for _, o := range options {
		if err := o(j); err != nil {
			return err
		}
	}
	return nil
}

// Input returns the input file name.
func (j *Job) Input() string { return j.input }

// Output returns the output file name, if any.
func (j *Job) Output() string { return j.output }

// Mode returns the transform direction of the Job.
func (j *Job) Mode() Mode { return j.mode }

// Result is the outcome of a Job.
type Result struct {
	// Output is the name of the file written, empty if none was.
	Output string
	Report Report

	data []byte
}

// Data returns the transformed data that was not written to disk.
// Decompressed data is only retained once it passed the content type check.
func (r *Result) Data() []byte { return r.data }

// WriteTo writes the retained data to w, line by line.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	var n int64
	br := bufio.NewReader(bytes.NewReader(r.data))
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			m, werr := w.Write(line)
			n += int64(m)
			if werr != nil {
				return n, werr
			}
		}
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
}

// Run reads the input file, transforms it and emits the result.
// Failures are recorded in the Result Report instead of being returned.
func (j *Job) Run() *Result {
	res := &Result{Report: Report{enabled: j.report}}
	rep := &res.Report

	start := time.Now()
	rep.logf("Begin %s process - %s", j.mode, memoryUsage())
	if j.mode == Compress {
		rep.logf("Compression level: %s", j.level)
	}

	j.process(res)

	rep.logf("Input file:  %s", j.input)
	rep.logf("Output file: %s", j.output)
	rep.logf("Finish %s process - %s", j.mode, memoryUsage())
	rep.logf("Total Execution Time: %.6f seconds", time.Since(start).Seconds())
	return res
}

func (j *Job) process(res *Result) {
	rep := &res.Report

	data, mode, err := j.readInput()
	if err != nil {
		rep.fail(err)
		return
	}

	out, err := j.Transform(data)
	if err != nil {
		rep.fail(err)
		return
	}
	toDisk := (j.mode == Compress || j.write) && j.output != ""
	if j.mode == Decompress && !toDisk {
		if err := CheckContentType(out); err != nil {
			rep.fail(err)
			return
		}
	}

	if toDisk {
		if err := j.writeOutput(out, mode); err != nil {
			rep.fail(err)
			return
		}
		res.Output = j.output
		if j.removeInput {
			if err := os.Remove(j.input); err != nil {
				rep.fail(fmt.Errorf("unable to remove input file %s: %w", j.input, err))
			}
		}
		return
	}
	res.data = out
}

func (j *Job) readInput() ([]byte, fs.FileMode, error) {
	fi, err := os.Stat(j.input)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, fmt.Errorf("%w: %q", ErrInputNotFound, j.input)
		}
		return nil, 0, fmt.Errorf("%w %s: %v", ErrInputUnreadable, j.input, err)
	}
	if fi.IsDir() {
		return nil, 0, fmt.Errorf("%w %s: is a directory", ErrInputUnreadable, j.input)
	}
	data, err := os.ReadFile(j.input)
	if err != nil {
		return nil, 0, fmt.Errorf("%w %s: %v", ErrInputUnreadable, j.input, err)
	}
	return data, fi.Mode().Perm(), nil
}

// Transform compresses or decompresses src according to the Job settings.
func (j *Job) Transform(src []byte) ([]byte, error) {
	if j.mode == Compress {
		if j.format == FrameFormat {
			return lz4stream.Compress(src,
				lz4.BlockSizeOption(j.blockSize),
				lz4.ChecksumOption(j.checksum),
				lz4.CompressionLevelOption(j.level.CompressionLevel()),
			)
		}
		return lz4block.Compress(src, j.level.CompressionLevel())
	}
	return Decode(src)
}

// Encode compresses src into the block container at the given level.
func Encode(src []byte, level Level) ([]byte, error) {
	return lz4block.Compress(src, level.CompressionLevel())
}

// Decode uncompresses src, which may be either a block container or LZ4 frames.
func Decode(src []byte) ([]byte, error) {
	if lz4stream.IsFrame(src) {
		return lz4stream.Uncompress(src)
	}
	return lz4block.Uncompress(src)
}

// writeChunkSize is the size of the writes to the output file, so that progress gets rendered.
const writeChunkSize = 64 << 10

func (j *Job) writeOutput(data []byte, mode fs.FileMode) error {
	file, err := os.OpenFile(j.output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrOutputCreate, j.output, err)
	}

	var out io.Writer = file
	if j.progress != nil && len(data) > 0 {
		bar := progressbar.NewOptions64(int64(len(data)),
			progressbar.OptionSetWriter(j.progress),
			// Make sure we display the bar at 0%.
			progressbar.OptionSetRenderBlankState(true),
			// Display the filename.
			progressbar.OptionSetDescription(j.output),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		)
		out = io.MultiWriter(file, bar)
	}

	for len(data) > 0 {
		n := len(data)
		if n > writeChunkSize {
			n = writeChunkSize
		}
		if _, err := out.Write(data[:n]); err != nil {
			_ = file.Close()
			return fmt.Errorf("%w %s: %v", ErrOutputCreate, j.output, err)
		}
		data = data[n:]
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w %s: %v", ErrOutputCreate, j.output, err)
	}
	return nil
}
