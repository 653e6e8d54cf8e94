// Package cmds implements the lz4file command line driver.
package cmds

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"
	"github.com/pierrec/cmdflag"
	"go.uber.org/zap"

	"github.com/pierrec/lz4file"
	"github.com/pierrec/lz4file/internal/config"
	"github.com/pierrec/lz4file/internal/logger"
	"github.com/pierrec/lz4file/internal/lz4errors"
)

// App holds the outputs of the command.
type App struct {
	Stdout io.Writer // decompressed data and report logs
	Stderr io.Writer // errors, diagnostics and progress bars

	errColor *color.Color
	logColor *color.Color
}

// New returns an App writing to the given outputs.
func New(stdout, stderr io.Writer) *App {
	return &App{
		Stdout:   stdout,
		Stderr:   stderr,
		errColor: color.New(color.FgRed),
		logColor: color.New(color.FgGreen),
	}
}

type flags struct {
	input     string
	output    string
	compress  bool
	write     bool
	debug     bool
	standard  bool
	help      bool
	config    string
	frame     bool
	blockSize string
	checksum  bool
	progress  bool
	remove    bool
}

// Init registers the command flags on fs and returns the command handler.
// The handler returns the number of processed files.
func (a *App) Init(fs *flag.FlagSet) cmdflag.Handler {
	var f flags
	fs.StringVar(&f.input, "i", "", "input filename or file pattern")
	fs.StringVar(&f.output, "o", "", "output filename (used only if a single file was found)")
	fs.BoolVar(&f.compress, "c", false, "compress the input files (decompress if not set)")
	fs.BoolVar(&f.write, "w", false, "write decompressed data to output file(s) instead of the console")
	fs.BoolVar(&f.debug, "d", false, "display debug information")
	fs.BoolVar(&f.standard, "standard", false, "use the standard compression level (high is default)")
	fs.BoolVar(&f.help, "h", false, "display help")
	fs.StringVar(&f.config, "config", "", "YAML file of default settings")
	fs.BoolVar(&f.frame, "frame", false, "compress to the LZ4 frame format")
	fs.StringVar(&f.blockSize, "size", "", "frame block max size [64K,256K,1M,4M]")
	fs.BoolVar(&f.checksum, "sc", true, "frame content checksum (disable with -sc=false)")
	fs.BoolVar(&f.progress, "p", false, "display a progress bar when writing files")
	fs.BoolVar(&f.remove, "rm", false, "remove input files once their output is written")
	fs.Usage = func() { a.usage(fs) }

	return func(args ...string) (int, error) {
		if f.help {
			a.usage(fs)
			return 0, nil
		}
		log := logger.New("lz4file", a.Stderr, f.debug)
		defer func() { _ = log.Sync() }()

		files, err := expand(f.input)
		if err != nil {
			return 0, err
		}
		options, err := a.options(fs, &f, log)
		if err != nil {
			return 0, err
		}
		log.Debugw("matched files", "pattern", f.input, "count", len(files))

		var n int
		for _, file := range files {
			job, err := a.newJob(file, &f, len(files) == 1, options, log)
			if err != nil {
				return n, err
			}
			if job == nil {
				continue
			}
			a.print(job.Run())
			n++
		}
		return n, nil
	}
}

// options builds the Job options shared by all files, from the config file and flags.
func (a *App) options(fs *flag.FlagSet, f *flags, log *zap.SugaredLogger) ([]lz4file.Option, error) {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return nil, err
		}
		log.Debugw("loaded config", "file", f.config)
	}
	// Explicit flags override the config file.
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "standard":
			if f.standard {
				cfg.Level = "standard"
			}
		case "frame":
			if f.frame {
				cfg.Format = "frame"
			}
		case "size":
			cfg.BlockSize = f.blockSize
		case "sc":
			cfg.Checksum = f.checksum
		case "p":
			cfg.Progress = f.progress
		}
	})
	options, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	log.Debugw("settings", "level", cfg.Level, "format", cfg.Format, "block_size", cfg.BlockSize)

	mode := lz4file.Decompress
	if f.compress {
		mode = lz4file.Compress
	}
	options = append(options,
		lz4file.ModeOption(mode),
		lz4file.WriteOption(f.write),
		lz4file.ReportOption(f.debug),
		lz4file.RemoveInputOption(f.remove),
	)
	if cfg.Progress {
		options = append(options, lz4file.ProgressOption(a.Stderr))
	}
	return options, nil
}

// expand returns the sorted regular files matching pattern.
func expand(pattern string) ([]string, error) {
	if pattern == "" {
		return nil, lz4errors.ErrNoInput
	}
	files, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("invalid input pattern %q: %w", pattern, err)
	}
	if len(files) == 0 {
		return nil, lz4errors.ErrNoMatch
	}
	sort.Strings(files)
	return files, nil
}

// newJob returns the Job for file, or nil if the file is skipped.
func (a *App) newJob(file string, f *flags, single bool, options []lz4file.Option, log *zap.SugaredLogger) (*lz4file.Job, error) {
	compressed := hasExtension(file)
	if f.compress == compressed {
		log.Debugw("skipping file", "file", file, "compress", f.compress)
		return nil, nil
	}

	output := OutputName(file, f.compress)
	if single && f.output != "" {
		output = f.output
	}
	return lz4file.NewJob(file, append(options, lz4file.OutputOption(output))...)
}

// hasExtension reports whether file carries the compressed file extension, regardless of case.
func hasExtension(file string) bool {
	return strings.EqualFold(filepath.Ext(file), lz4file.Extension)
}

// OutputName derives the output file name of input:
// the compressed file extension is appended when compressing and removed when decompressing.
func OutputName(input string, compress bool) string {
	if compress {
		return input + lz4file.Extension
	}
	if hasExtension(input) {
		return input[:len(input)-len(lz4file.Extension)]
	}
	return input
}

func (a *App) print(res *lz4file.Result) {
	if errs := res.Report.Errors; len(errs) > 0 {
		for _, err := range errs {
			_, _ = a.errColor.Fprintln(a.Stderr, err)
		}
		_, _ = fmt.Fprintln(a.Stderr)
	}
	if logs := res.Report.Logs; len(logs) > 0 {
		for _, line := range logs {
			_, _ = a.logColor.Fprintln(a.Stdout, line)
		}
		_, _ = fmt.Fprintln(a.Stdout)
	}
	// Decompressed data not written to disk goes to the console.
	_, _ = res.WriteTo(a.Stdout)
}

const usage = `
LZ4 compression / decompression utility

Options:
%s
Examples:
    # read myinputfilename, create myoutputfilename with compressed data.
    lz4file -i myinputfilename -o myoutputfilename -w -c

    # same, with the standard compression level (default is high) and debug information
    lz4file -i myinputfilename -o myoutputfilename -w -c -d --standard

    # read myinputfilename, create myoutputfilename with decompressed data, display debug information
    lz4file -i myinputfilename -o myoutputfilename -w -d

    # read myinputfilename, output data to console, display debug information
    lz4file -i myinputfilename -d

    # compress all the log files below logs/
    lz4file -i 'logs/**/*.log' -c

`

func (a *App) usage(fs *flag.FlagSet) {
	opts := new(strings.Builder)
	fs.SetOutput(opts)
	fs.PrintDefaults()
	fs.SetOutput(a.Stderr)
	_, _ = fmt.Fprintf(a.Stdout, usage, opts.String())
}
