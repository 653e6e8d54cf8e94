// Package config loads the defaults file of the lz4file command.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"github.com/pierrec/lz4/v4"
	"gopkg.in/yaml.v3"

	"github.com/pierrec/lz4file"
)

// Config holds the defaults applied before the command line flags.
type Config struct {
	Level     string `yaml:"level"`      // Compression level: high or standard
	Format    string `yaml:"format"`     // Container of compressed files: block or frame
	BlockSize string `yaml:"block_size"` // Frame block size [64K,256K,1M,4M]
	Checksum  bool   `yaml:"checksum"`   // Frame content checksum
	Progress  bool   `yaml:"progress"`   // Display a progress bar when writing files
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Level:     "high",
		Format:    "block",
		BlockSize: "4M",
		Checksum:  true,
	}
}

// Load reads the YAML file at filename over the defaults.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks every field of the configuration.
func (c *Config) Validate() error {
	if _, err := c.CompressionLevel(); err != nil {
		return err
	}
	if _, err := c.ContainerFormat(); err != nil {
		return err
	}
	if _, err := c.FrameBlockSize(); err != nil {
		return err
	}
	return nil
}

// CompressionLevel parses the level field.
func (c *Config) CompressionLevel() (lz4file.Level, error) {
	switch strings.ToLower(c.Level) {
	case "high":
		return lz4file.High, nil
	case "standard":
		return lz4file.Standard, nil
	}
	return 0, NewValidationError("level", c.Level, lz4file.ErrOptionInvalidCompressionLevel)
}

// ContainerFormat parses the format field.
func (c *Config) ContainerFormat() (lz4file.Format, error) {
	switch strings.ToLower(c.Format) {
	case "block":
		return lz4file.BlockFormat, nil
	case "frame":
		return lz4file.FrameFormat, nil
	}
	return 0, NewValidationError("format", c.Format, lz4file.ErrOptionInvalidFormat)
}

// FrameBlockSize parses the block_size field.
func (c *Config) FrameBlockSize() (lz4.BlockSize, error) {
	sz, err := bytefmt.ToBytes(c.BlockSize)
	if err != nil {
		return 0, NewValidationError("block_size", c.BlockSize, err)
	}
	switch size := lz4.BlockSize(sz); size {
	case lz4.Block64Kb, lz4.Block256Kb, lz4.Block1Mb, lz4.Block4Mb:
		return size, nil
	}
	return 0, NewValidationError("block_size", c.BlockSize, lz4file.ErrOptionInvalidBlockSize)
}

// Options returns the Job options matching the configuration.
func (c *Config) Options() ([]lz4file.Option, error) {
	level, err := c.CompressionLevel()
	if err != nil {
		return nil, err
	}
	format, err := c.ContainerFormat()
	if err != nil {
		return nil, err
	}
	size, err := c.FrameBlockSize()
	if err != nil {
		return nil, err
	}
	return []lz4file.Option{
		lz4file.CompressionLevelOption(level),
		lz4file.FormatOption(format),
		lz4file.BlockSizeOption(size),
		lz4file.ChecksumOption(c.Checksum),
	}, nil
}

// ValidationError represents an invalid configuration field.
type ValidationError struct {
	Value any    `json:"value"` // The actual value that failed validation.
	Field string `json:"field"` // Name of the field that caused the validation error.
	Err   error  `json:"error"` // The underlying error.
}

// NewValidationError creates a new ValidationError instance.
func NewValidationError(field string, value any, err error) *ValidationError {
	return &ValidationError{Err: err, Field: field, Value: value}
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
	}
	return "validation error"
}

func (e *ValidationError) Unwrap() error { return e.Err }

// AsValidationError extracts a ValidationError from err, if any.
func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
