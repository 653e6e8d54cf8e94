// Package logger builds the diagnostics logger of the lz4file command.
package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w.
// Debug messages are only emitted when debug is set, otherwise warnings and above.
func New(name string, w io.Writer, debug bool) *zap.SugaredLogger {
	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}

	config := zap.NewDevelopmentEncoderConfig()
	config.TimeKey = ""
	config.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(config),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core).Named(name).Sugar()
}
