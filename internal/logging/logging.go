// Package logging builds the structured logger. The terminal belongs to the
// UI, so logs only go to a file and are discarded when no file is set.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls where and how verbosely the logger writes.
type Options struct {
	Path    string
	Verbose bool
}

// New returns a logger tagged with a fresh session id. The returned cleanup
// flushes buffered entries and must be called before exit.
func New(opts Options) (*zap.Logger, func(), error) {
	if opts.Path == "" {
		return zap.NewNop(), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	config := zap.NewProductionConfig()
	config.OutputPaths = []string{opts.Path}
	config.ErrorOutputPaths = []string{opts.Path}
	config.Sampling = nil
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if opts.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = logger.With(zap.String("session", uuid.NewString()))
	return logger, func() { _ = logger.Sync() }, nil
}
