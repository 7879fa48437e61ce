// Package logging builds the vclass diagnostic logger. Diagnostics go to a
// file, never to the terminal, which belongs to the rendered session
// surface alone.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultFile is the diagnostics sink, created in the working directory
// next to the roster files.
const DefaultFile = "vclass.log"

// New returns a debug-level logger appending JSON records to path when
// enabled is true, and a no-op logger otherwise. Callers own the returned
// logger and should Sync it before exit.
func New(enabled bool, path string) (*zap.Logger, error) {
	if !enabled {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
