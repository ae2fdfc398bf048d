package cli

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// maxVerbosity is the highest logr V-level the engine emits.
const maxVerbosity = 2

// newLogger returns the diagnostic logger and a function flushing it. Without
// verbose mode all diagnostics are discarded.
func newLogger(verbose bool) (logr.Logger, func()) {
	if !verbose {
		return logr.Discard(), func() {}
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-maxVerbosity))
	cfg.DisableStacktrace = true

	zl, err := cfg.Build()
	if err != nil {
		out.Warning("verbose logging unavailable: %v", err)
		return logr.Discard(), func() {}
	}
	return zapr.NewLogger(zl), func() { _ = zl.Sync() }
}
