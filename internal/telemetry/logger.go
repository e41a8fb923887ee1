// Package telemetry builds the process-wide zap logger used by the
// gateway and CLI, grounded on the zap usage in Conduit's LSP server
// (internal/lsp/server.go) rather than anything in the tokenizer's own
// teacher, which has no logging of its own.
package telemetry

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the logger's output shape.
type Config struct {
	// Development enables human-readable console output and debug
	// level; production mode emits JSON at info level.
	Development bool
	// Level overrides the default level ("debug", "info", "warn",
	// "error"); empty uses Development to pick a sensible default.
	Level string
}

// New builds a *zap.Logger from Config. Callers should defer Sync() on
// the returned logger.
func New(cfg Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	if cfg.Level != "" {
		lvl, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zcfg.Build()
}

// NewNop returns a logger that discards everything, for tests and
// library callers that don't want telemetry wired up at all.
func NewNop() *zap.Logger {
	return zap.NewNop()
}
