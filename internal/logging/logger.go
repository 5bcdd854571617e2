// Package logging provides the analyzer's two logging surfaces: a
// structured zap.Logger for diagnostics (per-file analysis outcomes,
// download failures, results-file fallback), and a plain-text Mirror
// writer for the
// human-readable progress bar and final report, which always goes to
// both the terminal and a results file simultaneously.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the structured logger. In production mode it writes
// JSON-encoded records to logFile at info level and above; in
// development mode it writes human-readable, colorized records to
// stderr at debug level and above.
func New(logFile string, development bool) (*zap.Logger, error) {
	if development {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg.Build()
	}

	if err := os.MkdirAll(dirOf(logFile), 0o755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoder := zapcore.NewJSONEncoder(encoderCfg)
	core := zapcore.NewCore(encoder, zapcore.AddSync(file), zap.InfoLevel)

	return zap.New(core), nil
}

func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return "."
}

// CheckError logs msg at error level, with fields, if err is non-nil,
// and reports whether it did. A nil logger is a safe no-op, so callers
// in tests or library mode can pass one without a guard.
func CheckError(logger *zap.Logger, err error, msg string, fields ...zap.Field) bool {
	if err == nil {
		return false
	}
	if logger != nil {
		logger.Error(msg, append(fields, zap.Error(err))...)
	}
	return true
}

// Info logs msg at info level if logger is non-nil.
func Info(logger *zap.Logger, msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Info(msg, fields...)
	}
}
