package logger

import (
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/amirhossein-jamali/keylog/internal/domain/entity"
	"github.com/amirhossein-jamali/keylog/internal/domain/port/core"
)

// Options configures the zap logger
type Options struct {
	Level  entity.Level
	Format string // "json" or "console"
	Output string // "stdout", "stderr" or a file path
}

// ZapLogger implements the Logger interface using Zap
type ZapLogger struct {
	logger *zap.Logger
	level  atomic.Int64
}

// BuildZap builds the underlying zap logger. Level filtering is left to
// ZapLogger, so the zap core itself accepts every level.
func BuildZap(opts Options) (*zap.Logger, error) {
	var cfg zap.Config

	if strings.EqualFold(opts.Format, "json") {
		// JSON encoder for machine consumption
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"

	output := opts.Output
	if output == "" {
		output = "stderr"
	}
	cfg.OutputPaths = []string{output}
	cfg.ErrorOutputPaths = []string{"stderr"}

	zapLogger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return zapLogger, nil
}

// NewZapLogger builds a zap-backed logger from opts
func NewZapLogger(opts Options) (core.Logger, error) {
	zapLogger, err := BuildZap(opts)
	if err != nil {
		return nil, err
	}
	return NewZapLoggerFrom(zapLogger, opts.Level), nil
}

// NewZapLoggerFrom wraps an existing zap logger
func NewZapLoggerFrom(zapLogger *zap.Logger, level entity.Level) *ZapLogger {
	l := &ZapLogger{logger: zapLogger}
	l.level.Store(int64(level))
	return l
}

// NewDefaultLogger creates a console logger on stderr at info level
func NewDefaultLogger() core.Logger {
	l, err := NewZapLogger(Options{Level: entity.LevelInfo, Format: "console", Output: "stderr"})
	if err != nil {
		return NewNoopLogger()
	}
	return l
}

// SetLevel sets the minimum log level
func (l *ZapLogger) SetLevel(level entity.Level) {
	l.level.Store(int64(level))
}

// GetLevel gets the current log level
func (l *ZapLogger) GetLevel() entity.Level {
	return entity.Level(l.level.Load())
}

func (l *ZapLogger) enabled(level entity.Level) bool {
	return level.Loggable() && l.GetLevel() <= level
}

// mapToZapFields converts a map of fields to zap fields
func mapToZapFields(fields map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

// Debug logs debug messages
func (l *ZapLogger) Debug(message string, fields map[string]any) {
	if !l.enabled(entity.LevelDebug) {
		return
	}
	l.logger.Debug(message, mapToZapFields(fields)...)
}

// Info logs informational messages
func (l *ZapLogger) Info(message string, fields map[string]any) {
	if !l.enabled(entity.LevelInfo) {
		return
	}
	l.logger.Info(message, mapToZapFields(fields)...)
}

// Warn logs warning messages
func (l *ZapLogger) Warn(message string, fields map[string]any) {
	if !l.enabled(entity.LevelWarn) {
		return
	}
	l.logger.Warn(message, mapToZapFields(fields)...)
}

// Error logs error messages
func (l *ZapLogger) Error(message string, fields map[string]any) {
	if !l.enabled(entity.LevelError) {
		return
	}
	l.logger.Error(message, mapToZapFields(fields)...)
}

// Flush ensures all buffered logs are written
func (l *ZapLogger) Flush() error {
	return l.logger.Sync()
}

// Zap returns the underlying zap logger
func (l *ZapLogger) Zap() *zap.Logger {
	return l.logger
}
