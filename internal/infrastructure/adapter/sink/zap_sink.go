package sink

import (
	"go.uber.org/zap"
)

// ZapSink forwards lines to a zap logger at info level. The line text is
// the space-joined arguments; zap adds its own timestamp and encoding.
type ZapSink struct {
	logger *zap.SugaredLogger
}

// NewZapSink creates a sink backed by logger
func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{
		logger: logger.Sugar(),
	}
}

// Write logs the arguments as one message
func (s *ZapSink) Write(args ...any) {
	s.logger.Infoln(args...)
}

// Sync flushes any buffered log entries
func (s *ZapSink) Sync() error {
	return s.logger.Sync()
}
