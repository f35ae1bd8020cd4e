package sink

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	errs "github.com/amirhossein-jamali/keylog/internal/domain/error"
	"github.com/amirhossein-jamali/keylog/internal/domain/port/core"
)

// Supported sink names
const (
	Console = "console"
	Stdout  = "stdout"
	Stderr  = "stderr"
	Discard = "discard"
	Zap     = "zap"
)

// New builds the sink registered under name. Console and stdout sinks
// write to stdout, or to os.Stdout when it is nil. The zap sink requires a
// non-nil zap logger.
func New(name string, stdout io.Writer, zapLogger *zap.Logger) (core.Sink, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Console, Stdout, "":
		if stdout == nil {
			return NewStdoutSink(), nil
		}
		return NewConsoleSink(stdout), nil
	case Stderr:
		return NewStderrSink(), nil
	case Discard:
		return NewConsoleSink(io.Discard), nil
	case Zap:
		if zapLogger == nil {
			return nil, fmt.Errorf("%w: zap sink needs a zap logger", errs.ErrUnknownSink)
		}
		return NewZapSink(zapLogger), nil
	default:
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownSink, name)
	}
}
