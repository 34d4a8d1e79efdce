package bitvec

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitvec-specific field names.
//
// The BitVector operations themselves never log; Logger is for programs that drive
// them and want consistent structured output.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, nil))
}

// WithBits adds a bits (vector length) field to the logger.
func (l *Logger) WithBits(n uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("bits", n),
	}
}

// LogOp logs the outcome of a vector operation.
// Failures are logged at error level, successes at debug level with the rendered result.
func (l *Logger) LogOp(ctx context.Context, op string, result *BitVector, err error) {
	if err != nil {
		l.ErrorContext(ctx, op+" failed",
			"op", op,
			"error", err,
		)
		return
	}
	if result == nil {
		l.DebugContext(ctx, op+" completed", "op", op)
		return
	}
	l.DebugContext(ctx, op+" completed",
		"op", op,
		"bits", result.Len(),
		"result", result.String(),
	)
}
