package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

type ctxKey struct{}

// WithRequestID returns a context carrying the request ID set by the HTTP middleware.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// RequestID returns the request ID stored in ctx, or "unknown".
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(ctxKey{}).(string); ok && rid != "" {
		return rid
	}
	return "unknown"
}

// ParseLevel maps LOG_LEVEL values onto slog levels. Unknown values mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds the process logger: JSON lines tagged with the service name.
func New(w io.Writer, level, service string) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(h).With("service", service)
}

// Logger provides request-scoped logging for services.
type Logger struct {
	base      *slog.Logger
	requestID string
}

// FromContext creates a logger bound to the request ID in ctx, writing through slog.Default.
func FromContext(ctx context.Context) *Logger {
	return &Logger{base: slog.Default(), requestID: RequestID(ctx)}
}

func (l *Logger) with(operation string) *slog.Logger {
	return l.base.With("request_id", l.requestID, "operation", operation)
}

func (l *Logger) LogError(operation string, err error) {
	l.with(operation).Error("operation failed", "error", err)
}

func (l *Logger) LogErrorf(operation string, format string, args ...any) {
	l.with(operation).Error(fmt.Sprintf(format, args...))
}

func (l *Logger) LogInfof(operation string, format string, args ...any) {
	l.with(operation).Info(fmt.Sprintf(format, args...))
}

func (l *Logger) LogWarnf(operation string, format string, args ...any) {
	l.with(operation).Warn(fmt.Sprintf(format, args...))
}
