package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

type contextKey string

const (
	JSONLoggingFormat = "json"

	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
	LogLevelFatal = "fatal"

	// ContextKeyRequestID carries the request identifier injected by the
	// HTTP ingress so every log line of a request can be correlated.
	ContextKeyRequestID contextKey = "requestID"
)

var logLevels = map[string]zerolog.Level{
	LogLevelDebug: zerolog.DebugLevel,
	LogLevelInfo:  zerolog.InfoLevel,
	LogLevelWarn:  zerolog.WarnLevel,
	"warning":     zerolog.WarnLevel,
	LogLevelError: zerolog.ErrorLevel,
	LogLevelFatal: zerolog.FatalLevel,
	"panic":       zerolog.PanicLevel,
}

// Logger wraps zerolog so callers get structured logging plus
// context-aware enrichment via WithContext.
type Logger struct {
	zerolog.Logger
}

func New(level, format string) Logger {
	return NewWithWriter(level, format, os.Stdout)
}

func NewWithWriter(level, format string, w io.Writer) Logger {
	logLevel, ok := logLevels[strings.ToLower(level)]
	if !ok {
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	out := w
	if format != JSONLoggingFormat {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return Logger{
		Logger: zerolog.New(out).With().Timestamp().Logger(),
	}
}

// WithContext returns a sub-logger enriched with the request ID and the
// active trace span, when either is present on the context.
func (l Logger) WithContext(ctx context.Context) zerolog.Logger {
	logger := l.Logger

	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok && requestID != "" {
		logger = logger.With().Str("request_id", requestID).Logger()
	}

	if span := trace.SpanFromContext(ctx); span.SpanContext().IsValid() {
		logger = logger.With().
			Str("trace_id", span.SpanContext().TraceID().String()).
			Str("span_id", span.SpanContext().SpanID().String()).
			Logger()
	}

	return logger
}
