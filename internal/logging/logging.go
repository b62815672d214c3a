package logging

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/DEFRA/mpdp-admin-frontend/internal/common"
)

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})

	// expected to terminate the process
	Fatal(format string, v ...interface{})
}

type loggingWrapper struct {
	logger *zerolog.Logger
}

func (l *loggingWrapper) Debug(format string, v ...interface{}) {
	l.logger.Debug().Msgf(format, v...)
}

func (l *loggingWrapper) Info(format string, v ...interface{}) {
	l.logger.Info().Msgf(format, v...)
}

func (l *loggingWrapper) Warn(format string, v ...interface{}) {
	l.logger.Warn().Msgf(format, v...)
}

func (l *loggingWrapper) Error(format string, v ...interface{}) {
	l.logger.Error().Msgf(format, v...)
}

// expected to terminate the process
func (l *loggingWrapper) Fatal(format string, v ...interface{}) {
	l.logger.Fatal().Msgf(format, v...)
}

// SetSeverity sets the global zerolog level from one of DEBUG, INFO, WARN, ERROR.
// Unknown values leave the level at INFO.
func SetSeverity(severity string) {
	switch strings.ToUpper(severity) {
	case "DEBUG":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "WARN":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "ERROR":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

var defaultLogger = NewLogger()

// you should only use this when your code really does not belong to request processing.
// otherwise be a good citizen and do pass down the context, so log output can be associated with
// the request being processed!
func NoCtx() Logger {
	return defaultLogger
}

// whenever processing a specific request, use this and give it the context.
func LoggerFromContext(ctx context.Context) Logger {
	if ctx == nil {
		return defaultLogger
	}
	logger, ok := ctx.Value(common.CtxKeyLogger{}).(Logger)
	if !ok {
		// better than no logger at all
		return defaultLogger
	}

	return logger
}

// WithRequestID creates a logger that tags every line with the given request id.
func WithRequestID(reqID string) Logger {
	logger := zerolog.New(os.Stdout).
		With().
		Str("App", common.ApplicationName).
		Str("RequestId", reqID).
		Timestamp().
		Logger()

	return &loggingWrapper{
		logger: &logger,
	}
}

func CreateContextWithLoggerForRequestId(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, common.CtxKeyLogger{}, WithRequestID(reqID))
}

// ContextWithLogger places an arbitrary logger in the context, mostly useful for tests.
func ContextWithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, common.CtxKeyLogger{}, logger)
}

func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return common.DefaultRequestID
	}
	if reqID, ok := ctx.Value(common.CtxKeyRequestID{}).(string); ok {
		return reqID
	}
	return common.DefaultRequestID
}

func NewLogger() Logger {
	logger := zerolog.New(os.Stdout).
		With().
		Str("App", common.ApplicationName).
		Timestamp().
		Logger()

	return &loggingWrapper{
		logger: &logger,
	}
}

func NewNoopLogger() Logger {
	return &noopLogger{}
}

type noopLogger struct {
}

func (l *noopLogger) Debug(format string, v ...interface{}) {
}

func (l *noopLogger) Info(format string, v ...interface{}) {
}

func (l *noopLogger) Warn(format string, v ...interface{}) {
}

func (l *noopLogger) Error(format string, v ...interface{}) {
}

// expected to terminate the process
func (l *noopLogger) Fatal(format string, v ...interface{}) {
}
