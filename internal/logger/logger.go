package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	globalLogger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	once         sync.Once
)

// Init configures the global zerolog logger. Only the first call has effect.
func Init(level, logFilePath string) {
	once.Do(func() {
		writers := []io.Writer{os.Stdout}

		if logFilePath != "" {
			file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
			if err != nil {
				// the logger is not ready yet
				os.Stderr.WriteString("Failed to open log file: " + err.Error() + "\n")
			} else {
				writers = append(writers, file)
			}
		}

		lvl, err := zerolog.ParseLevel(level)
		if err != nil || level == "" {
			lvl = zerolog.InfoLevel
		}

		globalLogger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
			With().Timestamp().Logger().Level(lvl)
		log.Logger = globalLogger
	})
}

// L returns the logger stored in ctx, or the global one.
func L(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return &globalLogger
	}
	return l
}

// WithFields returns a context carrying a logger with the extra fields.
func WithFields(ctx context.Context, fields map[string]any) context.Context {
	l := L(ctx).With().Fields(fields).Logger()
	return l.WithContext(ctx)
}

func Info(ctx context.Context, msg string, args ...any) {
	L(ctx).Info().Msgf(msg, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	L(ctx).Warn().Msgf(msg, args...)
}

// Error logs msg at error level, attaching err when it is not nil.
func Error(ctx context.Context, err error, msg string, args ...any) {
	e := L(ctx).Error()
	if err != nil {
		e = e.Err(err)
	}
	e.Msgf(msg, args...)
}
