package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	usecasecontract "github.com/mikiasgoitom/ScribeSpace/internal/usecase/contract"
)

// ZeroLogger adapts zerolog to the IAppLogger contract.
type ZeroLogger struct {
	log zerolog.Logger
}

var _ usecasecontract.IAppLogger = (*ZeroLogger)(nil)

// NewZeroLogger creates a logger writing JSON lines, or colored console
// output when pretty is set.
func NewZeroLogger(level string, pretty bool) *ZeroLogger {
	var out io.Writer = os.Stdout
	if pretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return NewZeroLoggerWithWriter(out, level)
}

// NewZeroLoggerWithWriter creates a logger writing to w.
func NewZeroLoggerWithWriter(w io.Writer, level string) *ZeroLogger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return &ZeroLogger{
		log: zerolog.New(w).Level(lvl).With().Timestamp().Logger(),
	}
}

// Zerolog exposes the underlying logger for structured call sites such as
// the request logging middleware.
func (l *ZeroLogger) Zerolog() *zerolog.Logger {
	return &l.log
}

// Debugf logs a debug message.
func (l *ZeroLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}

// Infof logs an info message.
func (l *ZeroLogger) Infof(format string, args ...interface{}) {
	l.log.Info().Msgf(format, args...)
}

// Warnf logs a warning message.
func (l *ZeroLogger) Warnf(format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

// Warningf logs a warning message.
func (l *ZeroLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

// Errorf logs an error message.
func (l *ZeroLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

// Fatalf logs a fatal message and exits.
func (l *ZeroLogger) Fatalf(format string, args ...interface{}) {
	l.log.Fatal().Msgf(format, args...)
}
