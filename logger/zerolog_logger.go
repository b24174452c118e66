package logger

import (
	"fmt"

	"github.com/rs/zerolog"
)

// ZerologLogger implements the [Logger] interface on top of a
// [zerolog.Logger]. Arguments are read as alternating key-value pairs;
// a trailing key without a value is logged under the "!BADKEY" field.
type ZerologLogger struct {
	logger zerolog.Logger
}

var _ Logger = (*ZerologLogger)(nil)

// NewZerologLogger returns a new [ZerologLogger].
func NewZerologLogger(logger zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: logger}
}

// ZerologLevel maps a Level onto the corresponding zerolog level.
func ZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelTrace:
		return zerolog.TraceLevel
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	case level <= LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

// Trace logs at the trace level.
func (l *ZerologLogger) Trace(msg string, args ...any) {
	writeEvent(l.logger.Trace(), msg, args)
}

// Debug logs at the debug level.
func (l *ZerologLogger) Debug(msg string, args ...any) {
	writeEvent(l.logger.Debug(), msg, args)
}

// Info logs at the info level.
func (l *ZerologLogger) Info(msg string, args ...any) {
	writeEvent(l.logger.Info(), msg, args)
}

// Warn logs at the warn level.
func (l *ZerologLogger) Warn(msg string, args ...any) {
	writeEvent(l.logger.Warn(), msg, args)
}

// Error logs at the error level.
func (l *ZerologLogger) Error(msg string, args ...any) {
	writeEvent(l.logger.Error(), msg, args)
}

func writeEvent(event *zerolog.Event, msg string, args []any) {
	// nil when the level is disabled
	if event == nil {
		return
	}
	n := len(args)
	for i := 0; i < n; i += 2 {
		if i+1 == n {
			event = event.Interface("!BADKEY", args[i])
			break
		}
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		event = fieldOf(event, key, args[i+1])
	}
	event.Msg(msg)
}

func fieldOf(event *zerolog.Event, key string, value any) *zerolog.Event {
	switch v := value.(type) {
	case error:
		return event.AnErr(key, v)
	case fmt.Stringer:
		return event.Stringer(key, v)
	default:
		return event.Interface(key, v)
	}
}
