package logging

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ZerologLogger adapts zerolog to Logger. Key/value args are attached as
// fields; a trailing key without a value is recorded under "!BADKEY".
type ZerologLogger struct {
	l zerolog.Logger
}

// NewZerologLogger returns a JSON logger writing to w at the given level
// (trace, debug, info, warn, error; info when unrecognised).
func NewZerologLogger(w io.Writer, level string) *ZerologLogger {
	l := zerolog.New(w).
		Level(zerologLevel(level)).
		With().
		Timestamp().
		Logger()
	return &ZerologLogger{l: l}
}

func (z *ZerologLogger) Debug(ctx context.Context, msg string, args ...any) {
	z.emit(z.l.Debug(), msg, args)
}

func (z *ZerologLogger) Info(ctx context.Context, msg string, args ...any) {
	z.emit(z.l.Info(), msg, args)
}

func (z *ZerologLogger) Warn(ctx context.Context, msg string, args ...any) {
	z.emit(z.l.Warn(), msg, args)
}

func (z *ZerologLogger) Error(ctx context.Context, msg string, args ...any) {
	z.emit(z.l.Error(), msg, args)
}

func (z *ZerologLogger) With(args ...any) Logger {
	c := z.l.With()
	eachPair(args, func(k string, v any) {
		switch tv := v.(type) {
		case error:
			c = c.AnErr(k, tv)
		case time.Duration:
			c = c.Dur(k, tv)
		default:
			c = c.Interface(k, tv)
		}
	})
	return &ZerologLogger{l: c.Logger()}
}

func (z *ZerologLogger) emit(e *zerolog.Event, msg string, args []any) {
	if e == nil {
		return
	}
	eachPair(args, func(k string, v any) {
		switch tv := v.(type) {
		case error:
			e = e.AnErr(k, tv)
		case time.Duration:
			e = e.Dur(k, tv)
		default:
			e = e.Interface(k, tv)
		}
	})
	e.Msg(msg)
}

// eachPair walks args as key/value pairs in order. Repeated keys are
// passed through as-is.
func eachPair(args []any, fn func(k string, v any)) {
	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			fn("!BADKEY", args[i])
			return
		}
		fn(fmt.Sprint(args[i]), args[i+1])
	}
}

func zerologLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
