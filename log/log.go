package log

import (
	"context"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	Level  = zapcore.Level
	Field  = zap.Field
	Option = zap.Option
)

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
	FatalLevel = zapcore.FatalLevel
)

type Logger struct {
	l     *zap.Logger
	level Level
}

type ctxKey struct{}

var (
	WithCaller    = zap.WithCaller
	AddCallerSkip = zap.AddCallerSkip
	AddStacktrace = zap.AddStacktrace
)

// field helpers
var (
	Skip        = zap.Skip
	Binary      = zap.Binary
	Bool        = zap.Bool
	ByteString  = zap.ByteString
	Float64     = zap.Float64
	Float32     = zap.Float32
	Int         = zap.Int
	Int64       = zap.Int64
	Int32       = zap.Int32
	Uint        = zap.Uint
	String      = zap.String
	Strings     = zap.Strings
	Reflect     = zap.Reflect
	Stringer    = zap.Stringer
	Time        = zap.Time
	Duration    = zap.Duration
	Any         = zap.Any
	Namespace   = zap.Namespace
	ErrorField  = zap.Error
	NamedError  = zap.NamedError
	Float64s    = zap.Float64s
	Ints        = zap.Ints
	Durations   = zap.Durations
	ObjectField = zap.Object
)

var std = New(os.Stderr, InfoLevel)

// ParseLevel accepts the zap level names (debug, info, warn, error, fatal).
func ParseLevel(text string) (Level, error) {
	return zapcore.ParseLevel(text)
}

// New creates a json logger writing to writer.
func New(writer io.Writer, level Level, opts ...Option) *Logger {
	if writer == nil {
		panic("the writer is nil")
	}
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format(time.RFC3339Nano))
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(cfg.EncoderConfig),
		zapcore.AddSync(writer),
		level,
	)
	return &Logger{l: zap.New(core, opts...), level: level}
}

// DevLogger creates a console logger with colored levels.
func DevLogger(writer io.Writer, level Level, opts ...Option) *Logger {
	if writer == nil {
		panic("the writer is nil")
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(writer),
		level,
	)
	return &Logger{l: zap.New(core, opts...), level: level}
}

// Default returns the package wide logger.
func Default() *Logger {
	return std
}

// ResetDefault replaces the package wide logger.
// Not safe for concurrent use, call during startup only.
func ResetDefault(l *Logger) {
	std = l
}

func AddToContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// GetFromContext returns the logger stored in ctx or the default logger
func GetFromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return std
	}
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return std
}

func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) Named(name string) *Logger {
	return &Logger{l: l.l.Named(name), level: l.level}
}

func (l *Logger) WithOptions(opts ...Option) *Logger {
	return &Logger{l: l.l.WithOptions(opts...), level: l.level}
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{l: l.l.With(fields...), level: l.level}
}

func (l *Logger) Debug(msg string, fields ...Field) { l.l.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.l.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.l.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...Field) { l.l.Error(msg, fields...) }
func (l *Logger) Fatal(msg string, fields ...Field) { l.l.Fatal(msg, fields...) }

func (l *Logger) Sync() error {
	return l.l.Sync()
}

// package level functions use the current default logger
func Debug(msg string, fields ...Field) { std.WithOptions(AddCallerSkip(1)).Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { std.WithOptions(AddCallerSkip(1)).Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { std.WithOptions(AddCallerSkip(1)).Warn(msg, fields...) }
func Error(msg string, fields ...Field) { std.WithOptions(AddCallerSkip(1)).Error(msg, fields...) }
func Fatal(msg string, fields ...Field) { std.WithOptions(AddCallerSkip(1)).Fatal(msg, fields...) }

func Sync() error {
	if std != nil {
		return std.Sync()
	}
	return nil
}
