package logger

import (
	"context"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var (
	once sync.Once
	base *zap.SugaredLogger
)

// Options controls how the process logger is built. The zero value produces a
// human-readable console logger at info level.
type Options struct {
	Level string
	JSON  bool
}

// Init builds the shared logger from the given options. Subsequent calls are
// no-ops; Get returns the logger built here.
func Init(opts Options) *zap.SugaredLogger {
	once.Do(func() {
		base = build(opts)
	})
	return base
}

// Get returns the shared logger, initializing it with defaults if Init was
// never called.
func Get() *zap.SugaredLogger {
	return Init(Options{})
}

func build(opts Options) *zap.SugaredLogger {
	level := zap.InfoLevel
	if opts.Level != "" {
		if parsed, err := zapcore.ParseLevel(opts.Level); err == nil {
			level = parsed
		}
	}

	var encoder zapcore.Encoder
	if opts.JSON {
		cfg := zap.NewProductionEncoderConfig()
		cfg.TimeKey = "timestamp"
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(level))
	return zap.New(core).Sugar()
}

// FromCtx returns the logger attached to ctx, or the shared logger when none
// is attached.
func FromCtx(ctx context.Context, with ...any) *zap.SugaredLogger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok {
		return l.With(with...)
	}
	return Get().With(with...)
}

// WithCtx returns a copy of ctx carrying l.
func WithCtx(ctx context.Context, l *zap.SugaredLogger) context.Context {
	if existing, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok && existing == l {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, l)
}
