package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global SugaredLogger instance.
// Initialized with a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

type options struct {
	filePath   string
	maxSizeMB  int
	maxBackups int
	maxAgeDays int
}

// Option configures Initialize.
type Option func(*options)

// WithFile additionally writes JSON logs to a rotating file.
func WithFile(path string, maxSizeMB, maxBackups, maxAgeDays int) Option {
	return func(o *options) {
		o.filePath = path
		o.maxSizeMB = maxSizeMB
		o.maxBackups = maxBackups
		o.maxAgeDays = maxAgeDays
	}
}

// Initialize sets up the global logger with the given log level.
// Logs always go to stdout; WithFile adds a lumberjack-rotated file.
func Initialize(level string, opts ...Option) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	atom := zap.NewAtomicLevelAt(lvl)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), atom),
	}
	if o.filePath != "" {
		fileSyncer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   o.filePath,
			MaxSize:    o.maxSizeMB,
			MaxBackups: o.maxBackups,
			MaxAge:     o.maxAgeDays,
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(encoder, fileSyncer, atom))
	}

	Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Sugar()
	return nil
}
