// Package logging hands out named zap loggers with a shared console
// configuration. Levels can be adjusted per name at runtime.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.Mutex
	levels = make(map[string]zap.AtomicLevel)

	cfg = zap.Config{
		Level:    zap.NewAtomicLevelAt(zap.InfoLevel),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stdout"},
	}
)

// New builds a named sugared logger at info level.
func New(name string) *zap.SugaredLogger {
	c := cfg
	c.Level = level(name)
	return zap.Must(c.Build(zap.AddStacktrace(zapcore.PanicLevel))).Named(name).Sugar()
}

// SetLevel adjusts the level of all loggers created under name.
func SetLevel(name string, l zapcore.Level) {
	level(name).SetLevel(l)
}

func level(name string) zap.AtomicLevel {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := levels[name]; ok {
		return l
	}
	l := zap.NewAtomicLevelAt(zap.InfoLevel)
	levels[name] = l
	return l
}
