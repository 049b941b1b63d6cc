// SPDX-License-Identifier: MIT

// Package logger builds the zap loggers used by the lvfuzzy command: a
// compact console encoder for humans and the production JSON encoder for
// machines. Library packages never log; they expose hooks (rules.WithOnFire)
// that the command wires to a logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the encoder and the minimum level.
type Options struct {
	JSON  bool
	Level string
}

// ParseLevel maps "debug", "info", "warn", "error" (any case) onto a zap
// level; "" means info.
func ParseLevel(s string) (zapcore.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return lvl, errors.WithHint(
			errors.Wrapf(err, "log level %q", s),
			"use debug, info, warn or error",
		)
	}

	return lvl, nil
}

// New returns a logger writing to stderr so that stdout stays free for
// command results.
func New(opts Options) (*zap.Logger, error) {
	return NewWithWriter(opts, os.Stderr)
}

// NewWithWriter is New with an explicit sink.
func NewWithWriter(opts Options, w io.Writer) (*zap.Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var enc zapcore.Encoder
	if opts.JSON {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		enc = zapcore.NewConsoleEncoder(consoleEncoderConfig())
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl)), nil
}

// consoleEncoderConfig drops the timestamp and caller and keeps a short
// colored level, which reads better interleaved with CLI output.
func consoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	return cfg
}
