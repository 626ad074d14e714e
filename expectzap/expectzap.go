// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package expectzap reports expectation failures to a zap logger.
//
// [Log] is a continuing handler suitable as a global handler. [Also]
// returns a callback for the also parameter of the built-in handlers, so
// an exiting policy can log before it acts:
//
//	h := expect.Return(0, expectzap.Also(logger, zapcore.WarnLevel))
package expectzap

import (
	"errors"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"code.hybscloud.com/expect"
)

// Field keys written for every failure.
const (
	KeyKind       = "expectation.kind"
	KeyMessage    = "expectation.message"
	KeyPanicStack = "panic.stack"
)

// Handler logs each failure as one entry and returns.
type Handler struct {
	logger *zap.Logger
	level  zapcore.Level
	stack  bool
}

// Option configures a [Handler].
type Option func(*Handler)

// WithLevel sets the entry level. The default is [zapcore.ErrorLevel].
func WithLevel(level zapcore.Level) Option {
	return func(h *Handler) { h.level = level }
}

// WithStack attaches the stack of the failing check to every entry.
func WithStack() Option {
	return func(h *Handler) { h.stack = true }
}

// Log returns a continuing handler writing to logger.
// A nil logger discards entries.
func Log(logger *zap.Logger, opts ...Option) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{logger: logger, level: zapcore.ErrorLevel}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HandleFail implements [expect.ContinueHandler].
func (h *Handler) HandleFail(e expect.Exception) {
	write(h.logger, h.level, h.stack, e)
}

// Also returns a callback that logs e at level. It is meant for the also
// parameter of [expect.Continue], [expect.Return] and friends.
func Also(logger *zap.Logger, level zapcore.Level) func(expect.Exception) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(e expect.Exception) {
		write(logger, level, false, e)
	}
}

// Fields returns the structured fields describing e.
func Fields(e expect.Exception) []zap.Field {
	fields := []zap.Field{
		zap.Stringer(KeyKind, e.Kind()),
		zap.String(KeyMessage, e.Message()),
	}
	if cause := e.Cause(); cause != nil {
		fields = append(fields, zap.Error(cause))
		var pe *expect.PanicError
		if errors.As(cause, &pe) && len(pe.Stack) > 0 {
			fields = append(fields, zap.ByteString(KeyPanicStack, pe.Stack))
		}
	}
	return fields
}

func write(logger *zap.Logger, level zapcore.Level, stack bool, e expect.Exception) {
	ce := logger.Check(level, e.Message())
	if ce == nil {
		return
	}
	fields := Fields(e)
	if stack {
		// Skip write and the handler frame.
		fields = append(fields, zap.StackSkip("stacktrace", 2))
	}
	ce.Write(fields...)
}
