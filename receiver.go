// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expect

import (
	"reflect"
)

// Receiver is the minimal check surface shared by every receiver.
// Generic checks such as [IsType] are written against it.
type Receiver interface {
	// Fail reports a [FailedExpectation] with message and cause.
	// An empty message selects [MessageExpectationFailed].
	Fail(message string, cause error)
}

// ContinueReceiver exposes the check vocabulary over a [ContinueHandler].
// A failing check notifies the handler and returns false; the caller keeps
// running past the check.
type ContinueReceiver struct {
	handler ContinueHandler
}

// NewContinueReceiver binds a receiver to h for its whole lifetime.
func NewContinueReceiver(h ContinueHandler) *ContinueReceiver {
	if h == nil {
		misuse("nil continue handler")
	}
	return &ContinueReceiver{handler: h}
}

// Fail always notifies the handler.
func (r *ContinueReceiver) Fail(message string, cause error) {
	r.handler.HandleFail(NewFailedExpectation(message, cause))
}

// IsTrue fails unless cond holds. It reports whether the check passed.
func (r *ContinueReceiver) IsTrue(cond bool, message ...string) bool {
	if !cond {
		r.Fail(messageOr(message, MessageExpectedConditionTrue), nil)
	}
	return cond
}

// IsFalse fails if cond holds. It reports whether the check passed.
func (r *ContinueReceiver) IsFalse(cond bool, message ...string) bool {
	if cond {
		r.Fail(messageOr(message, MessageExpectedConditionFalse), nil)
	}
	return !cond
}

// IsNotNull fails if value is absent. Typed nil pointers, maps, slices,
// channels, funcs and interfaces count as absent.
func (r *ContinueReceiver) IsNotNull(value any, message ...string) bool {
	if isNil(value) {
		r.Fail(messageOr(message, MessageExpectedNonNull), nil)
		return false
	}
	return true
}

// IsNull fails if value is present.
func (r *ContinueReceiver) IsNull(value any, message ...string) bool {
	if !isNil(value) {
		r.Fail(messageOr(message, MessageExpectedNull), nil)
		return false
	}
	return true
}

// NoError fails with a [CaughtException] wrapping err when err is non-nil.
func (r *ContinueReceiver) NoError(err error, message ...string) bool {
	if err != nil {
		r.handler.HandleFail(NewCaughtException(messageOr(message, MessageExceptionOccurred), err))
		return false
	}
	return true
}

// ExitReceiver exposes the check vocabulary over an [ExitHandler] inside
// one [Run]. A failing check never returns: the run ends with the outcome
// the handler chose, so code after a check may rely on it having passed.
//
// An ExitReceiver is only valid inside the block it was passed to.
type ExitReceiver[T any] struct {
	handler ExitHandler[T]
	scope   *scope
}

// raise hands e to the handler and exits the scope with its outcome.
func (r *ExitReceiver[T]) raise(e Exception) {
	r.scope.checkOpen()
	r.scope.exit(settle(r.handler.HandleFail(e), e))
}

// Fail always exits the enclosing run.
func (r *ExitReceiver[T]) Fail(message string, cause error) {
	r.raise(NewFailedExpectation(message, cause))
}

// IsTrue exits the run unless cond holds.
func (r *ExitReceiver[T]) IsTrue(cond bool, message ...string) {
	if !cond {
		r.Fail(messageOr(message, MessageExpectedConditionTrue), nil)
	}
}

// IsFalse exits the run if cond holds.
func (r *ExitReceiver[T]) IsFalse(cond bool, message ...string) {
	if cond {
		r.Fail(messageOr(message, MessageExpectedConditionFalse), nil)
	}
}

// IsNotNull exits the run if value is absent. Use [MustNotNil] to get the
// value back with its static type.
func (r *ExitReceiver[T]) IsNotNull(value any, message ...string) {
	if isNil(value) {
		r.Fail(messageOr(message, MessageExpectedNonNull), nil)
	}
}

// IsNull exits the run if value is present.
func (r *ExitReceiver[T]) IsNull(value any, message ...string) {
	if !isNil(value) {
		r.Fail(messageOr(message, MessageExpectedNull), nil)
	}
}

// NoError exits the run with a [CaughtException] wrapping err when err is
// non-nil.
func (r *ExitReceiver[T]) NoError(err error, message ...string) {
	if err != nil {
		r.raise(NewCaughtException(messageOr(message, MessageExceptionOccurred), err))
	}
}

// messageOr returns the first non-empty override, or def.
func messageOr(overrides []string, def string) string {
	for _, m := range overrides {
		if m != "" {
			return m
		}
	}
	return def
}

// isNil reports whether v is nil or an interface holding a typed nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
