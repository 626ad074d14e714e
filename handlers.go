// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expect

// Built-in handler policies. Every constructor returns a fresh instance;
// the optional also callbacks run in order before the policy acts.

// ContinuePolicy observes failures and lets execution proceed.
type ContinuePolicy struct {
	also []func(Exception)
}

// Continue returns a continuing handler that runs also and returns.
// Without callbacks it is a no-op.
func Continue(also ...func(Exception)) *ContinuePolicy {
	return &ContinuePolicy{also: also}
}

// HandleFail implements [ContinueHandler].
func (h *ContinuePolicy) HandleFail(e Exception) {
	notify(h.also, e)
}

// PanicPolicy escalates failures into a panic carrying the exception.
// It is a continuing handler, usable as the global handler.
type PanicPolicy struct {
	also []func(Exception)
}

// Panic returns a handler that runs also and then panics with the exception.
func Panic(also ...func(Exception)) *PanicPolicy {
	return &PanicPolicy{also: also}
}

// HandleFail implements [ContinueHandler]. It never returns.
func (h *PanicPolicy) HandleFail(e Exception) {
	notify(h.also, e)
	panic(e)
}

// ReturnPolicy exits the enclosing block with a fixed value.
type ReturnPolicy[T any] struct {
	value T
	also  []func(Exception)
}

// Return returns an exit handler that makes the block yield value.
func Return[T any](value T, also ...func(Exception)) *ReturnPolicy[T] {
	return &ReturnPolicy[T]{value: value, also: also}
}

// ReturnZero returns an exit handler that makes the block yield the zero T.
func ReturnZero[T any](also ...func(Exception)) *ReturnPolicy[T] {
	var zero T
	return Return(zero, also...)
}

// HandleFail implements [ExitHandler].
func (h *ReturnPolicy[T]) HandleFail(e Exception) Exit[T] {
	notify(h.also, e)
	return ExitWith(h.value)
}

// ReturnLastPolicy exits the enclosing block with the last value a run
// through this handler yielded, or with a default before the first one.
//
// The remembered value is plain instance state: a ReturnLastPolicy must
// not be shared between goroutines without external synchronisation.
type ReturnLastPolicy[T any] struct {
	def     T
	last    T
	hasLast bool
	also    []func(Exception)
}

// ReturnLast returns an exit handler remembering yielded values.
func ReturnLast[T any](def T, also ...func(Exception)) *ReturnLastPolicy[T] {
	return &ReturnLastPolicy[T]{def: def, also: also}
}

// HandleFail implements [ExitHandler].
func (h *ReturnLastPolicy[T]) HandleFail(e Exception) Exit[T] {
	notify(h.also, e)
	if h.hasLast {
		return ExitWith(h.last)
	}
	return ExitWith(h.def)
}

// OnRun implements [RunObserver].
func (h *ReturnLastPolicy[T]) OnRun(value T) {
	h.last = value
	h.hasLast = true
}

// Last returns the remembered value and whether one exists.
func (h *ReturnLastPolicy[T]) Last() (T, bool) {
	return h.last, h.hasLast
}

// ThrowPolicy makes the run return an error.
type ThrowPolicy[T any] struct {
	factory func(Exception) error
	also    []func(Exception)
}

// Throw returns an exit handler that raises the exception itself.
func Throw[T any](also ...func(Exception)) *ThrowPolicy[T] {
	return &ThrowPolicy[T]{also: also}
}

// ThrowWith returns an exit handler that raises factory(e). A nil factory,
// or a factory returning nil, raises the exception itself.
func ThrowWith[T any](factory func(Exception) error, also ...func(Exception)) *ThrowPolicy[T] {
	return &ThrowPolicy[T]{factory: factory, also: also}
}

// HandleFail implements [ExitHandler].
func (h *ThrowPolicy[T]) HandleFail(e Exception) Exit[T] {
	notify(h.also, e)
	if h.factory != nil {
		if err := h.factory(e); err != nil {
			return ExitWithError[T](err)
		}
	}
	return ExitWithError[T](e)
}
