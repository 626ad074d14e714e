// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expect

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Canonical failure messages. Values are part of the public contract and
// must not change.
const (
	MessageExpectationFailed      = "An expectation failed."
	MessageExpectedConditionFalse = "Expected condition to be false but was true."
	MessageExpectedConditionTrue  = "Expected condition to be true but was false."
	MessageExpectedNonNull        = "Expected value to be non-null but was null."
	MessageExpectedNull           = "Expected value to be null but was non-null."
	MessageExpectedType           = "Expected value to be of a different type than is was."
	MessageExceptionOccurred      = "An exception occurred."
)

// ErrExpectation matches every [Exception] under [errors.Is].
var ErrExpectation = errors.New("expect: expectation failed")

// Kind distinguishes the two exception variants.
type Kind uint8

const (
	// KindFailed marks an explicit check that evaluated to false.
	KindFailed Kind = iota + 1
	// KindCaught marks an external error reinterpreted as a failure.
	KindCaught
)

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFailed:
		return "failed_expectation"
	case KindCaught:
		return "caught_exception"
	default:
		return "unknown"
	}
}

// Exception is a failure record handed to handlers.
// Instances are immutable and always carry a non-empty message.
//
// The set of implementations is closed: [*FailedExpectation] and
// [*CaughtException].
type Exception interface {
	error
	Message() string
	Cause() error
	Kind() Kind
	Unwrap() error
	exception()
}

// FailedExpectation reports an explicit check that was violated.
type FailedExpectation struct {
	message string
	cause   error
}

// NewFailedExpectation creates a FailedExpectation. An empty message is
// replaced by [MessageExpectationFailed].
func NewFailedExpectation(message string, cause error) *FailedExpectation {
	if message == "" {
		message = MessageExpectationFailed
	}
	return &FailedExpectation{message: message, cause: cause}
}

func (e *FailedExpectation) Message() string { return e.message }
func (e *FailedExpectation) Cause() error    { return e.cause }
func (e *FailedExpectation) Kind() Kind      { return KindFailed }
func (e *FailedExpectation) Error() string   { return e.message }
func (e *FailedExpectation) Unwrap() error   { return e.cause }

// Is reports whether target is [ErrExpectation].
func (e *FailedExpectation) Is(target error) bool { return target == ErrExpectation }

func (*FailedExpectation) exception() {}

// CaughtException wraps an error that was caught and reinterpreted as an
// expectation failure. The original error is the cause.
type CaughtException struct {
	message string
	cause   error
}

// NewCaughtException creates a CaughtException. An empty message is
// replaced by [MessageExceptionOccurred].
func NewCaughtException(message string, cause error) *CaughtException {
	if message == "" {
		message = MessageExceptionOccurred
	}
	return &CaughtException{message: message, cause: cause}
}

func (e *CaughtException) Message() string { return e.message }
func (e *CaughtException) Cause() error    { return e.cause }
func (e *CaughtException) Kind() Kind      { return KindCaught }
func (e *CaughtException) Error() string   { return e.message }
func (e *CaughtException) Unwrap() error   { return e.cause }

// Is reports whether target is [ErrExpectation].
func (e *CaughtException) Is(target error) bool { return target == ErrExpectation }

func (*CaughtException) exception() {}

// PanicError carries a value recovered from a panic together with the
// goroutine stack at the point of recovery.
type PanicError struct {
	Value any
	Stack []byte
}

func newPanicError(v any) *PanicError {
	return &PanicError{Value: v, Stack: debug.Stack()}
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

// Unwrap returns the panic value when it is an error.
func (p *PanicError) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}
	return nil
}
