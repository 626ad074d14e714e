// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expect

import (
	"errors"
	"fmt"
)

// ErrNoExit is reported when an exit handler produced a zero [Exit].
var ErrNoExit = errors.New("expect: exit handler declared no exit")

type exitKind uint8

const (
	exitNone exitKind = iota
	exitReturn
	exitRaise
)

// Exit is the directive an [ExitHandler] produces: either the enclosing
// block yields a value, or the run raises an error.
// The zero Exit declares nothing and is reported as [ErrNoExit].
type Exit[T any] struct {
	kind  exitKind
	value T
	err   error
}

// ExitWith makes the enclosing block yield v.
func ExitWith[T any](v T) Exit[T] {
	return Exit[T]{kind: exitReturn, value: v}
}

// ExitWithError makes the run return err. A nil err raises the exception
// that triggered the exit.
func ExitWithError[T any](err error) Exit[T] {
	return Exit[T]{kind: exitRaise, err: err}
}

// IsReturn returns true if the directive yields a value.
func (x Exit[T]) IsReturn() bool {
	return x.kind == exitReturn
}

// IsRaise returns true if the directive raises an error.
func (x Exit[T]) IsRaise() bool {
	return x.kind == exitRaise
}

// Value returns the yielded value and true, or zero and false.
func (x Exit[T]) Value() (T, bool) {
	if x.kind == exitReturn {
		return x.value, true
	}
	var zero T
	return zero, false
}

// Err returns the raised error, or nil.
func (x Exit[T]) Err() error {
	if x.kind == exitRaise {
		return x.err
	}
	return nil
}

// MatchExit pattern matches on the directive.
// The zero Exit is matched as a raise of [ErrNoExit].
func MatchExit[T, R any](x Exit[T], onReturn func(T) R, onRaise func(error) R) R {
	switch x.kind {
	case exitReturn:
		return onReturn(x.value)
	case exitRaise:
		return onRaise(x.err)
	default:
		return onRaise(ErrNoExit)
	}
}

// MapExit applies f to a yielded value.
func MapExit[T, U any](x Exit[T], f func(T) U) Exit[U] {
	switch x.kind {
	case exitReturn:
		return ExitWith(f(x.value))
	case exitRaise:
		return ExitWithError[U](x.err)
	default:
		return Exit[U]{}
	}
}

// settle normalises x for the exception e: raises without an error take
// e, and a zero directive becomes a wrapped ErrNoExit.
func settle[T any](x Exit[T], e Exception) Exit[T] {
	switch x.kind {
	case exitReturn:
		return x
	case exitRaise:
		if x.err == nil {
			return ExitWithError[T](e)
		}
		return x
	default:
		return ExitWithError[T](fmt.Errorf("%w: %w", ErrNoExit, e))
	}
}

func (x Exit[T]) unpack() (T, error) {
	if x.kind == exitReturn {
		return x.value, nil
	}
	var zero T
	return zero, x.err
}
