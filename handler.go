// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expect

// ContinueHandler is the continuing handler family.
// HandleFail returns normally and the failing check returns to its caller.
// It is called synchronously on the goroutine that ran the check and may be
// called any number of times.
type ContinueHandler interface {
	HandleFail(e Exception)
}

// GlobalHandler is the handler type held by [Expect].
type GlobalHandler = ContinueHandler

// ExitHandler is the exiting handler family.
//
// HandleFail never resumes the failing check: the [Exit] it returns is
// carried to the enclosing [Run], which yields the value or returns the
// error. A zero Exit is a programming error in the handler and is
// reported as [ErrNoExit] instead of resuming.
type ExitHandler[T any] interface {
	HandleFail(e Exception) Exit[T]
}

// RunObserver is implemented by exit handlers that want to see the value
// every successful [Run] yields, whether computed by the block or
// substituted by the handler. It is not called when the run raises.
type RunObserver[T any] interface {
	OnRun(value T)
}

// ContinueFunc adapts a function into a [ContinueHandler].
//
// Example:
//
//	h := expect.ContinueFunc(func(e expect.Exception) {
//	    metrics.Inc(e.Kind().String())
//	})
type ContinueFunc func(e Exception)

// HandleFail calls f(e).
func (f ContinueFunc) HandleFail(e Exception) { f(e) }

// ExitFunc adapts a function into an [ExitHandler].
//
// Example:
//
//	h := expect.ExitFunc[int](func(e expect.Exception) expect.Exit[int] {
//	    return expect.ExitWith(-1)
//	})
type ExitFunc[T any] func(e Exception) Exit[T]

// HandleFail returns f(e).
func (f ExitFunc[T]) HandleFail(e Exception) Exit[T] { return f(e) }

// notify runs side-effect callbacks in order, skipping nil entries.
func notify(also []func(Exception), e Exception) {
	for _, f := range also {
		if f != nil {
			f(e)
		}
	}
}
