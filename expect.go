// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expect

// Expect is the global entry point for checks.
//
// Checks called directly on an Expect report to its global handler.
// [Check] and [Guard] run a block whose failures reach the global handler
// first and then a local handler.
//
// The global handler is read at each failure and may be replaced at any
// time with [Expect.SetOnGlobalFail]. Replacement is not synchronised:
// configure an Expect before sharing it between goroutines.
//
//	var check = expect.New(nil)
//
//	func eat(b *Banana) {
//	    if !check.That(b.Ripe) {
//	        return
//	    }
//	    check.IsNotNull(b.Plant)
//	}
type Expect struct {
	ContinueReceiver
	onGlobalFail GlobalHandler
}

// New returns an Expect reporting to onGlobalFail.
// A nil handler selects [DefaultGlobalHandler].
func New(onGlobalFail GlobalHandler) *Expect {
	if onGlobalFail == nil {
		onGlobalFail = DefaultGlobalHandler()
	}
	x := &Expect{onGlobalFail: onGlobalFail}
	x.ContinueReceiver = ContinueReceiver{handler: ContinueFunc(x.notifyGlobal)}
	return x
}

// OnGlobalFail returns the current global handler.
func (x *Expect) OnGlobalFail() GlobalHandler {
	return x.onGlobalFail
}

// SetOnGlobalFail replaces the global handler. Nil installs [Continue].
func (x *Expect) SetOnGlobalFail(h GlobalHandler) {
	if h == nil {
		h = Continue()
	}
	x.onGlobalFail = h
}

// That fails unless cond holds. It is IsTrue under a shorter name.
func (x *Expect) That(cond bool, message ...string) bool {
	return x.IsTrue(cond, message...)
}

func (x *Expect) notifyGlobal(e Exception) {
	x.onGlobalFail.HandleFail(e)
}

// Check runs block with a continuing receiver. Every failure goes to the
// global handler of x and then to onFail. A nil onFail reports to the
// global handler only.
func Check[T any](x *Expect, onFail ContinueHandler, block func(r *ContinueReceiver) T) T {
	return RunContinue(ContinueFunc(func(e Exception) {
		x.notifyGlobal(e)
		if onFail != nil {
			onFail.HandleFail(e)
		}
	}), block)
}

// Guard runs block under the exiting protocol of [Run]. Every failure
// goes to the global handler of x and then to onFail, which decides the
// outcome.
func Guard[T any](x *Expect, onFail ExitHandler[T], block func(r *ExitReceiver[T]) T, opts ...RunOption) (T, error) {
	if onFail == nil {
		misuse("nil exit handler")
	}
	return Run[T](&guarded[T]{x: x, local: onFail}, block, opts...)
}

// guarded notifies the global handler of x before delegating to local.
type guarded[T any] struct {
	x     *Expect
	local ExitHandler[T]
}

func (g *guarded[T]) HandleFail(e Exception) Exit[T] {
	g.x.notifyGlobal(e)
	return g.local.HandleFail(e)
}

// OnRun forwards to local so that stateful handlers such as [ReturnLast]
// keep working behind a Guard.
func (g *guarded[T]) OnRun(value T) {
	if o, ok := g.local.(RunObserver[T]); ok {
		o.OnRun(value)
	}
}
